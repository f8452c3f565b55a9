// Package sprite implements the SVG sprite document model.
//
// A sprite is a single SVG document whose <defs> container holds any number
// of <symbol> elements keyed by id:
//
//	<?xml version='1.0' encoding='UTF-8'?>
//	<svg xmlns='http://www.w3.org/2000/svg' xmlns:xlink='http://www.w3.org/1999/xlink'>
//	<defs>
//	<symbol id="bell-fill" viewBox="0 0 16 16">...</symbol>
//	</defs>
//	</svg>
//
// [Document] edits a parsed sprite in memory, [Normalize] turns an arbitrary
// icon into a [Symbol], and [Repository] maps sprite names to files.
package sprite
