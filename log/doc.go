// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Warn("sprite has no defs", slog.String("sprite", "default"))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("Kitchen"),
//		log.WithCaller(true))
//
// The package also maintains a default logger used by the package-level
// functions ([Debug], [InfoContext], [Error], ...). The CLI reconfigures it
// with [Config] while parsing flags.
//
// # Output Formats
//
// Two output formats are supported: [FormatText] (default) and [FormatJSON].
// Text output is colorized with lipgloss when [WithPretty] is enabled and the
// writer is a terminal.
package log
