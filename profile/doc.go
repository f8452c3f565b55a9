// Package profile provides optional runtime profiling for spritelab.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof -o spritelab .
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op.
//
// With the tag, the CLI accepts --pprof-mode and --pprof-dir:
//
//	spritelab --pprof-mode cpu add -n bell -i ./bell.svg
//	go tool pprof -http=: ~/.cache/spritelab/pprof/cpu.pprof
//
// Supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread, and trace.
package profile
