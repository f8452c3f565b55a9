// Package cli contains the command line interface for spritelab.
//
// # Usage
//
//	spritelab [flags] <command> [command flags]
//
// Commands operate on the project in the working directory, or the one
// named with -C/--chdir:
//
//	spritelab init --yes
//	spritelab create --name social
//	spritelab add --name github --icon ./github.svg --sprite social
//	spritelab remove --name github --sprite social
//	spritelab delete --name social
//
// # User Configuration
//
// Global flags may be given defaults in the user configuration directory
// (for example ~/.config/spritelab) using either config.json or
// config.yaml. The settings command writes config.yaml from the flags it is
// given:
//
//	spritelab --log-level=debug settings
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o spritelab .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/spritelab/pprof)
package cli
