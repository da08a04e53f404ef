// Package cli contains the command line interface for arith.
//
// # Usage
//
// Running arith with no arguments starts the interactive interpreter:
//
//	arith
//
// One-shot evaluation runs statements through a single session and
// prints the final result:
//
//	arith eval "a = 2" "a * 21"
//
// # Configuration
//
// Flag defaults can be set in ~/.config/arith/config.yaml; command-line
// flags override the file. Nested keys flatten with hyphens:
//
//	log:
//	  level: debug
//	  pretty: false
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn,
//     error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/arith/pprof)
package cli
