// Package profile provides optional runtime profiling for the arith
// application.
//
// The package integrates [github.com/pkg/profile] behind the "pprof"
// build tag. When built without the tag (the default), all operations
// are no-ops with zero runtime overhead.
//
// The following profiling modes are supported when built with the tag:
// allocs, block, clock, cpu, goroutine, heap, mem, mutex, thread, and
// trace. Use [Modes] to retrieve the list programmatically.
//
//	profiler := profile.Config(func() (string, string, bool) {
//		return "cpu", "/tmp/profiles", true
//	}).Start()
//	defer profiler.Stop()
package profile
