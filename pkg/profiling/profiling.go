// Package profiling wires CPU and memory profiling into the app entry point.
package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile

	memProfilingInterval = 30 * time.Second
)

// DoCPUProfiling starts writing a CPU profile to the given file and returns a
// function that stops profiling and closes the file. On failure it reports to
// stderr and returns a no-op, so the caller can always defer the result.
func DoCPUProfiling(fileName string) (stop func()) {
	f, err := osCreate(fileName)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}

// DoMemProfiling periodically snapshots the heap profile to the given file and
// returns a function that writes a snapshot on demand (e.g. on shutdown).
func DoMemProfiling(fileName string) (write func()) {
	write = func() {
		f, err := osCreate(fileName)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC() // get up-to-date statistics
		if err = pprofWriteHeapProfile(f); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
		}
	}

	go func() {
		for {
			time.Sleep(memProfilingInterval)
			write()
		}
	}()

	return write
}
