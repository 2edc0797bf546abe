/*
Package bench provides a tiny deferred-timer helper for the cmd/ examples
to report table-build and parse timings, ported from the original
source's `benchmark` context manager.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bench

import (
	"time"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("tokema.bench")
}

// Track starts a timer for name and returns a function that, when
// called, logs the elapsed time. Intended for `defer bench.Track("build")()`.
func Track(name string) func() {
	started := time.Now()
	return func() {
		elapsed := time.Since(started)
		tracer().Infof("%s finished in %.2f ms", name, float64(elapsed.Microseconds())/1000.0)
	}
}
