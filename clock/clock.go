// Package clock provides wall-clock timestamps for the events each
// service publishes. Vehicles, junctions and the analyzer suspend on
// real wall-clock durations (spec.md §5), so unlike the teacher's
// discrete-step simulation clock this is a thin wrapper over the
// process clock, kept for its Format helper and vocabulary.
package clock

import (
	"fmt"
	"time"
)

// NowSeconds returns the current wall-clock time as whole seconds
// since the Unix epoch, the timestamp unit spec.md §3/§6 requires for
// every published event.
func NowSeconds() uint64 {
	return uint64(time.Now().Unix())
}

// Format renders a duration given in seconds as HH:MM:SS, the same
// decomposition the teacher's Clock.String used for simulation time.
// Hours are not wrapped at 24.
func Format(totalSeconds float64) string {
	h := int(totalSeconds / 3600)
	totalSeconds -= float64(h * 3600)
	m := int(totalSeconds / 60)
	totalSeconds -= float64(m * 60)
	s := int(totalSeconds)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
