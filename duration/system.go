package duration

import "time"

// Between returns the span between two instants supplied by the host
// clock, floor-truncated to whole seconds. The second return value is
// false when later is chronologically before earlier (the span is
// undefined, which is distinct from a true zero-length span). Two equal
// instants yield a zero Duration and true.
func Between(earlier, later time.Time) (Duration, bool) {
	diff := later.Sub(earlier)
	if diff < 0 {
		return Duration{}, false
	}
	return FromSeconds(uint64(diff / time.Second)), true
}
