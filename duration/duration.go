// Package duration provides a non-negative, second-precision span of
// time built on a single unsigned count of seconds.
//
// The type is optimized for everyday hours/minutes/seconds handling:
// creation from whole units, decomposition into clock components, a
// canonical "HH:MM:SS" string form, and saturating arithmetic. There
// is no representation for a negative span; subtraction clamps at zero
// instead of underflowing, and the unit constructors and addition
// saturate at the maximum representable value instead of wrapping.
//
// Values are immutable and comparable with ==, so they are safe to
// share across goroutines and to use as map keys.
package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned by Parse for any malformed input.
var ErrInvalidFormat = errors.New("invalid duration format")

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// Duration is a non-negative span of time with second precision.
// The zero value is a zero-length span, ready to use.
type Duration struct {
	secs uint64
}

// FromSeconds returns the Duration of n seconds.
func FromSeconds(n uint64) Duration {
	return Duration{secs: n}
}

// FromMinutes returns the Duration of n minutes.
// The result saturates at the maximum representable span.
func FromMinutes(n uint64) Duration {
	return Duration{secs: mulSat(n, secondsPerMinute)}
}

// FromHours returns the Duration of n hours.
// The result saturates at the maximum representable span.
func FromHours(n uint64) Duration {
	return Duration{secs: mulSat(n, secondsPerHour)}
}

// FromHMS returns the Duration of h hours, m minutes and s seconds
// combined. The fields need not be normalized: FromHMS(0, 90, 0) is the
// same span as FromHMS(1, 30, 0). The result saturates at the maximum
// representable span.
func FromHMS(h, m, s uint64) Duration {
	total := addSat(mulSat(h, secondsPerHour), mulSat(m, secondsPerMinute))
	return Duration{secs: addSat(total, s)}
}

// Zero returns the zero-length Duration.
func Zero() Duration {
	return Duration{}
}

// Seconds returns the total number of seconds.
func (d Duration) Seconds() uint64 {
	return d.secs
}

// Minutes returns the total number of whole minutes, truncated.
func (d Duration) Minutes() uint64 {
	return d.secs / secondsPerMinute
}

// Hours returns the total number of whole hours, truncated.
func (d Duration) Hours() uint64 {
	return d.secs / secondsPerHour
}

// HoursPart returns the hours clock component. Hours is the largest
// unit, so this is unbounded above and equal to Hours().
func (d Duration) HoursPart() uint64 {
	return d.secs / secondsPerHour
}

// MinutesPart returns the minutes clock component, in 0-59.
func (d Duration) MinutesPart() uint64 {
	return (d.secs % secondsPerHour) / secondsPerMinute
}

// SecondsPart returns the seconds clock component, in 0-59.
func (d Duration) SecondsPart() uint64 {
	return d.secs % secondsPerMinute
}

// IsZero reports whether d is a zero-length span.
func (d Duration) IsZero() bool {
	return d.secs == 0
}

// Add returns d+other, saturating at the maximum representable span.
func (d Duration) Add(other Duration) Duration {
	return Duration{secs: addSat(d.secs, other.secs)}
}

// Sub returns d-other, clamped at zero. Subtracting a larger span from
// a smaller one yields the zero Duration, never an error and never a
// wrapped value.
func (d Duration) Sub(other Duration) Duration {
	if d.secs <= other.secs {
		return Duration{}
	}
	return Duration{secs: d.secs - other.secs}
}

// Compare returns -1 if d is shorter than other, +1 if longer, and 0 if
// the spans are equal.
func (d Duration) Compare(other Duration) int {
	switch {
	case d.secs < other.secs:
		return -1
	case d.secs > other.secs:
		return 1
	}
	return 0
}

// Format renders d in the canonical "HH:MM:SS" form. Minutes and
// seconds are always exactly two digits; hours is zero-padded to at
// least two digits and grows as needed (100 hours renders as
// "100:00:00").
func (d Duration) Format() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.HoursPart(), d.MinutesPart(), d.SecondsPart())
}

// String implements fmt.Stringer; it is identical to Format.
func (d Duration) String() string {
	return d.Format()
}

// Parse converts a "H:M:S" string into a Duration. Exactly three
// colon-separated fields are required, each consisting only of decimal
// digits (no sign, no whitespace). Field widths are not enforced and
// minutes/seconds beyond 59 are folded additively, so "00:90:00"
// parses to the same span as "01:30:00". Any malformed input returns
// ErrInvalidFormat.
func Parse(s string) (Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Duration{}, ErrInvalidFormat
	}

	var fields [3]uint64
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Duration{}, ErrInvalidFormat
		}
		fields[i] = v
	}

	return FromHMS(fields[0], fields[1], fields[2]), nil
}

func mulSat(a, b uint64) uint64 {
	if a != 0 && b > math.MaxUint64/a {
		return math.MaxUint64
	}
	return a * b
}

func addSat(a, b uint64) uint64 {
	if sum := a + b; sum >= a {
		return sum
	}
	return math.MaxUint64
}
