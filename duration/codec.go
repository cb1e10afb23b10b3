package duration

import (
	"database/sql/driver"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
)

// MarshalJSON encodes d as its canonical "HH:MM:SS" string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(d.Format())
}

// UnmarshalJSON decodes a canonical "HH:MM:SS" JSON string.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := jsoniter.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalCBOR encodes d compactly as its raw seconds count.
func (d Duration) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(d.secs)
}

// UnmarshalCBOR decodes a seconds count produced by MarshalCBOR.
func (d *Duration) UnmarshalCBOR(b []byte) error {
	var secs uint64
	if err := cbor.Unmarshal(b, &secs); err != nil {
		return err
	}
	d.secs = secs
	return nil
}

// MarshalText implements encoding.TextMarshaler using the canonical
// string form.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Format()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (d *Duration) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer, storing the span as an integer
// seconds column. Spans beyond the signed 64-bit ceiling clamp to it,
// keeping the saturation policy of the arithmetic operations.
func (d Duration) Value() (driver.Value, error) {
	if d.secs > math.MaxInt64 {
		return int64(math.MaxInt64), nil
	}
	return int64(d.secs), nil
}

// Scan implements sql.Scanner. It accepts an integer seconds column or
// a text column holding the canonical string form. Negative stored
// values are rejected rather than wrapped.
func (d *Duration) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		if v < 0 {
			return fmt.Errorf("cannot scan negative value %d into Duration", v)
		}
		d.secs = uint64(v)
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case nil:
		*d = Duration{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Duration", src)
	}
}
