package duration

import (
	"database/sql/driver"
	"testing"

	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodec(t *testing.T) {
	d := FromHMS(1, 30, 45)

	b, err := jsoniter.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"01:30:45"`, string(b))

	var got Duration
	require.NoError(t, jsoniter.Unmarshal(b, &got))
	assert.Equal(t, d, got)

	// Lenient fields survive JSON decoding too.
	require.NoError(t, jsoniter.Unmarshal([]byte(`"00:90:00"`), &got))
	assert.Equal(t, FromMinutes(90), got)

	assert.Error(t, jsoniter.Unmarshal([]byte(`"1:2"`), &got))
	assert.Error(t, jsoniter.Unmarshal([]byte(`42`), &got))
}

func TestCBORCodec(t *testing.T) {
	d := FromSeconds(3661)

	b, err := cbor.Marshal(d)
	require.NoError(t, err)

	var got Duration
	require.NoError(t, cbor.Unmarshal(b, &got))
	assert.Equal(t, d, got)

	// Encodes as a bare unsigned count.
	var raw uint64
	require.NoError(t, cbor.Unmarshal(b, &raw))
	assert.Equal(t, uint64(3661), raw)
}

func TestTextCodec(t *testing.T) {
	d := FromHMS(100, 5, 6)

	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "100:05:06", string(b))

	var got Duration
	require.NoError(t, got.UnmarshalText(b))
	assert.Equal(t, d, got)

	require.ErrorIs(t, got.UnmarshalText([]byte("nope")), ErrInvalidFormat)
}

func TestSQLCodec(t *testing.T) {
	d := FromHMS(1, 30, 45)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value(int64(5445)), v)

	var got Duration
	require.NoError(t, got.Scan(int64(5445)))
	assert.Equal(t, d, got)

	require.NoError(t, got.Scan("01:30:45"))
	assert.Equal(t, d, got)

	require.NoError(t, got.Scan(nil))
	assert.True(t, got.IsZero())

	assert.Error(t, got.Scan(int64(-1)))
	assert.Error(t, got.Scan(3.5))
}
