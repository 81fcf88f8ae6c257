package vntime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	got, err := ParseString("2024-03-01T09:30:00")
	require.NoError(t, err)

	want := time.Date(2024, 3, 1, 9, 30, 0, 0, Location())
	assert.True(t, got.Equal(want))
}

func TestParseString_WithoutSeconds(t *testing.T) {
	got, err := ParseString("2024-03-01T09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, got.In(Location()).Hour())
	assert.Equal(t, 30, got.In(Location()).Minute())
}

func TestParseString_NotUTC(t *testing.T) {
	// "09:00" Vietnam time is 02:00 UTC; the string must never be read as UTC.
	got, err := ParseString("2024-03-01T09:00:00")
	require.NoError(t, err)
	assert.Equal(t, 2, got.UTC().Hour())
}

func TestParseString_Malformed(t *testing.T) {
	_, err := ParseString("not-a-date")
	assert.ErrorIs(t, err, ErrMalformedTimestamp)
}

func TestParseArray(t *testing.T) {
	got, err := ParseArray([]int{2024, 6, 10, 8, 30})
	require.NoError(t, err)

	want := time.Date(2024, 6, 10, 8, 30, 0, 0, Location())
	assert.True(t, got.Equal(want))
}

func TestParseArray_DateOnlyDefaultsToMidnight(t *testing.T) {
	got, err := ParseArray([]int{2024, 6, 10})
	require.NoError(t, err)

	local := got.In(Location())
	assert.Equal(t, 0, local.Hour())
	assert.Equal(t, 0, local.Minute())
}

func TestParseArray_Truncated(t *testing.T) {
	_, err := ParseArray([]int{2024, 6})
	assert.ErrorIs(t, err, ErrMalformedTimestamp)
}

func TestRoundTrip_String(t *testing.T) {
	// Any minute-precision instant must survive format -> parse unchanged.
	original := time.Date(2024, 12, 31, 23, 30, 0, 0, Location())

	parsed, err := ParseString(Format(original))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(original))
}

func TestRoundTrip_Array(t *testing.T) {
	original := time.Date(2024, 2, 29, 7, 0, 0, 0, Location())

	arr := ToArray(original)
	parsed, err := ParseArray(arr[:])
	require.NoError(t, err)
	assert.True(t, parsed.Equal(original))
}

func TestWireTime_UnmarshalBothForms(t *testing.T) {
	var fromString, fromArray WireTime

	require.NoError(t, json.Unmarshal([]byte(`"2024-06-10T08:00:00"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`[2024, 6, 10, 8, 0]`), &fromArray))

	assert.True(t, fromString.Equal(fromArray.Time))
}

func TestWireTime_MarshalProducesStringForm(t *testing.T) {
	w := New(time.Date(2024, 6, 10, 8, 0, 0, 0, Location()))

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-10T08:00:00"`, string(data))
}

func TestWireTime_UnmarshalRejectsGarbage(t *testing.T) {
	var w WireTime
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"bad": true}`), &w), ErrMalformedTimestamp)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[2024]`), &w), ErrMalformedTimestamp)
}
