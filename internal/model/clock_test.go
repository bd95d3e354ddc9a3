package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want ClockMinutes
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"09:30", 570},
		{"14:05", 845},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.in, got.String())
	}
}

func TestParseClockRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "9:00", "09:0", "24:00", "12:60", "09-00", "ab:cd", "09:00:00"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestClockMinutesJSON(t *testing.T) {
	out, err := json.Marshal(ClockMinutes(570))
	require.NoError(t, err)
	assert.Equal(t, `"09:30"`, string(out))

	var c ClockMinutes
	require.NoError(t, json.Unmarshal([]byte(`"14:00"`), &c))
	assert.Equal(t, ClockMinutes(840), c)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`900`), &c))
}

func TestOverlaps(t *testing.T) {
	nine, ten := ClockMinutes(540), ClockMinutes(600)
	eleven := ClockMinutes(660)
	nineThirty, tenThirty := ClockMinutes(570), ClockMinutes(630)

	// Touching endpoints are not an overlap.
	assert.False(t, Overlaps(nine, ten, ten, eleven))
	assert.False(t, Overlaps(ten, eleven, nine, ten))

	assert.True(t, Overlaps(nine, ten, nineThirty, tenThirty))
	assert.True(t, Overlaps(nineThirty, tenThirty, nine, ten))
	assert.True(t, Overlaps(nine, eleven, nineThirty, tenThirty)) // containment
	assert.True(t, Overlaps(nine, ten, nine, ten))                // identical
}

func TestIsWeekday(t *testing.T) {
	for _, d := range Weekdays {
		assert.True(t, IsWeekday(d))
	}
	assert.False(t, IsWeekday("Saturday"))
	assert.False(t, IsWeekday("monday"))
	assert.False(t, IsWeekday(""))
}
