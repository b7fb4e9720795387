package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := map[string]ClockTime{
		"00:00":    0,
		"09:05":    9*60 + 5,
		"18:00:00": 18 * 60,
		"23:59":    DayEnd,
		" 7:30 ":   7*60 + 30,
		"24:00":    DayEnd,
		"24:00:00": DayEnd,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "7", "24:30", "24:00:01", "25:00", "12:60", "ab:cd", "1:2:3:4"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestClockTimeRendering(t *testing.T) {
	c := MustParseClock("18:30")
	assert.Equal(t, "18:30", c.String())
	assert.Equal(t, "1830", c.Compact())
	assert.Equal(t, 18, c.Hour())
	assert.Equal(t, 30, c.Minute())
	assert.Equal(t, "00:00", DayStart.String())
	assert.Equal(t, "23:59", DayEnd.String())
}

func TestClockTimeScan(t *testing.T) {
	var c ClockTime
	require.NoError(t, c.Scan(time.Date(0, 1, 1, 12, 15, 0, 0, time.UTC)))
	assert.Equal(t, "12:15", c.String())

	require.NoError(t, c.Scan([]byte("17:00:00")))
	assert.Equal(t, "17:00", c.String())

	require.NoError(t, c.Scan("08:45"))
	assert.Equal(t, "08:45", c.String())

	require.NoError(t, c.Scan([]byte("24:00:00")))
	assert.Equal(t, DayEnd, c)

	assert.Error(t, c.Scan(nil))
	assert.Error(t, c.Scan(42))
}

func TestClockTimeJSON(t *testing.T) {
	raw, err := json.Marshal(TimeSlot{ID: "x", Date: "2026-02-21", StartTime: MustParseClock("18:00"), EndTime: MustParseClock("20:00")})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"start_time":"18:00"`)
	assert.Contains(t, string(raw), `"end_time":"20:00"`)

	var back struct {
		At ClockTime `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"12:00"}`), &back))
	assert.Equal(t, ClockTime(720), back.At)
	assert.Error(t, json.Unmarshal([]byte(`{"at":"noon"}`), &back))
}

func TestWeekday(t *testing.T) {
	w, ok := ParseWeekday(" Saturday")
	require.True(t, ok)
	assert.Equal(t, Weekday("saturday"), w)
	assert.Equal(t, int(time.Saturday), w.Index())

	_, ok = ParseWeekday("funday")
	assert.False(t, ok)

	assert.Equal(t, Weekday("sunday"), WeekdayOf(time.Sunday))
}

func TestSlotID(t *testing.T) {
	assert.Equal(t, "slot-2026-02-21-1800", SlotID("2026-02-21", MustParseClock("18:00")))
	assert.Equal(t, "slot-2026-02-24-1830", SlotID("2026-02-24", MustParseClock("18:30")))
	assert.Equal(t, "slot-2026-02-21-1800-2000", TripleSlotID("2026-02-21", MustParseClock("18:00"), MustParseClock("20:00")))
}
