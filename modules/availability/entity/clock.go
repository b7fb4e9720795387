package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock time as minutes since midnight.
type ClockTime int

const (
	DayStart ClockTime = 0
	DayEnd   ClockTime = 23*60 + 59
)

// ParseClock accepts "HH:MM" or "HH:MM:SS"; seconds are dropped.
// "24:00", which postgres TIME allows, maps to DayEnd.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if isMidnightEnd(parts) {
		return DayEnd, nil
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return ClockTime(h*60 + m), nil
}

func isMidnightEnd(parts []string) bool {
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || (i == 0 && n != 24) || (i > 0 && n != 0) {
			return false
		}
	}
	return true
}

func MustParseClock(s string) ClockTime {
	t, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t ClockTime) Hour() int   { return int(t) / 60 }
func (t ClockTime) Minute() int { return int(t) % 60 }

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Compact renders HHMM, as used in slot ids.
func (t ClockTime) Compact() string {
	return fmt.Sprintf("%02d%02d", t.Hour(), t.Minute())
}

// Scan reads postgres TIME values, which lib/pq hands over as time.Time,
// and plain text.
func (t *ClockTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = ClockTime(v.Hour()*60 + v.Minute())
		return nil
	case []byte:
		return t.parseInto(string(v))
	case string:
		return t.parseInto(v)
	case nil:
		return fmt.Errorf("clock time is null")
	}
	return fmt.Errorf("cannot scan %T into ClockTime", src)
}

func (t *ClockTime) parseInto(s string) error {
	c, err := ParseClock(s)
	if err != nil {
		return err
	}
	*t = c
	return nil
}

func (t ClockTime) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parseInto(s)
}
