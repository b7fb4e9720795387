package entity

import (
	"strings"
	"time"

	"meetup-planner/core/constants"
)

const DateLayout = "2006-01-02"

// Weekday is the lowercase English day name stored with weekly availability.
type Weekday string

// ParseWeekday normalizes s and reports whether it is a known day.
func ParseWeekday(s string) (Weekday, bool) {
	w := Weekday(strings.ToLower(strings.TrimSpace(s)))
	return w, w.Index() >= 0
}

// Index is the time.Weekday number, or -1.
func (w Weekday) Index() int {
	for i, d := range constants.DayOrder {
		if d == string(w) {
			return i
		}
	}
	return -1
}

func WeekdayOf(d time.Weekday) Weekday {
	return Weekday(constants.DayOrder[int(d)])
}

// WeeklyWindow is a recurring free window on a weekday.
type WeeklyWindow struct {
	ContactID string    `db:"contact_id" json:"contact_id"`
	DayOfWeek Weekday   `db:"day_of_week" json:"day_of_week"`
	StartTime ClockTime `db:"start_time" json:"start_time"`
	EndTime   ClockTime `db:"end_time" json:"end_time"`
}

// DatedWindow is a free window on one calendar date.
type DatedWindow struct {
	ContactID string    `db:"contact_id" json:"contact_id"`
	Date      string    `db:"date" json:"date"`
	StartTime ClockTime `db:"start_time" json:"start_time"`
	EndTime   ClockTime `db:"end_time" json:"end_time"`
}

// TimeSlot is a derived candidate meeting window. Never persisted.
type TimeSlot struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	StartTime    ClockTime `json:"start_time"`
	EndTime      ClockTime `json:"end_time"`
	AvailableFor []string  `json:"available_for"`
}

// SlotID is stable for a given date and start time.
func SlotID(date string, start ClockTime) string {
	return "slot-" + date + "-" + start.Compact()
}

// TripleSlotID always carries the end time, since several canonical triples
// can share a date and start.
func TripleSlotID(date string, start, end ClockTime) string {
	return SlotID(date, start) + "-" + end.Compact()
}
