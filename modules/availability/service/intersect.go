package service

import (
	"sort"
	"time"

	"meetup-planner/modules/availability/entity"
)

// Coverage decides which participants must share a key for it to yield a slot.
type Coverage int

const (
	// CoverageUnanimous keeps a key only when every requested participant has a window on it.
	CoverageUnanimous Coverage = iota
	// CoveragePartial keeps a key when at least one requested participant does.
	CoveragePartial
)

func (c Coverage) String() string {
	if c == CoveragePartial {
		return "partial"
	}
	return "unanimous"
}

func ParseCoverage(s string) (Coverage, bool) {
	switch s {
	case "", "unanimous", "all":
		return CoverageUnanimous, true
	case "partial", "any":
		return CoveragePartial, true
	}
	return CoverageUnanimous, false
}

type window struct {
	contactID  string
	start, end entity.ClockTime
}

// overlap reduces the windows stored under one grouping key. Each present
// participant contributes only their earliest-starting window; the result is
// max(starts)..min(ends) seeded at the full day. present lists the requested
// ids found under the key, in request order.
func overlap(windows []window, requested []string, coverage Coverage) (start, end entity.ClockTime, present []string, ok bool) {
	earliest := make(map[string]window, len(windows))
	for _, w := range windows {
		cur, seen := earliest[w.contactID]
		if !seen || w.start < cur.start {
			earliest[w.contactID] = w
		}
	}

	for _, id := range requested {
		if _, found := earliest[id]; found {
			present = append(present, id)
		}
	}

	switch coverage {
	case CoverageUnanimous:
		if len(present) != len(requested) {
			return 0, 0, nil, false
		}
	default:
		if len(present) == 0 {
			return 0, 0, nil, false
		}
	}

	start, end = entity.DayStart, entity.DayEnd
	for _, id := range present {
		w := earliest[id]
		if w.start > start {
			start = w.start
		}
		if w.end < end {
			end = w.end
		}
	}
	if start >= end {
		return 0, 0, nil, false
	}
	return start, end, present, true
}

// NextDates returns the next count dates falling on day, scanning forward
// from the calendar date of from, inclusive.
func NextDates(day entity.Weekday, from time.Time, count int) []string {
	idx := day.Index()
	if idx < 0 || count <= 0 {
		return nil
	}

	today := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	offset := (idx - int(today.Weekday()) + 7) % 7
	first := today.AddDate(0, 0, offset)

	dates := make([]string, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, first.AddDate(0, 0, 7*i).Format(entity.DateLayout))
	}
	return dates
}

// sortSlots orders by date, then start, then end. Dates are ISO so string
// order is calendar order.
func sortSlots(slots []entity.TimeSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		if slots[i].StartTime != slots[j].StartTime {
			return slots[i].StartTime < slots[j].StartTime
		}
		return slots[i].EndTime < slots[j].EndTime
	})
}

// uniqueIDs drops empty and repeated ids, keeping first occurrence order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
