package service

import "meetup-planner/modules/availability/entity"

func sampleSlot(date, start, end string, availableFor ...string) entity.TimeSlot {
	s := entity.MustParseClock(start)
	return entity.TimeSlot{
		ID:           entity.SlotID(date, s),
		Date:         date,
		StartTime:    s,
		EndTime:      entity.MustParseClock(end),
		AvailableFor: availableFor,
	}
}

// sampleSlots back the read-only preview when the store is unreachable.
var sampleSlots = []entity.TimeSlot{
	sampleSlot("2026-02-21", "18:00", "20:00", "c1", "c2", "c4", "c6"),
	sampleSlot("2026-02-22", "19:00", "21:00", "c1", "c2", "c3", "c4", "c5", "c6"),
	sampleSlot("2026-02-23", "12:00", "14:00", "c2", "c3", "c5"),
	sampleSlot("2026-02-24", "18:30", "20:30", "c1", "c3", "c4", "c5", "c6"),
}

// SampleSlots returns the sample slots covering every id in contactIDs.
func SampleSlots(contactIDs []string) []entity.TimeSlot {
	out := []entity.TimeSlot{}
	for _, slot := range sampleSlots {
		members := make(map[string]bool, len(slot.AvailableFor))
		for _, id := range slot.AvailableFor {
			members[id] = true
		}
		all := true
		for _, id := range contactIDs {
			if !members[id] {
				all = false
				break
			}
		}
		if all {
			s := slot
			s.AvailableFor = cloneIDs(slot.AvailableFor)
			out = append(out, s)
		}
	}
	return out
}
