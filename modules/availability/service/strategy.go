package service

import (
	"context"
	"time"

	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	"meetup-planner/modules/availability/entity"
	"meetup-planner/modules/availability/repository"
)

const (
	RepresentationWeekly = "weekly"
	RepresentationDated  = "dated"
	RepresentationTriple = "triple"
)

// SlotStrategy turns stored availability into candidate slots.
type SlotStrategy interface {
	Name() string
	ComputeSlots(ctx context.Context, ownerID string, contactIDs []string, coverage Coverage) ([]entity.TimeSlot, error)
}

// NewStrategy picks the implementation for a configured representation.
func NewStrategy(representation string, repo repository.AvailabilityRepositoryInterface, projectionCount int) (SlotStrategy, error) {
	switch representation {
	case "", RepresentationWeekly:
		return NewWeeklyStrategy(repo, projectionCount, time.Now), nil
	case RepresentationDated:
		return NewDatedStrategy(repo), nil
	case RepresentationTriple:
		return NewTripleStrategy(repo), nil
	}
	return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown availability representation: "+representation, nil)
}

func storeError(err error) error {
	return errors.NewAppError(errors.ErrStoreRead, "availability store unavailable", err)
}

func cloneIDs(ids []string) []string {
	return append([]string(nil), ids...)
}

// WeeklyStrategy intersects recurring weekday windows and projects every
// surviving weekday onto its next upcoming dates.
type WeeklyStrategy struct {
	repo            repository.AvailabilityRepositoryInterface
	projectionCount int
	now             func() time.Time
}

func NewWeeklyStrategy(repo repository.AvailabilityRepositoryInterface, projectionCount int, now func() time.Time) *WeeklyStrategy {
	if projectionCount <= 0 {
		projectionCount = 4
	}
	return &WeeklyStrategy{repo: repo, projectionCount: projectionCount, now: now}
}

func (s *WeeklyStrategy) Name() string { return RepresentationWeekly }

func (s *WeeklyStrategy) ComputeSlots(ctx context.Context, ownerID string, contactIDs []string, coverage Coverage) ([]entity.TimeSlot, error) {
	ids := uniqueIDs(contactIDs)
	if len(ids) == 0 {
		return []entity.TimeSlot{}, nil
	}

	rows, err := s.repo.ListWeekly(ctx, ownerID, ids)
	if err != nil {
		return nil, storeError(err)
	}

	byDay := make(map[entity.Weekday][]window)
	for _, r := range rows {
		day, ok := entity.ParseWeekday(string(r.DayOfWeek))
		if !ok {
			logger.Warn("WeeklyStrategy:ComputeSlots:UnknownDay", "day", r.DayOfWeek, "contact_id", r.ContactID)
			continue
		}
		byDay[day] = append(byDay[day], window{contactID: r.ContactID, start: r.StartTime, end: r.EndTime})
	}

	today := s.now()
	slots := []entity.TimeSlot{}
	for day, windows := range byDay {
		start, end, present, ok := overlap(windows, ids, coverage)
		if !ok {
			continue
		}
		for _, date := range NextDates(day, today, s.projectionCount) {
			slots = append(slots, entity.TimeSlot{
				ID:           entity.SlotID(date, start),
				Date:         date,
				StartTime:    start,
				EndTime:      end,
				AvailableFor: cloneIDs(present),
			})
		}
	}

	sortSlots(slots)
	return slots, nil
}

// DatedStrategy intersects windows recorded for exact calendar dates.
type DatedStrategy struct {
	repo repository.AvailabilityRepositoryInterface
}

func NewDatedStrategy(repo repository.AvailabilityRepositoryInterface) *DatedStrategy {
	return &DatedStrategy{repo: repo}
}

func (s *DatedStrategy) Name() string { return RepresentationDated }

func (s *DatedStrategy) ComputeSlots(ctx context.Context, ownerID string, contactIDs []string, coverage Coverage) ([]entity.TimeSlot, error) {
	ids := uniqueIDs(contactIDs)
	if len(ids) == 0 {
		return []entity.TimeSlot{}, nil
	}

	rows, err := s.repo.ListDated(ctx, ownerID, ids)
	if err != nil {
		return nil, storeError(err)
	}

	byDate := make(map[string][]window)
	for _, r := range rows {
		byDate[r.Date] = append(byDate[r.Date], window{contactID: r.ContactID, start: r.StartTime, end: r.EndTime})
	}

	slots := []entity.TimeSlot{}
	for date, windows := range byDate {
		start, end, present, ok := overlap(windows, ids, coverage)
		if !ok {
			continue
		}
		slots = append(slots, entity.TimeSlot{
			ID:           entity.SlotID(date, start),
			Date:         date,
			StartTime:    start,
			EndTime:      end,
			AvailableFor: present,
		})
	}

	sortSlots(slots)
	return slots, nil
}

// TripleStrategy treats each exact (date, start, end) row as a canonical
// slot. Coverage is whoever recorded the identical triple; nothing is
// intersected.
type TripleStrategy struct {
	repo repository.AvailabilityRepositoryInterface
}

func NewTripleStrategy(repo repository.AvailabilityRepositoryInterface) *TripleStrategy {
	return &TripleStrategy{repo: repo}
}

func (s *TripleStrategy) Name() string { return RepresentationTriple }

type tripleKey struct {
	date       string
	start, end entity.ClockTime
}

func (s *TripleStrategy) ComputeSlots(ctx context.Context, ownerID string, contactIDs []string, coverage Coverage) ([]entity.TimeSlot, error) {
	ids := uniqueIDs(contactIDs)
	if len(ids) == 0 {
		return []entity.TimeSlot{}, nil
	}

	rows, err := s.repo.ListDated(ctx, ownerID, ids)
	if err != nil {
		return nil, storeError(err)
	}

	members := make(map[tripleKey]map[string]bool)
	for _, r := range rows {
		if r.StartTime >= r.EndTime {
			continue
		}
		k := tripleKey{date: r.Date, start: r.StartTime, end: r.EndTime}
		if members[k] == nil {
			members[k] = make(map[string]bool)
		}
		members[k][r.ContactID] = true
	}

	slots := []entity.TimeSlot{}
	for k, set := range members {
		present := make([]string, 0, len(set))
		for _, id := range ids {
			if set[id] {
				present = append(present, id)
			}
		}
		if len(present) == 0 || (coverage == CoverageUnanimous && len(present) != len(ids)) {
			continue
		}

		slots = append(slots, entity.TimeSlot{
			ID:           entity.TripleSlotID(k.date, k.start, k.end),
			Date:         k.date,
			StartTime:    k.start,
			EndTime:      k.end,
			AvailableFor: present,
		})
	}

	sortSlots(slots)
	return slots, nil
}
