package service

import (
	"context"
	stderrors "errors"
	"time"

	"meetup-planner/core/constants"
	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	"meetup-planner/modules/availability/dto"
	"meetup-planner/modules/availability/entity"
	"meetup-planner/modules/availability/repository"
	contactEntity "meetup-planner/modules/contact/entity"
)

// ContactResolver loads the owner's contacts among ids.
type ContactResolver interface {
	ResolveContacts(ctx context.Context, ownerID string, ids []string) ([]contactEntity.Contact, *errors.AppError)
}

type AvailabilityService struct {
	repo            repository.AvailabilityRepositoryInterface
	strategy        SlotStrategy
	contacts        ContactResolver
	previewFallback bool
}

type AvailabilityServiceInterface interface {
	FindCommonSlots(ctx context.Context, ownerID string, contactIDs []string) (*dto.FindSlotsResponse, *errors.AppError)
	FindCoverageSlots(ctx context.Context, ownerID string, contactIDs []string) (*dto.FindSlotsResponse, *errors.AppError)
	PreviewSlots(ctx context.Context, ownerID string, contactIDs []string) (*dto.FindSlotsResponse, *errors.AppError)
	SetAvailability(ctx context.Context, ownerID, contactID string, req *dto.SetAvailabilityRequest) *errors.AppError
}

func NewAvailabilityService(
	repo repository.AvailabilityRepositoryInterface,
	strategy SlotStrategy,
	contacts ContactResolver,
	previewFallback bool,
) AvailabilityServiceInterface {
	return &AvailabilityService{
		repo:            repo,
		strategy:        strategy,
		contacts:        contacts,
		previewFallback: previewFallback,
	}
}

func (s *AvailabilityService) compute(ctx context.Context, ownerID string, contactIDs []string, coverage Coverage) (*dto.FindSlotsResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	slots, err := s.strategy.ComputeSlots(ctx, ownerID, contactIDs, coverage)
	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.NewAppError(errors.ErrStoreRead, "availability store unavailable", err)
	}

	return &dto.FindSlotsResponse{
		Representation: s.strategy.Name(),
		Coverage:       coverage.String(),
		Slots:          slots,
	}, nil
}

// FindCommonSlots returns windows when every participant is free.
func (s *AvailabilityService) FindCommonSlots(ctx context.Context, ownerID string, contactIDs []string) (*dto.FindSlotsResponse, *errors.AppError) {
	return s.compute(ctx, ownerID, contactIDs, CoverageUnanimous)
}

// FindCoverageSlots returns windows when at least one participant is free,
// each labelled with who can make it.
func (s *AvailabilityService) FindCoverageSlots(ctx context.Context, ownerID string, contactIDs []string) (*dto.FindSlotsResponse, *errors.AppError) {
	return s.compute(ctx, ownerID, contactIDs, CoveragePartial)
}

// PreviewSlots is FindCoverageSlots for read-only display. If the store is
// unreachable and fallback is enabled it serves sample slots instead.
func (s *AvailabilityService) PreviewSlots(ctx context.Context, ownerID string, contactIDs []string) (*dto.FindSlotsResponse, *errors.AppError) {
	resp, appErr := s.compute(ctx, ownerID, contactIDs, CoveragePartial)
	if appErr == nil || appErr.Code != errors.ErrStoreRead || !s.previewFallback {
		return resp, appErr
	}

	logger.Warn("AvailabilityService:PreviewSlots:SampleFallback",
		"owner_id", ownerID,
		"cause", appErr.Error(),
	)
	return &dto.FindSlotsResponse{
		Representation: s.strategy.Name(),
		Coverage:       CoveragePartial.String(),
		Sample:         true,
		Slots:          SampleSlots(uniqueIDs(contactIDs)),
	}, nil
}

// SetAvailability replaces the stored windows of one contact. Only the
// representations present in req are touched.
func (s *AvailabilityService) SetAvailability(ctx context.Context, ownerID, contactID string, req *dto.SetAvailabilityRequest) *errors.AppError {
	owned, appErr := s.contacts.ResolveContacts(ctx, ownerID, []string{contactID})
	if appErr != nil {
		return appErr
	}
	if len(owned) == 0 {
		return errors.NewAppError(errors.ErrNotFound, "Contact not found", nil)
	}

	weekly, appErr := parseWeekly(contactID, req.Weekly)
	if appErr != nil {
		return appErr
	}
	dated, appErr := parseDated(contactID, req.Dated)
	if appErr != nil {
		return appErr
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.Weekly != nil {
		if err := s.repo.ReplaceWeekly(ctx, contactID, weekly); err != nil {
			return errors.NewAppError(errors.ErrUpdateFailed, "Failed to save weekly availability", err)
		}
	}
	if req.Dated != nil {
		if err := s.repo.ReplaceDated(ctx, contactID, dated); err != nil {
			return errors.NewAppError(errors.ErrUpdateFailed, "Failed to save dated availability", err)
		}
	}
	return nil
}

func parseRange(start, end string) (entity.ClockTime, entity.ClockTime, *errors.AppError) {
	s, err := entity.ParseClock(start)
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrInvalidInput, "Invalid start_time", err)
	}
	e, err := entity.ParseClock(end)
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrInvalidInput, "Invalid end_time", err)
	}
	if s >= e {
		return 0, 0, errors.NewAppError(errors.ErrInvalidInput, "start_time must be before end_time", nil)
	}
	return s, e, nil
}

func parseWeekly(contactID string, in []dto.WeeklyWindowInput) ([]entity.WeeklyWindow, *errors.AppError) {
	out := make([]entity.WeeklyWindow, 0, len(in))
	for _, w := range in {
		day, ok := entity.ParseWeekday(w.DayOfWeek)
		if !ok {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid day_of_week", nil)
		}
		start, end, appErr := parseRange(w.StartTime, w.EndTime)
		if appErr != nil {
			return nil, appErr
		}
		out = append(out, entity.WeeklyWindow{ContactID: contactID, DayOfWeek: day, StartTime: start, EndTime: end})
	}
	return out, nil
}

func parseDated(contactID string, in []dto.DatedWindowInput) ([]entity.DatedWindow, *errors.AppError) {
	out := make([]entity.DatedWindow, 0, len(in))
	for _, w := range in {
		if _, err := time.Parse(entity.DateLayout, w.Date); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date", err)
		}
		start, end, appErr := parseRange(w.StartTime, w.EndTime)
		if appErr != nil {
			return nil, appErr
		}
		out = append(out, entity.DatedWindow{ContactID: contactID, Date: w.Date, StartTime: start, EndTime: end})
	}
	return out, nil
}
