package service

import (
	"context"
	"strings"
	"time"

	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	availabilityEntity "meetup-planner/modules/availability/entity"
	contactEntity "meetup-planner/modules/contact/entity"
	"meetup-planner/modules/message/dto"
	venueEntity "meetup-planner/modules/venue/entity"
)

type ContactResolver interface {
	ResolveContacts(ctx context.Context, ownerID string, ids []string) ([]contactEntity.Contact, *errors.AppError)
}

type VenueLookup interface {
	GetVenue(ctx context.Context, id string) (*venueEntity.Venue, *errors.AppError)
}

type MessageServiceInterface interface {
	PreviewInvites(ctx context.Context, ownerID string, req *dto.PreviewInvitesRequest) ([]dto.InvitePreview, *errors.AppError)
	// BuildInvites composes one preview per participant, in order.
	BuildInvites(when When, venue venueEntity.Venue, participants []contactEntity.Contact) ([]dto.InvitePreview, *errors.AppError)
}

type MessageService struct {
	composer *Composer
	contacts ContactResolver
	venues   VenueLookup
}

func NewMessageService(composer *Composer, contacts ContactResolver, venues VenueLookup) MessageServiceInterface {
	return &MessageService{composer: composer, contacts: contacts, venues: venues}
}

func (s *MessageService) PreviewInvites(ctx context.Context, ownerID string, req *dto.PreviewInvitesRequest) ([]dto.InvitePreview, *errors.AppError) {
	when, appErr := ParseWhen(req.Date, req.StartTime, req.EndTime)
	if appErr != nil {
		return nil, appErr
	}

	venue := venueEntity.Venue{Name: strings.TrimSpace(req.VenueName), Cuisine: req.VenueCuisine}
	if req.VenueID != "" {
		found, appErr := s.venues.GetVenue(ctx, req.VenueID)
		if appErr != nil {
			return nil, appErr
		}
		venue = *found
	}
	if venue.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "venue_id or venue_name is required", nil)
	}

	participants, appErr := s.contacts.ResolveContacts(ctx, ownerID, req.ContactIDs)
	if appErr != nil {
		return nil, appErr
	}
	return s.BuildInvites(when, venue, participants)
}

func (s *MessageService) BuildInvites(when When, venue venueEntity.Venue, participants []contactEntity.Contact) ([]dto.InvitePreview, *errors.AppError) {
	out := make([]dto.InvitePreview, 0, len(participants))
	for _, p := range participants {
		text, err := s.composer.Compose(when, venue, p)
		if err != nil {
			logger.Error("MessageService:BuildInvites", "error", err, "contact_id", p.ID)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to compose invitation", err)
		}
		out = append(out, dto.InvitePreview{
			ContactID:   p.ID,
			ContactName: p.Name,
			Phone:       p.PhoneNumber,
			Message:     text,
			Link:        DeepLink(p.PhoneNumber, text),
		})
	}
	return out, nil
}

// ParseWhen validates a date and clock pair; end may be empty.
func ParseWhen(date, start, end string) (When, *errors.AppError) {
	if _, err := time.Parse(availabilityEntity.DateLayout, date); err != nil {
		return When{}, errors.NewAppError(errors.ErrInvalidInput, "date must be YYYY-MM-DD", err)
	}
	s, err := availabilityEntity.ParseClock(start)
	if err != nil {
		return When{}, errors.NewAppError(errors.ErrInvalidInput, "start_time must be HH:MM", err)
	}
	when := When{Date: date, Start: s}
	if strings.TrimSpace(end) != "" {
		e, err := availabilityEntity.ParseClock(end)
		if err != nil {
			return When{}, errors.NewAppError(errors.ErrInvalidInput, "end_time must be HH:MM", err)
		}
		if e <= s {
			return When{}, errors.NewAppError(errors.ErrInvalidInput, "end_time must be after start_time", nil)
		}
		when.End = &e
	}
	return when, nil
}
