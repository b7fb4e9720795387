package service

import (
	"context"
	"strings"
	"time"

	"meetup-planner/core/constants"
	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	availabilityEntity "meetup-planner/modules/availability/entity"
	contactEntity "meetup-planner/modules/contact/entity"
	"meetup-planner/modules/meetup/dto"
	"meetup-planner/modules/meetup/entity"
	"meetup-planner/modules/meetup/repository"

	"github.com/google/uuid"
)

type ContactResolver interface {
	ResolveContacts(ctx context.Context, ownerID string, ids []string) ([]contactEntity.Contact, *errors.AppError)
}

type MeetupService struct {
	repo     repository.MeetupRepositoryInterface
	contacts ContactResolver
}

type MeetupServiceInterface interface {
	// Confirm always creates a new meetup; repeated calls are not merged.
	Confirm(ctx context.Context, ownerID string, req *dto.ConfirmMeetupRequest) (*dto.MeetupResponse, *errors.AppError)
	GetMeetup(ctx context.Context, ownerID, id string) (*dto.MeetupResponse, *errors.AppError)
	ListMeetups(ctx context.Context, ownerID string) ([]entity.Meetup, *errors.AppError)
	MarkMessageSent(ctx context.Context, ownerID, meetupID, contactID string) (*dto.MarkSentResponse, *errors.AppError)
}

func NewMeetupService(repo repository.MeetupRepositoryInterface, contacts ContactResolver) MeetupServiceInterface {
	return &MeetupService{repo: repo, contacts: contacts}
}

func (s *MeetupService) Confirm(ctx context.Context, ownerID string, req *dto.ConfirmMeetupRequest) (*dto.MeetupResponse, *errors.AppError) {
	meetup, appErr := validateConfirm(ownerID, req)
	if appErr != nil {
		return nil, appErr
	}

	participants, appErr := s.contacts.ResolveContacts(ctx, ownerID, req.ContactIDs)
	if appErr != nil {
		return nil, appErr
	}
	if len(participants) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "contact_ids matched no contacts", nil)
	}
	contactIDs := make([]string, 0, len(participants))
	for _, p := range participants {
		contactIDs = append(contactIDs, p.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	created, links, err := s.repo.CreateWithParticipants(ctx, meetup, contactIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to confirm meetup", err)
	}

	logger.Info("MeetupService:Confirm", "meetup_id", created.ID.String(), "owner_id", ownerID, "participants", len(links))
	return &dto.MeetupResponse{Meetup: *created, Participants: links}, nil
}

func validateConfirm(ownerID string, req *dto.ConfirmMeetupRequest) (*entity.Meetup, *errors.AppError) {
	if ownerID == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Owner is required", nil)
	}
	name := strings.TrimSpace(req.VenueName)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "venue_name is required", nil)
	}
	if _, err := time.Parse(availabilityEntity.DateLayout, req.Date); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date must be YYYY-MM-DD", err)
	}
	start, err := availabilityEntity.ParseClock(req.Time)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "time must be HH:MM", err)
	}
	if len(req.ContactIDs) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "contact_ids is required", nil)
	}

	meetup := &entity.Meetup{
		UserID:       ownerID,
		VenueName:    name,
		VenueAddress: strings.TrimSpace(req.VenueAddress),
		Date:         req.Date,
		Time:         start.String(),
		Status:       entity.MeetupStatusConfirmed,
	}
	if req.VenueRef != nil && *req.VenueRef != "" {
		meetup.VenueRef = req.VenueRef
	}
	if strings.TrimSpace(req.EndTime) != "" {
		end, err := availabilityEntity.ParseClock(req.EndTime)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "end_time must be HH:MM", err)
		}
		if end <= start {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "end_time must be after time", nil)
		}
		endStr := end.String()
		meetup.EndTime = &endStr
	}
	return meetup, nil
}

func (s *MeetupService) GetMeetup(ctx context.Context, ownerID, id string) (*dto.MeetupResponse, *errors.AppError) {
	meetupID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid meetup id", err)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	meetup, err := s.repo.GetByID(ctx, ownerID, meetupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreRead, "Failed to get meetup", err)
	}
	if meetup == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meetup not found", nil)
	}

	links, err := s.repo.GetParticipants(ctx, meetupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreRead, "Failed to get participants", err)
	}
	return &dto.MeetupResponse{Meetup: *meetup, Participants: links}, nil
}

func (s *MeetupService) ListMeetups(ctx context.Context, ownerID string) ([]entity.Meetup, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	meetups, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreRead, "Failed to list meetups", err)
	}
	return meetups, nil
}

// MarkMessageSent sets the sent flag for one participant of an owned meetup.
// Marking twice is not an error; the second call reports Changed=false.
func (s *MeetupService) MarkMessageSent(ctx context.Context, ownerID, meetupID, contactID string) (*dto.MarkSentResponse, *errors.AppError) {
	meetup, appErr := s.GetMeetup(ctx, ownerID, meetupID)
	if appErr != nil {
		return nil, appErr
	}

	found := false
	for _, p := range meetup.Participants {
		if p.ContactID == contactID {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NewAppError(errors.ErrNotFound, "Contact is not part of this meetup", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	changed, err := s.repo.MarkMessageSent(ctx, meetup.ID, contactID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to mark message sent", err)
	}
	return &dto.MarkSentResponse{MeetupID: meetup.ID.String(), ContactID: contactID, Changed: changed}, nil
}
