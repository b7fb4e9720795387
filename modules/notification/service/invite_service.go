package service

import (
	"context"

	"meetup-planner/core/constants"
	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	"meetup-planner/core/queue"
	contactEntity "meetup-planner/modules/contact/entity"
	meetupDto "meetup-planner/modules/meetup/dto"
	messageDto "meetup-planner/modules/message/dto"
	messageService "meetup-planner/modules/message/service"
	"meetup-planner/modules/notification/dto"
	venueEntity "meetup-planner/modules/venue/entity"
)

type MeetupReader interface {
	GetMeetup(ctx context.Context, ownerID, id string) (*meetupDto.MeetupResponse, *errors.AppError)
}

type ContactResolver interface {
	ResolveContacts(ctx context.Context, ownerID string, ids []string) ([]contactEntity.Contact, *errors.AppError)
}

type VenueLookup interface {
	GetVenue(ctx context.Context, id string) (*venueEntity.Venue, *errors.AppError)
}

type InviteBuilder interface {
	BuildInvites(when messageService.When, venue venueEntity.Venue, participants []contactEntity.Contact) ([]messageDto.InvitePreview, *errors.AppError)
}

type InviteServiceInterface interface {
	Dispatch(ctx context.Context, ownerID, meetupID string) (*dto.DispatchResponse, *errors.AppError)
}

type InviteService struct {
	meetups  MeetupReader
	contacts ContactResolver
	venues   VenueLookup
	messages InviteBuilder
	queue    queue.Enqueuer
}

func NewInviteService(meetups MeetupReader, contacts ContactResolver, venues VenueLookup, messages InviteBuilder, q queue.Enqueuer) InviteServiceInterface {
	return &InviteService{meetups: meetups, contacts: contacts, venues: venues, messages: messages, queue: q}
}

// Dispatch renders one message and deep link per participant of a confirmed
// meetup and queues the sent flag for every link not yet marked. Delivery
// itself happens when the owner opens the link.
func (s *InviteService) Dispatch(ctx context.Context, ownerID, meetupID string) (*dto.DispatchResponse, *errors.AppError) {
	meetup, appErr := s.meetups.GetMeetup(ctx, ownerID, meetupID)
	if appErr != nil {
		return nil, appErr
	}

	endTime := ""
	if meetup.EndTime != nil {
		endTime = *meetup.EndTime
	}
	when, appErr := messageService.ParseWhen(meetup.Date, meetup.Time, endTime)
	if appErr != nil {
		return nil, appErr
	}

	venue := s.venueFor(ctx, meetup)

	ids := make([]string, 0, len(meetup.Participants))
	sent := make(map[string]bool, len(meetup.Participants))
	for _, p := range meetup.Participants {
		ids = append(ids, p.ContactID)
		sent[p.ContactID] = p.MessageSent
	}
	contacts, appErr := s.contacts.ResolveContacts(ctx, ownerID, ids)
	if appErr != nil {
		return nil, appErr
	}

	invites, appErr := s.messages.BuildInvites(when, venue, contacts)
	if appErr != nil {
		return nil, appErr
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	queued := 0
	for _, inv := range invites {
		if sent[inv.ContactID] {
			continue
		}
		task := dto.MarkSentTask{OwnerID: ownerID, MeetupID: meetup.ID.String(), ContactID: inv.ContactID}
		if err := s.queue.Enqueue(ctx, constants.TaskInviteMarkSent, task); err != nil {
			return nil, errors.NewAppError(errors.ErrEnqueueFailed, "Failed to queue invite", err)
		}
		queued++
	}

	logger.Info("InviteService:Dispatch", "meetup_id", meetup.ID.String(), "invites", len(invites), "queued", queued)
	return &dto.DispatchResponse{MeetupID: meetup.ID.String(), Invites: invites, Queued: queued}, nil
}

// venueFor prefers the catalog entry behind VenueRef and falls back to the
// name and address stored on the meetup.
func (s *InviteService) venueFor(ctx context.Context, meetup *meetupDto.MeetupResponse) venueEntity.Venue {
	fallback := venueEntity.Venue{Name: meetup.VenueName, Address: meetup.VenueAddress}
	if meetup.VenueRef == nil || s.venues == nil {
		return fallback
	}

	v, appErr := s.venues.GetVenue(ctx, *meetup.VenueRef)
	if appErr != nil {
		logger.Warn("InviteService:venueFor", "error", appErr, "venue_ref", *meetup.VenueRef)
		return fallback
	}
	v.Name = meetup.VenueName
	return *v
}
