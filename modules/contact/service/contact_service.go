package service

import (
	"context"
	"strings"

	"meetup-planner/core/constants"
	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	"meetup-planner/modules/contact/dto"
	"meetup-planner/modules/contact/entity"
	"meetup-planner/modules/contact/repository"
)

type ContactService struct {
	repo repository.ContactRepositoryInterface
}

type ContactServiceInterface interface {
	ListContacts(ctx context.Context, ownerID string) ([]dto.ContactResponse, *errors.AppError)
	ResolveContacts(ctx context.Context, ownerID string, ids []string) ([]entity.Contact, *errors.AppError)
	CreateContact(ctx context.Context, ownerID string, req *dto.CreateContactRequest) (*dto.ContactResponse, *errors.AppError)
}

func NewContactService(repo repository.ContactRepositoryInterface) ContactServiceInterface {
	return &ContactService{repo: repo}
}

func (s *ContactService) ListContacts(ctx context.Context, ownerID string) ([]dto.ContactResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	contacts, err := s.repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreRead, "Failed to get contacts", err)
	}
	return dto.ToContactResponses(contacts), nil
}

// ResolveContacts loads the owner's contacts for ids, preserving request order
// and dropping duplicates. Ids the owner does not have are skipped.
func (s *ContactService) ResolveContacts(ctx context.Context, ownerID string, ids []string) ([]entity.Contact, *errors.AppError) {
	if len(ids) == 0 {
		return []entity.Contact{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	rows, err := s.repo.GetByIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreRead, "Failed to get contacts", err)
	}

	byID := make(map[string]entity.Contact, len(rows))
	for _, c := range rows {
		byID[c.ID] = c
	}

	out := make([]entity.Contact, 0, len(rows))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		c, ok := byID[id]
		if !ok {
			logger.Warn("ContactService:ResolveContacts:Unknown", "owner_id", ownerID, "contact_id", id)
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *ContactService) CreateContact(ctx context.Context, ownerID string, req *dto.CreateContactRequest) (*dto.ContactResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name is required", nil)
	}

	contact := &entity.Contact{
		UserID:              ownerID,
		Name:                name,
		PhoneNumber:         strings.TrimSpace(req.PhoneNumber),
		CuisinePreferences:  req.CuisinePreferences,
		DietaryRestrictions: req.DietaryRestrictions,
	}
	if contact.CuisinePreferences == nil {
		contact.CuisinePreferences = []string{}
	}
	if contact.DietaryRestrictions == nil {
		contact.DietaryRestrictions = []string{}
	}
	if req.Archetype != "" {
		a := entity.Archetype(req.Archetype)
		if !a.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown archetype", nil)
		}
		contact.Archetype = &a
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	created, err := s.repo.Create(ctx, contact)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create contact", err)
	}
	return dto.ToContactResponse(created), nil
}
