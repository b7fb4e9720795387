package service

import (
	"context"
	stderrors "errors"
	"strings"

	"meetup-planner/core/constants"
	"meetup-planner/core/errors"
	contactEntity "meetup-planner/modules/contact/entity"
	"meetup-planner/modules/venue/dto"
	"meetup-planner/modules/venue/entity"
	"meetup-planner/modules/venue/repository"
)

const (
	SourceCatalog        = "catalog"
	SourceRecommendation = "recommendation"
)

type ContactResolver interface {
	ResolveContacts(ctx context.Context, ownerID string, ids []string) ([]contactEntity.Contact, *errors.AppError)
}

type VenueService struct {
	repo            repository.VenueRepositoryInterface
	recommender     Recommender
	contacts        ContactResolver
	maxResults      int
	defaultLocation string
}

type VenueServiceInterface interface {
	RecommendVenues(ctx context.Context, ownerID string, req *dto.RecommendVenuesRequest) (*dto.RecommendVenuesResponse, *errors.AppError)
	GetVenue(ctx context.Context, id string) (*entity.Venue, *errors.AppError)
}

// NewVenueService builds the service. recommender may be nil, in which case
// only the static catalog is used.
func NewVenueService(repo repository.VenueRepositoryInterface, recommender Recommender, contacts ContactResolver, maxResults int, defaultLocation string) VenueServiceInterface {
	return &VenueService{
		repo:            repo,
		recommender:     recommender,
		contacts:        contacts,
		maxResults:      maxResults,
		defaultLocation: defaultLocation,
	}
}

func (s *VenueService) RecommendVenues(ctx context.Context, ownerID string, req *dto.RecommendVenuesRequest) (*dto.RecommendVenuesResponse, *errors.AppError) {
	participants, appErr := s.contacts.ResolveContacts(ctx, ownerID, req.ContactIDs)
	if appErr != nil {
		return nil, appErr
	}
	cuisines, restrictions := Aggregate(participants)

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = s.defaultLocation
	}

	resp := &dto.RecommendVenuesResponse{
		Cuisines:     cuisines,
		Restrictions: restrictions,
	}

	if s.recommender != nil && location != "" {
		venues, err := s.recommender.Recommend(ctx, RecommendRequest{
			Location:     location,
			Cuisines:     cuisines,
			Restrictions: restrictions,
		})
		if err != nil {
			var ae *errors.AppError
			if stderrors.As(err, &ae) {
				return nil, ae
			}
			return nil, errors.NewAppError(errors.ErrVenueService, "venue recommendation service failed", err)
		}

		counts := PreferenceCounts(participants)
		scored := make([]entity.ScoredVenue, 0, len(venues))
		for _, v := range truncate(venues, s.maxResults) {
			scored = append(scored, entity.ScoredVenue{Venue: v, MatchScore: counts[v.Cuisine]})
		}
		resp.Source = SourceRecommendation
		resp.Venues = scored
		return resp, nil
	}

	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreRead, "Failed to load venues", err)
	}
	resp.Source = SourceCatalog
	resp.Venues = ScoreVenues(participants, catalog, s.maxResults)
	return resp, nil
}

func (s *VenueService) GetVenue(ctx context.Context, id string) (*entity.Venue, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreRead, "Failed to load venue", err)
	}
	if venue == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Venue not found", nil)
	}
	return venue, nil
}
