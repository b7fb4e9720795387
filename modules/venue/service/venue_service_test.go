package service

import (
	"context"
	"fmt"
	"testing"

	"meetup-planner/core/errors"
	contactEntity "meetup-planner/modules/contact/entity"
	"meetup-planner/modules/venue/dto"
	"meetup-planner/modules/venue/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVenueRepo struct {
	venues []entity.Venue
	err    error
}

func (f *fakeVenueRepo) List(ctx context.Context) ([]entity.Venue, error) {
	return f.venues, f.err
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, id string) (*entity.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.venues {
		if v.ID == id {
			v := v
			return &v, nil
		}
	}
	return nil, nil
}

type groupResolver struct{}

func (groupResolver) ResolveContacts(ctx context.Context, ownerID string, ids []string) ([]contactEntity.Contact, *errors.AppError) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []contactEntity.Contact
	for _, c := range group {
		if want[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestRecommendVenuesFromCatalog(t *testing.T) {
	svc := NewVenueService(&fakeVenueRepo{venues: catalog}, nil, groupResolver{}, MaxResults, "")

	resp, appErr := svc.RecommendVenues(context.Background(), "u1", &dto.RecommendVenuesRequest{
		ContactIDs: []string{"c1", "c2", "c3", "c4", "c5", "c6"},
		Location:   "Austin",
	})
	require.Nil(t, appErr)
	assert.Equal(t, SourceCatalog, resp.Source)
	assert.Equal(t, []string{"r1", "r5", "r4", "r2", "r3"}, ids(resp.Venues))
	assert.Contains(t, resp.Restrictions, "Vegan")
}

func TestRecommendVenuesFromRecommender(t *testing.T) {
	gen := &stubGenerator{reply: jsonVenues(7)}
	svc := NewVenueService(&fakeVenueRepo{err: fmt.Errorf("unused")}, NewGenerativeRecommender(gen), groupResolver{}, MaxResults, "Austin")

	resp, appErr := svc.RecommendVenues(context.Background(), "u1", &dto.RecommendVenuesRequest{ContactIDs: []string{"c1", "c3"}})
	require.Nil(t, appErr)
	assert.Equal(t, SourceRecommendation, resp.Source)
	require.Len(t, resp.Venues, 5)
	assert.Equal(t, "v-0", resp.Venues[0].ID)
	// c1 and c3 both list Thai.
	assert.Equal(t, 2, resp.Venues[0].MatchScore)
	assert.Contains(t, gen.prompt, "Gluten-Free")
}

func TestRecommendVenuesWithoutLocationUsesCatalog(t *testing.T) {
	gen := &stubGenerator{reply: jsonVenues(1)}
	svc := NewVenueService(&fakeVenueRepo{venues: catalog}, NewGenerativeRecommender(gen), groupResolver{}, MaxResults, "")

	resp, appErr := svc.RecommendVenues(context.Background(), "u1", &dto.RecommendVenuesRequest{ContactIDs: []string{"c1"}})
	require.Nil(t, appErr)
	assert.Equal(t, SourceCatalog, resp.Source)
	assert.Zero(t, gen.calls)
}

func TestRecommendVenuesDistinguishesFailures(t *testing.T) {
	parse := NewVenueService(&fakeVenueRepo{}, NewGenerativeRecommender(&stubGenerator{reply: "nope"}), groupResolver{}, MaxResults, "Austin")
	_, appErr := parse.RecommendVenues(context.Background(), "u1", &dto.RecommendVenuesRequest{})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrVenueParse, appErr.Code)

	service := NewVenueService(&fakeVenueRepo{}, NewGenerativeRecommender(&stubGenerator{err: fmt.Errorf("503")}), groupResolver{}, MaxResults, "Austin")
	_, appErr = service.RecommendVenues(context.Background(), "u1", &dto.RecommendVenuesRequest{})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrVenueService, appErr.Code)

	store := NewVenueService(&fakeVenueRepo{err: fmt.Errorf("db down")}, nil, groupResolver{}, MaxResults, "")
	_, appErr = store.RecommendVenues(context.Background(), "u1", &dto.RecommendVenuesRequest{})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrStoreRead, appErr.Code)
}

func TestGetVenueStoreError(t *testing.T) {
	svc := NewVenueService(&fakeVenueRepo{err: fmt.Errorf("db down")}, nil, groupResolver{}, MaxResults, "")

	_, appErr := svc.GetVenue(context.Background(), "r3")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrStoreRead, appErr.Code)
}

func TestGetVenue(t *testing.T) {
	svc := NewVenueService(&fakeVenueRepo{venues: catalog}, nil, groupResolver{}, MaxResults, "")

	v, appErr := svc.GetVenue(context.Background(), "r3")
	require.Nil(t, appErr)
	assert.Equal(t, "Retro Curry Palace", v.Name)

	_, appErr = svc.GetVenue(context.Background(), "r42")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
