package service

import (
	"fmt"
	"testing"

	contactEntity "meetup-planner/modules/contact/entity"
	"meetup-planner/modules/venue/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func person(id string, prefs []string, restrictions ...string) contactEntity.Contact {
	return contactEntity.Contact{ID: id, CuisinePreferences: prefs, DietaryRestrictions: restrictions}
}

var group = []contactEntity.Contact{
	person("c1", []string{"Korean", "Japanese", "Thai"}),
	person("c2", []string{"Italian", "Mexican", "Japanese"}, "Vegetarian"),
	person("c3", []string{"Mexican", "Thai", "Indian"}, "Gluten-Free"),
	person("c4", []string{"Japanese", "Korean", "Italian"}),
	person("c5", []string{"Indian", "Thai", "Italian"}, "Vegan"),
	person("c6", []string{"Korean", "Mexican", "Japanese"}),
}

var catalog = []entity.Venue{
	{ID: "r1", Name: "Pixel Ramen House", Cuisine: "Japanese", Rating: 4.5},
	{ID: "r2", Name: "8-Bit Taqueria", Cuisine: "Mexican", Rating: 4.2},
	{ID: "r3", Name: "Retro Curry Palace", Cuisine: "Indian", Rating: 4.7},
	{ID: "r4", Name: "Arcade Trattoria", Cuisine: "Italian", Rating: 4.3},
	{ID: "r5", Name: "NES Noodle Bar", Cuisine: "Thai", Rating: 4.4},
}

func ids(scored []entity.ScoredVenue) []string {
	out := make([]string, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.ID)
	}
	return out
}

func scoreOf(scored []entity.ScoredVenue, id string) int {
	for _, s := range scored {
		if s.ID == id {
			return s.MatchScore
		}
	}
	return -1
}

func TestScoreVenuesRanksByScoreThenRating(t *testing.T) {
	scored := ScoreVenues(group, catalog, MaxResults)

	assert.Equal(t, []string{"r1", "r5", "r4", "r2", "r3"}, ids(scored))
	assert.Equal(t, 4, scored[0].MatchScore)
	assert.Equal(t, 2, scored[4].MatchScore)
}

func TestScoreVenuesNoPreferences(t *testing.T) {
	scored := ScoreVenues(nil, catalog, MaxResults)

	for _, s := range scored {
		assert.Zero(t, s.MatchScore)
	}
	assert.Equal(t, []string{"r3", "r1", "r5", "r4", "r2"}, ids(scored))
}

func TestScoreVenuesIsMonotonic(t *testing.T) {
	before := ScoreVenues(group, catalog, MaxResults)
	after := ScoreVenues(append(append([]contactEntity.Contact{}, group...), person("c7", []string{"Indian"})), catalog, MaxResults)

	assert.Equal(t, scoreOf(before, "r3")+1, scoreOf(after, "r3"))
	for _, id := range []string{"r1", "r2", "r4", "r5"} {
		assert.Equal(t, scoreOf(before, id), scoreOf(after, id), id)
	}
}

func TestScoreVenuesCapsResults(t *testing.T) {
	var many []entity.Venue
	for i := 0; i < 12; i++ {
		many = append(many, entity.Venue{ID: fmt.Sprintf("v%d", i), Cuisine: "Thai", Rating: float64(i) / 3})
	}

	assert.Len(t, ScoreVenues(group, many, 0), MaxResults)
	assert.Len(t, ScoreVenues(group, many, 50), MaxResults)
	assert.Len(t, ScoreVenues(group, many, 3), 3)
}

func TestScoreVenuesIgnoresRestrictions(t *testing.T) {
	plain := []contactEntity.Contact{person("a", []string{"Thai"})}
	restricted := []contactEntity.Contact{person("a", []string{"Thai"}, "Vegan", "Gluten-Free")}

	assert.Equal(t, ScoreVenues(plain, catalog, 5), ScoreVenues(restricted, catalog, 5))
}

func TestAggregate(t *testing.T) {
	cuisines, restrictions := Aggregate(group)

	assert.Equal(t, []string{"Korean", "Japanese", "Thai", "Italian", "Mexican", "Indian"}, cuisines)
	assert.Equal(t, []string{"Vegetarian", "Gluten-Free", "Vegan"}, restrictions)

	cuisines, restrictions = Aggregate(nil)
	require.NotNil(t, cuisines)
	assert.Empty(t, cuisines)
	assert.Empty(t, restrictions)
}
