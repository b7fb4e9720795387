package service

import (
	"strings"
	"testing"

	availabilityEntity "meetup-planner/modules/availability/entity"
	contactEntity "meetup-planner/modules/contact/entity"
	venueEntity "meetup-planner/modules/venue/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archetype(a contactEntity.Archetype) *contactEntity.Archetype { return &a }

func newComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer("en")
	require.NoError(t, err)
	return c
}

func saturdayEvening() When {
	end := availabilityEntity.MustParseClock("20:00")
	return When{Date: "2026-02-21", Start: availabilityEntity.MustParseClock("18:00"), End: &end}
}

var ramen = venueEntity.Venue{ID: "r1", Name: "Pixel Ramen House", Cuisine: "Japanese"}

func TestFormatClock(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"00:30": "12:30 AM",
		"09:05": "9:05 AM",
		"12:00": "12:00 PM",
		"12:45": "12:45 PM",
		"18:00": "6:00 PM",
		"23:59": "11:59 PM",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatClock(availabilityEntity.MustParseClock(in)), in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Saturday, February 21", FormatDate("2026-02-21"))
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
}

func TestCompose_NeutralWithCuisine(t *testing.T) {
	c := newComposer(t)
	msg, err := c.Compose(saturdayEvening(), ramen, contactEntity.Contact{ID: "c1", Name: "Jamie Lee"})
	require.NoError(t, err)
	assert.Equal(t,
		"Hey Jamie! We're meeting up at Pixel Ramen House on Saturday, February 21 from 6:00 PM to 8:00 PM. It's a Japanese place, hope that works for you! See you there!",
		msg)
}

func TestCompose_NeutralWithoutCuisine(t *testing.T) {
	c := newComposer(t)
	msg, err := c.Compose(saturdayEvening(), venueEntity.Venue{Name: "The Spot"}, contactEntity.Contact{Name: "Jamie"})
	require.NoError(t, err)
	assert.NotContains(t, msg, "place, hope")
	assert.True(t, strings.HasSuffix(msg, "8:00 PM. See you there!"), msg)
}

func TestCompose_UnknownArchetypeUsesNeutral(t *testing.T) {
	c := newComposer(t)
	neutral, err := c.Compose(saturdayEvening(), ramen, contactEntity.Contact{Name: "Jamie"})
	require.NoError(t, err)
	odd, err := c.Compose(saturdayEvening(), ramen, contactEntity.Contact{Name: "Jamie", Archetype: archetype("night_owl")})
	require.NoError(t, err)
	assert.Equal(t, neutral, odd)
}

func TestCompose_RestrictionClause(t *testing.T) {
	c := newComposer(t)
	msg, err := c.Compose(saturdayEvening(), ramen, contactEntity.Contact{
		Name:                "Sam",
		Archetype:           archetype(contactEntity.ArchetypeCaptain),
		DietaryRestrictions: []string{"Vegan", "Gluten-Free"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(msg, " I've flagged your dietary needs (Vegan, Gluten-Free) with the venue."), msg)
}

func TestCompose_WithoutEndTime(t *testing.T) {
	c := newComposer(t)
	when := When{Date: "2026-02-21", Start: availabilityEntity.MustParseClock("18:00")}
	msg, err := c.Compose(when, ramen, contactEntity.Contact{Name: "Jamie"})
	require.NoError(t, err)
	assert.Contains(t, msg, "on Saturday, February 21 at 6:00 PM.")
}

func TestCompose_ArchetypeOnlyChangesTemplate(t *testing.T) {
	c := newComposer(t)
	all := []contactEntity.Archetype{
		contactEntity.ArchetypeBee,
		contactEntity.ArchetypeCaptain,
		contactEntity.ArchetypeGoldenRetriever,
		contactEntity.ArchetypeFruitFly,
	}

	seen := map[string]bool{}
	for _, a := range all {
		msg, err := c.Compose(saturdayEvening(), ramen, contactEntity.Contact{Name: "Riley Park", Archetype: archetype(a)})
		require.NoError(t, err)
		for _, fact := range []string{"Riley", "Pixel Ramen House", "Saturday, February 21", "6:00 PM", "8:00 PM"} {
			assert.Contains(t, msg, fact, string(a))
		}
		assert.NotContains(t, msg, "Park", string(a))
		seen[msg] = true
	}
	assert.Len(t, seen, len(all))

	// Same archetype, different people: only the name moves.
	a, err := c.Compose(saturdayEvening(), ramen, contactEntity.Contact{Name: "Riley", Archetype: archetype(contactEntity.ArchetypeBee)})
	require.NoError(t, err)
	b, err := c.Compose(saturdayEvening(), ramen, contactEntity.Contact{Name: "Morgan", Archetype: archetype(contactEntity.ArchetypeBee)})
	require.NoError(t, err)
	assert.Equal(t, a, strings.Replace(b, "Morgan", "Riley", 1))
}

func TestDeepLink(t *testing.T) {
	assert.Equal(t,
		"https://wa.me/15550102000?text=Hi%20there%20%26%20bye%21",
		DeepLink("+1 (555) 010-2000", "Hi there & bye!"))
	assert.Equal(t, "https://wa.me/?text=", DeepLink("", ""))
}
