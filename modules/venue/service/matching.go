package service

import (
	"sort"

	contactEntity "meetup-planner/modules/contact/entity"
	"meetup-planner/modules/venue/entity"
)

// MaxResults caps every venue list regardless of source.
const MaxResults = 5

// PreferenceCounts is the multiset of every participant's cuisine tags.
func PreferenceCounts(participants []contactEntity.Contact) map[string]int {
	counts := make(map[string]int)
	for _, p := range participants {
		for _, c := range p.CuisinePreferences {
			counts[c]++
		}
	}
	return counts
}

// ScoreVenues scores each venue by how many participant preference tags
// equal its cuisine, then orders by score and rating, both descending.
// Dietary restrictions do not affect the score.
func ScoreVenues(participants []contactEntity.Contact, venues []entity.Venue, limit int) []entity.ScoredVenue {
	counts := PreferenceCounts(participants)

	scored := make([]entity.ScoredVenue, 0, len(venues))
	for _, v := range venues {
		scored = append(scored, entity.ScoredVenue{Venue: v, MatchScore: counts[v.Cuisine]})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].MatchScore != scored[j].MatchScore {
			return scored[i].MatchScore > scored[j].MatchScore
		}
		return scored[i].Rating > scored[j].Rating
	})

	return truncate(scored, limit)
}

func truncate[T any](items []T, limit int) []T {
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// Aggregate returns distinct cuisine and restriction tags across
// participants, in first-seen order.
func Aggregate(participants []contactEntity.Contact) (cuisines, restrictions []string) {
	seenC, seenR := map[string]bool{}, map[string]bool{}
	cuisines, restrictions = []string{}, []string{}
	for _, p := range participants {
		for _, c := range p.CuisinePreferences {
			if !seenC[c] {
				seenC[c] = true
				cuisines = append(cuisines, c)
			}
		}
		for _, r := range p.DietaryRestrictions {
			if !seenR[r] {
				seenR[r] = true
				restrictions = append(restrictions, r)
			}
		}
	}
	return cuisines, restrictions
}
