package entity

import "github.com/lib/pq"

type Venue struct {
	ID          string         `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Cuisine     string         `db:"cuisine" json:"cuisine,omitempty"`
	Rating      float64        `db:"rating" json:"rating"`
	PriceRange  string         `db:"price_range" json:"price_range,omitempty"`
	Tags        pq.StringArray `db:"tags" json:"tags,omitempty"`
	Address     string         `db:"address" json:"address,omitempty"`
	ReviewCount int            `db:"review_count" json:"review_count,omitempty"`
	URL         string         `db:"url" json:"url,omitempty"`
}

// ScoredVenue is a venue ranked against a group's preferences.
type ScoredVenue struct {
	Venue
	MatchScore int `json:"match_score"`
}
