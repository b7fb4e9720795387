package dto

import "meetup-planner/modules/venue/entity"

type RecommendVenuesRequest struct {
	ContactIDs []string `json:"contact_ids"`
	Location   string   `json:"location"`
}

type RecommendVenuesResponse struct {
	Source       string               `json:"source"`
	Cuisines     []string             `json:"cuisines"`
	Restrictions []string             `json:"restrictions"`
	Venues       []entity.ScoredVenue `json:"venues"`
}
