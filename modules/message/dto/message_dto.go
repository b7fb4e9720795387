package dto

type PreviewInvitesRequest struct {
	ContactIDs []string `json:"contact_ids"`
	VenueID    string   `json:"venue_id"`
	// Used when VenueID is empty.
	VenueName    string `json:"venue_name"`
	VenueCuisine string `json:"venue_cuisine"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

type InvitePreview struct {
	ContactID   string `json:"contact_id"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	Link        string `json:"link"`
}
