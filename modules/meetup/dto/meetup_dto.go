package dto

import "meetup-planner/modules/meetup/entity"

type ConfirmMeetupRequest struct {
	VenueName    string   `json:"venue_name"`
	VenueRef     *string  `json:"venue_ref"`
	VenueAddress string   `json:"venue_address"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	EndTime      string   `json:"end_time"`
	ContactIDs   []string `json:"contact_ids"`
}

type MeetupResponse struct {
	entity.Meetup
	Participants []entity.MeetupParticipant `json:"participants"`
}

type MarkSentResponse struct {
	MeetupID  string `json:"meetup_id"`
	ContactID string `json:"contact_id"`
	// Changed is false when the flag was already set.
	Changed bool `json:"changed"`
}
