package entity

import (
	"time"

	"github.com/google/uuid"
)

type MeetupStatus string

// Meetups are created confirmed and never move to another state.
const MeetupStatusConfirmed MeetupStatus = "confirmed"

type Meetup struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	UserID       string       `db:"user_id" json:"user_id"`
	VenueName    string       `db:"venue_name" json:"venue_name"`
	VenueRef     *string      `db:"venue_ref" json:"venue_ref,omitempty"`
	VenueAddress string       `db:"venue_address" json:"venue_address"`
	Date         string       `db:"date" json:"date"`
	Time         string       `db:"time" json:"time"`
	EndTime      *string      `db:"end_time" json:"end_time,omitempty"`
	Status       MeetupStatus `db:"status" json:"status"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// MeetupParticipant links a meetup to a contact. MessageSent only ever goes
// from false to true.
type MeetupParticipant struct {
	ID          uuid.UUID `db:"id" json:"id"`
	MeetupID    uuid.UUID `db:"meetup_id" json:"meetup_id"`
	ContactID   string    `db:"contact_id" json:"contact_id"`
	MessageSent bool      `db:"message_sent" json:"message_sent"`
}
