package dto

import messageDto "meetup-planner/modules/message/dto"

// MarkSentTask is the payload of an invite:mark_sent task.
type MarkSentTask struct {
	OwnerID   string `json:"owner_id"`
	MeetupID  string `json:"meetup_id"`
	ContactID string `json:"contact_id"`
}

type DispatchResponse struct {
	MeetupID string                     `json:"meetup_id"`
	Invites  []messageDto.InvitePreview `json:"invites"`
	// Queued counts participants whose sent flag will be set; links that
	// were already marked are returned but not queued again.
	Queued int `json:"queued"`
}
