package dto

import "meetup-planner/modules/availability/entity"

type FindSlotsRequest struct {
	ContactIDs []string `json:"contact_ids"`
}

type FindSlotsResponse struct {
	Representation string            `json:"representation"`
	Coverage       string            `json:"coverage"`
	Sample         bool              `json:"sample,omitempty"`
	Slots          []entity.TimeSlot `json:"slots"`
}

type WeeklyWindowInput struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DatedWindowInput struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type SetAvailabilityRequest struct {
	Weekly []WeeklyWindowInput `json:"weekly"`
	Dated  []DatedWindowInput  `json:"dated"`
}
