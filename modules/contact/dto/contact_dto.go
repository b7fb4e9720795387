package dto

import (
	"meetup-planner/modules/contact/entity"
)

type CreateContactRequest struct {
	Name                string   `json:"name"`
	PhoneNumber         string   `json:"phone_number"`
	Archetype           string   `json:"archetype"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

type ContactResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	PhoneNumber         string   `json:"phone_number"`
	Archetype           string   `json:"archetype,omitempty"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

func ToContactResponse(c *entity.Contact) *ContactResponse {
	return &ContactResponse{
		ID:                  c.ID,
		Name:                c.Name,
		PhoneNumber:         c.PhoneNumber,
		Archetype:           string(c.ArchetypeValue()),
		CuisinePreferences:  nonNil(c.CuisinePreferences),
		DietaryRestrictions: nonNil(c.DietaryRestrictions),
	}
}

func ToContactResponses(contacts []entity.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, *ToContactResponse(&contacts[i]))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
