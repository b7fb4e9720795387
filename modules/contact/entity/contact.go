package entity

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// Archetype selects the tone of a participant's invitation.
type Archetype string

const (
	ArchetypeBee             Archetype = "bee"
	ArchetypeCaptain         Archetype = "captain"
	ArchetypeGoldenRetriever Archetype = "golden_retriever"
	ArchetypeFruitFly        Archetype = "fruit_fly"
)

func (a Archetype) Valid() bool {
	switch a {
	case ArchetypeBee, ArchetypeCaptain, ArchetypeGoldenRetriever, ArchetypeFruitFly:
		return true
	}
	return false
}

type Contact struct {
	ID                  string         `db:"id" json:"id"`
	UserID              string         `db:"user_id" json:"user_id"`
	Name                string         `db:"name" json:"name"`
	PhoneNumber         string         `db:"phone_number" json:"phone_number"`
	Archetype           *Archetype     `db:"archetype" json:"archetype,omitempty"`
	CuisinePreferences  pq.StringArray `db:"cuisine_preferences" json:"cuisine_preferences"`
	DietaryRestrictions pq.StringArray `db:"dietary_restrictions" json:"dietary_restrictions"`
	CreatedAt           time.Time      `db:"created_at" json:"created_at"`
}

// FirstName is the first whitespace-delimited token of Name.
func (c Contact) FirstName() string {
	fields := strings.Fields(c.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ArchetypeValue returns the archetype or "" when unset.
func (c Contact) ArchetypeValue() Archetype {
	if c.Archetype == nil {
		return ""
	}
	return *c.Archetype
}
