package service

import (
	"embed"
	"fmt"
	"net/url"
	"strings"
	"time"

	"meetup-planner/core/logger"
	availabilityEntity "meetup-planner/modules/availability/entity"
	contactEntity "meetup-planner/modules/contact/entity"
	venueEntity "meetup-planner/modules/venue/entity"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

const (
	msgNeutral     = "invite_neutral"
	msgRestriction = "restriction_clause"
	msgTimeRange   = "time_range"
	msgTimeSingle  = "time_single"
)

// templates maps each archetype to its message id. Anything missing uses
// msgNeutral.
var templates = map[contactEntity.Archetype]string{
	contactEntity.ArchetypeBee:             "invite_bee",
	contactEntity.ArchetypeCaptain:         "invite_captain",
	contactEntity.ArchetypeGoldenRetriever: "invite_golden_retriever",
	contactEntity.ArchetypeFruitFly:        "invite_fruit_fly",
}

// When is the confirmed meetup time. End is optional.
type When struct {
	Date  string
	Start availabilityEntity.ClockTime
	End   *availabilityEntity.ClockTime
}

func WhenFromSlot(slot availabilityEntity.TimeSlot) When {
	end := slot.EndTime
	return When{Date: slot.Date, Start: slot.StartTime, End: &end}
}

type Composer struct {
	localizer *i18n.Localizer
}

func NewComposer(locale string) (*Composer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+f.Name()); err != nil {
			return nil, fmt.Errorf("load %s: %w", f.Name(), err)
		}
	}

	return &Composer{localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String())}, nil
}

// FormatDate renders an ISO date as "Saturday, February 21".
func FormatDate(date string) string {
	d, err := time.Parse(availabilityEntity.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2")
}

// FormatClock renders 12-hour time, e.g. 18:30 -> "6:30 PM", 00:05 -> "12:05 AM".
func FormatClock(t availabilityEntity.ClockTime) string {
	hour := t.Hour()
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour
	switch {
	case hour > 12:
		display = hour - 12
	case hour == 0:
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, t.Minute(), suffix)
}

func (c *Composer) localize(id string, data map[string]any) (string, error) {
	return c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// Compose renders the invitation for one participant. The template depends
// only on the participant's archetype.
func (c *Composer) Compose(when When, venue venueEntity.Venue, participant contactEntity.Contact) (string, error) {
	timeID, timeData := msgTimeSingle, map[string]any{"Start": FormatClock(when.Start)}
	if when.End != nil {
		timeID = msgTimeRange
		timeData["End"] = FormatClock(*when.End)
	}
	timeRange, err := c.localize(timeID, timeData)
	if err != nil {
		return "", err
	}

	id, ok := templates[participant.ArchetypeValue()]
	if !ok {
		id = msgNeutral
	}

	text, err := c.localize(id, map[string]any{
		"FirstName": participant.FirstName(),
		"Venue":     venue.Name,
		"Cuisine":   venue.Cuisine,
		"Date":      FormatDate(when.Date),
		"TimeRange": timeRange,
	})
	if err != nil {
		logger.Error("Composer:Compose:Localize", "error", err, "message_id", id)
		return "", err
	}

	if len(participant.DietaryRestrictions) > 0 {
		clause, err := c.localize(msgRestriction, map[string]any{
			"Restrictions": strings.Join(participant.DietaryRestrictions, ", "),
		})
		if err != nil {
			return "", err
		}
		text += " " + clause
	}
	return text, nil
}

// DeepLink builds a WhatsApp click-to-chat URL. Everything but digits is
// stripped from phone.
func DeepLink(phone, text string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + digits.String() + "?text=" + escaped
}
