package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"meetup-planner/core/errors"
	"meetup-planner/core/logger"
	"meetup-planner/modules/venue/entity"

	"github.com/gosimple/slug"
)

type RecommendRequest struct {
	Location     string
	Cuisines     []string
	Restrictions []string
}

// Recommender sources venues from outside the static catalog.
type Recommender interface {
	Recommend(ctx context.Context, req RecommendRequest) ([]entity.Venue, error)
}

// TextGenerator is a prompt-in, text-out model client.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GenerativeRecommender struct {
	gen TextGenerator
}

func NewGenerativeRecommender(gen TextGenerator) *GenerativeRecommender {
	return &GenerativeRecommender{gen: gen}
}

func (r *GenerativeRecommender) Recommend(ctx context.Context, req RecommendRequest) ([]entity.Venue, error) {
	raw, err := r.gen.GenerateContent(ctx, BuildPrompt(req))
	if err != nil {
		logger.Error("GenerativeRecommender:Recommend:Generate", "error", err, "location", req.Location)
		return nil, errors.NewAppError(errors.ErrVenueService, "venue recommendation service failed", err)
	}

	venues, err := ParseRecommendations(raw)
	if err != nil {
		logger.Error("GenerativeRecommender:Recommend:Parse", "error", err, "location", req.Location)
		return nil, err
	}
	return venues, nil
}

func BuildPrompt(req RecommendRequest) string {
	cuisines := "any cuisine"
	if len(req.Cuisines) > 0 {
		cuisines = strings.Join(req.Cuisines, ", ")
	}
	restrictions := "none"
	if len(req.Restrictions) > 0 {
		restrictions = strings.Join(req.Restrictions, ", ")
	}

	return fmt.Sprintf(`You are a restaurant recommendation assistant. Suggest exactly %[1]d restaurants in or near %[2]q that serve %[3]s cuisine and accommodate dietary restrictions: %[4]s.

Respond ONLY with a valid JSON array of exactly %[1]d objects. No explanation, no markdown, just the raw JSON array.

Each object must have these exact fields:
- "id": a short kebab-case unique identifier (e.g. "sakura-japanese-kitchen")
- "name": restaurant name
- "cuisine": the main cuisine served
- "address": full street address in %[2]s
- "rating": number between 3.5 and 5.0 (one decimal place)
- "reviewCount": integer between 50 and 2000
- "url": a Google Maps search URL like "https://www.google.com/maps/search/?api=1&query=RESTAURANT+NAME+%[5]s"`,
		MaxResults, req.Location, cuisines, restrictions, url.QueryEscape(req.Location))
}

var (
	fenceOpen  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("\\s*```\\s*$")
)

type recommendation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	URL         string  `json:"url"`
}

// ParseRecommendations decodes a model reply into at most MaxResults venues,
// first N in reply order. Markdown code fences are tolerated.
func ParseRecommendations(raw string) ([]entity.Venue, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = fenceOpen.ReplaceAllString(cleaned, "")
	cleaned = fenceClose.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	var recs []recommendation
	if err := json.Unmarshal([]byte(cleaned), &recs); err != nil {
		return nil, errors.NewAppError(errors.ErrVenueParse, "venue recommendation was not a JSON list", err)
	}

	recs = truncate(recs, MaxResults)
	venues := make([]entity.Venue, 0, len(recs))
	for _, rec := range recs {
		if strings.TrimSpace(rec.Name) == "" {
			return nil, errors.NewAppError(errors.ErrVenueParse, "venue recommendation missing name", nil)
		}
		id := rec.ID
		if id == "" {
			id = slug.Make(rec.Name)
		}
		venues = append(venues, entity.Venue{
			ID:          id,
			Name:        rec.Name,
			Cuisine:     rec.Cuisine,
			Rating:      rec.Rating,
			Address:     rec.Address,
			ReviewCount: rec.ReviewCount,
			URL:         rec.URL,
		})
	}
	return venues, nil
}
