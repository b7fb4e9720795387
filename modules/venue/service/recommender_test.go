package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"meetup-planner/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
	calls  int
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompt = prompt
	return s.reply, s.err
}

func jsonVenues(n int) string {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf(`{"id":"v-%d","name":"Venue %d","cuisine":"Thai","address":"%d Main St","rating":4.%d,"reviewCount":%d,"url":"https://example.com/%d"}`, i, i, i, i, 100+i, i))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestParseRecommendationsTruncatesInOrder(t *testing.T) {
	venues, err := ParseRecommendations(jsonVenues(8))
	require.NoError(t, err)
	require.Len(t, venues, MaxResults)
	for i, v := range venues {
		assert.Equal(t, fmt.Sprintf("v-%d", i), v.ID)
	}
	assert.Equal(t, 104, venues[4].ReviewCount)
}

func TestParseRecommendationsStripsFences(t *testing.T) {
	venues, err := ParseRecommendations("```json\n" + jsonVenues(2) + "\n```\n")
	require.NoError(t, err)
	assert.Len(t, venues, 2)

	venues, err = ParseRecommendations("```\n" + jsonVenues(1) + "```")
	require.NoError(t, err)
	assert.Len(t, venues, 1)
}

func TestParseRecommendationsSlugFallback(t *testing.T) {
	venues, err := ParseRecommendations(`[{"name":"Sakura Japanese Kitchen","rating":4.6}]`)
	require.NoError(t, err)
	assert.Equal(t, "sakura-japanese-kitchen", venues[0].ID)
}

func TestParseRecommendationsErrors(t *testing.T) {
	for _, raw := range []string{"Sorry, I cannot help with that.", `{"id":"x"}`, `[{"id":"x","name":""}]`} {
		_, err := ParseRecommendations(raw)
		assert.Equal(t, errors.ErrVenueParse, errors.CodeOf(err), raw)
	}
}

func TestGenerativeRecommender(t *testing.T) {
	gen := &stubGenerator{reply: jsonVenues(5)}
	rec := NewGenerativeRecommender(gen)

	venues, err := rec.Recommend(context.Background(), RecommendRequest{
		Location:     "Austin, TX",
		Cuisines:     []string{"Thai", "Indian"},
		Restrictions: []string{"Vegan"},
	})
	require.NoError(t, err)
	assert.Len(t, venues, 5)
	assert.Contains(t, gen.prompt, `"Austin, TX"`)
	assert.Contains(t, gen.prompt, "Thai, Indian cuisine")
	assert.Contains(t, gen.prompt, "dietary restrictions: Vegan")
	assert.Contains(t, gen.prompt, "Austin%2C+TX")
}

func TestGenerativeRecommenderServiceError(t *testing.T) {
	cause := fmt.Errorf("429 quota exceeded")
	rec := NewGenerativeRecommender(&stubGenerator{err: cause})

	_, err := rec.Recommend(context.Background(), RecommendRequest{Location: "Austin"})
	assert.Equal(t, errors.ErrVenueService, errors.CodeOf(err))
	assert.True(t, stderrors.Is(err, cause))
}

func TestBuildPromptDefaults(t *testing.T) {
	p := BuildPrompt(RecommendRequest{Location: "Oslo"})
	assert.Contains(t, p, "serve any cuisine cuisine")
	assert.Contains(t, p, "dietary restrictions: none")
	assert.Contains(t, p, "exactly 5 restaurants")
}
