package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"meetup-planner/core/cache"
	"meetup-planner/core/constants"
	"meetup-planner/core/logger"
	"meetup-planner/modules/venue/entity"

	"github.com/gosimple/slug"
)

// CachedRecommender memoizes another Recommender in Redis. Cache failures
// fall through to the wrapped recommender.
type CachedRecommender struct {
	next  Recommender
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRecommender(next Recommender, c cache.Cache, ttl time.Duration) *CachedRecommender {
	return &CachedRecommender{next: next, cache: c, ttl: ttl}
}

// CacheKey is independent of tag order.
func CacheKey(req RecommendRequest) string {
	sorted := func(in []string) string {
		cp := append([]string(nil), in...)
		sort.Strings(cp)
		return strings.Join(cp, "-")
	}
	raw := req.Location + " " + sorted(req.Cuisines) + " " + sorted(req.Restrictions)
	return fmt.Sprintf(constants.RedisKeyVenueRecommendation, slug.Make(raw))
}

func (c *CachedRecommender) Recommend(ctx context.Context, req RecommendRequest) ([]entity.Venue, error) {
	key := CacheKey(req)

	var venues []entity.Venue
	err := c.cache.GetJSON(ctx, key, &venues)
	if err == nil {
		logger.Debug("CachedRecommender:Recommend:Hit", "key", key)
		return venues, nil
	}
	if !stderrors.Is(err, cache.ErrMiss) {
		logger.Warn("CachedRecommender:Recommend:GetFailed", "key", key, "error", err)
	}

	venues, err = c.next.Recommend(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetJSON(ctx, key, venues, c.ttl); err != nil {
		logger.Warn("CachedRecommender:Recommend:SetFailed", "key", key, "error", err)
	}
	return venues, nil
}
