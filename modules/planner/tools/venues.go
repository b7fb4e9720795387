package tools

import (
	"context"

	venueDto "meetup-planner/modules/venue/dto"

	"github.com/mark3labs/mcp-go/mcp"
)

type RecommendVenuesTool struct {
	venues Venues
}

func NewRecommendVenuesTool(venues Venues) *RecommendVenuesTool {
	return &RecommendVenuesTool{venues: venues}
}

func (t *RecommendVenuesTool) Definition() mcp.Tool {
	return mcp.NewTool("recommend-venues",
		mcp.WithDescription("Rank up to 5 venues for a group by how many participants like each cuisine"),
		contactIDsOption(),
		mcp.WithString("location", mcp.Description("Neighbourhood or city, e.g. 'Mission District, San Francisco'")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func (t *RecommendVenuesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args venueDto.RecommendVenuesRequest
	ownerID, res := bind(ctx, req, &args)
	if res != nil {
		return res, nil
	}

	venues, appErr := t.venues.RecommendVenues(ctx, ownerID, &args)
	if appErr != nil {
		return appErrResult(appErr), nil
	}
	return jsonResult(venues)
}
