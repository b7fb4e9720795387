package planner

import (
	"context"
	"net/http"

	"meetup-planner/core/logger"
	"meetup-planner/core/middleware"
	"meetup-planner/modules/planner/tools"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "meetup-planner"
	ServerVersion = "0.1.0"
)

type Deps struct {
	Contacts tools.Contacts
	Slots    tools.Slots
	Venues   tools.Venues
	Messages tools.Messages
	Meetups  tools.Meetups
	Invites  tools.Invites
}

type tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// NewServer registers every planner tool on a fresh MCP server.
func NewServer(d Deps) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Plan a group meetup: list contacts, find a time everyone can make, "+
			"pick a venue, confirm the meetup, then send the WhatsApp invites."),
	)

	for _, t := range []tool{
		tools.PlanMeetupTool{},
		tools.NewListContactsTool(d.Contacts),
		tools.NewFindTimeSlotsTool(d.Slots),
		tools.NewRecommendVenuesTool(d.Venues),
		tools.NewPreviewInvitesTool(d.Messages),
		tools.NewConfirmMeetupTool(d.Meetups),
		tools.NewSendInvitesTool(d.Invites),
	} {
		s.AddTool(t.Definition(), t.Handle)
	}
	return s
}

// OwnerContext resolves the bearer token on an MCP HTTP request. Requests
// without a valid token still reach the server; tools then ask the caller to
// sign in.
func OwnerContext(mw *middleware.Middleware) server.HTTPContextFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		claims, appErr := mw.ParseBearer(r.Header.Get("Authorization"))
		if appErr != nil {
			logger.Debug("Planner:OwnerContext", "code", appErr.Code)
			return ctx
		}
		return tools.WithOwner(ctx, claims.UserID)
	}
}
