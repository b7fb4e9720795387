package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type ListContactsTool struct {
	contacts Contacts
}

func NewListContactsTool(contacts Contacts) *ListContactsTool {
	return &ListContactsTool{contacts: contacts}
}

func (t *ListContactsTool) Definition() mcp.Tool {
	return mcp.NewTool("list-contacts",
		mcp.WithDescription("List the signed-in user's contacts with their archetype, cuisine preferences and dietary restrictions"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

func (t *ListContactsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ownerID, res := bind(ctx, req, nil)
	if res != nil {
		return res, nil
	}

	contacts, appErr := t.contacts.ListContacts(ctx, ownerID)
	if appErr != nil {
		return appErrResult(appErr), nil
	}
	return jsonResult(contacts)
}
