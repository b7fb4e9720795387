package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	ModeCommon   = "common"
	ModeCoverage = "coverage"
	ModePreview  = "preview"
)

type FindTimeSlotsTool struct {
	slots Slots
}

func NewFindTimeSlotsTool(slots Slots) *FindTimeSlotsTool {
	return &FindTimeSlotsTool{slots: slots}
}

func (t *FindTimeSlotsTool) Definition() mcp.Tool {
	return mcp.NewTool("find-time-slots",
		mcp.WithDescription("Find upcoming time slots for a group. mode=common returns only slots where everyone is free; "+
			"coverage lists every slot with who is available; preview is coverage with sample data when the store is down."),
		contactIDsOption(),
		mcp.WithString("mode",
			mcp.Description("common, coverage or preview"),
			mcp.Enum(ModeCommon, ModeCoverage, ModePreview),
			mcp.DefaultString(ModeCoverage),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

type findTimeSlotsArgs struct {
	ContactIDs []string `json:"contact_ids"`
	Mode       string   `json:"mode"`
}

func (t *FindTimeSlotsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args findTimeSlotsArgs
	ownerID, res := bind(ctx, req, &args)
	if res != nil {
		return res, nil
	}

	find := t.slots.FindCoverageSlots
	switch args.Mode {
	case "", ModeCoverage:
	case ModeCommon:
		find = t.slots.FindCommonSlots
	case ModePreview:
		find = t.slots.PreviewSlots
	default:
		return mcp.NewToolResultErrorf("unknown mode %q", args.Mode), nil
	}

	slots, appErr := find(ctx, ownerID, args.ContactIDs)
	if appErr != nil {
		return appErrResult(appErr), nil
	}
	return jsonResult(slots)
}
