package tools

import (
	"context"
	"fmt"

	meetupDto "meetup-planner/modules/meetup/dto"
	messageDto "meetup-planner/modules/message/dto"

	"github.com/mark3labs/mcp-go/mcp"
)

type PreviewInvitesTool struct {
	messages Messages
}

func NewPreviewInvitesTool(messages Messages) *PreviewInvitesTool {
	return &PreviewInvitesTool{messages: messages}
}

func (t *PreviewInvitesTool) Definition() mcp.Tool {
	return mcp.NewTool("preview-invites",
		mcp.WithDescription("Draft the WhatsApp invitation for each participant without saving anything"),
		contactIDsOption(),
		mcp.WithString("venue_id", mcp.Description("Catalog venue id")),
		mcp.WithString("venue_name", mcp.Description("Venue name when no venue_id is given")),
		mcp.WithString("venue_cuisine", mcp.Description("Cuisine when no venue_id is given")),
		mcp.WithString("date", mcp.Required(), mcp.Description("YYYY-MM-DD")),
		mcp.WithString("start_time", mcp.Required(), mcp.Description("HH:MM, 24-hour")),
		mcp.WithString("end_time", mcp.Description("HH:MM, 24-hour")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

func (t *PreviewInvitesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args messageDto.PreviewInvitesRequest
	ownerID, res := bind(ctx, req, &args)
	if res != nil {
		return res, nil
	}

	invites, appErr := t.messages.PreviewInvites(ctx, ownerID, &args)
	if appErr != nil {
		return appErrResult(appErr), nil
	}
	return jsonResult(invites)
}

type ConfirmMeetupTool struct {
	meetups Meetups
}

func NewConfirmMeetupTool(meetups Meetups) *ConfirmMeetupTool {
	return &ConfirmMeetupTool{meetups: meetups}
}

func (t *ConfirmMeetupTool) Definition() mcp.Tool {
	return mcp.NewTool("confirm-meetup",
		mcp.WithDescription("Save a confirmed meetup. Every call creates a new meetup."),
		contactIDsOption(),
		mcp.WithString("venue_name", mcp.Required()),
		mcp.WithString("venue_ref", mcp.Description("Catalog or recommendation id of the venue")),
		mcp.WithString("venue_address"),
		mcp.WithString("date", mcp.Required(), mcp.Description("YYYY-MM-DD")),
		mcp.WithString("time", mcp.Required(), mcp.Description("Start, HH:MM 24-hour")),
		mcp.WithString("end_time", mcp.Description("End, HH:MM 24-hour")),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

func (t *ConfirmMeetupTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args meetupDto.ConfirmMeetupRequest
	ownerID, res := bind(ctx, req, &args)
	if res != nil {
		return res, nil
	}

	meetup, appErr := t.meetups.Confirm(ctx, ownerID, &args)
	if appErr != nil {
		return appErrResult(appErr), nil
	}
	return jsonResult(meetup)
}

type SendInvitesTool struct {
	invites Invites
}

func NewSendInvitesTool(invites Invites) *SendInvitesTool {
	return &SendInvitesTool{invites: invites}
}

func (t *SendInvitesTool) Definition() mcp.Tool {
	return mcp.NewTool("send-meetup-invites",
		mcp.WithDescription("Build WhatsApp invite links for every participant of a confirmed meetup"),
		mcp.WithString("meetup_id", mcp.Required()),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func (t *SendInvitesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ownerID, res := bind(ctx, req, nil)
	if res != nil {
		return res, nil
	}
	meetupID, err := req.RequireString("meetup_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, appErr := t.invites.Dispatch(ctx, ownerID, meetupID)
	if appErr != nil {
		return appErrResult(appErr), nil
	}

	result, err := jsonResult(resp)
	if err != nil {
		return nil, err
	}
	result.Content = append([]mcp.Content{
		mcp.NewTextContent(fmt.Sprintf("WhatsApp invites ready for %d contacts.", len(resp.Invites))),
	}, result.Content...)
	return result, nil
}

type PlanMeetupTool struct{}

func (PlanMeetupTool) Definition() mcp.Tool {
	return mcp.NewTool("plan-meetup",
		mcp.WithDescription("Start planning a group meetup: select contacts, pick a time, choose a venue and send invites"),
		mcp.WithString("prompt", mcp.Description("Natural language prompt like 'Let's get dinner this week'")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

func (PlanMeetupTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, res := bind(ctx, req, nil); res != nil {
		return res, nil
	}
	if prompt := req.GetString("prompt", ""); prompt != "" {
		return mcp.NewToolResultText(fmt.Sprintf("Meetup planner opened with prompt: %q", prompt)), nil
	}
	return mcp.NewToolResultText("Meetup planner opened. Select contacts to get started."), nil
}
