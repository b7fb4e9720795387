package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"meetup-planner/core/errors"
	availabilityDto "meetup-planner/modules/availability/dto"
	contactDto "meetup-planner/modules/contact/dto"
	meetupDto "meetup-planner/modules/meetup/dto"
	messageDto "meetup-planner/modules/message/dto"
	notificationDto "meetup-planner/modules/notification/dto"
	venueDto "meetup-planner/modules/venue/dto"

	"github.com/mark3labs/mcp-go/mcp"
)

type ownerKey struct{}

// WithOwner attaches the authenticated user id to ctx.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

func OwnerFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ownerKey{}).(string)
	return id, ok && id != ""
}

type Contacts interface {
	ListContacts(ctx context.Context, ownerID string) ([]contactDto.ContactResponse, *errors.AppError)
}

type Slots interface {
	FindCommonSlots(ctx context.Context, ownerID string, contactIDs []string) (*availabilityDto.FindSlotsResponse, *errors.AppError)
	FindCoverageSlots(ctx context.Context, ownerID string, contactIDs []string) (*availabilityDto.FindSlotsResponse, *errors.AppError)
	PreviewSlots(ctx context.Context, ownerID string, contactIDs []string) (*availabilityDto.FindSlotsResponse, *errors.AppError)
}

type Venues interface {
	RecommendVenues(ctx context.Context, ownerID string, req *venueDto.RecommendVenuesRequest) (*venueDto.RecommendVenuesResponse, *errors.AppError)
}

type Messages interface {
	PreviewInvites(ctx context.Context, ownerID string, req *messageDto.PreviewInvitesRequest) ([]messageDto.InvitePreview, *errors.AppError)
}

type Meetups interface {
	Confirm(ctx context.Context, ownerID string, req *meetupDto.ConfirmMeetupRequest) (*meetupDto.MeetupResponse, *errors.AppError)
}

type Invites interface {
	Dispatch(ctx context.Context, ownerID, meetupID string) (*notificationDto.DispatchResponse, *errors.AppError)
}

const signInMessage = "Please sign in to plan a meetup."

func contactIDsOption() mcp.ToolOption {
	return mcp.WithArray("contact_ids",
		mcp.Required(),
		mcp.Description("IDs of the contacts taking part"),
		mcp.Items(map[string]any{"type": "string"}),
	)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(raw)), nil
}

func appErrResult(appErr *errors.AppError) *mcp.CallToolResult {
	return mcp.NewToolResultErrorf("%s: %s", appErr.Code, appErr.Message)
}

// bind decodes arguments and checks the caller is signed in. A non-nil
// result means the handler should return it as is.
func bind(ctx context.Context, req mcp.CallToolRequest, target any) (string, *mcp.CallToolResult) {
	ownerID, ok := OwnerFrom(ctx)
	if !ok {
		return "", mcp.NewToolResultError(signInMessage)
	}
	if target != nil {
		if err := req.BindArguments(target); err != nil {
			return "", mcp.NewToolResultErrorFromErr("invalid arguments", err)
		}
	}
	return ownerID, nil
}
