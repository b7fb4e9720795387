package tools

import (
	"context"
	"encoding/json"
	"testing"

	"meetup-planner/core/errors"
	availabilityDto "meetup-planner/modules/availability/dto"
	availabilityEntity "meetup-planner/modules/availability/entity"
	contactDto "meetup-planner/modules/contact/dto"
	meetupDto "meetup-planner/modules/meetup/dto"
	meetupEntity "meetup-planner/modules/meetup/entity"
	messageDto "meetup-planner/modules/message/dto"
	notificationDto "meetup-planner/modules/notification/dto"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult, i int) string {
	t.Helper()
	require.Greater(t, len(res.Content), i)
	tc, ok := res.Content[i].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

var signedIn = WithOwner(context.Background(), "u1")

type fakeContacts struct{}

func (fakeContacts) ListContacts(_ context.Context, ownerID string) ([]contactDto.ContactResponse, *errors.AppError) {
	return []contactDto.ContactResponse{{ID: "c1", Name: "Alex Kim"}}, nil
}

type fakeSlots struct{ called, owner string }

func (f *fakeSlots) result(name, owner string, ids []string) (*availabilityDto.FindSlotsResponse, *errors.AppError) {
	f.called, f.owner = name, owner
	return &availabilityDto.FindSlotsResponse{
		Coverage: name,
		Slots: []availabilityEntity.TimeSlot{{
			ID:           "slot-2026-02-21-1200",
			Date:         "2026-02-21",
			StartTime:    availabilityEntity.MustParseClock("12:00"),
			EndTime:      availabilityEntity.MustParseClock("17:00"),
			AvailableFor: ids,
		}},
	}, nil
}

func (f *fakeSlots) FindCommonSlots(_ context.Context, o string, ids []string) (*availabilityDto.FindSlotsResponse, *errors.AppError) {
	return f.result("common", o, ids)
}

func (f *fakeSlots) FindCoverageSlots(_ context.Context, o string, ids []string) (*availabilityDto.FindSlotsResponse, *errors.AppError) {
	return f.result("coverage", o, ids)
}

func (f *fakeSlots) PreviewSlots(_ context.Context, o string, ids []string) (*availabilityDto.FindSlotsResponse, *errors.AppError) {
	return f.result("preview", o, ids)
}

func TestToolsRequireSignIn(t *testing.T) {
	handlers := map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"list-contacts":       NewListContactsTool(fakeContacts{}).Handle,
		"find-time-slots":     NewFindTimeSlotsTool(&fakeSlots{}).Handle,
		"plan-meetup":         PlanMeetupTool{}.Handle,
		"send-meetup-invites": NewSendInvitesTool(nil).Handle,
	}
	for name, h := range handlers {
		res, err := h(context.Background(), call(nil))
		require.NoError(t, err, name)
		assert.True(t, res.IsError, name)
		assert.Equal(t, signInMessage, text(t, res, 0), name)
	}
}

func TestListContacts(t *testing.T) {
	res, err := NewListContactsTool(fakeContacts{}).Handle(signedIn, call(nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var got []contactDto.ContactResponse
	require.NoError(t, json.Unmarshal([]byte(text(t, res, 0)), &got))
	assert.Equal(t, "Alex Kim", got[0].Name)
}

func TestFindTimeSlotsModes(t *testing.T) {
	for mode, want := range map[string]string{"": "coverage", "coverage": "coverage", "common": "common", "preview": "preview"} {
		slots := &fakeSlots{}
		args := map[string]any{"contact_ids": []any{"c1", "c2"}}
		if mode != "" {
			args["mode"] = mode
		}
		res, err := NewFindTimeSlotsTool(slots).Handle(signedIn, call(args))
		require.NoError(t, err)
		require.False(t, res.IsError, mode)
		assert.Equal(t, want, slots.called)
		assert.Equal(t, "u1", slots.owner)
		assert.Contains(t, text(t, res, 0), `"start_time": "12:00"`)
	}

	res, err := NewFindTimeSlotsTool(&fakeSlots{}).Handle(signedIn, call(map[string]any{"mode": "sometimes"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

type fakeMeetups struct{ got *meetupDto.ConfirmMeetupRequest }

func (f *fakeMeetups) Confirm(_ context.Context, ownerID string, req *meetupDto.ConfirmMeetupRequest) (*meetupDto.MeetupResponse, *errors.AppError) {
	f.got = req
	if req.VenueName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "venue_name is required", nil)
	}
	return &meetupDto.MeetupResponse{Meetup: meetupEntity.Meetup{UserID: ownerID, VenueName: req.VenueName}}, nil
}

func TestConfirmMeetupBindsArguments(t *testing.T) {
	m := &fakeMeetups{}
	res, err := NewConfirmMeetupTool(m).Handle(signedIn, call(map[string]any{
		"venue_name":  "Pixel Ramen House",
		"date":        "2026-02-21",
		"time":        "18:00",
		"contact_ids": []any{"c1", "c2"},
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, []string{"c1", "c2"}, m.got.ContactIDs)
	assert.Equal(t, "2026-02-21", m.got.Date)

	res, err = NewConfirmMeetupTool(m).Handle(signedIn, call(map[string]any{"date": "2026-02-21"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "INVALID_INPUT: venue_name is required", text(t, res, 0))
}

type fakeInvites struct{}

func (fakeInvites) Dispatch(_ context.Context, ownerID, meetupID string) (*notificationDto.DispatchResponse, *errors.AppError) {
	return &notificationDto.DispatchResponse{
		MeetupID: meetupID,
		Invites:  []messageDto.InvitePreview{{ContactID: "c1"}, {ContactID: "c2"}},
		Queued:   2,
	}, nil
}

func TestSendInvites(t *testing.T) {
	tool := NewSendInvitesTool(fakeInvites{})

	res, err := tool.Handle(signedIn, call(map[string]any{"meetup_id": "m1"}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, "WhatsApp invites ready for 2 contacts.", text(t, res, 0))
	assert.Contains(t, text(t, res, 1), `"meetup_id": "m1"`)

	res, err = tool.Handle(signedIn, call(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestPlanMeetup(t *testing.T) {
	res, err := PlanMeetupTool{}.Handle(signedIn, call(map[string]any{"prompt": "Dinner this week?"}))
	require.NoError(t, err)
	assert.Equal(t, `Meetup planner opened with prompt: "Dinner this week?"`, text(t, res, 0))

	res, err = PlanMeetupTool{}.Handle(signedIn, call(nil))
	require.NoError(t, err)
	assert.Equal(t, "Meetup planner opened. Select contacts to get started.", text(t, res, 0))
}
