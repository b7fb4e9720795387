package planner

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"meetup-planner/core/middleware"
	"meetup-planner/core/utils"
	"meetup-planner/modules/planner/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerRegistersTools(t *testing.T) {
	s := NewServer(Deps{})
	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var decoded struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	var names []string
	for _, tl := range decoded.Result.Tools {
		names = append(names, tl.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"confirm-meetup", "find-time-slots", "list-contacts", "plan-meetup",
		"preview-invites", "recommend-venues", "send-meetup-invites",
	}, names)
}

func TestOwnerContext(t *testing.T) {
	mw := middleware.NewMiddleware("secret")
	fn := OwnerContext(mw)

	tok, err := utils.GenerateToken("u1", "secret", time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/mcp", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	owner, ok := tools.OwnerFrom(fn(context.Background(), req))
	assert.True(t, ok)
	assert.Equal(t, "u1", owner)

	_, ok = tools.OwnerFrom(fn(context.Background(), httptest.NewRequest("POST", "/mcp", nil)))
	assert.False(t, ok)
}
