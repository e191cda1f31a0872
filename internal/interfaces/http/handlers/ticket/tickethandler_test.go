package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/interfaces/http/handlers/testutil"
	"ticketdesk/internal/shared/errors"
)

type mockOpenTicketUC struct {
	result *usecases.OpenTicketResult
	err    error
}

func (m *mockOpenTicketUC) Execute(ctx context.Context, cmd usecases.OpenTicketCommand) (*usecases.OpenTicketResult, error) {
	return m.result, m.err
}

type mockSetPriorityUC struct {
	result *usecases.SetPriorityResult
	err    error
	gotCmd usecases.SetPriorityCommand
}

func (m *mockSetPriorityUC) Execute(ctx context.Context, cmd usecases.SetPriorityCommand) (*usecases.SetPriorityResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *dto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error) {
	return m.result, m.err
}

func newTestHandler(open usecases.OpenTicketExecutor, setPriority usecases.SetPriorityExecutor, get usecases.GetTicketExecutor) *TicketHandler {
	return NewTicketHandler(open, nil, nil, setPriority, nil, nil, get, nil, nil)
}

func TestOpenTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockOpenTicketUC{
			result: &usecases.OpenTicketResult{
				TicketID:      1,
				DisplayNumber: 7,
				ChannelRef:    "chan-7",
				Status:        "open",
				Priority:      "Low",
				CreatedAt:     time.Now(),
			},
		}
		handler := newTestHandler(uc, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/tickets", OpenTicketRequest{
			GuildID:    "guild-1",
			OpenerID:   "user-1",
			CategoryID: 2,
		})

		handler.OpenTicket(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)

		var result usecases.OpenTicketResult
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.Equal(t, 7, result.DisplayNumber)
		assert.Equal(t, "chan-7", result.ChannelRef)
	})

	t.Run("MissingOpenerID", func(t *testing.T) {
		handler := newTestHandler(&mockOpenTicketUC{}, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/tickets", map[string]interface{}{
			"guild_id":    "guild-1",
			"category_id": 2,
		})

		handler.OpenTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "validation_error", resp.Error.Type)
	})

	t.Run("RateLimited", func(t *testing.T) {
		uc := &mockOpenTicketUC{err: errors.NewRateLimitedError("platform is throttling channel creation")}
		handler := newTestHandler(uc, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/tickets", OpenTicketRequest{
			GuildID:    "guild-1",
			OpenerID:   "user-1",
			CategoryID: 2,
		})

		handler.OpenTicket(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "rate_limited", resp.Error.Type)
	})
}

func TestSetPriority(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockSetPriorityUC{
			result: &usecases.SetPriorityResult{TicketID: 3, Priority: "High", Changed: true},
		}
		handler := newTestHandler(nil, uc, nil)

		c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/3/priority", SetPriorityRequest{
			ActorRequest: ActorRequest{ActorID: "staff-1", ActorStaff: true},
			Priority:     "High",
		})
		testutil.SetURLParam(c, "id", "3")

		handler.SetPriority(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), uc.gotCmd.TicketID)
		assert.Equal(t, "High", uc.gotCmd.Priority)
		assert.True(t, uc.gotCmd.Actor.Staff)
	})

	t.Run("InvalidTicketID", func(t *testing.T) {
		handler := newTestHandler(nil, &mockSetPriorityUC{}, nil)

		c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/abc/priority", SetPriorityRequest{
			ActorRequest: ActorRequest{ActorID: "staff-1"},
			Priority:     "High",
		})
		testutil.SetURLParam(c, "id", "abc")

		handler.SetPriority(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetTicket(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		uc := &mockGetTicketUC{err: errors.NewNotFoundError("ticket not found")}
		handler := newTestHandler(nil, nil, uc)

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/99", nil)
		testutil.SetURLParam(c, "id", "99")

		handler.GetTicket(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "not_found", resp.Error.Type)
	})

	t.Run("Success", func(t *testing.T) {
		uc := &mockGetTicketUC{
			result: &dto.TicketDTO{ID: 3, DisplayNumber: 3, GuildID: "guild-1", Status: "open", Priority: "Normal"},
		}
		handler := newTestHandler(nil, nil, uc)

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/3", nil)
		testutil.SetURLParam(c, "id", "3")

		handler.GetTicket(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))

		var result dto.TicketDTO
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.Equal(t, "guild-1", result.GuildID)
		assert.Equal(t, "Normal", result.Priority)
	})
}
