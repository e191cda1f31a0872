package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

func TestListTickets_AppliesFiltersAndDefaults(t *testing.T) {
	tk := testTicket(t, vo.StatusOpen, vo.PriorityHigh)

	var captured ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return []*ticket.Ticket{tk}, 1, nil
		},
	}

	uc := NewListTicketsUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		GuildID:  "guild-1",
		Status:   "open",
		Priority: "high",
		OpenerID: "opener-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "guild-1", captured.GuildID)
	require.NotNil(t, captured.Status)
	assert.Equal(t, vo.StatusOpen, *captured.Status)
	require.NotNil(t, captured.Priority)
	assert.Equal(t, vo.PriorityHigh, *captured.Priority)
	require.NotNil(t, captured.OpenerID)
	assert.Equal(t, "opener-1", *captured.OpenerID)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.PageSize)

	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Tickets, 1)
	assert.Equal(t, "High", result.Tickets[0].Priority)
}

func TestListTickets_RejectsInvalidFilters(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{GuildID: "guild-1", Status: "archived"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListTicketsQuery{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
