package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/domain/platform"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

func newConfirmCloseUseCase(repo *mockTicketRepository, guildRepo *mockGuildRepository, gateway *mockGateway) *ConfirmCloseUseCase {
	return NewConfirmCloseUseCase(repo, guildRepo, gateway, time.Millisecond, logger.NewLogger())
}

func TestConfirmClose_StaffCloses(t *testing.T) {
	tk := testTicket(t, vo.StatusOpen, vo.PriorityHigh)
	updated := false
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = true
			return nil
		},
	}

	var edit platform.ChannelEdit
	deleted := make(chan string, 1)
	gateway := &mockGateway{
		EditChannelFunc: func(ctx context.Context, guildID, channelRef string, e platform.ChannelEdit) error {
			edit = e
			return nil
		},
		DeleteChannelFunc: func(ctx context.Context, guildID, channelRef string) error {
			deleted <- channelRef
			return nil
		},
	}

	uc := newConfirmCloseUseCase(repo, &mockGuildRepository{}, gateway)

	result, err := uc.Execute(context.Background(), ConfirmCloseCommand{
		TicketID: 1,
		Actor:    Actor{ID: "staff-1", Staff: true},
	})
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Equal(t, "closed", result.Status)
	assert.True(t, updated)
	assert.Equal(t, "staff-1", tk.CloserID())
	require.NotNil(t, edit.Locked)
	assert.True(t, *edit.Locked)
	require.NotNil(t, edit.Name)
	assert.Equal(t, "✅-ticket-0001-user", *edit.Name)
	require.NotNil(t, edit.Topic)
	assert.Equal(t, "Ticket #0001 | Solved", *edit.Topic)

	select {
	case ref := <-deleted:
		assert.Equal(t, "chan-1", ref)
	case <-time.After(time.Second):
		t.Fatal("deferred channel deletion never ran")
	}
}

func TestConfirmClose_AlreadyClosedIsNoOp(t *testing.T) {
	tk := testTicket(t, vo.StatusClosed, vo.PriorityLow)
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	edited := false
	gateway := &mockGateway{
		EditChannelFunc: func(ctx context.Context, guildID, channelRef string, e platform.ChannelEdit) error {
			edited = true
			return nil
		},
	}

	uc := newConfirmCloseUseCase(repo, &mockGuildRepository{}, gateway)

	result, err := uc.Execute(context.Background(), ConfirmCloseCommand{
		TicketID: 1,
		Actor:    Actor{ID: "staff-1", Staff: true},
	})
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.False(t, edited)
}

func TestConfirmClose_ExternalFailureLeavesTicketOpen(t *testing.T) {
	tk := testTicket(t, vo.StatusPendingClose, vo.PriorityLow)
	updated := false
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = true
			return nil
		},
	}
	gateway := &mockGateway{
		EditChannelFunc: func(ctx context.Context, guildID, channelRef string, e platform.ChannelEdit) error {
			return errors.NewRateLimitedError("platform rate limited")
		},
	}

	uc := newConfirmCloseUseCase(repo, &mockGuildRepository{}, gateway)

	_, err := uc.Execute(context.Background(), ConfirmCloseCommand{
		TicketID: 1,
		Actor:    Actor{ID: "staff-1", Staff: true},
	})
	require.Error(t, err)
	assert.True(t, errors.IsRateLimited(err))
	assert.False(t, updated)
	assert.Equal(t, vo.StatusPendingClose, tk.Status())
}

func TestConfirmClose_OpenerAuthorization(t *testing.T) {
	t.Run("denied when guild forbids user close", func(t *testing.T) {
		tk := testTicket(t, vo.StatusPendingClose, vo.PriorityLow)
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		guildRepo := &mockGuildRepository{
			GetByGuildIDFunc: func(ctx context.Context, guildID string) (*guild.Config, error) {
				return testGuildConfig(t, false), nil
			},
		}

		uc := newConfirmCloseUseCase(repo, guildRepo, &mockGateway{})

		_, err := uc.Execute(context.Background(), ConfirmCloseCommand{
			TicketID: 1,
			Actor:    Actor{ID: "opener-1"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsPermissionError(err))
	})

	t.Run("allowed from pending_close when guild permits", func(t *testing.T) {
		tk := testTicket(t, vo.StatusPendingClose, vo.PriorityLow)
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		guildRepo := &mockGuildRepository{
			GetByGuildIDFunc: func(ctx context.Context, guildID string) (*guild.Config, error) {
				return testGuildConfig(t, true), nil
			},
		}

		uc := newConfirmCloseUseCase(repo, guildRepo, &mockGateway{})

		result, err := uc.Execute(context.Background(), ConfirmCloseCommand{
			TicketID: 1,
			Actor:    Actor{ID: "opener-1"},
		})
		require.NoError(t, err)
		assert.True(t, result.Changed)
	})

	t.Run("denied from open even when guild permits", func(t *testing.T) {
		tk := testTicket(t, vo.StatusOpen, vo.PriorityLow)
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		guildRepo := &mockGuildRepository{
			GetByGuildIDFunc: func(ctx context.Context, guildID string) (*guild.Config, error) {
				return testGuildConfig(t, true), nil
			},
		}

		uc := newConfirmCloseUseCase(repo, guildRepo, &mockGateway{})

		_, err := uc.Execute(context.Background(), ConfirmCloseCommand{
			TicketID: 1,
			Actor:    Actor{ID: "opener-1"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsPermissionError(err))
	})

	t.Run("denied for unrelated user", func(t *testing.T) {
		tk := testTicket(t, vo.StatusPendingClose, vo.PriorityLow)
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		uc := newConfirmCloseUseCase(repo, &mockGuildRepository{}, &mockGateway{})

		_, err := uc.Execute(context.Background(), ConfirmCloseCommand{
			TicketID: 1,
			Actor:    Actor{ID: "stranger-1"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsPermissionError(err))
	})
}
