package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/domain/platform"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type openTicketDeps struct {
	ticketRepo   *mockTicketRepository
	messageRepo  *mockMessageRepository
	categoryRepo *mockCategoryRepository
	guildRepo    *mockGuildRepository
	allocator    *mockAllocator
	throttle     *mockThrottle
	gateway      *mockGateway
}

func newOpenTicketDeps(t *testing.T) *openTicketDeps {
	t.Helper()

	return &openTicketDeps{
		ticketRepo:  &mockTicketRepository{},
		messageRepo: &mockMessageRepository{},
		categoryRepo: &mockCategoryRepository{
			GetWithFieldsFunc: func(ctx context.Context, id uint) (*category.Category, error) {
				return testCategory(t, true), nil
			},
		},
		guildRepo: &mockGuildRepository{
			GetByGuildIDFunc: func(ctx context.Context, guildID string) (*guild.Config, error) {
				return testGuildConfig(t, false), nil
			},
		},
		allocator: &mockAllocator{},
		throttle:  &mockThrottle{},
		gateway:   &mockGateway{},
	}
}

func (d *openTicketDeps) useCase() *OpenTicketUseCase {
	return NewOpenTicketUseCase(
		d.ticketRepo, d.messageRepo, d.categoryRepo, d.guildRepo,
		d.allocator, d.throttle, d.gateway, 1, logger.NewLogger(),
	)
}

func validOpenCommand() OpenTicketCommand {
	return OpenTicketCommand{
		GuildID:    "guild-1",
		OpenerID:   "opener-1",
		OpenerName: "Alice",
		CategoryID: 3,
		Answers:    map[string]string{"issue": "something broke"},
	}
}

func TestOpenTicket_Success(t *testing.T) {
	deps := newOpenTicketDeps(t)

	var createdName string
	deps.gateway.CreateChannelFunc = func(ctx context.Context, create platform.ChannelCreate) (string, error) {
		createdName = create.Name
		assert.Equal(t, "parent-1", create.ParentRef)
		assert.Equal(t, "staff-role-1", create.StaffRoleRef)
		return "chan-9", nil
	}

	deps.allocator.ReserveFunc = func(ctx context.Context, guildID string) (int, error) {
		return 4, nil
	}
	releasedNumber := 0
	deps.allocator.ReleaseFunc = func(guildID string, number int) {
		releasedNumber = number
	}

	cooldownStarted := false
	deps.throttle.StartCooldownFunc = func(guildID string, categoryID uint, userID string) {
		cooldownStarted = true
		assert.Equal(t, uint(3), categoryID)
	}

	var savedIntake *ticket.Message
	deps.messageRepo.SaveFunc = func(ctx context.Context, msg *ticket.Message) error {
		savedIntake = msg
		return msg.SetID(1)
	}

	result, err := deps.useCase().Execute(context.Background(), validOpenCommand())
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.TicketID)
	assert.Equal(t, 4, result.DisplayNumber)
	assert.Equal(t, "chan-9", result.ChannelRef)
	assert.Equal(t, "open", result.Status)
	assert.Equal(t, "Low", result.Priority)
	assert.Equal(t, "🟢-ticket-0004-alice", createdName)
	assert.True(t, cooldownStarted)
	assert.Equal(t, 4, releasedNumber)
	require.NotNil(t, savedIntake)
	assert.Contains(t, savedIntake.Content(), "something broke")
}

func TestOpenTicket_GateDenied(t *testing.T) {
	deps := newOpenTicketDeps(t)
	deps.throttle.CheckGateFunc = func(guildID, userID string) bool { return false }

	saved := false
	deps.ticketRepo.SaveFunc = func(ctx context.Context, tk *ticket.Ticket) error {
		saved = true
		return nil
	}

	_, err := deps.useCase().Execute(context.Background(), validOpenCommand())
	require.Error(t, err)
	assert.True(t, errors.IsRateLimited(err))
	assert.False(t, saved)
}

func TestOpenTicket_OpenCapReached(t *testing.T) {
	deps := newOpenTicketDeps(t)
	deps.ticketRepo.CountNotClosedFunc = func(ctx context.Context, guildID, openerID string) (int64, error) {
		return 1, nil
	}

	channelCreated := false
	deps.gateway.CreateChannelFunc = func(ctx context.Context, create platform.ChannelCreate) (string, error) {
		channelCreated = true
		return "chan-9", nil
	}

	_, err := deps.useCase().Execute(context.Background(), validOpenCommand())
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, channelCreated)
}

func TestOpenTicket_CooldownActive(t *testing.T) {
	deps := newOpenTicketDeps(t)
	deps.throttle.CheckCooldownFunc = func(guildID string, categoryID uint, userID string) time.Duration {
		return 42 * time.Second
	}

	_, err := deps.useCase().Execute(context.Background(), validOpenCommand())
	require.Error(t, err)
	assert.True(t, errors.IsRateLimited(err))
}

func TestOpenTicket_InactiveCategory(t *testing.T) {
	deps := newOpenTicketDeps(t)
	deps.categoryRepo.GetWithFieldsFunc = func(ctx context.Context, id uint) (*category.Category, error) {
		return testCategory(t, false), nil
	}

	_, err := deps.useCase().Execute(context.Background(), validOpenCommand())
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestOpenTicket_MissingRequiredAnswer(t *testing.T) {
	deps := newOpenTicketDeps(t)

	cmd := validOpenCommand()
	cmd.Answers = map[string]string{}

	_, err := deps.useCase().Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestOpenTicket_ChannelCreationFailureLeavesStoreUntouched(t *testing.T) {
	deps := newOpenTicketDeps(t)
	deps.gateway.CreateChannelFunc = func(ctx context.Context, create platform.ChannelCreate) (string, error) {
		return "", errors.NewRateLimitedError("platform rate limited")
	}

	saved := false
	deps.ticketRepo.SaveFunc = func(ctx context.Context, tk *ticket.Ticket) error {
		saved = true
		return nil
	}
	cooldownStarted := false
	deps.throttle.StartCooldownFunc = func(guildID string, categoryID uint, userID string) {
		cooldownStarted = true
	}
	released := false
	deps.allocator.ReleaseFunc = func(guildID string, number int) {
		released = true
	}

	_, err := deps.useCase().Execute(context.Background(), validOpenCommand())
	require.Error(t, err)
	assert.True(t, errors.IsRateLimited(err))
	assert.False(t, saved)
	assert.False(t, cooldownStarted)
	assert.True(t, released)
}

func TestOpenTicket_IntroMessageFailureDoesNotRollBack(t *testing.T) {
	deps := newOpenTicketDeps(t)
	deps.gateway.SendMessageFunc = func(ctx context.Context, channelRef string, msg platform.OutboundMessage) (string, error) {
		return "", errors.NewRateLimitedError("platform rate limited")
	}

	result, err := deps.useCase().Execute(context.Background(), validOpenCommand())
	require.NoError(t, err)
	assert.NotZero(t, result.TicketID)
}

func TestOpenTicket_ExplicitPriority(t *testing.T) {
	deps := newOpenTicketDeps(t)

	var createdName string
	deps.gateway.CreateChannelFunc = func(ctx context.Context, create platform.ChannelCreate) (string, error) {
		createdName = create.Name
		return "chan-9", nil
	}

	cmd := validOpenCommand()
	cmd.Priority = "urgent"

	result, err := deps.useCase().Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "Urgent", result.Priority)
	assert.Equal(t, "🔴-ticket-0001-alice", createdName)
}
