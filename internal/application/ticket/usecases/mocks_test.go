package usecases

import (
	"context"
	"time"

	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/domain/platform"
	"ticketdesk/internal/domain/ticket"
)

type mockTicketRepository struct {
	SaveFunc            func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc         func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByChannelRefFunc func(ctx context.Context, channelRef string) (*ticket.Ticket, error)
	ListFunc            func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ListNotClosedFunc   func(ctx context.Context, guildID string) ([]*ticket.Ticket, error)
	CountNotClosedFunc  func(ctx context.Context, guildID, openerID string) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByChannelRef(ctx context.Context, channelRef string) (*ticket.Ticket, error) {
	if m.GetByChannelRefFunc != nil {
		return m.GetByChannelRefFunc(ctx, channelRef)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListNotClosed(ctx context.Context, guildID string) ([]*ticket.Ticket, error) {
	if m.ListNotClosedFunc != nil {
		return m.ListNotClosedFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountNotClosed(ctx context.Context, guildID, openerID string) (int64, error) {
	if m.CountNotClosedFunc != nil {
		return m.CountNotClosedFunc(ctx, guildID, openerID)
	}
	return 0, nil
}

type mockMessageRepository struct {
	SaveFunc          func(ctx context.Context, msg *ticket.Message) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *ticket.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return msg.SetID(1)
}

func (m *mockMessageRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	SaveFunc              func(ctx context.Context, c *category.Category) error
	UpdateFunc            func(ctx context.Context, c *category.Category) error
	GetByIDFunc           func(ctx context.Context, id uint) (*category.Category, error)
	GetWithFieldsFunc     func(ctx context.Context, id uint) (*category.Category, error)
	ListByGuildFunc       func(ctx context.Context, guildID string) ([]*category.Category, error)
	ListActiveByGuildFunc func(ctx context.Context, guildID string) ([]*category.Category, error)
	SaveFieldFunc         func(ctx context.Context, f *category.Field) error
	DeleteFieldFunc       func(ctx context.Context, fieldID uint) error
	GetFieldByIDFunc      func(ctx context.Context, fieldID uint) (*category.Field, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *category.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetWithFields(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetWithFieldsFunc != nil {
		return m.GetWithFieldsFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListByGuild(ctx context.Context, guildID string) ([]*category.Category, error) {
	if m.ListByGuildFunc != nil {
		return m.ListByGuildFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListActiveByGuild(ctx context.Context, guildID string) ([]*category.Category, error) {
	if m.ListActiveByGuildFunc != nil {
		return m.ListActiveByGuildFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) SaveField(ctx context.Context, f *category.Field) error {
	if m.SaveFieldFunc != nil {
		return m.SaveFieldFunc(ctx, f)
	}
	return nil
}

func (m *mockCategoryRepository) DeleteField(ctx context.Context, fieldID uint) error {
	if m.DeleteFieldFunc != nil {
		return m.DeleteFieldFunc(ctx, fieldID)
	}
	return nil
}

func (m *mockCategoryRepository) GetFieldByID(ctx context.Context, fieldID uint) (*category.Field, error) {
	if m.GetFieldByIDFunc != nil {
		return m.GetFieldByIDFunc(ctx, fieldID)
	}
	return nil, nil
}

type mockGuildRepository struct {
	SaveFunc         func(ctx context.Context, c *guild.Config) error
	UpdateFunc       func(ctx context.Context, c *guild.Config) error
	GetByGuildIDFunc func(ctx context.Context, guildID string) (*guild.Config, error)
	ListGuildIDsFunc func(ctx context.Context) ([]string, error)
}

func (m *mockGuildRepository) Save(ctx context.Context, c *guild.Config) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockGuildRepository) Update(ctx context.Context, c *guild.Config) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockGuildRepository) GetByGuildID(ctx context.Context, guildID string) (*guild.Config, error) {
	if m.GetByGuildIDFunc != nil {
		return m.GetByGuildIDFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *mockGuildRepository) ListGuildIDs(ctx context.Context) ([]string, error) {
	if m.ListGuildIDsFunc != nil {
		return m.ListGuildIDsFunc(ctx)
	}
	return nil, nil
}

type mockAllocator struct {
	ReserveFunc func(ctx context.Context, guildID string) (int, error)
	ReleaseFunc func(guildID string, number int)
}

func (m *mockAllocator) Reserve(ctx context.Context, guildID string) (int, error) {
	if m.ReserveFunc != nil {
		return m.ReserveFunc(ctx, guildID)
	}
	return 1, nil
}

func (m *mockAllocator) Release(guildID string, number int) {
	if m.ReleaseFunc != nil {
		m.ReleaseFunc(guildID, number)
	}
}

type mockThrottle struct {
	CheckGateFunc     func(guildID, userID string) bool
	CheckCooldownFunc func(guildID string, categoryID uint, userID string) time.Duration
	StartCooldownFunc func(guildID string, categoryID uint, userID string)
}

func (m *mockThrottle) CheckGate(guildID, userID string) bool {
	if m.CheckGateFunc != nil {
		return m.CheckGateFunc(guildID, userID)
	}
	return true
}

func (m *mockThrottle) CheckCooldown(guildID string, categoryID uint, userID string) time.Duration {
	if m.CheckCooldownFunc != nil {
		return m.CheckCooldownFunc(guildID, categoryID, userID)
	}
	return 0
}

func (m *mockThrottle) StartCooldown(guildID string, categoryID uint, userID string) {
	if m.StartCooldownFunc != nil {
		m.StartCooldownFunc(guildID, categoryID, userID)
	}
}

type mockGateway struct {
	CreateChannelFunc func(ctx context.Context, create platform.ChannelCreate) (string, error)
	EditChannelFunc   func(ctx context.Context, guildID, channelRef string, edit platform.ChannelEdit) error
	DeleteChannelFunc func(ctx context.Context, guildID, channelRef string) error
	GetChannelFunc    func(ctx context.Context, channelRef string) (*platform.ChannelInfo, error)
	ChannelExistsFunc func(ctx context.Context, channelRef string) (bool, error)
	SendMessageFunc   func(ctx context.Context, channelRef string, msg platform.OutboundMessage) (string, error)
	EditMessageFunc   func(ctx context.Context, channelRef, messageRef, content string) error
}

func (m *mockGateway) CreateChannel(ctx context.Context, create platform.ChannelCreate) (string, error) {
	if m.CreateChannelFunc != nil {
		return m.CreateChannelFunc(ctx, create)
	}
	return "chan-1", nil
}

func (m *mockGateway) EditChannel(ctx context.Context, guildID, channelRef string, edit platform.ChannelEdit) error {
	if m.EditChannelFunc != nil {
		return m.EditChannelFunc(ctx, guildID, channelRef, edit)
	}
	return nil
}

func (m *mockGateway) DeleteChannel(ctx context.Context, guildID, channelRef string) error {
	if m.DeleteChannelFunc != nil {
		return m.DeleteChannelFunc(ctx, guildID, channelRef)
	}
	return nil
}

func (m *mockGateway) GetChannel(ctx context.Context, channelRef string) (*platform.ChannelInfo, error) {
	if m.GetChannelFunc != nil {
		return m.GetChannelFunc(ctx, channelRef)
	}
	return &platform.ChannelInfo{Ref: channelRef, Name: "ticket-0001-user"}, nil
}

func (m *mockGateway) ChannelExists(ctx context.Context, channelRef string) (bool, error) {
	if m.ChannelExistsFunc != nil {
		return m.ChannelExistsFunc(ctx, channelRef)
	}
	return true, nil
}

func (m *mockGateway) SendMessage(ctx context.Context, channelRef string, msg platform.OutboundMessage) (string, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, channelRef, msg)
	}
	return "msg-1", nil
}

func (m *mockGateway) EditMessage(ctx context.Context, channelRef, messageRef, content string) error {
	if m.EditMessageFunc != nil {
		return m.EditMessageFunc(ctx, channelRef, messageRef, content)
	}
	return nil
}
