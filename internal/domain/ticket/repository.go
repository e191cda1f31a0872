package ticket

import (
	"context"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByChannelRef(ctx context.Context, channelRef string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	// ListNotClosed returns every non-closed ticket for a guild, unpaginated.
	// Used by the reconcile pass.
	ListNotClosed(ctx context.Context, guildID string) ([]*Ticket, error)
	// CountNotClosed counts non-closed tickets for a guild, optionally
	// restricted to one opener (openerID == "" means the whole guild).
	CountNotClosed(ctx context.Context, guildID string, openerID string) (int64, error)
}

type Filter struct {
	GuildID   string
	Status    *vo.Status
	Priority  *vo.Priority
	OpenerID  *string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)
}

// NumberAllocator reserves the advisory display number for a new ticket in a
// guild. Reservations within one guild are serialized, and a reserved number
// stays claimed until released, so concurrent creations never share a number.
// The number reflects the open-queue position at allocation time and may be
// reused after tickets close.
type NumberAllocator interface {
	Reserve(ctx context.Context, guildID string) (int, error)
	// Release drops the claim once the ticket row is written or the creation
	// was abandoned.
	Release(guildID string, number int)
}
