package ticket

import (
	"fmt"
	"time"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

// Ticket is a tracked support request bound 1:1 to a channel on the external
// messaging platform. A Ticket is only ever constructed after its channel has
// been materialized, so a persisted row without a channel ref cannot exist.
type Ticket struct {
	id              uint
	displayNumber   int
	guildID         string
	openerID        string
	channelRef      string
	categoryID      uint
	status          vo.Status
	priority        vo.Priority
	firstMessageRef string
	closerID        string
	createdAt       time.Time
	closedAt        *time.Time
}

func NewTicket(
	displayNumber int,
	guildID string,
	openerID string,
	channelRef string,
	categoryID uint,
	priority vo.Priority,
) (*Ticket, error) {
	if displayNumber <= 0 {
		return nil, fmt.Errorf("display number must be positive")
	}
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}
	if openerID == "" {
		return nil, fmt.Errorf("opener ID is required")
	}
	if channelRef == "" {
		return nil, fmt.Errorf("channel ref is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		displayNumber: displayNumber,
		guildID:       guildID,
		openerID:      openerID,
		channelRef:    channelRef,
		categoryID:    categoryID,
		status:        vo.StatusOpen,
		priority:      priority,
		createdAt:     time.Now().UTC(),
	}, nil
}

func ReconstructTicket(
	id uint,
	displayNumber int,
	guildID string,
	openerID string,
	channelRef string,
	categoryID uint,
	status vo.Status,
	priority vo.Priority,
	firstMessageRef string,
	closerID string,
	createdAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}
	if channelRef == "" {
		return nil, fmt.Errorf("channel ref is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		id:              id,
		displayNumber:   displayNumber,
		guildID:         guildID,
		openerID:        openerID,
		channelRef:      channelRef,
		categoryID:      categoryID,
		status:          status,
		priority:        priority,
		firstMessageRef: firstMessageRef,
		closerID:        closerID,
		createdAt:       createdAt,
		closedAt:        closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) DisplayNumber() int {
	return t.displayNumber
}

func (t *Ticket) GuildID() string {
	return t.guildID
}

func (t *Ticket) OpenerID() string {
	return t.openerID
}

func (t *Ticket) ChannelRef() string {
	return t.channelRef
}

func (t *Ticket) CategoryID() uint {
	return t.categoryID
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) FirstMessageRef() string {
	return t.firstMessageRef
}

func (t *Ticket) CloserID() string {
	return t.closerID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetFirstMessageRef records the ref of the introductory message. Set once,
// after the message is posted.
func (t *Ticket) SetFirstMessageRef(ref string) error {
	if t.firstMessageRef != "" {
		return fmt.Errorf("first message ref is already set")
	}
	if ref == "" {
		return fmt.Errorf("first message ref cannot be empty")
	}
	t.firstMessageRef = ref
	return nil
}

// IsOpenedBy reports whether actorID opened this ticket.
func (t *Ticket) IsOpenedBy(actorID string) bool {
	return t.openerID == actorID
}

// MarkSolved moves the ticket from open to pending_close. Calling it again
// while pending is a no-op; a closed ticket cannot be marked solved.
func (t *Ticket) MarkSolved() error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is already closed")
	}
	if t.status.IsPendingClose() {
		return nil
	}
	if !t.status.CanTransitionTo(vo.StatusPendingClose) {
		return fmt.Errorf("cannot mark ticket as solved from status %s", t.status)
	}
	t.status = vo.StatusPendingClose
	return nil
}

// Close moves the ticket to the terminal closed status, recording closer and
// close time. Closing an already closed ticket is a no-op.
func (t *Ticket) Close(closerID string) error {
	if t.status.IsClosed() {
		return nil
	}
	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close ticket with status %s", t.status)
	}
	t.status = vo.StatusClosed
	t.closerID = closerID
	now := time.Now().UTC()
	t.closedAt = &now
	return nil
}

// ChangePriority updates the priority. Returns false without touching the
// ticket when the new value equals the current one (case-insensitively).
func (t *Ticket) ChangePriority(newPriority vo.Priority) (bool, error) {
	// Equality wins over validity so a differently-cased spelling of the
	// current priority is still the documented no-op.
	if t.priority.Equals(newPriority) {
		return false, nil
	}
	if !newPriority.IsValid() {
		return false, fmt.Errorf("invalid priority: %s", newPriority)
	}
	t.priority = newPriority
	return true, nil
}
