package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/domain/platform"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type OpenTicketCommand struct {
	GuildID    string
	OpenerID   string
	OpenerName string
	CategoryID uint
	Priority   string
	// Answers maps field name to the submitted intake value.
	Answers map[string]string
}

type OpenTicketResult struct {
	TicketID      uint
	DisplayNumber int
	ChannelRef    string
	Status        string
	Priority      string
	CreatedAt     time.Time
}

type OpenTicketUseCase struct {
	ticketRepo     ticket.Repository
	messageRepo    ticket.MessageRepository
	categoryRepo   category.Repository
	guildRepo      guild.Repository
	allocator      ticket.NumberAllocator
	throttle       Throttle
	gateway        platform.Gateway
	maxOpenPerUser int
	logger         logger.Interface
}

func NewOpenTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	categoryRepo category.Repository,
	guildRepo guild.Repository,
	allocator ticket.NumberAllocator,
	throttle Throttle,
	gateway platform.Gateway,
	maxOpenPerUser int,
	logger logger.Interface,
) *OpenTicketUseCase {
	return &OpenTicketUseCase{
		ticketRepo:     ticketRepo,
		messageRepo:    messageRepo,
		categoryRepo:   categoryRepo,
		guildRepo:      guildRepo,
		allocator:      allocator,
		throttle:       throttle,
		gateway:        gateway,
		maxOpenPerUser: maxOpenPerUser,
		logger:         logger,
	}
}

// Execute runs the creation pipeline. Every precondition is checked before
// the external channel is created, and the ticket row is only written after
// the channel exists, so a failure at any point leaves the store untouched.
func (uc *OpenTicketUseCase) Execute(ctx context.Context, cmd OpenTicketCommand) (*OpenTicketResult, error) {
	uc.logger.Infow("executing open ticket use case",
		"guild_id", cmd.GuildID, "opener_id", cmd.OpenerID, "category_id", cmd.CategoryID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	if !uc.throttle.CheckGate(cmd.GuildID, cmd.OpenerID) {
		return nil, errors.NewRateLimitedError("you are doing that too fast, try again in a few seconds")
	}

	openCount, err := uc.ticketRepo.CountNotClosed(ctx, cmd.GuildID, cmd.OpenerID)
	if err != nil {
		uc.logger.Errorw("failed to count open tickets", "error", err)
		return nil, err
	}
	if openCount >= int64(uc.maxOpenPerUser) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("you already have %d open ticket(s), close them before opening another", openCount))
	}

	if remaining := uc.throttle.CheckCooldown(cmd.GuildID, cmd.CategoryID, cmd.OpenerID); remaining > 0 {
		return nil, errors.NewRateLimitedError(
			fmt.Sprintf("please wait %d seconds before opening another ticket in this category",
				int(remaining.Seconds())+1))
	}

	guildCfg, err := uc.guildRepo.GetByGuildID(ctx, cmd.GuildID)
	if err != nil {
		return nil, err
	}

	cat, err := uc.categoryRepo.GetWithFields(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat.GuildID() != cmd.GuildID {
		return nil, errors.NewValidationError("category does not belong to this guild")
	}
	if !cat.IsActive() {
		return nil, errors.NewValidationError("category is no longer accepting tickets")
	}

	for _, f := range cat.Fields() {
		if err := f.ValidateAnswer(cmd.Answers[f.Name()]); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	priority := vo.PriorityLow
	if cmd.Priority != "" {
		priority, err = vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	displayNumber, err := uc.allocator.Reserve(ctx, cmd.GuildID)
	if err != nil {
		uc.logger.Errorw("failed to reserve display number", "guild_id", cmd.GuildID, "error", err)
		return nil, err
	}
	// The claim is held until the ticket row is written or creation failed,
	// so a concurrent open in the same guild gets the next number.
	defer uc.allocator.Release(cmd.GuildID, displayNumber)

	channelRef, err := uc.gateway.CreateChannel(ctx, platform.ChannelCreate{
		GuildID:      cmd.GuildID,
		ParentRef:    guildCfg.TicketParentRef(),
		Name:         ticket.ChannelName(priority, vo.StatusOpen, displayNumber, cmd.OpenerName),
		Topic:        ticket.ChannelTopic(displayNumber, priority, vo.StatusOpen),
		OpenerID:     cmd.OpenerID,
		StaffRoleRef: guildCfg.StaffRoleRef(),
	})
	if err != nil {
		uc.logger.Warnw("channel creation failed, no ticket recorded",
			"guild_id", cmd.GuildID, "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(displayNumber, cmd.GuildID, cmd.OpenerID, channelRef, cmd.CategoryID, priority)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket after channel creation",
			"channel_ref", channelRef, "error", err)
		return nil, err
	}

	uc.throttle.StartCooldown(cmd.GuildID, cmd.CategoryID, cmd.OpenerID)

	uc.recordIntake(ctx, newTicket, cat, cmd)
	uc.postIntroMessage(ctx, newTicket, guildCfg, cat, cmd)

	uc.logger.Infow("ticket opened",
		"ticket_id", newTicket.ID(),
		"display_number", displayNumber,
		"channel_ref", channelRef)

	return &OpenTicketResult{
		TicketID:      newTicket.ID(),
		DisplayNumber: newTicket.DisplayNumber(),
		ChannelRef:    newTicket.ChannelRef(),
		Status:        newTicket.Status().String(),
		Priority:      newTicket.Priority().String(),
		CreatedAt:     newTicket.CreatedAt(),
	}, nil
}

func (uc *OpenTicketUseCase) validateCommand(cmd OpenTicketCommand) error {
	if cmd.GuildID == "" {
		return errors.NewValidationError("guild ID is required")
	}
	if cmd.OpenerID == "" {
		return errors.NewValidationError("opener ID is required")
	}
	if cmd.CategoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}
	return nil
}

// recordIntake stores the form submission as the transcript's first entry.
// The ticket already exists at this point; a transcript write failure is
// logged, not rolled back.
func (uc *OpenTicketUseCase) recordIntake(ctx context.Context, t *ticket.Ticket, cat *category.Category, cmd OpenTicketCommand) {
	content := formatIntake(cat, cmd.Answers)

	msg, err := ticket.NewMessage(t.ID(), "", cmd.OpenerID, content, nil)
	if err != nil {
		uc.logger.Errorw("failed to build intake message", "ticket_id", t.ID(), "error", err)
		return
	}
	if err := uc.messageRepo.Save(ctx, msg); err != nil {
		uc.logger.Errorw("failed to record intake message", "ticket_id", t.ID(), "error", err)
	}
}

// postIntroMessage posts the welcome panel into the new channel. Best-effort:
// the ticket stands even if the platform rejects the message.
func (uc *OpenTicketUseCase) postIntroMessage(ctx context.Context, t *ticket.Ticket, guildCfg *guild.Config, cat *category.Category, cmd OpenTicketCommand) {
	var b strings.Builder
	fmt.Fprintf(&b, "**Ticket #%04d** — %s\n", t.DisplayNumber(), cat.Name())
	if guildCfg.PanelDescription() != "" {
		b.WriteString(guildCfg.PanelDescription())
		b.WriteString("\n")
	}
	if guildCfg.ContactName() != "" {
		fmt.Fprintf(&b, "%s will be with you shortly.\n", guildCfg.ContactName())
	}
	b.WriteString("\n")
	b.WriteString(formatIntake(cat, cmd.Answers))

	msgRef, err := uc.gateway.SendMessage(ctx, t.ChannelRef(), platform.OutboundMessage{
		Content: b.String(),
		Pinned:  true,
	})
	if err != nil {
		uc.logger.Warnw("failed to post intro message", "ticket_id", t.ID(), "error", err)
		return
	}

	if err := t.SetFirstMessageRef(msgRef); err != nil {
		return
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Warnw("failed to persist first message ref", "ticket_id", t.ID(), "error", err)
	}
}

// formatIntake renders the submitted answers in form order.
func formatIntake(cat *category.Category, answers map[string]string) string {
	fields := cat.Fields()
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].SortOrder() < fields[j].SortOrder()
	})

	var b strings.Builder
	for _, f := range fields {
		value := answers[f.Name()]
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "**%s**\n%s\n", f.Label(), value)
	}
	return strings.TrimRight(b.String(), "\n")
}
