package usecases

import (
	"context"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type AttachmentInput struct {
	Ref         string
	Filename    string
	URL         string
	Size        int64
	ContentType string
}

type AppendMessageCommand struct {
	// TicketID and ChannelRef are alternative lookups; the console addresses
	// tickets by ID, the platform bridge only knows the channel.
	TicketID    uint
	ChannelRef  string
	MessageRef  string
	AuthorID    string
	Content     string
	Attachments []AttachmentInput
}

type AppendMessageResult struct {
	MessageID uint
	TicketID  uint
	// Skipped is true when the ticket is already closed; transcripts are
	// frozen at close.
	Skipped bool
}

// AppendMessageUseCase records one channel message into the ticket's
// transcript.
type AppendMessageUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewAppendMessageUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *AppendMessageUseCase {
	return &AppendMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *AppendMessageUseCase) Execute(ctx context.Context, cmd AppendMessageCommand) (*AppendMessageResult, error) {
	if cmd.TicketID == 0 && cmd.ChannelRef == "" {
		return nil, errors.NewValidationError("ticket ID or channel ref is required")
	}
	if cmd.AuthorID == "" {
		return nil, errors.NewValidationError("author ID is required")
	}

	var (
		t   *ticket.Ticket
		err error
	)
	if cmd.TicketID != 0 {
		t, err = uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	} else {
		t, err = uc.ticketRepo.GetByChannelRef(ctx, cmd.ChannelRef)
	}
	if err != nil {
		return nil, err
	}

	if t.Status().IsClosed() {
		return &AppendMessageResult{TicketID: t.ID(), Skipped: true}, nil
	}

	attachments := make([]ticket.Attachment, 0, len(cmd.Attachments))
	for _, a := range cmd.Attachments {
		attachments = append(attachments, ticket.Attachment{
			Ref:         a.Ref,
			Filename:    a.Filename,
			URL:         a.URL,
			Size:        a.Size,
			ContentType: a.ContentType,
		})
	}

	msg, err := ticket.NewMessage(t.ID(), cmd.MessageRef, cmd.AuthorID, cmd.Content, attachments)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, msg); err != nil {
		uc.logger.Errorw("failed to save transcript message", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	return &AppendMessageResult{
		MessageID: msg.ID(),
		TicketID:  t.ID(),
	}, nil
}
