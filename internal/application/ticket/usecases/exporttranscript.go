package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

type ExportTranscriptQuery struct {
	TicketID uint
}

// ExportTranscriptUseCase returns a ticket with its full ordered transcript,
// the shape served by the console's export endpoint.
type ExportTranscriptUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewExportTranscriptUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *ExportTranscriptUseCase {
	return &ExportTranscriptUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *ExportTranscriptUseCase) Execute(ctx context.Context, query ExportTranscriptQuery) (*dto.TranscriptDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	return dto.ToTranscriptDTO(t, messages), nil
}
