package usecases

import (
	"context"
	"time"

	"ticketdesk/internal/application/ticket/dto"
)

// Throttle is the in-memory anti-spam service guarding ticket creation.
type Throttle interface {
	CheckGate(guildID, userID string) bool
	CheckCooldown(guildID string, categoryID uint, userID string) time.Duration
	StartCooldown(guildID string, categoryID uint, userID string)
}

type OpenTicketExecutor interface {
	Execute(ctx context.Context, cmd OpenTicketCommand) (*OpenTicketResult, error)
}

type MarkSolvedExecutor interface {
	Execute(ctx context.Context, cmd MarkSolvedCommand) (*MarkSolvedResult, error)
}

type ConfirmCloseExecutor interface {
	Execute(ctx context.Context, cmd ConfirmCloseCommand) (*ConfirmCloseResult, error)
}

type SetPriorityExecutor interface {
	Execute(ctx context.Context, cmd SetPriorityCommand) (*SetPriorityResult, error)
}

type ReconcileExecutor interface {
	Execute(ctx context.Context, cmd ReconcileCommand) (*ReconcileResult, error)
}

type AppendMessageExecutor interface {
	Execute(ctx context.Context, cmd AppendMessageCommand) (*AppendMessageResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ExportTranscriptExecutor interface {
	Execute(ctx context.Context, query ExportTranscriptQuery) (*dto.TranscriptDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
