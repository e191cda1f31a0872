package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	GuildID   string
	Status    string
	Priority  string
	OpenerID  string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.GuildID == "" {
		return nil, errors.NewValidationError("guild ID is required")
	}

	filter := ticket.Filter{
		GuildID:   query.GuildID,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.OpenerID != "" {
		filter.OpenerID = &query.OpenerID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, *dto.ToTicketDTO(t))
	}

	return &ListTicketsResult{
		Tickets: dtos,
		Total:   total,
	}, nil
}
