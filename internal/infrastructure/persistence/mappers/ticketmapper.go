package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// MessageToModel converts a transcript message to a persistence model.
	MessageToModel(m *ticket.Message) (*models.TicketMessageModel, error)

	// MessageToDomain converts a message persistence model to a domain entity.
	MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:              t.ID(),
		DisplayNumber:   t.DisplayNumber(),
		GuildID:         t.GuildID(),
		OpenerID:        t.OpenerID(),
		ChannelRef:      t.ChannelRef(),
		CategoryID:      t.CategoryID(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		FirstMessageRef: t.FirstMessageRef(),
		CloserID:        t.CloserID(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket priority (id=%d): %w", model.ID, err)
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := millisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.DisplayNumber,
		model.GuildID,
		model.OpenerID,
		model.ChannelRef,
		model.CategoryID,
		status,
		priority,
		model.FirstMessageRef,
		model.CloserID,
		millisToTime(model.CreatedAt),
		closedAt,
	)
}

// MessageToModel converts a transcript message to a persistence model.
func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) (*models.TicketMessageModel, error) {
	attachmentsJSON, err := json.Marshal(msg.Attachments())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message attachments: %w", err)
	}

	return &models.TicketMessageModel{
		ID:          msg.ID(),
		TicketID:    msg.TicketID(),
		MessageRef:  msg.MessageRef(),
		AuthorID:    msg.AuthorID(),
		Content:     msg.Content(),
		Attachments: string(attachmentsJSON),
		CreatedAt:   msg.CreatedAt().UnixMilli(),
	}, nil
}

// MessageToDomain converts a message persistence model to a domain entity.
func (m *TicketMapperImpl) MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error) {
	var attachments []ticket.Attachment
	if model.Attachments != "" {
		if err := json.Unmarshal([]byte(model.Attachments), &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message attachments (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.MessageRef,
		model.AuthorID,
		model.Content,
		attachments,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
