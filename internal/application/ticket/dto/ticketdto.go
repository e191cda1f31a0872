package dto

import (
	"time"

	"ticketdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID              uint       `json:"id"`
	DisplayNumber   int        `json:"display_number"`
	GuildID         string     `json:"guild_id"`
	OpenerID        string     `json:"opener_id"`
	ChannelRef      string     `json:"channel_ref"`
	CategoryID      uint       `json:"category_id"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	FirstMessageRef string     `json:"first_message_ref,omitempty"`
	CloserID        string     `json:"closer_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ClosedAt        *time.Time `json:"closed_at"`
}

type AttachmentDTO struct {
	Ref         string `json:"ref"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type MessageDTO struct {
	ID          uint            `json:"id"`
	MessageRef  string          `json:"message_ref,omitempty"`
	AuthorID    string          `json:"author_id"`
	Content     string          `json:"content"`
	Attachments []AttachmentDTO `json:"attachments"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TranscriptDTO is the export shape: the ticket plus its full ordered
// transcript.
type TranscriptDTO struct {
	Ticket   TicketDTO    `json:"ticket"`
	Messages []MessageDTO `json:"messages"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
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
		CreatedAt:       t.CreatedAt(),
		ClosedAt:        t.ClosedAt(),
	}
}

func ToMessageDTO(m *ticket.Message) MessageDTO {
	attachments := make([]AttachmentDTO, 0, len(m.Attachments()))
	for _, a := range m.Attachments() {
		attachments = append(attachments, AttachmentDTO{
			Ref:         a.Ref,
			Filename:    a.Filename,
			URL:         a.URL,
			Size:        a.Size,
			ContentType: a.ContentType,
		})
	}

	return MessageDTO{
		ID:          m.ID(),
		MessageRef:  m.MessageRef(),
		AuthorID:    m.AuthorID(),
		Content:     m.Content(),
		Attachments: attachments,
		CreatedAt:   m.CreatedAt(),
	}
}

func ToTranscriptDTO(t *ticket.Ticket, messages []*ticket.Message) *TranscriptDTO {
	msgDTOs := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		msgDTOs = append(msgDTOs, ToMessageDTO(m))
	}

	return &TranscriptDTO{
		Ticket:   *ToTicketDTO(t),
		Messages: msgDTOs,
	}
}
