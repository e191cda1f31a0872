package ticket

import (
	"fmt"
	"time"
)

// Attachment describes a file attached to a transcript message.
type Attachment struct {
	Ref         string `json:"ref"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Message is one entry in a ticket's append-only transcript. The first entry
// of every ticket holds the intake form submission and has no platform
// message ref.
type Message struct {
	id          uint
	ticketID    uint
	messageRef  string
	authorID    string
	content     string
	attachments []Attachment
	createdAt   time.Time
}

func NewMessage(ticketID uint, messageRef, authorID, content string, attachments []Attachment) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == "" {
		return nil, fmt.Errorf("author ID is required")
	}
	if attachments == nil {
		attachments = []Attachment{}
	}

	return &Message{
		ticketID:    ticketID,
		messageRef:  messageRef,
		authorID:    authorID,
		content:     content,
		attachments: attachments,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	messageRef string,
	authorID string,
	content string,
	attachments []Attachment,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if attachments == nil {
		attachments = []Attachment{}
	}

	return &Message{
		id:          id,
		ticketID:    ticketID,
		messageRef:  messageRef,
		authorID:    authorID,
		content:     content,
		attachments: attachments,
		createdAt:   createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) TicketID() uint {
	return m.ticketID
}

func (m *Message) MessageRef() string {
	return m.messageRef
}

func (m *Message) AuthorID() string {
	return m.authorID
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) Attachments() []Attachment {
	out := make([]Attachment, len(m.attachments))
	copy(out, m.attachments)
	return out
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
