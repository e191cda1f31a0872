package platform

import (
	"context"
	"errors"
)

// ErrRateLimited is returned by Client implementations when the external
// platform rejects a mutation because of rate limiting.
var ErrRateLimited = errors.New("platform rate limited")

// ErrChannelNotFound is returned when a channel ref no longer resolves to a
// live channel on the platform.
var ErrChannelNotFound = errors.New("platform channel not found")

// ChannelCreate describes a channel to materialize on the platform.
type ChannelCreate struct {
	GuildID   string
	ParentRef string
	Name      string
	Topic     string
	// OpenerID grants the ticket opener access to the private channel.
	OpenerID string
	// StaffRoleRef grants the staff role access to the private channel.
	StaffRoleRef string
}

// ChannelEdit carries the mutable display attributes of a channel. Nil fields
// are left unchanged. Locked revokes the opener's write access.
type ChannelEdit struct {
	Name   *string
	Topic  *string
	Locked *bool
}

// ChannelInfo is the current external state of a channel.
type ChannelInfo struct {
	Ref   string
	Name  string
	Topic string
}

// OutboundMessage is a message posted into a platform channel.
type OutboundMessage struct {
	Content string
	// Pinned requests the message be pinned after posting.
	Pinned bool
}

// Client is the raw external platform port. Implementations talk to the
// messaging platform directly and surface its failures unfiltered; all
// rate-limit guarding and per-guild serialization lives in the Gateway that
// wraps this port.
type Client interface {
	CreateChannel(ctx context.Context, create ChannelCreate) (channelRef string, err error)
	EditChannel(ctx context.Context, channelRef string, edit ChannelEdit) error
	DeleteChannel(ctx context.Context, channelRef string) error
	GetChannel(ctx context.Context, channelRef string) (*ChannelInfo, error)
	ChannelExists(ctx context.Context, channelRef string) (bool, error)
	SendMessage(ctx context.Context, channelRef string, msg OutboundMessage) (messageRef string, err error)
	EditMessage(ctx context.Context, channelRef, messageRef, content string) error
}
