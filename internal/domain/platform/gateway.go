package platform

import "context"

// Gateway is the guarded platform port consumed by the use case layer. An
// implementation wraps a Client with per-guild serialization of channel
// creation and a bound on how long any single mutation may stall on platform
// rate limits.
//
// Mutations report whether the external side effect actually happened:
// callers must only persist state that the platform has confirmed.
type Gateway interface {
	// CreateChannel serializes creations per guild so concurrent opens in
	// one guild materialize one channel at a time.
	CreateChannel(ctx context.Context, create ChannelCreate) (channelRef string, err error)
	EditChannel(ctx context.Context, guildID, channelRef string, edit ChannelEdit) error
	DeleteChannel(ctx context.Context, guildID, channelRef string) error
	GetChannel(ctx context.Context, channelRef string) (*ChannelInfo, error)
	ChannelExists(ctx context.Context, channelRef string) (bool, error)
	SendMessage(ctx context.Context, channelRef string, msg OutboundMessage) (messageRef string, err error)
	EditMessage(ctx context.Context, channelRef, messageRef, content string) error
}
