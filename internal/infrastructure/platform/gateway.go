package platform

import (
	"context"
	stderrors "errors"
	"time"

	"ticketdesk/internal/domain/platform"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// Gateway wraps the raw platform client with the two guards every external
// mutation needs: a hard wall-clock bound so no caller ever stalls on platform
// rate limits, and per-guild serialization of channel creation.
//
// A mutation that misses its bound or is throttled by the platform returns a
// rate_limited error and must be treated as not applied.
type Gateway struct {
	client  platform.Client
	locks   *guildLocks
	timeout time.Duration
	logger  logger.Interface
}

var _ platform.Gateway = (*Gateway)(nil)

func NewGateway(client platform.Client, timeout time.Duration, logger logger.Interface) *Gateway {
	return &Gateway{
		client:  client,
		locks:   newGuildLocks(),
		timeout: timeout,
		logger:  logger,
	}
}

// CreateChannel materializes a ticket channel, holding the guild's lock for
// the duration of the platform call.
func (g *Gateway) CreateChannel(ctx context.Context, create platform.ChannelCreate) (string, error) {
	lock := g.locks.get(create.GuildID)
	lock.Lock()
	defer lock.Unlock()

	var channelRef string
	err := g.bounded(ctx, "create_channel", func(callCtx context.Context) error {
		ref, err := g.client.CreateChannel(callCtx, create)
		if err != nil {
			return err
		}
		channelRef = ref
		return nil
	})
	if err != nil {
		return "", err
	}
	return channelRef, nil
}

func (g *Gateway) EditChannel(ctx context.Context, guildID, channelRef string, edit platform.ChannelEdit) error {
	return g.bounded(ctx, "edit_channel", func(callCtx context.Context) error {
		return g.client.EditChannel(callCtx, channelRef, edit)
	})
}

func (g *Gateway) DeleteChannel(ctx context.Context, guildID, channelRef string) error {
	return g.bounded(ctx, "delete_channel", func(callCtx context.Context) error {
		return g.client.DeleteChannel(callCtx, channelRef)
	})
}

func (g *Gateway) GetChannel(ctx context.Context, channelRef string) (*platform.ChannelInfo, error) {
	var info *platform.ChannelInfo
	err := g.bounded(ctx, "get_channel", func(callCtx context.Context) error {
		ci, err := g.client.GetChannel(callCtx, channelRef)
		if err != nil {
			return err
		}
		info = ci
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (g *Gateway) ChannelExists(ctx context.Context, channelRef string) (bool, error) {
	var exists bool
	err := g.bounded(ctx, "channel_exists", func(callCtx context.Context) error {
		ok, err := g.client.ChannelExists(callCtx, channelRef)
		if err != nil {
			return err
		}
		exists = ok
		return nil
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (g *Gateway) SendMessage(ctx context.Context, channelRef string, msg platform.OutboundMessage) (string, error) {
	var messageRef string
	err := g.bounded(ctx, "send_message", func(callCtx context.Context) error {
		ref, err := g.client.SendMessage(callCtx, channelRef, msg)
		if err != nil {
			return err
		}
		messageRef = ref
		return nil
	})
	if err != nil {
		return "", err
	}
	return messageRef, nil
}

func (g *Gateway) EditMessage(ctx context.Context, channelRef, messageRef, content string) error {
	return g.bounded(ctx, "edit_message", func(callCtx context.Context) error {
		return g.client.EditMessage(callCtx, channelRef, messageRef, content)
	})
}

// bounded runs op with a hard wall-clock limit. The select guarantees the
// caller is released at the deadline even if the underlying client ignores
// context cancellation; a late completion is logged and discarded.
func (g *Gateway) bounded(ctx context.Context, opName string, op func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- op(callCtx)
	}()

	select {
	case err := <-done:
		if err == nil {
			return nil
		}
		if stderrors.Is(err, platform.ErrRateLimited) {
			g.logger.Warnw("platform throttled mutation",
				"operation", opName,
			)
			return errors.NewRateLimitedError("platform rate limited", opName)
		}
		if stderrors.Is(err, context.DeadlineExceeded) {
			return errors.NewRateLimitedError("platform mutation timed out", opName)
		}
		return err
	case <-callCtx.Done():
		g.logger.Warnw("platform mutation exceeded time bound",
			"operation", opName,
			"timeout", g.timeout,
		)
		return errors.NewRateLimitedError("platform mutation timed out", opName)
	}
}
