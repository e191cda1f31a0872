package services

import (
	"context"
	"sync"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

const allocatorMaxRetries = 3

// TxRunner runs a function inside a serializable store transaction.
type TxRunner interface {
	RunInSerializableTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TicketNumberAllocator reserves display numbers for new tickets. The number
// is the guild's open-queue position: count of non-closed tickets plus one,
// computed under a serializable transaction. Reservations within one guild
// are serialized, and a reserved number stays claimed until the caller
// releases it, so two concurrent reservations can never both observe the same
// queue position. The ticket row is only written after the external channel
// exists, which is why the claim has to outlive the transaction.
type TicketNumberAllocator struct {
	tx         TxRunner
	ticketRepo ticket.Repository
	logger     logger.Interface

	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	claims map[string]map[int]struct{}
}

func NewTicketNumberAllocator(tx TxRunner, ticketRepo ticket.Repository, logger logger.Interface) *TicketNumberAllocator {
	return &TicketNumberAllocator{
		tx:         tx,
		ticketRepo: ticketRepo,
		logger:     logger,
		locks:      make(map[string]*sync.Mutex),
		claims:     make(map[string]map[int]struct{}),
	}
}

// Reserve returns the next display number for guildID and claims it until
// Release is called. Serialization conflicts are retried a few times;
// persistent conflict surfaces as a concurrency conflict the caller can retry.
func (a *TicketNumberAllocator) Reserve(ctx context.Context, guildID string) (int, error) {
	lock := a.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	var count int64
	var lastErr error

	for attempt := 1; attempt <= allocatorMaxRetries; attempt++ {
		err := a.tx.RunInSerializableTransaction(ctx, func(txCtx context.Context) error {
			var err error
			count, err = a.ticketRepo.CountNotClosed(txCtx, guildID, "")
			return err
		})
		if err == nil {
			return a.claim(guildID, int(count)), nil
		}

		lastErr = err
		a.logger.Warnw("display number reservation conflicted, retrying",
			"guild_id", guildID,
			"attempt", attempt,
			"error", err,
		)
	}

	return 0, errors.NewConcurrencyConflictError("failed to reserve display number", lastErr.Error())
}

// Release drops the claim on a reserved number. Safe to call after the ticket
// row is written or after creation was abandoned; releasing an unknown number
// is a no-op.
func (a *TicketNumberAllocator) Release(guildID string, number int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	claimed, ok := a.claims[guildID]
	if !ok {
		return
	}
	delete(claimed, number)
	if len(claimed) == 0 {
		delete(a.claims, guildID)
	}
}

// claim picks the first free number at or above count+claims+1. Closed
// tickets can shrink the count below an outstanding claim, so the candidate
// is bumped past any number still held.
func (a *TicketNumberAllocator) claim(guildID string, count int) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	claimed, ok := a.claims[guildID]
	if !ok {
		claimed = make(map[int]struct{})
		a.claims[guildID] = claimed
	}

	number := count + len(claimed) + 1
	for {
		if _, taken := claimed[number]; !taken {
			break
		}
		number++
	}
	claimed[number] = struct{}{}
	return number
}

func (a *TicketNumberAllocator) guildLock(guildID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()

	l, ok := a.locks[guildID]
	if !ok {
		l = &sync.Mutex{}
		a.locks[guildID] = l
	}
	return l
}
