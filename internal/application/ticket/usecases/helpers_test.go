package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/category"
	"ticketdesk/internal/domain/guild"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

func testTicket(t *testing.T, status vo.Status, priority vo.Priority) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.ReconstructTicket(
		1, 7, "guild-1", "opener-1", "chan-1", 3,
		status, priority, "intro-1", "", time.Now().UTC(), nil,
	)
	require.NoError(t, err)
	return tk
}

func testGuildConfig(t *testing.T, allowUserClose bool) *guild.Config {
	t.Helper()

	cfg, err := guild.ReconstructConfig(
		1, "guild-1", "support-1", "parent-1", "staff-role-1",
		"Support Tickets", "Describe your issue.", "The support team", allowUserClose,
	)
	require.NoError(t, err)
	return cfg
}

func testCategory(t *testing.T, active bool) *category.Category {
	t.Helper()

	c, err := category.ReconstructCategory(3, "guild-1", "General Support", "How can we help?", active)
	require.NoError(t, err)

	f, err := category.ReconstructField(10, 3, "issue", "What happened?", category.FieldStyleParagraph, true, 0, 1024, 0)
	require.NoError(t, err)
	require.NoError(t, c.AddField(f))

	return c
}
