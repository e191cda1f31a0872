package ticket

import (
	"fmt"
	"regexp"
	"strings"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

// The external display representation encodes priority and solved state into
// the channel name as a single leading glyph plus separator. Parsing a
// previous display string (StripGlyph) is kept separate from computing a new
// one (DisplayGlyph/ApplyGlyph) so neither ever feeds business state.

const glyphSeparator = "-"

const solvedGlyph = "✅"

var priorityGlyphs = map[vo.Priority]string{
	vo.PriorityLow:    "🟢",
	vo.PriorityNormal: "🔵",
	vo.PriorityHigh:   "🟠",
	vo.PriorityUrgent: "🔴",
}

var knownGlyphs = map[string]bool{
	solvedGlyph: true,
	"🟢":         true,
	"🔵":         true,
	"🟠":         true,
	"🔴":         true,
}

// DisplayGlyph returns the glyph for a ticket's current external display.
// Once the status has left open, the solved glyph is shown regardless of the
// priority.
func DisplayGlyph(priority vo.Priority, status vo.Status) string {
	if !status.IsOpen() {
		return solvedGlyph
	}
	if g, ok := priorityGlyphs[priority]; ok {
		return g
	}
	return priorityGlyphs[vo.PriorityNormal]
}

// StripGlyph removes a previously applied glyph prefix from a channel name.
// Only the first rune is inspected; it is removed when it belongs to the
// known glyph set and is followed by the separator. Names without a glyph
// pass through unchanged, so the function is idempotent.
func StripGlyph(name string) string {
	runes := []rune(name)
	if len(runes) < 2 {
		return name
	}
	if !knownGlyphs[string(runes[0])] {
		return name
	}
	rest := string(runes[1:])
	if !strings.HasPrefix(rest, glyphSeparator) {
		return name
	}
	return strings.TrimPrefix(rest, glyphSeparator)
}

// ApplyGlyph prepends glyph to name, stripping any previous glyph first.
// Applying twice yields the same result as applying once.
func ApplyGlyph(name, glyph string) string {
	return glyph + glyphSeparator + StripGlyph(name)
}

// ChannelName builds the external channel name for a new ticket:
// <glyph>-ticket-0042-<opener-slug>.
func ChannelName(priority vo.Priority, status vo.Status, displayNumber int, openerName string) string {
	base := fmt.Sprintf("ticket-%04d-%s", displayNumber, SlugifyName(openerName))
	return ApplyGlyph(base, DisplayGlyph(priority, status))
}

// ChannelTopic builds the external channel topic line.
func ChannelTopic(displayNumber int, priority vo.Priority, status vo.Status) string {
	if !status.IsOpen() {
		return fmt.Sprintf("Ticket #%04d | Solved", displayNumber)
	}
	return fmt.Sprintf("Ticket #%04d | Priority: %s", displayNumber, priority)
}

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9-]`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// SlugifyName reduces a display name to a channel-name-safe slug, capped at
// 50 characters.
func SlugifyName(name string) string {
	s := strings.ToLower(name)
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "user"
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
