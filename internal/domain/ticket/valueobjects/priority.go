package valueobjects

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityNormal: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// Equals compares priorities case-insensitively: "urgent" and "Urgent" are
// the same priority.
func (p Priority) Equals(other Priority) bool {
	return strings.EqualFold(string(p), string(other))
}

func (p Priority) IsLow() bool {
	return p == PriorityLow
}

func (p Priority) IsNormal() bool {
	return p == PriorityNormal
}

func (p Priority) IsHigh() bool {
	return p == PriorityHigh
}

func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent
}

// NewPriority parses a priority label case-insensitively, normalizing to the
// canonical capitalized form.
func NewPriority(s string) (Priority, error) {
	for p := range validPriorities {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority: %s", s)
}
