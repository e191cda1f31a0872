package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	t.Run("accepts known statuses", func(t *testing.T) {
		for _, s := range []string{"open", "pending_close", "closed"} {
			got, err := NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, got.String())
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := NewStatus("resolved")
		assert.Error(t, err)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusOpen, StatusPendingClose, true},
		{StatusOpen, StatusClosed, true},
		{StatusPendingClose, StatusClosed, true},
		{StatusPendingClose, StatusOpen, false},
		{StatusClosed, StatusOpen, false},
		{StatusClosed, StatusPendingClose, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, StatusOpen.IsOpen())
	assert.True(t, StatusPendingClose.IsPendingClose())
	assert.True(t, StatusClosed.IsClosed())
	assert.False(t, StatusClosed.IsOpen())
}
