package game

import (
	"testing"
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextActivePlayer(t *testing.T) {
	roster := []string{"a", "b", "c", "d"}

	tests := []struct {
		name      string
		roster    []string
		departing string
		current   string
		want      *string
	}{
		{"current leaves, next in order", roster, "b", "b", ptr("c")},
		{"wraps past the end", roster, "d", "d", ptr("a")},
		{"two players, leaver on turn", []string{"a", "b"}, "a", "a", ptr("b")},
		{"last survivor leaves", []string{"a"}, "a", "a", nil},
		{"empty roster", nil, "a", "a", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextActivePlayer(tt.roster, tt.departing, tt.current)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestNextActivePlayerDoubleForfeit(t *testing.T) {
	// a and b forfeit back to back while a holds the turn. After the
	// first departure the pointer lands on b; b's own departure must
	// then skip both leavers and reach c.
	roster := []string{"a", "b", "c", "d"}

	next := NextActivePlayer(roster, "a", "a")
	require.NotNil(t, next)
	assert.Equal(t, "b", *next)

	// roster re-read after a's row is gone
	next = NextActivePlayer([]string{"b", "c", "d"}, "b", *next)
	require.NotNil(t, next)
	assert.Equal(t, "c", *next)
}

func TestNextActivePlayerCurrentAlreadyGone(t *testing.T) {
	// the turn holder's roster row was removed before the pointer was
	// recomputed; hand the turn to the first survivor
	next := NextActivePlayer([]string{"b", "c"}, "b", "a")
	require.NotNil(t, next)
	assert.Equal(t, "c", *next)
}

func TestNextActivePlayerNeverReturnsDeparting(t *testing.T) {
	rosters := [][]string{
		{"a"}, {"a", "b"}, {"a", "b", "c"}, {"a", "b", "c", "d"},
	}
	for _, roster := range rosters {
		for _, departing := range roster {
			for _, current := range roster {
				got := NextActivePlayer(roster, departing, current)
				if got != nil {
					assert.NotEqual(t, departing, *got,
						"roster=%v departing=%s current=%s", roster, departing, current)
					assert.Contains(t, roster, *got)
				}
			}
		}
	}
}

func TestPickActiveGame(t *testing.T) {
	now := time.Now()
	mk := func(id string, status domain.GameStatus, age time.Duration) *domain.Game {
		return &domain.Game{ID: id, Status: status, CreatedAt: now.Add(-age)}
	}

	t.Run("running beats filling beats open", func(t *testing.T) {
		got := PickActiveGame([]*domain.Game{
			mk("open", domain.GameStatusOpen, time.Minute),
			mk("running", domain.GameStatusRunning, time.Hour),
			mk("filling", domain.GameStatusFilling, time.Minute),
		})
		require.NotNil(t, got)
		assert.Equal(t, "running", got.ID)
	})

	t.Run("same status, most recent wins", func(t *testing.T) {
		got := PickActiveGame([]*domain.Game{
			mk("older", domain.GameStatusFilling, time.Hour),
			mk("newer", domain.GameStatusFilling, time.Minute),
		})
		require.NotNil(t, got)
		assert.Equal(t, "newer", got.ID)
	})

	t.Run("terminal games are ignored", func(t *testing.T) {
		got := PickActiveGame([]*domain.Game{
			mk("done", domain.GameStatusCompleted, time.Minute),
			mk("gone", domain.GameStatusCancelled, time.Minute),
		})
		assert.Nil(t, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, PickActiveGame(nil))
	})
}

func ptr(s string) *string { return &s }
