package game_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sso-jung/lolchat/internal/domain"
	"github.com/sso-jung/lolchat/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCooldown(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 30 * time.Second

	secondsAgo := func(s float64) *time.Time {
		at := now.Add(-time.Duration(s * float64(time.Second)))
		return &at
	}

	tests := []struct {
		name          string
		lastAt        *time.Time
		wantRemaining int // 0 means no error expected
	}{
		{
			name:          "never performed passes",
			lastAt:        nil,
			wantRemaining: 0,
		},
		{
			name:          "immediately after action",
			lastAt:        secondsAgo(0),
			wantRemaining: 30,
		},
		{
			name:          "partial seconds round up",
			lastAt:        secondsAgo(0.5),
			wantRemaining: 30,
		},
		{
			name:          "mid window",
			lastAt:        secondsAgo(12),
			wantRemaining: 18,
		},
		{
			name:          "one second left",
			lastAt:        secondsAgo(29.5),
			wantRemaining: 1,
		},
		{
			name:          "exactly at boundary passes",
			lastAt:        secondsAgo(30),
			wantRemaining: 0,
		},
		{
			name:          "past window passes",
			lastAt:        secondsAgo(45),
			wantRemaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := game.CheckCooldown(tt.lastAt, window, now)
			if tt.wantRemaining == 0 {
				assert.NoError(t, err)
				return
			}

			var cooldown *domain.CooldownError
			require.True(t, errors.As(err, &cooldown), "expected CooldownError, got %v", err)
			assert.Equal(t, tt.wantRemaining, cooldown.Remaining)
		})
	}
}

func TestCheckCooldownRemainingDecreases(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 30 * time.Second

	prev := window.Seconds() + 1
	for elapsed := 1; elapsed < 30; elapsed += 7 {
		err := game.CheckCooldown(&start, window, start.Add(time.Duration(elapsed)*time.Second))

		var cooldown *domain.CooldownError
		require.True(t, errors.As(err, &cooldown))
		assert.Less(t, float64(cooldown.Remaining), prev)
		prev = float64(cooldown.Remaining)
	}

	assert.NoError(t, game.CheckCooldown(&start, window, start.Add(window)))
}
