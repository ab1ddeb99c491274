package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 2*time.Minute, cfg.RoundDuration)
	require.Equal(t, 2, cfg.MinParticipants)
	require.Equal(t, 8, cfg.MaxParticipants)
	require.Equal(t, int64(500_000_000), cfg.DefaultBudget)
	require.Equal(t, int64(1_000_000), cfg.DefaultMinimumBid)
	require.Equal(t, 20, cfg.JoinCodeAttempts)
	require.Equal(t, 5*time.Second, cfg.SweepInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AUCTION_PORT", "9090")
	t.Setenv("AUCTION_ROUND_DURATION", "30s")
	t.Setenv("AUCTION_MAX_PARTICIPANTS", "4")
	t.Setenv("AUCTION_DEFAULT_BUDGET", "100000000")

	cfg := Load()

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.RoundDuration)
	require.Equal(t, 4, cfg.MaxParticipants)
	require.Equal(t, int64(100_000_000), cfg.DefaultBudget)
	require.Equal(t, 2, cfg.MinParticipants) // untouched defaults survive
}
