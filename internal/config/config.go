package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the tunable knobs of the auction coordinator. Everything is
// env-driven with sensible defaults; no config file is required.
type Config struct {
	Port              int
	RoundDuration     time.Duration
	MinParticipants   int
	MaxParticipants   int
	DefaultBudget     int64
	DefaultMinimumBid int64
	JoinCodeAttempts  int
	SweepInterval     time.Duration
}

// Load reads configuration from the environment (AUCTION_* variables),
// falling back to defaults.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("AUCTION")
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("ROUND_DURATION", 2*time.Minute)
	v.SetDefault("MIN_PARTICIPANTS", 2)
	v.SetDefault("MAX_PARTICIPANTS", 8)
	v.SetDefault("DEFAULT_BUDGET", int64(500_000_000))    // £500m in pence
	v.SetDefault("DEFAULT_MINIMUM_BID", int64(1_000_000)) // £1m in pence
	v.SetDefault("JOIN_CODE_ATTEMPTS", 20)
	v.SetDefault("SWEEP_INTERVAL", 5*time.Second)

	return &Config{
		Port:              v.GetInt("PORT"),
		RoundDuration:     v.GetDuration("ROUND_DURATION"),
		MinParticipants:   v.GetInt("MIN_PARTICIPANTS"),
		MaxParticipants:   v.GetInt("MAX_PARTICIPANTS"),
		DefaultBudget:     v.GetInt64("DEFAULT_BUDGET"),
		DefaultMinimumBid: v.GetInt64("DEFAULT_MINIMUM_BID"),
		JoinCodeAttempts:  v.GetInt("JOIN_CODE_ATTEMPTS"),
		SweepInterval:     v.GetDuration("SWEEP_INTERVAL"),
	}
}
