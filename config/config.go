package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ScheduleDefault is one entry in the schedules config file. The rows
// are seeded into the approval_schedules table at boot; runtime edits
// go through the schedule controllers.
type ScheduleDefault struct {
	TargetType          string  `mapstructure:"target_type"`
	AutoApprovedAmount  float64 `mapstructure:"auto_approved_amount"`
	MaxWithdrawalAmount float64 `mapstructure:"max_withdrawal_amount"`
}

type Config struct {
	Schedules []ScheduleDefault `mapstructure:"schedules"`
}

var Global *Config

// Load reads the schedules config file. A missing file is not fatal:
// the service then starts with whatever schedules the database holds.
func Load(path string) *Config {
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	cfg := &Config{}
	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("No schedules config file, skipping seed defaults")
		Global = cfg
		return cfg
	}
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse schedules config")
	}

	Global = cfg
	return cfg
}
