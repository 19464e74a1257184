// Package config loads the duty-roster engine's tunable settings from the
// environment, following the same getEnv/getIntEnv-style helper pattern
// used throughout this codebase's CLI tooling.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dutyroster/engine/internal/roster/settings"
)

// Config holds process-level configuration for the CLI front door.
type Config struct {
	AppEnv   string
	LogLevel string

	Settings settings.Settings
}

// Load reads a .env file if present, then layers environment variables
// over the published default weight table (§6).
func Load() (*Config, error) {
	_ = godotenv.Load()

	w := settings.Default()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Settings: settings.Settings{
			PenaltyUnavailability:        getFloat64Env("PENALTY_UNAVAILABILITY", w.PenaltyUnavailability),
			PenaltyZeroShifts:            getFloat64Env("PENALTY_ZERO_SHIFTS", w.PenaltyZeroShifts),
			PenaltyAboveIdealStrong:      getFloat64Env("PENALTY_ABOVE_IDEAL_STRONG", w.PenaltyAboveIdealStrong),
			PenaltyBelowIdealStrong:      getFloat64Env("PENALTY_BELOW_IDEAL_STRONG", w.PenaltyBelowIdealStrong),
			PenaltyConsecutiveDays:       getFloat64Env("PENALTY_CONSECUTIVE_DAYS", w.PenaltyConsecutiveDays),
			PenaltyIdealSoft:             getFloat64Env("PENALTY_IDEAL_SOFT", w.PenaltyIdealSoft),
			PenaltyHistoryFairness:       getFloat64Env("PENALTY_HISTORY_FAIRNESS", w.PenaltyHistoryFairness),
			PenaltyFairnessDutyType:      getFloat64Env("PENALTY_FAIRNESS_DUTY_TYPE", w.PenaltyFairnessDutyType),
			PenaltyFairnessNight:         getFloat64Env("PENALTY_FAIRNESS_NIGHT", w.PenaltyFairnessNight),
			PenaltyFairnessWeekendSlots:  getFloat64Env("PENALTY_FAIRNESS_WEEKEND_SLOTS", w.PenaltyFairnessWeekendSlots),
			PenaltyTotalMinMax:           getFloat64Env("PENALTY_TOTAL_MINMAX", w.PenaltyTotalMinMax),
			PenaltyWeeklyClustering:      getFloat64Env("PENALTY_WEEKLY_CLUSTERING", w.PenaltyWeeklyClustering),
			PenaltyConsecutiveNights:     getFloat64Env("PENALTY_CONSECUTIVE_NIGHTS", w.PenaltyConsecutiveNights),
			PenaltyTwoShiftsSameDay:      getFloat64Env("PENALTY_TWO_SHIFTS_SAME_DAY", w.PenaltyTwoShiftsSameDay),
			PenaltyDislikesWeekend:       getFloat64Env("PENALTY_DISLIKES_WEEKEND", w.PenaltyDislikesWeekend),
			BonusLikesNight:              getFloat64Env("BONUS_LIKES_NIGHT", w.BonusLikesNight),
			PenaltyUnavailabilityFair:    getFloat64Env("PENALTY_UNAVAILABILITY_FAIRNESS", w.PenaltyUnavailabilityFair),
			PenaltyUnavailabilityViolate: getFloat64Env("PENALTY_UNAVAILABILITY_VIOLATION", w.PenaltyUnavailabilityViolate),

			SchedulerTimeLimitSeconds: getIntEnv("SCHEDULER_TIME_LIMIT_SECONDS", w.SchedulerTimeLimitSeconds),
			SchedulerRandomSeed:       int64(getIntEnv("SCHEDULER_RANDOM_SEED", int(w.SchedulerRandomSeed))),
			SchedulerWorkers:          getIntEnv("SCHEDULER_WORKERS", w.SchedulerWorkers),
		},
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool { return c.AppEnv == "development" }

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloat64Env(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
