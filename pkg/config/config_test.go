package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutyroster/engine/internal/roster/settings"
)

func clearEnvVars() {
	envVars := []string{
		"APP_ENV", "LOG_LEVEL",
		"PENALTY_UNAVAILABILITY", "PENALTY_ZERO_SHIFTS",
		"PENALTY_ABOVE_IDEAL_STRONG", "PENALTY_BELOW_IDEAL_STRONG",
		"PENALTY_CONSECUTIVE_DAYS", "PENALTY_IDEAL_SOFT", "PENALTY_HISTORY_FAIRNESS",
		"PENALTY_FAIRNESS_DUTY_TYPE", "PENALTY_FAIRNESS_NIGHT", "PENALTY_FAIRNESS_WEEKEND_SLOTS",
		"PENALTY_TOTAL_MINMAX", "PENALTY_WEEKLY_CLUSTERING", "PENALTY_CONSECUTIVE_NIGHTS",
		"PENALTY_TWO_SHIFTS_SAME_DAY", "PENALTY_DISLIKES_WEEKEND", "BONUS_LIKES_NIGHT",
		"PENALTY_UNAVAILABILITY_FAIRNESS", "PENALTY_UNAVAILABILITY_VIOLATION",
		"SCHEDULER_TIME_LIMIT_SECONDS", "SCHEDULER_RANDOM_SEED", "SCHEDULER_WORKERS",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, settings.Default(), cfg.Settings)
}

func TestLoad_WithCustomEnvVars(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("PENALTY_UNAVAILABILITY", "123456")
	os.Setenv("SCHEDULER_TIME_LIMIT_SECONDS", "30")
	os.Setenv("SCHEDULER_RANDOM_SEED", "7")
	os.Setenv("SCHEDULER_WORKERS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 123456.0, cfg.Settings.PenaltyUnavailability)
	assert.Equal(t, 30, cfg.Settings.SchedulerTimeLimitSeconds)
	assert.Equal(t, int64(7), cfg.Settings.SchedulerRandomSeed)
	assert.Equal(t, 2, cfg.Settings.SchedulerWorkers)

	// Weights left untouched still carry their published defaults.
	assert.Equal(t, settings.Default().PenaltyZeroShifts, cfg.Settings.PenaltyZeroShifts)
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		appEnv   string
		expected bool
	}{
		{"development", true},
		{"production", false},
		{"staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.appEnv, func(t *testing.T) {
			cfg := &Config{AppEnv: tt.appEnv}
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
		})
	}
}

func TestGetEnv(t *testing.T) {
	assert.Equal(t, "default", getEnv("NON_EXISTENT_VAR", "default"))

	os.Setenv("TEST_VAR", "custom")
	defer os.Unsetenv("TEST_VAR")
	assert.Equal(t, "custom", getEnv("TEST_VAR", "default"))
}

func TestGetIntEnv(t *testing.T) {
	assert.Equal(t, 42, getIntEnv("NON_EXISTENT_INT", 42))

	os.Setenv("TEST_INT", "100")
	defer os.Unsetenv("TEST_INT")
	assert.Equal(t, 100, getIntEnv("TEST_INT", 42))

	os.Setenv("TEST_INVALID_INT", "not-a-number")
	defer os.Unsetenv("TEST_INVALID_INT")
	assert.Equal(t, 42, getIntEnv("TEST_INVALID_INT", 42))
}

func TestGetFloat64Env(t *testing.T) {
	assert.Equal(t, 1.5, getFloat64Env("NON_EXISTENT_FLOAT", 1.5))

	os.Setenv("TEST_FLOAT", "200000")
	defer os.Unsetenv("TEST_FLOAT")
	assert.Equal(t, 200000.0, getFloat64Env("TEST_FLOAT", 1.5))

	os.Setenv("TEST_INVALID_FLOAT", "not-a-number")
	defer os.Unsetenv("TEST_INVALID_FLOAT")
	assert.Equal(t, 1.5, getFloat64Env("TEST_INVALID_FLOAT", 1.5))
}
