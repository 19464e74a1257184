// Package settings holds the tunable penalty weights and search parameters
// from SPEC_FULL §6, with defaults matching the published table.
package settings

// Settings carries every penalty weight and search parameter a solve needs.
// It is an immutable value read by every solve; nothing mutates it after
// construction.
type Settings struct {
	PenaltyUnavailability        float64
	PenaltyZeroShifts            float64
	PenaltyAboveIdealStrong      float64
	PenaltyBelowIdealStrong      float64
	PenaltyConsecutiveDays       float64
	PenaltyIdealSoft             float64
	PenaltyHistoryFairness       float64
	PenaltyFairnessDutyType      float64
	PenaltyFairnessNight         float64
	PenaltyFairnessWeekendSlots  float64
	PenaltyTotalMinMax           float64
	PenaltyWeeklyClustering      float64
	PenaltyConsecutiveNights     float64
	PenaltyTwoShiftsSameDay      float64
	PenaltyDislikesWeekend       float64
	BonusLikesNight              float64
	PenaltyUnavailabilityFair    float64
	PenaltyUnavailabilityViolate float64

	SchedulerTimeLimitSeconds int
	SchedulerRandomSeed       int64
	SchedulerWorkers          int
}

// Default returns the full-variant default weight table from §6.
func Default() Settings {
	return Settings{
		PenaltyUnavailability:        200000,
		PenaltyZeroShifts:            80000,
		PenaltyAboveIdealStrong:      60000,
		PenaltyBelowIdealStrong:      60000,
		PenaltyConsecutiveDays:       7000,
		PenaltyIdealSoft:             4000,
		PenaltyHistoryFairness:       3000,
		PenaltyFairnessDutyType:      50000,
		PenaltyFairnessNight:         50000,
		PenaltyFairnessWeekendSlots:  25000,
		PenaltyTotalMinMax:           50000,
		PenaltyWeeklyClustering:      100,
		PenaltyConsecutiveNights:     100,
		PenaltyTwoShiftsSameDay:      100,
		PenaltyDislikesWeekend:       10,
		BonusLikesNight:              5,
		PenaltyUnavailabilityFair:    1000,
		PenaltyUnavailabilityViolate: 25000,

		SchedulerTimeLimitSeconds: 60,
		SchedulerRandomSeed:       42,
		SchedulerWorkers:          4,
	}
}

// DefaultSenior returns the senior-variant defaults (§4.9): the same table,
// since the published source carries no senior-specific overrides beyond
// the reduced duty set and role table handled elsewhere.
func DefaultSenior() Settings {
	return Default()
}
