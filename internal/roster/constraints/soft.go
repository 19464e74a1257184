package constraints

import (
	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/model"
	"github.com/dutyroster/engine/internal/roster/settings"
)

// AddSoftPenalties registers every weighted soft term from §4.4 onto m.
func AddSoftPenalties(m *model.Model, ctx *domain.Context, w settings.Settings) {
	ideals := computeIdeals(ctx)

	addUnavailability(m, ctx, w)
	addZeroShifts(m, ctx, w)
	addIdealStrong(m, ctx, w, ideals)
	addConsecutiveSameType(m, ctx, w)
	addFairnessMinMax(m, ctx, w)
	addIdealSoftAndHistory(m, ctx, w, ideals)
	addWeeklyClustering(m, ctx, w)
	addConsecutiveNights(m, ctx, w)
	addTwoShiftsSameDay(m, ctx, w)
	addPreferences(m, ctx, w)
}

// computeIdeals derives each user's per-user target count (§4.4 Tier 3.5):
// base adjusted by how far their long-run history sits from what was
// expected of them, clamped to the same band the shift-band hard
// constraint enforces.
func computeIdeals(ctx *domain.Context) []int {
	lo := maxOf(0, ctx.Base-2)
	hi := ctx.Base + 2
	out := make([]int, ctx.NumUsers())
	for u, user := range ctx.Users {
		expected := 0
		if user.History.ExpectedTotal != nil {
			expected = *user.History.ExpectedTotal
		}
		drift := user.History.TotalAllTime() - expected
		out[u] = clamp(ctx.Base-drift, lo, hi)
	}
	return out
}

// addUnavailability penalizes each violated unavailability declaration,
// scaled by the fairness tie-breaker (users who have closed the most in
// that category, and overall, pay less for one more violation) and by a
// repeat-violation surcharge when the same user absorbs more than one.
func addUnavailability(m *model.Model, ctx *domain.Context, w settings.Settings) {
	m.Minimize("unavailability", func(a *model.Assignment) float64 {
		total := 0.0
		violations := make([]int, ctx.NumUsers())
		for u := range ctx.Users {
			for s, slot := range ctx.Slots {
				if !ctx.Unavail[u][s] || !a.Get(u, s) {
					continue
				}
				cat := domain.CategoryOf(slot.DutyType)
				fairBump := float64(ctx.MaxBlockedPerCat[cat]-ctx.BlockedPerCategory[u][cat]) * w.PenaltyUnavailabilityFair
				fairBump += float64(ctx.MaxTotalBlocked-ctx.TotalBlocked[u]) * (w.PenaltyUnavailabilityFair / 10)
				total += w.PenaltyUnavailability + fairBump
				violations[u]++
			}
		}
		for _, v := range violations {
			if v > 1 {
				total += float64(v-1) * w.PenaltyUnavailabilityViolate
			}
		}
		return total
	})
}

func addZeroShifts(m *model.Model, ctx *domain.Context, w settings.Settings) {
	m.Minimize("zero_shifts", func(a *model.Assignment) float64 {
		total := 0.0
		for u := range ctx.Users {
			if a.CountUser(u) == 0 {
				total += w.PenaltyZeroShifts
			}
		}
		return total
	})
}

// addIdealStrong penalizes heavily once a user drifts more than one shift
// away from their ideal target.
func addIdealStrong(m *model.Model, ctx *domain.Context, w settings.Settings, ideals []int) {
	m.Minimize("ideal_strong", func(a *model.Assignment) float64 {
		total := 0.0
		for u := range ctx.Users {
			c := a.CountUser(u)
			ideal := ideals[u]
			if c > ideal+1 {
				total += float64(c-(ideal+1)) * w.PenaltyAboveIdealStrong
			} else if c < ideal-1 {
				total += float64((ideal-1)-c) * w.PenaltyBelowIdealStrong
			}
		}
		return total
	})
}

// addConsecutiveSameType penalizes a user holding the same duty type on
// three consecutive calendar dates (§4.4 Tier 2).
func addConsecutiveSameType(m *model.Model, ctx *domain.Context, w settings.Settings) {
	m.Minimize("consecutive_same_type", func(a *model.Assignment) float64 {
		total := 0.0
		dates := ctx.DatesSorted
		for u := range ctx.Users {
			for i := 0; i+2 < len(dates); i++ {
				if daysBetween(decodeDateKey(dates[i]), decodeDateKey(dates[i+2])) != 2 {
					continue
				}
				for dt := domain.DutyA; dt <= domain.DutyF; dt++ {
					if hasType(ctx, a, u, dates[i], dt) &&
						hasType(ctx, a, u, dates[i+1], dt) &&
						hasType(ctx, a, u, dates[i+2], dt) {
						total += w.PenaltyConsecutiveDays
					}
				}
			}
		}
		return total
	})
}

func hasType(ctx *domain.Context, a *model.Assignment, u int, date int64, dt domain.DutyType) bool {
	for _, s := range ctx.SlotsByDate[date] {
		if ctx.Slots[s].DutyType == dt && a.Get(u, s) {
			return true
		}
	}
	return false
}

// addFairnessMinMax registers the MinMax-range terms for total count, each
// duty category, each weekend duty type individually, and combined night
// duty (§4.4 Tier 3).
func addFairnessMinMax(m *model.Model, ctx *domain.Context, w settings.Settings) {
	m.Minimize("fairness_total", func(a *model.Assignment) float64 {
		return float64(minMaxRange(ctx, a, nil)) * w.PenaltyTotalMinMax
	})

	for cat := domain.CategoryA; cat <= domain.CategoryWeekend; cat++ {
		cat := cat
		weight := w.PenaltyFairnessDutyType
		m.Minimize("fairness_category", func(a *model.Assignment) float64 {
			pred := func(dt domain.DutyType) bool { return domain.CategoryOf(dt) == cat }
			return float64(minMaxRange(ctx, a, pred)) * weight
		})
	}

	for _, dt := range []domain.DutyType{domain.DutyD, domain.DutyE, domain.DutyF} {
		dt := dt
		m.Minimize("fairness_weekend_slot", func(a *model.Assignment) float64 {
			pred := func(d domain.DutyType) bool { return d == dt }
			return float64(minMaxRange(ctx, a, pred)) * w.PenaltyFairnessWeekendSlots
		})
	}

	m.Minimize("fairness_night", func(a *model.Assignment) float64 {
		pred := func(d domain.DutyType) bool { return d.IsNight() }
		return float64(minMaxRange(ctx, a, pred)) * w.PenaltyFairnessNight
	})
}

// minMaxRange computes max(count)-min(count) across users, where count is
// restricted to slots whose duty type passes pred (nil means every slot).
func minMaxRange(ctx *domain.Context, a *model.Assignment, pred func(domain.DutyType) bool) int {
	if ctx.NumUsers() == 0 {
		return 0
	}
	min, max := -1, -1
	for u := range ctx.Users {
		c := 0
		for s, slot := range ctx.Slots {
			if pred != nil && !pred(slot.DutyType) {
				continue
			}
			if a.Get(u, s) {
				c++
			}
		}
		if min == -1 || c < min {
			min = c
		}
		if max == -1 || c > max {
			max = c
		}
	}
	return max - min
}

// addIdealSoftAndHistory adds the lighter-weight linear drift terms layered
// underneath the strong ideal penalty.
func addIdealSoftAndHistory(m *model.Model, ctx *domain.Context, w settings.Settings, ideals []int) {
	m.Minimize("ideal_soft", func(a *model.Assignment) float64 {
		total := 0.0
		for u := range ctx.Users {
			total += float64(absInt(a.CountUser(u)-ideals[u])) * w.PenaltyIdealSoft
		}
		return total
	})
	m.Minimize("history_fairness", func(a *model.Assignment) float64 {
		total := 0.0
		for u := range ctx.Users {
			total += float64(absInt(a.CountUser(u)-ideals[u])) * w.PenaltyHistoryFairness
		}
		return total
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// addWeeklyClustering penalizes more than 2 assignments inside any 7-day
// window measured from the period start.
func addWeeklyClustering(m *model.Model, ctx *domain.Context, w settings.Settings) {
	m.Minimize("weekly_clustering", func(a *model.Assignment) float64 {
		total := 0.0
		weekOf := make(map[int64]int, len(ctx.DatesSorted))
		for _, d := range ctx.DatesSorted {
			weekOf[d] = weekIndex(ctx, d)
		}
		for u := range ctx.Users {
			perWeek := map[int]int{}
			for _, d := range ctx.DatesSorted {
				for _, s := range ctx.SlotsByDate[d] {
					if a.Get(u, s) {
						perWeek[weekOf[d]]++
					}
				}
			}
			for _, c := range perWeek {
				if c > 2 {
					total += float64(c-2) * w.PenaltyWeeklyClustering
				}
			}
		}
		return total
	})
}

// weekIndex buckets a date key into a 7-day window index from period start.
func weekIndex(ctx *domain.Context, date int64) int {
	daysFromStart := daysBetween(ctx.Period.StartDate, decodeDateKey(date))
	if daysFromStart < 0 {
		daysFromStart = 0
	}
	return daysFromStart / 7
}

func addConsecutiveNights(m *model.Model, ctx *domain.Context, w settings.Settings) {
	m.Minimize("consecutive_nights", func(a *model.Assignment) float64 {
		total := 0.0
		dates := ctx.DatesSorted
		for u := range ctx.Users {
			for i := 0; i+1 < len(dates); i++ {
				if daysBetween(decodeDateKey(dates[i]), decodeDateKey(dates[i+1])) != 1 {
					continue
				}
				if hasNightOn(ctx, a, u, dates[i]) && hasNightOn(ctx, a, u, dates[i+1]) {
					total += w.PenaltyConsecutiveNights
				}
			}
		}
		return total
	})
}

func hasNightOn(ctx *domain.Context, a *model.Assignment, u int, date int64) bool {
	for _, s := range ctx.SlotsByDate[date] {
		if ctx.Slots[s].DutyType.IsNight() && a.Get(u, s) {
			return true
		}
	}
	return false
}

func addTwoShiftsSameDay(m *model.Model, ctx *domain.Context, w settings.Settings) {
	m.Minimize("two_shifts_same_day", func(a *model.Assignment) float64 {
		total := 0.0
		for u := range ctx.Users {
			for _, slotIdxs := range ctx.SlotsByDate {
				c := 0
				for _, s := range slotIdxs {
					if a.Get(u, s) {
						c++
					}
				}
				if c == 2 {
					total += w.PenaltyTwoShiftsSameDay
				}
			}
		}
		return total
	})
}

func addPreferences(m *model.Model, ctx *domain.Context, w settings.Settings) {
	m.Minimize("preferences", func(a *model.Assignment) float64 {
		total := 0.0
		for u, user := range ctx.Users {
			for s, slot := range ctx.Slots {
				if !a.Get(u, s) {
					continue
				}
				if user.DislikesWeekend && slot.DutyType.IsWeekend() {
					total += w.PenaltyDislikesWeekend
				}
				if user.LikesNight && slot.DutyType.IsNight() {
					total -= w.BonusLikesNight
				}
			}
		}
		return total
	})
}
