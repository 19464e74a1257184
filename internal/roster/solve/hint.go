// Package solve wires the context, constraint builders, and search engine
// together in Run, which returns the search engine's winning assignment
// grid (§4.5, §4.6).
package solve

import (
	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/model"
)

// BuildHint seeds a round-robin starting assignment (§4.5): users are given
// targets of base or base+1 (the first `remainder` users get the extra
// one), and slots are filled in date order by picking the least-loaded
// eligible user who has not yet reached their target. A candidate is
// eligible for a slot only if assigning them would not itself break the
// per-day cap or the forbidden same-day night/morning transition. This
// greedy pass does not guarantee a feasible grid even when one exists (the
// shift band is not checked, and a slot where every candidate conflicts
// still gets a conflicting pick); such a hint goes through the search
// engine's repair phase.
func BuildHint(ctx *domain.Context) *model.Assignment {
	a := model.NewAssignment(ctx.NumUsers(), ctx.NumSlots())
	n := ctx.NumUsers()
	if n == 0 {
		return a
	}

	remainder := ctx.TotalSeats % n
	target := make([]int, n)
	for u := 0; u < n; u++ {
		target[u] = ctx.Base
		if u < remainder {
			target[u]++
		}
	}

	dates := slotDates(ctx)
	loaded := make([]int, n)
	for _, date := range ctx.DatesSorted {
		for _, s := range ctx.SlotsByDate[date] {
			need := ctx.Slots[s].RequiredCount()
			for i := 0; i < need; i++ {
				pick := pickLeastLoaded(ctx, a, s, loaded, target, dates)
				if pick == -1 {
					break
				}
				a.Set(pick, s, true)
				loaded[pick]++
			}
		}
	}
	return a
}

// slotDates maps each slot index to the date-key bucket it belongs to, so
// the eligibility checks below can find a slot's sibling slots on the same
// date without re-deriving dates from scratch.
func slotDates(ctx *domain.Context) []int64 {
	dates := make([]int64, ctx.NumSlots())
	for date, idxs := range ctx.SlotsByDate {
		for _, s := range idxs {
			dates[s] = date
		}
	}
	return dates
}

// pickLeastLoaded returns the user with the smallest loaded count (lowest
// user index on ties) who is not already assigned to slot s, has not yet reached their target,
// and would not break the per-day cap or forbidden-transition hard rules
// by taking this slot. It falls back, in order, to an eligible user who has
// already met their target, and finally to the least-loaded user even if
// they would break a hard rule — coverage always wins over the hint's
// balance and over the hint's feasibility, since the search engine's repair
// phase can still recover from the rare slot where every candidate
// conflicts.
func pickLeastLoaded(ctx *domain.Context, a *model.Assignment, s int, loaded, target []int, dates []int64) int {
	best, bestLoad := -1, 0
	bestOver, bestOverLoad := -1, 0
	fallback, fallbackLoad := -1, 0

	for u := range loaded {
		if a.Get(u, s) {
			continue
		}
		if violatesDailyCap(ctx, a, u, s, dates) || violatesForbiddenTransition(ctx, a, u, s, dates) {
			if fallback == -1 || loaded[u] < fallbackLoad {
				fallback = u
				fallbackLoad = loaded[u]
			}
			continue
		}
		if loaded[u] >= target[u] {
			if bestOver == -1 || loaded[u] < bestOverLoad {
				bestOver = u
				bestOverLoad = loaded[u]
			}
			continue
		}
		if best == -1 || loaded[u] < bestLoad {
			best = u
			bestLoad = loaded[u]
		}
	}

	if best != -1 {
		return best
	}
	if bestOver != -1 {
		return bestOver
	}
	return fallback
}

// violatesDailyCap reports whether assigning u to slot s would give them a
// third assignment on a date that has more than 2 slots (§4.3 item 2).
// Dates with at most 2 slots trivially satisfy the cap regardless of pick.
func violatesDailyCap(ctx *domain.Context, a *model.Assignment, u, s int, dates []int64) bool {
	slotIdxs := ctx.SlotsByDate[dates[s]]
	if len(slotIdxs) <= 2 {
		return false
	}
	count := 0
	for _, other := range slotIdxs {
		if a.Get(u, other) {
			count++
		}
	}
	return count >= 2
}

// violatesForbiddenTransition reports whether assigning u to slot s would
// give them both a night slot and a morning slot on the same date (§4.3
// item 3).
func violatesForbiddenTransition(ctx *domain.Context, a *model.Assignment, u, s int, dates []int64) bool {
	dt := ctx.Slots[s].DutyType
	if !dt.IsNight() && !dt.IsMorning() {
		return false
	}
	for _, other := range ctx.SlotsByDate[dates[s]] {
		if other == s || !a.Get(u, other) {
			continue
		}
		ot := ctx.Slots[other].DutyType
		if dt.IsNight() && ot.IsMorning() {
			return true
		}
		if dt.IsMorning() && ot.IsNight() {
			return true
		}
	}
	return false
}
