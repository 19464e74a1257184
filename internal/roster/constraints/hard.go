// Package constraints builds the hard feasibility rules and the weighted
// soft penalty terms that together form the solver model for one duty
// roster (§4.3, §4.4).
package constraints

import (
	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/model"
)

// AddHardConstraints registers every inviolable rule from §4.3 onto m.
func AddHardConstraints(m *model.Model, ctx *domain.Context) {
	addCoverage(m, ctx)
	addDailyCap(m, ctx)
	addForbiddenTransition(m, ctx)
	addShiftBand(m, ctx)
}

// addCoverage requires every slot to be filled to exactly its seat count.
func addCoverage(m *model.Model, ctx *domain.Context) {
	m.AddLinear(func(a *model.Assignment) bool {
		for s, slot := range ctx.Slots {
			filled := 0
			for u := 0; u < a.NumUsers; u++ {
				if a.Get(u, s) {
					filled++
				}
			}
			if filled != slot.RequiredCount() {
				return false
			}
		}
		return true
	})
}

// addDailyCap forbids more than 2 assignments to the same user on one date.
// Dates with at most 2 slots trivially satisfy this and are skipped.
func addDailyCap(m *model.Model, ctx *domain.Context) {
	m.AddLinear(func(a *model.Assignment) bool {
		for _, slotIdxs := range ctx.SlotsByDate {
			if len(slotIdxs) <= 2 {
				continue
			}
			for u := 0; u < a.NumUsers; u++ {
				count := 0
				for _, s := range slotIdxs {
					if a.Get(u, s) {
						count++
					}
				}
				if count > 2 {
					return false
				}
			}
		}
		return true
	})
}

// addForbiddenTransition forbids a user from holding both a night slot
// (C/F) and a morning slot (A/D) on the same calendar date (§4.3 item 3,
// the canonical same-day form per the decision recorded in DESIGN.md).
func addForbiddenTransition(m *model.Model, ctx *domain.Context) {
	m.AddBoolAnd(func(a *model.Assignment) bool {
		for _, slotIdxs := range ctx.SlotsByDate {
			var nights, mornings []int
			for _, s := range slotIdxs {
				dt := ctx.Slots[s].DutyType
				switch {
				case dt.IsNight():
					nights = append(nights, s)
				case dt.IsMorning():
					mornings = append(mornings, s)
				}
			}
			if len(nights) == 0 || len(mornings) == 0 {
				continue
			}
			for u := 0; u < a.NumUsers; u++ {
				hasNight := false
				for _, n := range nights {
					if a.Get(u, n) {
						hasNight = true
						break
					}
				}
				if !hasNight {
					continue
				}
				for _, mo := range mornings {
					if a.Get(u, mo) {
						return false
					}
				}
			}
		}
		return true
	})
}

// addShiftBand keeps every user's total count within [base-2, base+2].
func addShiftBand(m *model.Model, ctx *domain.Context) {
	lo := ctx.Base - 2
	if lo < 0 {
		lo = 0
	}
	hi := ctx.Base + 2
	m.AddLinear(func(a *model.Assignment) bool {
		for u := 0; u < a.NumUsers; u++ {
			c := a.CountUser(u)
			if c < lo || c > hi {
				return false
			}
		}
		return true
	})
}
