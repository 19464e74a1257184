// Package roleassign implements the post-solve DESK/OPERATOR split for A
// (and, in the senior variant, MORNING/EVENING) duty slots (§4.7, §4.9).
package roleassign

import (
	"sort"

	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/model"
)

// Binding is one resolved seat occupancy, ready for the response builder.
// SeatIndex indexes into the owning slot's Seats slice.
type Binding struct {
	SlotIndex int
	SeatIndex int
	UserIndex int
	Role      domain.SeatRole
}

// DeskOperatorSplit returns (desk, operator) counts for k assignees on a
// full-variant A-slot (§4.7's fixed table, generalized for k>=8).
func DeskOperatorSplit(k int) (desk, operator int) {
	switch {
	case k <= 0:
		return 0, 0
	case k == 1:
		return 0, 1
	case k == 2:
		return 1, 1
	case k == 3:
		return 1, 2
	case k == 4:
		return 2, 2
	case k == 5:
		return 3, 2
	case k == 6:
		return 3, 3
	case k == 7:
		return 4, 3
	default:
		desk = (k + 1) / 2
		return desk, k - desk
	}
}

// Assign walks every slot in declaration order (stable across identical
// input) and binds occupants to seats, computing DESK/OPERATOR roles for
// duty-A slots along the way. Running desk/operator tallies carry across
// the whole period so the role split stays balanced, not just within a
// single slot.
func Assign(ctx *domain.Context, a *model.Assignment, split func(k int) (desk, operator int)) []Binding {
	deskSoFar := make([]int, ctx.NumUsers())
	opSoFar := make([]int, ctx.NumUsers())
	for u, user := range ctx.Users {
		deskSoFar[u] = user.History.DeskCount
		opSoFar[u] = user.History.OperatorCount
	}
	// currentDesk/currentOp track only the tally built up during this
	// Assign call, used solely to break ties on the combined (history +
	// current) totals above — two users who arrive at the same combined
	// total should still be ordered by who has taken fewer of the role in
	// this period, not by an arbitrary user index.
	currentDesk := make([]int, ctx.NumUsers())
	currentOp := make([]int, ctx.NumUsers())

	var bindings []Binding
	for s, slot := range ctx.Slots {
		occupants := occupantsSorted(a, s, ctx.NumUsers())
		if slot.DutyType != domain.DutyA {
			for i, u := range occupants {
				if i >= len(slot.Seats) {
					break
				}
				bindings = append(bindings, Binding{SlotIndex: s, SeatIndex: i, UserIndex: u, Role: domain.SeatRoleNone})
			}
			continue
		}

		desk, operator := split(len(occupants))
		deskUsers, opUsers := pickDeskOperator(occupants, desk, operator, deskSoFar, opSoFar, currentDesk, currentOp)

		i := 0
		for _, u := range deskUsers {
			if i >= len(slot.Seats) {
				break
			}
			bindings = append(bindings, Binding{SlotIndex: s, SeatIndex: i, UserIndex: u, Role: domain.SeatRoleDesk})
			deskSoFar[u]++
			currentDesk[u]++
			i++
		}
		for _, u := range opUsers {
			if i >= len(slot.Seats) {
				break
			}
			bindings = append(bindings, Binding{SlotIndex: s, SeatIndex: i, UserIndex: u, Role: domain.SeatRoleOperator})
			opSoFar[u]++
			currentOp[u]++
			i++
		}
	}
	return bindings
}

// occupantsSorted returns, in ascending user-index order, every user
// assigned to slot s — a stable enumeration independent of search order.
func occupantsSorted(a *model.Assignment, s, numUsers int) []int {
	var out []int
	for u := 0; u < numUsers; u++ {
		if a.Get(u, s) {
			out = append(out, u)
		}
	}
	return out
}

// pickDeskOperator splits occupants into desk/operator groups, assigning
// DESK to whoever has the fewest desk duties so far — history plus this
// period's running tally — breaking ties by whoever has taken fewer DESK
// duties within this period alone, and OPERATOR to the rest by the same
// rule.
func pickDeskOperator(occupants []int, desk, operator int, deskSoFar, opSoFar, currentDesk, currentOp []int) (deskUsers, opUsers []int) {
	candidates := append([]int(nil), occupants...)
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if deskSoFar[a] != deskSoFar[b] {
			return deskSoFar[a] < deskSoFar[b]
		}
		if currentDesk[a] != currentDesk[b] {
			return currentDesk[a] < currentDesk[b]
		}
		return a < b
	})

	if desk > len(candidates) {
		desk = len(candidates)
	}
	deskUsers = append(deskUsers, candidates[:desk]...)
	rest := append([]int(nil), candidates[desk:]...)

	sort.Slice(rest, func(i, j int) bool {
		a, b := rest[i], rest[j]
		if opSoFar[a] != opSoFar[b] {
			return opSoFar[a] < opSoFar[b]
		}
		if currentOp[a] != currentOp[b] {
			return currentOp[a] < currentOp[b]
		}
		return a < b
	})
	if operator > len(rest) {
		operator = len(rest)
	}
	opUsers = append(opUsers, rest[:operator]...)
	// Any remainder (k exceeded desk+operator, which DeskOperatorSplit never
	// produces) still needs a role; default to operator.
	opUsers = append(opUsers, rest[operator:]...)
	return deskUsers, opUsers
}
