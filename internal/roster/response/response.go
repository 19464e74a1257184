// Package response builds the final assignment list and solve statistics
// (§4.8) from a solver outcome and its role bindings.
package response

import (
	"fmt"

	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/roleassign"
	"github.com/dutyroster/engine/internal/roster/search"
	"github.com/dutyroster/engine/internal/roster/solve"
)

// Assignment is one resolved seat occupancy on the wire, identified by the
// caller's own external id strings rather than internal UUIDs.
type Assignment struct {
	SlotID   string
	SeatID   string
	UserID   string
	SeatRole domain.SeatRole
	IsExtra  bool
}

// Meta carries the solve's summary statistics (§6).
type Meta struct {
	Base                     int
	MaxShifts                int
	MinShifts                int
	TotalSlots               int
	TotalAssignments         int
	UsersAtBasePlus2         int
	UnavailabilityViolations int
	Warnings                 []string
	SolverStatus             string
	SolveTimeMs              float64
}

// Response is the complete output of one solve.
type Response struct {
	Assignments []Assignment
	Meta        Meta
}

// Build assembles a Response from the solver outcome and the role
// bindings computed over it.
func Build(ctx *domain.Context, outcome solve.Outcome, bindings []roleassign.Binding) Response {
	resp := Response{
		Meta: Meta{
			Base:         ctx.Base,
			TotalSlots:   ctx.NumSlots(),
			SolverStatus: string(outcome.Status),
			SolveTimeMs:  outcome.ElapsedMs,
		},
	}

	if outcome.Status == search.StatusInfeasible {
		resp.Meta.Warnings = append(resp.Meta.Warnings,
			"solver could not find a feasible assignment within the time budget")
		return resp
	}
	if outcome.Status == search.StatusTrivial {
		resp.Meta.Warnings = append(resp.Meta.Warnings, "request had no users or no slots; returning an empty roster")
		return resp
	}

	running := make([]int, ctx.NumUsers())
	unavailViolations := 0

	for _, b := range bindings {
		slot := ctx.Slots[b.SlotIndex]
		user := ctx.Users[b.UserIndex]

		running[b.UserIndex]++
		isExtra := running[b.UserIndex] > ctx.Base+1

		if ctx.Unavail[b.UserIndex][b.SlotIndex] {
			unavailViolations++
		}

		resp.Assignments = append(resp.Assignments, Assignment{
			SlotID:   slot.ExternalID,
			SeatID:   slot.Seats[b.SeatIndex].ExternalID,
			UserID:   user.ExternalID,
			SeatRole: b.Role,
			IsExtra:  isExtra,
		})
	}

	resp.Meta.TotalAssignments = len(resp.Assignments)
	resp.Meta.UnavailabilityViolations = unavailViolations

	min, max := -1, -1
	for u := 0; u < ctx.NumUsers(); u++ {
		c := running[u]
		if min == -1 || c < min {
			min = c
		}
		if max == -1 || c > max {
			max = c
		}
		if c > ctx.Base+1 {
			resp.Meta.UsersAtBasePlus2++
		}
	}
	if min != -1 {
		resp.Meta.MinShifts = min
		resp.Meta.MaxShifts = max
	}

	for s, slot := range ctx.Slots {
		if allUsersUnavailable(ctx, s) {
			resp.Meta.Warnings = append(resp.Meta.Warnings, fmt.Sprintf(
				"slot %s had to ignore unavailability - all users closed it", slot.ExternalID))
		}
	}

	return resp
}

// allUsersUnavailable reports whether every user declared slot s
// unavailable, meaning any fill necessarily overrides someone's request.
func allUsersUnavailable(ctx *domain.Context, s int) bool {
	if ctx.NumUsers() == 0 {
		return false
	}
	for u := 0; u < ctx.NumUsers(); u++ {
		if !ctx.Unavail[u][s] {
			return false
		}
	}
	return true
}
