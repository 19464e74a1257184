package solve

import (
	"context"
	"time"

	"github.com/dutyroster/engine/internal/roster/constraints"
	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/model"
	"github.com/dutyroster/engine/internal/roster/search"
	"github.com/dutyroster/engine/internal/roster/settings"
)

// Outcome is what one roster solve produces before role assignment and
// response building run.
type Outcome struct {
	Assignment *model.Assignment
	Status     search.Status
	Objective  float64
	ElapsedMs  float64
}

// Run builds the solver model for ctx, invokes the search engine, and
// returns the winning assignment grid (§4.6).
func Run(parent context.Context, ctx *domain.Context, w settings.Settings) Outcome {
	start := time.Now()

	m := model.NewModel(ctx.NumUsers(), ctx.NumSlots())
	if m.NumUsers == 0 || m.NumSlots == 0 {
		return Outcome{Assignment: model.NewAssignment(m.NumUsers, m.NumSlots), Status: search.StatusTrivial}
	}

	constraints.AddHardConstraints(m, ctx)
	constraints.AddSoftPenalties(m, ctx, w)
	m.Hint = BuildHint(ctx)

	cfg := search.DefaultConfig(
		time.Duration(w.SchedulerTimeLimitSeconds)*time.Second,
		w.SchedulerRandomSeed,
		w.SchedulerWorkers,
	)

	result, _ := search.Solve(parent, m, cfg)

	return Outcome{
		Assignment: result.Assignment,
		Status:     result.Status,
		Objective:  result.Objective,
		ElapsedMs:  float64(time.Since(start).Microseconds()) / 1000.0,
	}
}
