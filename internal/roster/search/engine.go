// Package search implements the solver abstraction's Solve method: a
// seeded, parallel simulated-annealing local search. No CP-SAT or ILP
// library exists anywhere in the example corpus this engine was built
// against, so the search is a direct, hand-rolled port of that technique
// rather than a thin wrapper over a missing dependency.
package search

import (
	"context"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dutyroster/engine/internal/roster/model"
)

// annealStepsPerSecond turns a wall-clock time budget into a fixed move
// count at config-construction time, so the search loop itself never reads
// the clock: same seed, same time limit, same worker count always walks the
// same sequence of moves (§8 Determinism).
const annealStepsPerSecond = 20000

// minIterations keeps very small time budgets from degenerating into a
// handful of moves.
const minIterations = 2000

// Config controls one Solve invocation (§4.6, §4.6.1).
type Config struct {
	TimeLimit time.Duration
	Seed      int64
	Workers   int

	InitialTemp float64
	CoolingRate float64

	// Iterations bounds the main annealing loop. It is derived from
	// TimeLimit once, in DefaultConfig, rather than checked against the
	// clock on every step.
	Iterations int
}

// DefaultConfig fills in the annealing-specific knobs the public settings
// table does not expose directly.
func DefaultConfig(timeLimit time.Duration, seed int64, workers int) Config {
	return Config{
		TimeLimit:   timeLimit,
		Seed:        seed,
		Workers:     workers,
		InitialTemp: 1000,
		CoolingRate: 0.999,
		Iterations:  iterationsFor(timeLimit),
	}
}

func iterationsFor(timeLimit time.Duration) int {
	n := int(timeLimit.Seconds() * annealStepsPerSecond)
	if n < minIterations {
		n = minIterations
	}
	return n
}

// Status mirrors the kinds of outcome the response builder reports.
type Status string

const (
	StatusOptimal    Status = "OPTIMAL"
	StatusFeasible   Status = "FEASIBLE"
	StatusInfeasible Status = "INFEASIBLE"
	StatusTrivial    Status = "TRIVIAL"
)

// Result is what one Solve call returns.
type Result struct {
	Assignment *model.Assignment
	Objective  float64
	Status     Status
	WorkerID   int
}

// Solve runs cfg.Workers independent seeded searches concurrently, bounded
// by cfg.Iterations rather than wall time, and returns the best feasible
// result found, breaking ties by the lowest worker index for determinism.
// The context timeout is a starvation backstop only; it does not gate the
// per-worker loop under normal operation.
func Solve(ctx context.Context, m *model.Model, cfg Config) (Result, error) {
	if m.NumUsers == 0 || m.NumSlots == 0 {
		return Result{Assignment: model.NewAssignment(m.NumUsers, m.NumSlots), Status: StatusTrivial}, nil
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	runCtx, cancel := context.WithTimeout(ctx, cfg.TimeLimit)
	defer cancel()

	results := make([]Result, workers)
	g, gCtx := errgroup.WithContext(runCtx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(w)))
			a, obj, feasible := anneal(gCtx, m, rng, cfg)
			status := StatusInfeasible
			if feasible {
				status = StatusFeasible
			}
			results[w] = Result{Assignment: a, Objective: obj, Status: status, WorkerID: w}
			return nil
		})
	}
	_ = g.Wait()

	best := -1
	for i, r := range results {
		if r.Status != StatusFeasible {
			continue
		}
		if best == -1 || r.Objective < results[best].Objective {
			best = i
		}
	}
	if best == -1 {
		return Result{Assignment: results[0].Assignment, Status: StatusInfeasible}, nil
	}
	out := results[best]
	out.Status = StatusOptimal
	return out, nil
}

// anneal runs one seeded simulated-annealing search starting from the
// model's hint (or a fresh empty grid if none was supplied). If the hint
// itself violates a hard rule, it is first run through repair, which
// hill-climbs on the count of satisfied hard rules rather than the
// objective; only once the grid is fully feasible does the loop switch to
// optimizing the objective via swap and reassign moves, validating every
// tentative move against every hard rule and accepting worsening moves with
// Metropolis probability while the temperature cools geometrically.
func anneal(ctx context.Context, m *model.Model, rng *rand.Rand, cfg Config) (*model.Assignment, float64, bool) {
	current := startingGrid(m)
	if !m.IsFeasible(current) {
		if !repair(m, current, rng, cfg.Iterations) {
			return current, math.Inf(1), false
		}
	}

	best := current.Clone()
	bestObj := m.Objective(current)
	currentObj := bestObj

	temp := cfg.InitialTemp

	for i := 0; i < cfg.Iterations; i++ {
		select {
		case <-ctx.Done():
			return best, bestObj, true
		default:
		}

		undo, ok := proposeMove(m, current, rng)
		if !ok {
			temp *= cfg.CoolingRate
			continue
		}

		if !m.IsFeasible(current) {
			undo()
			temp *= cfg.CoolingRate
			continue
		}

		newObj := m.Objective(current)
		delta := newObj - currentObj
		accept := delta <= 0
		if !accept && temp > 0 {
			accept = rng.Float64() < math.Exp(-delta/temp)
		}

		if accept {
			currentObj = newObj
			if currentObj < bestObj {
				bestObj = currentObj
				best.CopyFrom(current)
			}
		} else {
			undo()
		}

		temp *= cfg.CoolingRate
	}

	return best, bestObj, true
}

// repair hill-climbs an infeasible starting grid toward feasibility by
// counting how many hard rules currently pass and only keeping moves that
// do not lower that count. It gives up after the same iteration budget the
// main search uses, reporting whether every hard rule held by the end.
func repair(m *model.Model, current *model.Assignment, rng *rand.Rand, iterations int) bool {
	score := feasibilityScore(m, current)
	target := len(m.Hard)
	if score >= target {
		return true
	}

	for i := 0; i < iterations && score < target; i++ {
		undo, ok := proposeMove(m, current, rng)
		if !ok {
			continue
		}
		newScore := feasibilityScore(m, current)
		if newScore >= score {
			score = newScore
		} else {
			undo()
		}
	}
	return score >= target
}

// feasibilityScore counts how many of the model's hard rules pass for the
// given grid, used as a hill-climbing signal while the grid is infeasible.
func feasibilityScore(m *model.Model, a *model.Assignment) int {
	score := 0
	for _, h := range m.Hard {
		if h(a) {
			score++
		}
	}
	return score
}

// startingGrid returns a working copy of the model's hint, or a fresh
// empty one when no hint was supplied.
func startingGrid(m *model.Model) *model.Assignment {
	if m.Hint != nil {
		return m.Hint.Clone()
	}
	return model.NewAssignment(m.NumUsers, m.NumSlots)
}

// proposeMove applies one tentative move to a in place, chosen uniformly
// between a cross-slot swap and a single-slot reassignment, and returns a
// closure that undoes it. It returns ok=false when no such move exists.
func proposeMove(m *model.Model, a *model.Assignment, rng *rand.Rand) (undo func(), ok bool) {
	if rng.Intn(2) == 0 {
		return proposeSwapMove(m, a, rng)
	}
	return proposeReassignMove(m, a, rng)
}

// proposeSwapMove exchanges the occupants of two distinct slots. It
// preserves every user's total count by construction, which keeps it cheap
// to validate but also means it alone can never move a count-dependent
// penalty away from wherever the starting grid left it.
func proposeSwapMove(m *model.Model, a *model.Assignment, rng *rand.Rand) (func(), bool) {
	if m.NumSlots < 2 {
		return nil, false
	}
	s1 := rng.Intn(m.NumSlots)
	s2 := rng.Intn(m.NumSlots)
	if s1 == s2 {
		return nil, false
	}
	occ1 := a.UsersInSlot(s1)
	occ2 := a.UsersInSlot(s2)
	if len(occ1) == 0 || len(occ2) == 0 {
		return nil, false
	}
	u1 := occ1[rng.Intn(len(occ1))]
	u2 := occ2[rng.Intn(len(occ2))]
	if u1 == u2 {
		return nil, false
	}

	a.Set(u1, s1, false)
	a.Set(u2, s2, false)
	a.Set(u1, s2, true)
	a.Set(u2, s1, true)
	return func() {
		a.Set(u1, s2, false)
		a.Set(u2, s1, false)
		a.Set(u1, s1, true)
		a.Set(u2, s2, true)
	}, true
}

// proposeReassignMove replaces one occupant of a slot with a user not
// currently in it, leaving the slot's headcount untouched (coverage stays
// satisfied) while moving one count down and another up. This is the move
// that makes the count-dependent soft tiers (the ideal-drift penalties,
// zero-shift, and the total MinMax spread) reachable at all: a pure swap
// never changes any user's total.
func proposeReassignMove(m *model.Model, a *model.Assignment, rng *rand.Rand) (func(), bool) {
	if m.NumSlots == 0 || m.NumUsers < 2 {
		return nil, false
	}
	s := rng.Intn(m.NumSlots)
	occ := a.UsersInSlot(s)
	if len(occ) == 0 {
		return nil, false
	}
	uOut := occ[rng.Intn(len(occ))]
	uIn := rng.Intn(m.NumUsers)
	if uIn == uOut || a.Get(uIn, s) {
		return nil, false
	}

	a.Set(uOut, s, false)
	a.Set(uIn, s, true)
	return func() {
		a.Set(uIn, s, false)
		a.Set(uOut, s, true)
	}, true
}
