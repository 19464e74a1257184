// Package model defines the small solver abstraction the roster engine is
// built against: a flat boolean assignment grid, a set of hard feasibility
// checks, and a set of weighted soft penalty terms summed into one
// objective. It stands in for a BoolVar/IntVar/AddLinear-style constraint
// model; every "variable" here is either a grid cell or a named linear
// expression computed directly from the grid, since nothing in this model
// needs a free variable the grid cells don't already provide.
package model

// Assignment is the decision-variable grid x[u,s], stored as a flat slice
// indexed u*NumSlots+s rather than a map, since every cell is touched on
// every move proposal.
type Assignment struct {
	NumUsers int
	NumSlots int
	x        []bool
}

// NewAssignment allocates an empty grid.
func NewAssignment(numUsers, numSlots int) *Assignment {
	return &Assignment{NumUsers: numUsers, NumSlots: numSlots, x: make([]bool, numUsers*numSlots)}
}

func (a *Assignment) idx(u, s int) int { return u*a.NumSlots + s }

// Get reports whether user u is assigned to slot s.
func (a *Assignment) Get(u, s int) bool { return a.x[a.idx(u, s)] }

// Set assigns or unassigns user u to slot s.
func (a *Assignment) Set(u, s int, v bool) { a.x[a.idx(u, s)] = v }

// Clone deep-copies the grid for a tentative move that might be reverted.
func (a *Assignment) Clone() *Assignment {
	out := &Assignment{NumUsers: a.NumUsers, NumSlots: a.NumSlots, x: make([]bool, len(a.x))}
	copy(out.x, a.x)
	return out
}

// CopyFrom overwrites a's grid with other's, avoiding an allocation when
// reverting a rejected move on a reusable scratch buffer.
func (a *Assignment) CopyFrom(other *Assignment) { copy(a.x, other.x) }

// CountUser returns how many slots user u currently holds (count[u] in §4.2).
func (a *Assignment) CountUser(u int) int {
	n := 0
	base := u * a.NumSlots
	for s := 0; s < a.NumSlots; s++ {
		if a.x[base+s] {
			n++
		}
	}
	return n
}

// UsersInSlot returns the user indices currently occupying slot s.
func (a *Assignment) UsersInSlot(s int) []int {
	var out []int
	for u := 0; u < a.NumUsers; u++ {
		if a.x[a.idx(u, s)] {
			out = append(out, u)
		}
	}
	return out
}

// HardCheck validates the whole grid against one inviolable rule.
// AddLinear/AddBoolAnd/AddBoolOr-style hard constraints compile down to one
// of these: the grid is small enough that whole-grid re-evaluation on every
// proposed move is cheap, and it keeps each rule's definition in one place
// instead of spread across an incremental-update path.
type HardCheck func(a *Assignment) bool

// PenaltyFunc computes one soft-constraint term's contribution to the
// objective for the current grid. AddMaxEquality/AddMinEquality/
// AddAbsEquality-style auxiliaries are just named PenaltyFuncs here, since
// every such "variable" in this model exists only to feed exactly one
// weighted term.
type PenaltyFunc func(a *Assignment) float64

// NamedPenalty pairs a human-readable label with its contribution function,
// so the solver driver can report which tiers drove the final objective.
type NamedPenalty struct {
	Name    string
	Compute PenaltyFunc
}

// Model is the full constraint program for one solve: every hard rule that
// must hold, every soft term that should be minimized, and the initial hint
// to search from (§4.5).
type Model struct {
	NumUsers int
	NumSlots int

	Hard []HardCheck
	Soft []NamedPenalty

	Hint *Assignment
}

// NewModel creates an empty model over the given grid dimensions.
func NewModel(numUsers, numSlots int) *Model {
	return &Model{NumUsers: numUsers, NumSlots: numSlots}
}

// AddLinear registers a hard linear relation (used for coverage, the per-day
// cap, and the global shift band in §4.3).
func (m *Model) AddLinear(check HardCheck) { m.Hard = append(m.Hard, check) }

// AddBoolAnd registers a hard all-must-hold rule; semantically identical to
// AddLinear but named separately to mirror the conjunctive constraints of
// §4.3 item 3 (the forbidden transition is an AND of two negations).
func (m *Model) AddBoolAnd(check HardCheck) { m.Hard = append(m.Hard, check) }

// Minimize registers one weighted term of the objective.
func (m *Model) Minimize(name string, f PenaltyFunc) {
	m.Soft = append(m.Soft, NamedPenalty{Name: name, Compute: f})
}

// IsFeasible reports whether every hard rule holds for the given grid.
func (m *Model) IsFeasible(a *Assignment) bool {
	for _, h := range m.Hard {
		if !h(a) {
			return false
		}
	}
	return true
}

// Objective sums every soft term's contribution.
func (m *Model) Objective(a *Assignment) float64 {
	total := 0.0
	for _, term := range m.Soft {
		total += term.Compute(a)
	}
	return total
}

// Breakdown returns a copy of the registered soft terms, in registration
// order, for diagnostics. It does not evaluate the terms: a is not read,
// and each term's contribution is whatever its Compute returns.
func (m *Model) Breakdown(a *Assignment) []NamedPenalty {
	out := make([]NamedPenalty, len(m.Soft))
	copy(out, m.Soft)
	return out
}
