package domain

import (
	"sort"

	"github.com/google/uuid"
)

// IdealRange is the per-category fairness target [Low, High] from §4.1.
type IdealRange struct {
	Low, High int
}

// Context is the fully indexed, read-only view of a Request that every
// constraint and penalty builder consumes. It is built once per solve and
// discarded afterward; nothing shares it across calls.
type Context struct {
	Period Period
	Users  []User
	Slots  []Slot

	userIndex map[uuid.UUID]int
	slotIndex map[uuid.UUID]int
	seatSlot  map[uuid.UUID]int // seat id -> slot index

	// Unavail[u][s] is true when user u declared slot s unavailable.
	Unavail [][]bool

	// DatesSorted lists every distinct slot date, ascending.
	DatesSorted []int64
	// SlotsByDate maps a date's YYYYMMDD key to slot indices on that date,
	// already sorted by slot declaration order.
	SlotsByDate map[int64][]int

	TotalSeats int
	Base       int

	// BlockedPerCategory[u][cat] is how many slots in category cat user u
	// has declared unavailable.
	BlockedPerCategory [][4]int
	MaxBlockedPerCat   [4]int
	TotalBlocked       []int
	MaxTotalBlocked    int

	// TypeIdeals[cat] is the fairness target range for that category,
	// derived from the category's total seat count divided across users.
	TypeIdeals [4]IdealRange
}

// NumUsers and NumSlots are convenience accessors used throughout the
// constraint/penalty builders.
func (c *Context) NumUsers() int { return len(c.Users) }
func (c *Context) NumSlots() int { return len(c.Slots) }

func (c *Context) UserIndex(id uuid.UUID) (int, bool) { i, ok := c.userIndex[id]; return i, ok }
func (c *Context) SlotIndex(id uuid.UUID) (int, bool) { i, ok := c.slotIndex[id]; return i, ok }
func (c *Context) SlotIndexForSeat(seatID uuid.UUID) (int, bool) {
	i, ok := c.seatSlot[seatID]
	return i, ok
}

// dateKey encodes a slot's calendar date as the integer YYYYMMDD for grouping.
func dateKey(s Slot) int64 {
	y, m, d := s.Date.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// BuildContext assembles a Context from a validated Request. Callers must
// run domain.Validate first; BuildContext does not re-validate.
func BuildContext(req Request) *Context {
	ctx := &Context{
		Period:    req.Period,
		Users:     req.Users,
		Slots:     req.Slots,
		userIndex: make(map[uuid.UUID]int, len(req.Users)),
		slotIndex: make(map[uuid.UUID]int, len(req.Slots)),
		seatSlot:  make(map[uuid.UUID]int),
	}

	for i, u := range req.Users {
		ctx.userIndex[u.ID] = i
	}
	for i, s := range req.Slots {
		ctx.slotIndex[s.ID] = i
		for _, seat := range s.Seats {
			ctx.seatSlot[seat.ID] = i
		}
		ctx.TotalSeats += s.RequiredCount()
	}

	n := len(ctx.Users)
	if n > 0 {
		ctx.Base = ctx.TotalSeats / n
	}

	// Group slots by date, preserving input order within a date, and keep
	// dates themselves sorted for the consecutive-day logic.
	ctx.SlotsByDate = make(map[int64][]int)
	seenDates := make(map[int64]struct{})
	for i, s := range req.Slots {
		k := dateKey(s)
		ctx.SlotsByDate[k] = append(ctx.SlotsByDate[k], i)
		if _, ok := seenDates[k]; !ok {
			seenDates[k] = struct{}{}
			ctx.DatesSorted = append(ctx.DatesSorted, k)
		}
	}
	sort.Slice(ctx.DatesSorted, func(i, j int) bool { return ctx.DatesSorted[i] < ctx.DatesSorted[j] })

	ctx.Unavail = make([][]bool, n)
	for i := range ctx.Unavail {
		ctx.Unavail[i] = make([]bool, len(ctx.Slots))
	}
	ctx.BlockedPerCategory = make([][4]int, n)
	ctx.TotalBlocked = make([]int, n)

	for _, ua := range req.Unavailability {
		ui, uok := ctx.UserIndex(ua.UserID)
		si, sok := ctx.SlotIndex(ua.SlotID)
		if !uok || !sok {
			continue
		}
		ctx.Unavail[ui][si] = true
		cat := CategoryOf(ctx.Slots[si].DutyType)
		ctx.BlockedPerCategory[ui][cat]++
		ctx.TotalBlocked[ui]++
	}

	for _, counts := range ctx.BlockedPerCategory {
		for cat := 0; cat < 4; cat++ {
			if counts[cat] > ctx.MaxBlockedPerCat[cat] {
				ctx.MaxBlockedPerCat[cat] = counts[cat]
			}
		}
	}
	for _, t := range ctx.TotalBlocked {
		if t > ctx.MaxTotalBlocked {
			ctx.MaxTotalBlocked = t
		}
	}

	var catTotals [4]int
	for _, s := range ctx.Slots {
		catTotals[CategoryOf(s.DutyType)] += s.RequiredCount()
	}
	if n > 0 {
		for cat := 0; cat < 4; cat++ {
			ctx.TypeIdeals[cat] = IdealRange{
				Low:  catTotals[cat] / n,
				High: ceilDiv(catTotals[cat], n),
			}
		}
	}

	return ctx
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	if a%b == 0 {
		return a / b
	}
	return a/b + 1
}
