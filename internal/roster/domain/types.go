// Package domain holds the entities the roster engine reasons about:
// periods, users, slots, seats, and unavailability declarations.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DutyType is the closed set of duty kinds a slot can carry. Represented as
// a small byte enum rather than a string or registry: the set never grows
// at runtime.
type DutyType byte

const (
	DutyA DutyType = iota // weekday day shift, 08:30-17:00, desk/operator split
	DutyB                 // weekday evening, 17:00-00:00
	DutyC                 // weekday night, 00:00-08:30
	DutyD                 // weekend day, 08:30-17:00
	DutyE                 // weekend evening, 17:00-00:00
	DutyF                 // weekend night, 00:00-08:30
)

func (d DutyType) String() string {
	switch d {
	case DutyA:
		return "A"
	case DutyB:
		return "B"
	case DutyC:
		return "C"
	case DutyD:
		return "D"
	case DutyE:
		return "E"
	case DutyF:
		return "F"
	default:
		return "?"
	}
}

// ParseDutyType maps a wire-format single-letter code to a DutyType.
func ParseDutyType(s string) (DutyType, bool) {
	switch s {
	case "A":
		return DutyA, true
	case "B":
		return DutyB, true
	case "C":
		return DutyC, true
	case "D":
		return DutyD, true
	case "E":
		return DutyE, true
	case "F":
		return DutyF, true
	default:
		return 0, false
	}
}

// IsNight reports whether the duty type runs an overnight shift (C or F).
func (d DutyType) IsNight() bool { return d == DutyC || d == DutyF }

// IsWeekend reports whether the duty type belongs to the weekend trio (D/E/F).
func (d DutyType) IsWeekend() bool { return d == DutyD || d == DutyE || d == DutyF }

// IsMorning reports whether the duty type starts the day (A or D), the
// counterpart used by the forbidden night-to-morning transition rule.
func (d DutyType) IsMorning() bool { return d == DutyA || d == DutyD }

// Category groups duty types for fairness accounting (§4.4 Tier 3).
type Category byte

const (
	CategoryA Category = iota
	CategoryB
	CategoryC
	CategoryWeekend
)

// CategoryOf returns the fairness category a duty type is counted under.
func CategoryOf(d DutyType) Category {
	switch d {
	case DutyA:
		return CategoryA
	case DutyB:
		return CategoryB
	case DutyC:
		return CategoryC
	default:
		return CategoryWeekend
	}
}

// DayType distinguishes weekday from weekend/holiday calendar days.
type DayType byte

const (
	DayWeekday DayType = iota
	DayWeekend
)

func ParseDayType(s string) (DayType, bool) {
	switch s {
	case "WEEKDAY":
		return DayWeekday, true
	case "WEEKEND":
		return DayWeekend, true
	default:
		return 0, false
	}
}

// SeatRole is the post-solve role a seat within an A-slot is given.
type SeatRole byte

const (
	SeatRoleNone SeatRole = iota
	SeatRoleDesk
	SeatRoleOperator
)

func (r SeatRole) String() string {
	switch r {
	case SeatRoleDesk:
		return "DESK"
	case SeatRoleOperator:
		return "OPERATOR"
	default:
		return ""
	}
}

// Period is the calendar window a roster is computed over.
type Period struct {
	ID        uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// SlotTypeCounts is a per-duty-type tally, mirroring the wire history shape.
type SlotTypeCounts struct {
	A, B, C, D, E, F int
}

// Total sums every duty type.
func (c SlotTypeCounts) Total() int { return c.A + c.B + c.C + c.D + c.E + c.F }

// Night returns the combined C+F count.
func (c SlotTypeCounts) Night() int { return c.C + c.F }

// Weekend returns the combined D+E+F count.
func (c SlotTypeCounts) Weekend() int { return c.D + c.E + c.F }

// UserHistory carries a user's duty record from prior periods.
type UserHistory struct {
	WeekdayCount   int
	WeekendCount   int
	ExpectedTotal  *int // nil means "no expectation recorded"
	SlotTypeCounts SlotTypeCounts
	// Desk/Operator history feeds the role assigner (§4.7); absent from the
	// original wire schema's UserHistory but tracked alongside it since the
	// role assigner needs a long-run balance too.
	DeskCount     int
	OperatorCount int
}

// TotalAllTime is the user's all-time duty count.
func (h UserHistory) TotalAllTime() int { return h.WeekdayCount + h.WeekendCount }

// User is a staff member eligible for duty assignment. ExternalID preserves
// the caller's own identifier string so the response can echo it back
// verbatim instead of a derived internal UUID.
type User struct {
	ID              uuid.UUID
	ExternalID      string
	Name            string
	Email           string
	LikesNight      bool
	DislikesWeekend bool
	History         UserHistory
}

// Seat is one position within a Slot.
type Seat struct {
	ID         uuid.UUID
	ExternalID string
	Role       SeatRole // only meaningful when the owning slot's DutyType is DutyA
}

// Segment distinguishes the half-day split used only by the senior variant
// (§4.9), where every slot carries DutyA but is further split into a
// morning or evening half-shift. Full-variant slots leave this at
// SegmentNone.
type Segment byte

const (
	SegmentNone Segment = iota
	SegmentMorning
	SegmentEvening
)

func ParseSegment(s string) (Segment, bool) {
	switch s {
	case "MORNING":
		return SegmentMorning, true
	case "EVENING":
		return SegmentEvening, true
	default:
		return 0, false
	}
}

// Slot is a single duty period requiring RequiredCount() people.
type Slot struct {
	ID         uuid.UUID
	ExternalID string
	Date       time.Time
	DutyType   DutyType
	DayType    DayType
	Segment    Segment // senior variant only
	Seats      []Seat
}

// RequiredCount is the number of people this slot needs, derived from its
// seat list so it can never drift out of sync with a separately stored count.
func (s Slot) RequiredCount() int { return len(s.Seats) }

// Unavailability records that a user has declared themselves unable to take
// a given slot. It is advisory: violating it is heavily penalized, never
// forbidden outright.
type Unavailability struct {
	UserID uuid.UUID
	SlotID uuid.UUID
}

// Request is the full input to a solve.
type Request struct {
	Period         Period
	Users          []User
	Slots          []Slot
	Unavailability []Unavailability
}
