package domain

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// The wire types below mirror the JSON contract (§6): camelCase fields,
// ISO dates, uppercase enums. DecodeRequest converts them into the
// internal Request the rest of the engine operates on.

type wirePeriod struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type wireSlotTypeCounts struct {
	A int `json:"A"`
	B int `json:"B"`
	C int `json:"C"`
	D int `json:"D"`
	E int `json:"E"`
	F int `json:"F"`
}

type wireUserHistory struct {
	WeekdayCount   int                `json:"weekdayCount"`
	WeekendCount   int                `json:"weekendCount"`
	ExpectedTotal  *int               `json:"expectedTotal"`
	SlotTypeCounts wireSlotTypeCounts `json:"slotTypeCounts"`
	DeskCount      int                `json:"deskCount"`
	OperatorCount  int                `json:"operatorCount"`
}

type wireUser struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	LikesNight      bool            `json:"likesNight"`
	DislikesWeekend bool            `json:"dislikesWeekend"`
	History         wireUserHistory `json:"history"`
}

type wireSeat struct {
	ID   string  `json:"id"`
	Role *string `json:"role"`
}

type wireSlot struct {
	ID       string     `json:"id"`
	Date     string     `json:"date"`
	DutyType string     `json:"dutyType"`
	DayType  string     `json:"dayType"`
	Segment  *string    `json:"segment,omitempty"`
	Seats    []wireSeat `json:"seats"`
}

type wireUnavailability struct {
	UserID string `json:"userId"`
	SlotID string `json:"slotId"`
}

type wireRequest struct {
	Period         wirePeriod           `json:"period"`
	Users          []wireUser           `json:"users"`
	Slots          []wireSlot           `json:"slots"`
	Unavailability []wireUnavailability `json:"unavailability"`
}

// DecodeRequest parses a JSON request body into the internal Request type.
func DecodeRequest(r io.Reader) (Request, error) {
	var w wireRequest
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	return w.toDomain()
}

func (w wireRequest) toDomain() (Request, error) {
	var req Request
	verr := &ValidationError{}

	period, err := w.Period.toDomain()
	if err != nil {
		verr.Add("period: %v", err)
	}
	req.Period = period

	userIDs := make(map[string]uuid.UUID, len(w.Users))
	for _, u := range w.Users {
		du, err := u.toDomain()
		if err != nil {
			verr.Add("user %s: %v", u.ID, err)
			continue
		}
		userIDs[u.ID] = du.ID
		req.Users = append(req.Users, du)
	}

	slotIDs := make(map[string]uuid.UUID, len(w.Slots))
	for _, s := range w.Slots {
		ds, err := s.toDomain()
		if err != nil {
			verr.Add("slot %s: %v", s.ID, err)
			continue
		}
		slotIDs[s.ID] = ds.ID
		req.Slots = append(req.Slots, ds)
	}

	for _, u := range w.Unavailability {
		uid, uok := userIDs[u.UserID]
		sid, sok := slotIDs[u.SlotID]
		if !uok || !sok {
			verr.Add("unavailability references unknown user/slot %s/%s", u.UserID, u.SlotID)
			continue
		}
		req.Unavailability = append(req.Unavailability, Unavailability{UserID: uid, SlotID: sid})
	}

	if verr.HasErrors() {
		return Request{}, verr
	}
	return req, nil
}

func (w wirePeriod) toDomain() (Period, error) {
	start, err := time.Parse("2006-01-02", w.StartDate)
	if err != nil {
		return Period{}, fmt.Errorf("invalid startDate %q: %w", w.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", w.EndDate)
	if err != nil {
		return Period{}, fmt.Errorf("invalid endDate %q: %w", w.EndDate, err)
	}
	return Period{
		ID:        stableUUID(w.ID),
		Name:      w.Name,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func (w wireUser) toDomain() (User, error) {
	return User{
		ID:              stableUUID(w.ID),
		ExternalID:      w.ID,
		Name:            w.Name,
		Email:           w.Email,
		LikesNight:      w.LikesNight,
		DislikesWeekend: w.DislikesWeekend,
		History: UserHistory{
			WeekdayCount:  w.History.WeekdayCount,
			WeekendCount:  w.History.WeekendCount,
			ExpectedTotal: w.History.ExpectedTotal,
			SlotTypeCounts: SlotTypeCounts{
				A: w.History.SlotTypeCounts.A,
				B: w.History.SlotTypeCounts.B,
				C: w.History.SlotTypeCounts.C,
				D: w.History.SlotTypeCounts.D,
				E: w.History.SlotTypeCounts.E,
				F: w.History.SlotTypeCounts.F,
			},
			DeskCount:     w.History.DeskCount,
			OperatorCount: w.History.OperatorCount,
		},
	}, nil
}

func (w wireSlot) toDomain() (Slot, error) {
	date, err := time.Parse("2006-01-02", w.Date)
	if err != nil {
		return Slot{}, fmt.Errorf("invalid date %q: %w", w.Date, err)
	}
	dutyType, ok := ParseDutyType(w.DutyType)
	if !ok {
		return Slot{}, fmt.Errorf("unknown dutyType %q", w.DutyType)
	}
	dayType, ok := ParseDayType(w.DayType)
	if !ok {
		return Slot{}, fmt.Errorf("unknown dayType %q", w.DayType)
	}
	var segment Segment
	if w.Segment != nil {
		segment, ok = ParseSegment(*w.Segment)
		if !ok {
			return Slot{}, fmt.Errorf("unknown segment %q", *w.Segment)
		}
	}
	if len(w.Seats) == 0 {
		return Slot{}, fmt.Errorf("slot has no seats")
	}
	seats := make([]Seat, 0, len(w.Seats))
	for _, s := range w.Seats {
		seats = append(seats, Seat{ID: stableUUID(s.ID), ExternalID: s.ID})
	}
	return Slot{
		ID:         stableUUID(w.ID),
		ExternalID: w.ID,
		Date:       date,
		DutyType:   dutyType,
		DayType:    dayType,
		Segment:    segment,
		Seats:      seats,
	}, nil
}

// stableUUID derives a deterministic UUID from an external string id, so
// callers may use whatever identifier scheme their own storage uses
// without the engine needing to parse or mint real UUIDs for them.
func stableUUID(external string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(external))
}
