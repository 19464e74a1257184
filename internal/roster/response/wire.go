package response

import "encoding/json"

type wireAssignment struct {
	SlotID   string  `json:"slotId"`
	SeatID   string  `json:"seatId"`
	UserID   string  `json:"userId"`
	SeatRole *string `json:"seatRole"`
	IsExtra  bool    `json:"isExtra"`
}

type wireMeta struct {
	Base                     int      `json:"base"`
	MaxShifts                int      `json:"maxShifts"`
	MinShifts                int      `json:"minShifts"`
	TotalSlots               int      `json:"totalSlots"`
	TotalAssignments         int      `json:"totalAssignments"`
	UsersAtBasePlus2         int      `json:"usersAtBasePlus2"`
	UnavailabilityViolations int      `json:"unavailabilityViolations"`
	Warnings                 []string `json:"warnings"`
	SolverStatus             string   `json:"solverStatus"`
	SolveTimeMs              float64  `json:"solveTimeMs"`
}

type wireResponse struct {
	Assignments []wireAssignment `json:"assignments"`
	Meta        wireMeta         `json:"meta"`
}

// MarshalJSON renders the response in the wire shape described in §6.
func (r Response) MarshalJSON() ([]byte, error) {
	w := wireResponse{
		Meta: wireMeta{
			Base:                     r.Meta.Base,
			MaxShifts:                r.Meta.MaxShifts,
			MinShifts:                r.Meta.MinShifts,
			TotalSlots:               r.Meta.TotalSlots,
			TotalAssignments:         r.Meta.TotalAssignments,
			UsersAtBasePlus2:         r.Meta.UsersAtBasePlus2,
			UnavailabilityViolations: r.Meta.UnavailabilityViolations,
			Warnings:                 r.Meta.Warnings,
			SolverStatus:             r.Meta.SolverStatus,
			SolveTimeMs:              r.Meta.SolveTimeMs,
		},
	}
	if w.Meta.Warnings == nil {
		w.Meta.Warnings = []string{}
	}
	for _, a := range r.Assignments {
		wa := wireAssignment{SlotID: a.SlotID, SeatID: a.SeatID, UserID: a.UserID, IsExtra: a.IsExtra}
		if role := a.SeatRole.String(); role != "" {
			wa.SeatRole = &role
		}
		w.Assignments = append(w.Assignments, wa)
	}
	if w.Assignments == nil {
		w.Assignments = []wireAssignment{}
	}
	return json.Marshal(w)
}
