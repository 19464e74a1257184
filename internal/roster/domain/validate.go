package domain

// Validate checks a Request's structural invariants (§4.10) and returns an
// aggregated *ValidationError when any are broken, nil otherwise.
func Validate(req Request) error {
	verr := &ValidationError{}

	if req.Period.StartDate.After(req.Period.EndDate) {
		verr.Add("period start date %s is after end date %s", req.Period.StartDate, req.Period.EndDate)
	}
	if len(req.Users) == 0 {
		verr.Add("at least one user is required")
	}
	if len(req.Slots) == 0 {
		verr.Add("at least one slot is required")
	}

	userIDs := make(map[string]struct{}, len(req.Users))
	for _, u := range req.Users {
		key := u.ID.String()
		if _, dup := userIDs[key]; dup {
			verr.Add("duplicate user id %s", key)
		}
		userIDs[key] = struct{}{}
	}

	slotIDs := make(map[string]struct{}, len(req.Slots))
	for _, s := range req.Slots {
		key := s.ID.String()
		if _, dup := slotIDs[key]; dup {
			verr.Add("duplicate slot id %s", key)
		}
		slotIDs[key] = struct{}{}

		if len(s.Seats) == 0 {
			verr.Add("slot %s has no seats", key)
		}
		seatIDs := make(map[string]struct{}, len(s.Seats))
		for _, seat := range s.Seats {
			skey := seat.ID.String()
			if _, dup := seatIDs[skey]; dup {
				verr.Add("duplicate seat id %s within slot %s", skey, key)
			}
			seatIDs[skey] = struct{}{}
		}
	}

	for _, u := range req.Unavailability {
		if _, ok := userIDs[u.UserID.String()]; !ok {
			verr.Add("unavailability references unknown user %s", u.UserID)
		}
		if _, ok := slotIDs[u.SlotID.String()]; !ok {
			verr.Add("unavailability references unknown slot %s", u.SlotID)
		}
	}

	return verr.ErrOrNil()
}
