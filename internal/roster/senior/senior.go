// Package senior implements the half-shift variant (§4.9): only duty type
// A exists, split into MORNING/EVENING segments, with no forbidden
// night-to-morning transition (there are no night slots to forbid) and a
// different DESK/OPERATOR split table.
package senior

import (
	"context"

	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/response"
	"github.com/dutyroster/engine/internal/roster/roleassign"
	"github.com/dutyroster/engine/internal/roster/settings"
	"github.com/dutyroster/engine/internal/roster/solve"
)

// DeskOperatorSplit is the senior-variant role table (§4.9): one assignee
// takes OPERATOR alone, two split evenly, anything larger keeps exactly
// one OPERATOR and puts everyone else on DESK.
func DeskOperatorSplit(k int) (desk, operator int) {
	switch {
	case k <= 0:
		return 0, 0
	case k == 1:
		return 0, 1
	case k == 2:
		return 1, 1
	default:
		return k - 1, 1
	}
}

// Compute runs the same pipeline as the full variant, substituting only
// the role-assignment table. The hard constraint builder's forbidden
// night-to-morning transition and the soft penalty builder's duty-type
// fairness terms degrade to no-ops automatically here: every slot carries
// DutyA, so there are no night slots to forbid pairing with and the
// per-category ranges outside A collapse to zero.
func Compute(ctx context.Context, req domain.Request, w settings.Settings) (response.Response, error) {
	if err := domain.Validate(req); err != nil {
		return response.Response{}, err
	}
	for _, s := range req.Slots {
		if s.DutyType != domain.DutyA {
			verr := &domain.ValidationError{}
			verr.Add("senior variant slot %s has duty type %s, only A is valid", s.ID, s.DutyType)
			return response.Response{}, verr
		}
	}

	dctx := domain.BuildContext(req)
	outcome := solve.Run(ctx, dctx, w)
	bindings := roleassign.Assign(dctx, outcome.Assignment, DeskOperatorSplit)
	return response.Build(dctx, outcome, bindings), nil
}
