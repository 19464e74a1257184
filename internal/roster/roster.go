// Package roster exposes the single Compute entry point: request in,
// response out, no persistence, no transport (§1).
package roster

import (
	"context"

	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/response"
	"github.com/dutyroster/engine/internal/roster/roleassign"
	"github.com/dutyroster/engine/internal/roster/settings"
	"github.com/dutyroster/engine/internal/roster/solve"
)

// Compute validates req, builds its Context, runs the solver, assigns
// DESK/OPERATOR roles for A-slots, and builds the final response.
func Compute(ctx context.Context, req domain.Request, w settings.Settings) (response.Response, error) {
	if err := domain.Validate(req); err != nil {
		return response.Response{}, err
	}

	dctx := domain.BuildContext(req)
	outcome := solve.Run(ctx, dctx, w)
	bindings := roleassign.Assign(dctx, outcome.Assignment, roleassign.DeskOperatorSplit)
	return response.Build(dctx, outcome, bindings), nil
}
