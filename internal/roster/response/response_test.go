package response

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/model"
	"github.com/dutyroster/engine/internal/roster/roleassign"
	"github.com/dutyroster/engine/internal/roster/search"
	"github.com/dutyroster/engine/internal/roster/solve"
)

func buildTestContext() (*domain.Context, domain.User, domain.User, domain.Slot) {
	u1 := domain.User{ID: uuid.New(), ExternalID: "u1"}
	u2 := domain.User{ID: uuid.New(), ExternalID: "u2"}
	seat := domain.Seat{ID: uuid.New(), ExternalID: "s1"}
	slot := domain.Slot{ID: uuid.New(), ExternalID: "slot1", Date: time.Now(), DutyType: domain.DutyA, Seats: []domain.Seat{seat}}

	ctx := domain.BuildContext(domain.Request{
		Period: domain.Period{StartDate: slot.Date, EndDate: slot.Date},
		Users:  []domain.User{u1, u2},
		Slots:  []domain.Slot{slot},
	})
	return ctx, u1, u2, slot
}

func TestBuild_InfeasibleShortCircuits(t *testing.T) {
	ctx, _, _, _ := buildTestContext()
	outcome := solve.Outcome{Status: search.StatusInfeasible}

	resp := Build(ctx, outcome, nil)

	assert.Empty(t, resp.Assignments)
	assert.Equal(t, "INFEASIBLE", resp.Meta.SolverStatus)
	assert.NotEmpty(t, resp.Meta.Warnings)
}

func TestBuild_EchoesExternalIDs(t *testing.T) {
	ctx, u1, _, slot := buildTestContext()
	outcome := solve.Outcome{Status: search.StatusFeasible, Assignment: model.NewAssignment(2, 1)}
	bindings := []roleassign.Binding{{SlotIndex: 0, SeatIndex: 0, UserIndex: 0, Role: domain.SeatRoleDesk}}

	resp := Build(ctx, outcome, bindings)

	require.Len(t, resp.Assignments, 1)
	a := resp.Assignments[0]
	assert.Equal(t, slot.ExternalID, a.SlotID)
	assert.Equal(t, slot.Seats[0].ExternalID, a.SeatID)
	assert.Equal(t, u1.ExternalID, a.UserID)
	assert.Equal(t, domain.SeatRoleDesk, a.SeatRole)
}

func TestBuild_UnavailabilityViolationCounted(t *testing.T) {
	u1 := domain.User{ID: uuid.New(), ExternalID: "u1"}
	seat := domain.Seat{ID: uuid.New()}
	slot := domain.Slot{ID: uuid.New(), Date: time.Now(), DutyType: domain.DutyA, Seats: []domain.Seat{seat}}

	ctx := domain.BuildContext(domain.Request{
		Period:         domain.Period{StartDate: slot.Date, EndDate: slot.Date},
		Users:          []domain.User{u1},
		Slots:          []domain.Slot{slot},
		Unavailability: []domain.Unavailability{{UserID: u1.ID, SlotID: slot.ID}},
	})

	outcome := solve.Outcome{Status: search.StatusFeasible, Assignment: model.NewAssignment(1, 1)}
	bindings := []roleassign.Binding{{SlotIndex: 0, SeatIndex: 0, UserIndex: 0, Role: domain.SeatRoleDesk}}

	resp := Build(ctx, outcome, bindings)

	assert.Equal(t, 1, resp.Meta.UnavailabilityViolations)
	assert.NotEmpty(t, resp.Meta.Warnings, "forced override should warn since every user was unavailable")
}
