package roleassign

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/model"
)

func TestDeskOperatorSplit_FullVariantTable(t *testing.T) {
	tests := []struct {
		k        int
		desk, op int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 1},
		{3, 1, 2},
		{4, 2, 2},
		{5, 3, 2},
		{6, 3, 3},
		{7, 4, 3},
		{8, 4, 4},
		{9, 5, 4},
	}
	for _, tt := range tests {
		desk, op := DeskOperatorSplit(tt.k)
		assert.Equalf(t, tt.desk, desk, "k=%d desk", tt.k)
		assert.Equalf(t, tt.op, op, "k=%d operator", tt.k)
		assert.Equal(t, tt.k, desk+op, "desk+operator must equal k for k>0", tt.k)
	}
}

func TestAssign_DutyASlotGetsDeskAndOperatorRoles(t *testing.T) {
	u1 := domain.User{ID: uuid.New(), ExternalID: "u1"}
	u2 := domain.User{ID: uuid.New(), ExternalID: "u2"}
	seat1, seat2 := domain.Seat{ID: uuid.New()}, domain.Seat{ID: uuid.New()}
	slot := domain.Slot{ID: uuid.New(), Date: time.Now(), DutyType: domain.DutyA, Seats: []domain.Seat{seat1, seat2}}

	ctx := domain.BuildContext(domain.Request{
		Period: domain.Period{StartDate: slot.Date, EndDate: slot.Date},
		Users:  []domain.User{u1, u2},
		Slots:  []domain.Slot{slot},
	})

	a := model.NewAssignment(2, 1)
	a.Set(0, 0, true)
	a.Set(1, 0, true)

	bindings := Assign(ctx, a, DeskOperatorSplit)
	require.Len(t, bindings, 2)

	var sawDesk, sawOperator bool
	for _, b := range bindings {
		switch b.Role {
		case domain.SeatRoleDesk:
			sawDesk = true
		case domain.SeatRoleOperator:
			sawOperator = true
		}
	}
	assert.True(t, sawDesk)
	assert.True(t, sawOperator)
}

func TestAssign_NonASlotCarriesNoRole(t *testing.T) {
	u1 := domain.User{ID: uuid.New()}
	seat := domain.Seat{ID: uuid.New()}
	slot := domain.Slot{ID: uuid.New(), Date: time.Now(), DutyType: domain.DutyB, Seats: []domain.Seat{seat}}

	ctx := domain.BuildContext(domain.Request{
		Period: domain.Period{StartDate: slot.Date, EndDate: slot.Date},
		Users:  []domain.User{u1},
		Slots:  []domain.Slot{slot},
	})

	a := model.NewAssignment(1, 1)
	a.Set(0, 0, true)

	bindings := Assign(ctx, a, DeskOperatorSplit)
	require.Len(t, bindings, 1)
	assert.Equal(t, domain.SeatRoleNone, bindings[0].Role)
}
