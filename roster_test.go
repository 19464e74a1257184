package roster

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutyroster/engine/internal/roster"
	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/settings"
)

func smallRequest() domain.Request {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	users := make([]domain.User, 4)
	for i := range users {
		users[i] = domain.User{ID: uuid.New(), ExternalID: uuid.New().String()}
	}

	var slots []domain.Slot
	for d := 0; d < 3; d++ {
		date := start.AddDate(0, 0, d)
		aID, cID := uuid.New().String(), uuid.New().String()
		slots = append(slots,
			domain.Slot{ID: uuid.New(), ExternalID: aID, Date: date, DutyType: domain.DutyA, DayType: domain.DayWeekday,
				Seats: []domain.Seat{{ID: uuid.New(), ExternalID: "a1"}, {ID: uuid.New(), ExternalID: "a2"}}},
			domain.Slot{ID: uuid.New(), ExternalID: cID, Date: date, DutyType: domain.DutyC, DayType: domain.DayWeekday,
				Seats: []domain.Seat{{ID: uuid.New(), ExternalID: "c1"}}},
		)
	}

	return domain.Request{
		Period: domain.Period{StartDate: start, EndDate: start.AddDate(0, 0, 2)},
		Users:  users,
		Slots:  slots,
	}
}

func TestCompute_ProducesCoverageForEverySlot(t *testing.T) {
	req := smallRequest()
	w := settings.Default()
	w.SchedulerTimeLimitSeconds = 1
	w.SchedulerWorkers = 2

	resp, err := roster.Compute(context.Background(), req, w)
	require.NoError(t, err)

	bySlot := make(map[string]int)
	for _, a := range resp.Assignments {
		bySlot[a.SlotID]++
	}
	for _, s := range req.Slots {
		assert.Equal(t, s.RequiredCount(), bySlot[s.ExternalID], "slot %s should be fully covered", s.ExternalID)
	}
}

func TestCompute_RejectsInvalidRequest(t *testing.T) {
	_, err := roster.Compute(context.Background(), domain.Request{}, settings.Default())
	assert.Error(t, err)
}
