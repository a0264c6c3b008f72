package overtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/payroll-backend-go/internal/config"
	"github.com/attendly/payroll-backend-go/internal/domain/attendance"
	"github.com/attendly/payroll-backend-go/internal/domain/overtime"
	"github.com/attendly/payroll-backend-go/internal/domain/period"
	"github.com/attendly/payroll-backend-go/internal/pkg/keylock"
)

type fakePeriodRepo struct {
	periods map[string]period.PayPeriod
}

func (r *fakePeriodRepo) Create(_ context.Context, p period.PayPeriod) (period.PayPeriod, error) {
	p.ID = uuid.NewString()
	r.periods[p.ID] = p
	return p, nil
}

func (r *fakePeriodRepo) GetByID(_ context.Context, id string) (period.PayPeriod, error) {
	p, ok := r.periods[id]
	if !ok {
		return period.PayPeriod{}, period.ErrPeriodNotFound
	}
	return p, nil
}

func (r *fakePeriodRepo) MarkProcessed(_ context.Context, id string, adminID string) (period.PayPeriod, error) {
	p := r.periods[id]
	p.Processed = true
	p.UpdatedBy = &adminID
	r.periods[id] = p
	return p, nil
}

type fakeAttendanceRepo struct {
	records []attendance.AttendanceRecord
}

func (r *fakeAttendanceRepo) Create(_ context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	rec.ID = uuid.NewString()
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *fakeAttendanceRepo) FindByEmployeeAndDayRange(_ context.Context, employeeID, periodID string, dayStart, dayEnd time.Time) (*attendance.AttendanceRecord, error) {
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.PeriodID == periodID &&
			!rec.CreatedAt.Before(dayStart) && !rec.CreatedAt.After(dayEnd) {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) CountByEmployeeAndPeriod(_ context.Context, employeeID, periodID string) (int64, error) {
	var count int64
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.PeriodID == periodID {
			count++
		}
	}
	return count, nil
}

type fakeOvertimeRepo struct {
	mu      sync.Mutex
	records []overtime.OvertimeRecord
	now     func() time.Time
}

func (r *fakeOvertimeRepo) Create(_ context.Context, rec overtime.OvertimeRecord) (overtime.OvertimeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = uuid.NewString()
	rec.CreatedAt = r.now()
	rec.UpdatedAt = rec.CreatedAt
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *fakeOvertimeRepo) FindByEmployeeAndDayRange(_ context.Context, employeeID, periodID string, dayStart, dayEnd time.Time) (*overtime.OvertimeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.PeriodID == periodID &&
			!rec.CreatedAt.Before(dayStart) && !rec.CreatedAt.After(dayEnd) {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeOvertimeRepo) UpdateHours(_ context.Context, id string, employeeID string, hours int16) (overtime.OvertimeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.records {
		if rec.ID == id && rec.EmployeeID == employeeID {
			r.records[i].ExtraHours = hours
			r.records[i].UpdatedAt = r.now()
			return r.records[i], nil
		}
	}
	return overtime.OvertimeRecord{}, errors.New("overtime record not found")
}

func (r *fakeOvertimeRepo) ListByEmployeeAndPeriod(_ context.Context, employeeID, periodID string) ([]overtime.OvertimeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []overtime.OvertimeRecord
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.PeriodID == periodID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type overtimeFixture struct {
	svc          *OvertimeServiceImpl
	overtimeRepo *fakeOvertimeRepo
	periodID     string
	employeeID   string
}

// newFixture pins the clock to the given instant and records a same-day
// check-in for one employee, the precondition most cases share.
func newFixture(t *testing.T, now time.Time) *overtimeFixture {
	t.Helper()

	periodRepo := &fakePeriodRepo{periods: make(map[string]period.PayPeriod)}
	p, err := periodRepo.Create(context.Background(), period.PayPeriod{
		StartAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)

	employeeID := uuid.NewString()
	attendanceRepo := &fakeAttendanceRepo{}
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, time.UTC)
	attendanceRepo.records = append(attendanceRepo.records, attendance.AttendanceRecord{
		ID:         uuid.NewString(),
		PeriodID:   p.ID,
		EmployeeID: employeeID,
		CreatedAt:  dayStart,
	})

	clock := func() time.Time { return now }
	overtimeRepo := &fakeOvertimeRepo{now: clock}

	svc := &OvertimeServiceImpl{
		overtimeRepo:   overtimeRepo,
		attendanceRepo: attendanceRepo,
		periodRepo:     periodRepo,
		locks:          keylock.New(),
		timezone:       time.UTC,
		workday:        config.WorkdayConfig{StartHour: 9, EndHour: 17},
		now:            clock,
	}

	return &overtimeFixture{
		svc:          svc,
		overtimeRepo: overtimeRepo,
		periodID:     p.ID,
		employeeID:   employeeID,
	}
}

// Monday 2024-06-10 at 18:00, one hour past the end of the working day.
var afterHours = time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)

func TestRequestOvertime(t *testing.T) {
	f := newFixture(t, afterHours)

	resp, err := f.svc.Request(context.Background(), overtime.OvertimeRequest{
		EmployeeID: f.employeeID,
		PeriodID:   f.periodID,
		ExtraHours: 2,
	})
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, int16(2), resp.ExtraHours)
}

func TestRequestOvertimeAccumulatesSameDay(t *testing.T) {
	f := newFixture(t, afterHours)

	first, err := f.svc.Request(context.Background(), overtime.OvertimeRequest{
		EmployeeID: f.employeeID,
		PeriodID:   f.periodID,
		ExtraHours: 1,
	})
	require.NoError(t, err)

	second, err := f.svc.Request(context.Background(), overtime.OvertimeRequest{
		EmployeeID: f.employeeID,
		PeriodID:   f.periodID,
		ExtraHours: 2,
	})
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int16(3), second.ExtraHours)
	assert.Len(t, f.overtimeRepo.records, 1)
}

func TestRequestOvertimeDailyCap(t *testing.T) {
	f := newFixture(t, afterHours)

	_, err := f.svc.Request(context.Background(), overtime.OvertimeRequest{
		EmployeeID: f.employeeID,
		PeriodID:   f.periodID,
		ExtraHours: 2,
	})
	require.NoError(t, err)

	// 2 + 2 crosses the cap; the existing record stays at 2.
	_, err = f.svc.Request(context.Background(), overtime.OvertimeRequest{
		EmployeeID: f.employeeID,
		PeriodID:   f.periodID,
		ExtraHours: 2,
	})
	assert.ErrorIs(t, err, overtime.ErrCapExceeded)
	assert.Equal(t, int16(2), f.overtimeRepo.records[0].ExtraHours)
}

func TestRequestOvertimeFirstRequestOverCap(t *testing.T) {
	f := newFixture(t, afterHours)

	_, err := f.svc.Request(context.Background(), overtime.OvertimeRequest{
		EmployeeID: f.employeeID,
		PeriodID:   f.periodID,
		ExtraHours: 4,
	})
	assert.ErrorIs(t, err, overtime.ErrCapExceeded)
	assert.Empty(t, f.overtimeRepo.records)
}

func TestRequestOvertimeNonPositiveHours(t *testing.T) {
	f := newFixture(t, afterHours)

	for _, hours := range []int16{0, -1} {
		_, err := f.svc.Request(context.Background(), overtime.OvertimeRequest{
			EmployeeID: f.employeeID,
			PeriodID:   f.periodID,
			ExtraHours: hours,
		})
		assert.ErrorIs(t, err, overtime.ErrInvalidHours)
	}
}

func TestRequestOvertimeWithoutCheckIn(t *testing.T) {
	f := newFixture(t, afterHours)

	_, err := f.svc.Request(context.Background(), overtime.OvertimeRequest{
		EmployeeID: uuid.NewString(),
		PeriodID:   f.periodID,
		ExtraHours: 1,
	})
	assert.ErrorIs(t, err, overtime.ErrNoCheckIn)
}

func TestRequestOvertimeBeforeEndOfWorkday(t *testing.T) {
	// 16:59 local, still inside the working day.
	f := newFixture(t, time.Date(2024, 6, 10, 16, 59, 0, 0, time.UTC))

	_, err := f.svc.Request(context.Background(), overtime.OvertimeRequest{
		EmployeeID: f.employeeID,
		PeriodID:   f.periodID,
		ExtraHours: 1,
	})
	assert.ErrorIs(t, err, overtime.ErrWorkHoursNotDone)
}

func TestRequestOvertimeAtExactEndOfWorkday(t *testing.T) {
	f := newFixture(t, time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC))

	_, err := f.svc.Request(context.Background(), overtime.OvertimeRequest{
		EmployeeID: f.employeeID,
		PeriodID:   f.periodID,
		ExtraHours: 1,
	})
	assert.NoError(t, err)
}

func TestRequestOvertimeProcessedPeriod(t *testing.T) {
	f := newFixture(t, afterHours)

	_, err := f.svc.periodRepo.MarkProcessed(context.Background(), f.periodID, uuid.NewString())
	require.NoError(t, err)

	_, err = f.svc.Request(context.Background(), overtime.OvertimeRequest{
		EmployeeID: f.employeeID,
		PeriodID:   f.periodID,
		ExtraHours: 1,
	})
	assert.ErrorIs(t, err, period.ErrAlreadyProcessed)
}

func TestRequestOvertimeConcurrentCap(t *testing.T) {
	f := newFixture(t, afterHours)

	// Five concurrent 1-hour requests; the cap admits at most three.
	var wg sync.WaitGroup
	results := make([]error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.Request(context.Background(), overtime.OvertimeRequest{
				EmployeeID: f.employeeID,
				PeriodID:   f.periodID,
				ExtraHours: 1,
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	var accepted, rejected int
	for _, err := range results {
		if err == nil {
			accepted++
		} else {
			assert.ErrorIs(t, err, overtime.ErrCapExceeded)
			rejected++
		}
	}
	assert.Equal(t, 3, accepted)
	assert.Equal(t, 2, rejected)
	require.Len(t, f.overtimeRepo.records, 1)
	assert.Equal(t, int16(3), f.overtimeRepo.records[0].ExtraHours)
}
