package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/payroll-backend-go/internal/config"
	"github.com/attendly/payroll-backend-go/internal/domain/attendance"
	"github.com/attendly/payroll-backend-go/internal/domain/overtime"
	"github.com/attendly/payroll-backend-go/internal/domain/period"
	"github.com/attendly/payroll-backend-go/internal/pkg/datetime"
	"github.com/attendly/payroll-backend-go/internal/pkg/keylock"
)

type OvertimeServiceImpl struct {
	overtimeRepo   overtime.OvertimeRepository
	attendanceRepo attendance.AttendanceRepository
	periodRepo     period.PeriodRepository
	locks          *keylock.KeyedMutex
	timezone       *time.Location
	workday        config.WorkdayConfig

	// now is swapped out in tests to pin the clock.
	now func() time.Time
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	attendanceRepo attendance.AttendanceRepository,
	periodRepo period.PeriodRepository,
	locks *keylock.KeyedMutex,
	timezone *time.Location,
	workday config.WorkdayConfig,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		overtimeRepo:   overtimeRepo,
		attendanceRepo: attendanceRepo,
		periodRepo:     periodRepo,
		locks:          locks,
		timezone:       timezone,
		workday:        workday,
		now:            time.Now,
	}
}

// Request implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Request(ctx context.Context, req overtime.OvertimeRequest) (overtime.OvertimeResponse, error) {
	if req.ExtraHours < 1 {
		return overtime.OvertimeResponse{}, overtime.ErrInvalidHours
	}

	p, err := s.periodRepo.GetByID(ctx, req.PeriodID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if err := p.EnsureOpen(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	nowLocal := s.now().In(s.timezone)
	dayStart, dayEnd := datetime.DayRange(nowLocal)

	checkedIn, err := s.attendanceRepo.FindByEmployeeAndDayRange(ctx, req.EmployeeID, req.PeriodID, dayStart, dayEnd)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if checkedIn == nil {
		return overtime.OvertimeResponse{}, overtime.ErrNoCheckIn
	}

	if nowLocal.Hour() < s.workday.EndHour {
		return overtime.OvertimeResponse{}, overtime.ErrWorkHoursNotDone
	}

	// Same find-then-write race as check-in: the cap must be evaluated
	// against a stable view of today's accrued hours.
	key := dayKey(req.EmployeeID, req.PeriodID, dayStart)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	existing, err := s.overtimeRepo.FindByEmployeeAndDayRange(ctx, req.EmployeeID, req.PeriodID, dayStart, dayEnd)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	if existing != nil {
		total := existing.ExtraHours + req.ExtraHours
		if total > overtime.MaxDailyHours {
			return overtime.OvertimeResponse{}, overtime.ErrCapExceeded
		}

		updated, err := s.overtimeRepo.UpdateHours(ctx, existing.ID, req.EmployeeID, total)
		if err != nil {
			return overtime.OvertimeResponse{}, err
		}
		return overtime.NewOvertimeResponse(updated, false), nil
	}

	if req.ExtraHours > overtime.MaxDailyHours {
		return overtime.OvertimeResponse{}, overtime.ErrCapExceeded
	}

	rec, err := s.overtimeRepo.Create(ctx, overtime.OvertimeRecord{
		PeriodID:   req.PeriodID,
		EmployeeID: req.EmployeeID,
		ExtraHours: req.ExtraHours,
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return overtime.NewOvertimeResponse(rec, true), nil
}

func dayKey(employeeID, periodID string, day time.Time) string {
	return fmt.Sprintf("overtime:%s:%s:%s", employeeID, periodID, day.Format("2006-01-02"))
}
