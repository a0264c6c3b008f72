package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/payroll-backend-go/internal/domain/attendance"
	"github.com/attendly/payroll-backend-go/internal/domain/period"
	"github.com/attendly/payroll-backend-go/internal/pkg/datetime"
	"github.com/attendly/payroll-backend-go/internal/pkg/keylock"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	periodRepo     period.PeriodRepository
	locks          *keylock.KeyedMutex
	timezone       *time.Location

	// now is swapped out in tests to pin the clock.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	periodRepo period.PeriodRepository,
	locks *keylock.KeyedMutex,
	timezone *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		periodRepo:     periodRepo,
		locks:          locks,
		timezone:       timezone,
		now:            time.Now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, req.PeriodID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := p.EnsureOpen(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := s.now().In(s.timezone)
	if datetime.IsWeekend(nowLocal) {
		return attendance.AttendanceResponse{}, attendance.ErrWeekendCheckIn
	}

	dayStart, dayEnd := datetime.DayRange(nowLocal)

	// Serialize the find-then-insert per employee and day so two
	// concurrent check-ins cannot both observe an empty day and insert
	// twice.
	key := dayKey(req.EmployeeID, req.PeriodID, dayStart)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	existing, err := s.attendanceRepo.FindByEmployeeAndDayRange(ctx, req.EmployeeID, req.PeriodID, dayStart, dayEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.NewAttendanceResponse(*existing, false), nil
	}

	rec, err := s.attendanceRepo.Create(ctx, attendance.AttendanceRecord{
		PeriodID:   req.PeriodID,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(rec, true), nil
}

func dayKey(employeeID, periodID string, day time.Time) string {
	return fmt.Sprintf("attendance:%s:%s:%s", employeeID, periodID, day.Format("2006-01-02"))
}
