package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/attendly/payroll-backend-go/internal/domain/attendance"
	"github.com/attendly/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_attendances (attendance_period_id, created_by, updated_by)
		VALUES ($1, $2, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.PeriodID,
		rec.EmployeeID,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// FindByEmployeeAndDayRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) FindByEmployeeAndDayRange(ctx context.Context, employeeID, periodID string, dayStart, dayEnd time.Time) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_period_id, created_by, updated_by, created_at, updated_at
		FROM employee_attendances
		WHERE created_by = $1
		  AND attendance_period_id = $2
		  AND created_at BETWEEN $3 AND $4
		LIMIT 1
	`

	var rec attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, employeeID, periodID, dayStart, dayEnd).Scan(
		&rec.ID, &rec.PeriodID, &rec.EmployeeID, &rec.UpdatedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no check-in for this day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and day: %w", err)
	}

	return &rec, nil
}

// CountByEmployeeAndPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM employee_attendances
		WHERE created_by = $1
		  AND attendance_period_id = $2
	`

	var count int64
	if err := q.QueryRow(ctx, query, employeeID, periodID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	return count, nil
}
