package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/attendly/payroll-backend-go/internal/domain/overtime"
	"github.com/attendly/payroll-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, rec overtime.OvertimeRecord) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_overtimes (attendance_period_id, extra_hours, created_by, updated_by)
		VALUES ($1, $2, $3, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.PeriodID,
		rec.ExtraHours,
		rec.EmployeeID,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return rec, nil
}

// FindByEmployeeAndDayRange implements overtime.OvertimeRepository.
func (r *overtimeRepository) FindByEmployeeAndDayRange(ctx context.Context, employeeID, periodID string, dayStart, dayEnd time.Time) (*overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_period_id, created_by, extra_hours, updated_by, created_at, updated_at
		FROM employee_overtimes
		WHERE created_by = $1
		  AND attendance_period_id = $2
		  AND created_at BETWEEN $3 AND $4
		LIMIT 1
	`

	var rec overtime.OvertimeRecord
	err := q.QueryRow(ctx, query, employeeID, periodID, dayStart, dayEnd).Scan(
		&rec.ID, &rec.PeriodID, &rec.EmployeeID, &rec.ExtraHours, &rec.UpdatedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no overtime for this day
		}
		return nil, fmt.Errorf("failed to get overtime by employee and day: %w", err)
	}

	return &rec, nil
}

// UpdateHours implements overtime.OvertimeRepository.
func (r *overtimeRepository) UpdateHours(ctx context.Context, id string, employeeID string, hours int16) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_overtimes
		SET extra_hours = $2, updated_by = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, attendance_period_id, created_by, extra_hours, updated_by, created_at, updated_at
	`

	var rec overtime.OvertimeRecord
	err := q.QueryRow(ctx, query, id, hours, employeeID).Scan(
		&rec.ID, &rec.PeriodID, &rec.EmployeeID, &rec.ExtraHours, &rec.UpdatedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRecord{}, fmt.Errorf("overtime record not found: %w", err)
		}
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to update overtime hours: %w", err)
	}

	return rec, nil
}

// ListByEmployeeAndPeriod implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) ([]overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_period_id, created_by, extra_hours, updated_by, created_at, updated_at
		FROM employee_overtimes
		WHERE created_by = $1
		  AND attendance_period_id = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime records: %w", err)
	}
	defer rows.Close()

	var records []overtime.OvertimeRecord
	for rows.Next() {
		var rec overtime.OvertimeRecord
		err := rows.Scan(
			&rec.ID, &rec.PeriodID, &rec.EmployeeID, &rec.ExtraHours, &rec.UpdatedBy,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
