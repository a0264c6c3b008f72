package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/attendly/payroll-backend-go/internal/domain/period"
	"github.com/attendly/payroll-backend-go/internal/pkg/database"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) period.PeriodRepository {
	return &periodRepository{db: db}
}

// Create implements period.PeriodRepository.
func (r *periodRepository) Create(ctx context.Context, p period.PayPeriod) (period.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_periods (start_at, end_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, processed, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.StartAt,
		p.EndAt,
		p.CreatedBy,
		p.UpdatedBy,
	).Scan(&p.ID, &p.Processed, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return period.PayPeriod{}, fmt.Errorf("failed to create attendance period: %w", err)
	}

	return p, nil
}

// GetByID implements period.PeriodRepository.
func (r *periodRepository) GetByID(ctx context.Context, id string) (period.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_at, end_at, processed, created_by, updated_by, created_at, updated_at
		FROM attendance_periods
		WHERE id = $1
	`

	var p period.PayPeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.StartAt, &p.EndAt, &p.Processed,
		&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.PayPeriod{}, period.ErrPeriodNotFound
		}
		return period.PayPeriod{}, fmt.Errorf("failed to get attendance period: %w", err)
	}

	return p, nil
}

// MarkProcessed implements period.PeriodRepository.
func (r *periodRepository) MarkProcessed(ctx context.Context, id string, adminID string) (period.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_periods
		SET processed = TRUE, updated_by = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, start_at, end_at, processed, created_by, updated_by, created_at, updated_at
	`

	var p period.PayPeriod
	err := q.QueryRow(ctx, query, id, adminID).Scan(
		&p.ID, &p.StartAt, &p.EndAt, &p.Processed,
		&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.PayPeriod{}, period.ErrPeriodNotFound
		}
		return period.PayPeriod{}, fmt.Errorf("failed to mark attendance period processed: %w", err)
	}

	return p, nil
}
