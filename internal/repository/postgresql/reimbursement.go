package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/payroll-backend-go/internal/domain/reimbursement"
	"github.com/attendly/payroll-backend-go/internal/pkg/database"
)

type reimbursementRepository struct {
	db *database.DB
}

func NewReimbursementRepository(db *database.DB) reimbursement.ReimbursementRepository {
	return &reimbursementRepository{db: db}
}

// Create implements reimbursement.ReimbursementRepository.
func (r *reimbursementRepository) Create(ctx context.Context, rec reimbursement.ReimbursementRecord) (reimbursement.ReimbursementRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_reimbursements (attendance_period_id, description, amount, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.PeriodID,
		rec.Description,
		rec.Amount,
		rec.EmployeeID,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return reimbursement.ReimbursementRecord{}, fmt.Errorf("failed to create reimbursement record: %w", err)
	}

	return rec, nil
}

// ListByEmployeeAndPeriod implements reimbursement.ReimbursementRepository.
func (r *reimbursementRepository) ListByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) ([]reimbursement.ReimbursementRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_period_id, created_by, description, amount, updated_by, created_at, updated_at
		FROM employee_reimbursements
		WHERE created_by = $1
		  AND attendance_period_id = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reimbursement records: %w", err)
	}
	defer rows.Close()

	var records []reimbursement.ReimbursementRecord
	for rows.Next() {
		var rec reimbursement.ReimbursementRecord
		err := rows.Scan(
			&rec.ID, &rec.PeriodID, &rec.EmployeeID, &rec.Description, &rec.Amount,
			&rec.UpdatedBy, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reimbursement record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
