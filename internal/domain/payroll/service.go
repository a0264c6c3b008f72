package payroll

import "context"

// PayrollService reads from processed periods only. It owns no state; a
// payslip is a pure function of the period, its child records and the
// employee's salary.
type PayrollService interface {
	// GeneratePayslip derives one employee's payslip for a processed
	// period.
	GeneratePayslip(ctx context.Context, employeeID, periodID string) (Payslip, error)

	// GenerateAll derives payslips for every employee-role user and sums
	// the total take-home pay. Output order is unspecified.
	GenerateAll(ctx context.Context, periodID string) (PayslipBatch, error)

	// RenderPDF renders a payslip to a PDF document.
	RenderPDF(ctx context.Context, slip Payslip) ([]byte, error)
}
