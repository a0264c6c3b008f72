package payroll

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/attendly/payroll-backend-go/internal/domain/payroll"
)

// RenderPDF implements payroll.PayrollService. The layout is a plain
// single-page statement: header, per-line overtime and reimbursement
// detail, then the summary block.
func (s *PayrollServiceImpl) RenderPDF(ctx context.Context, slip payroll.Payslip) ([]byte, error) {
	_ = ctx

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", slip.Employee.Username))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		slip.Period.StartAt.Format("2006-01-02"),
		slip.Period.EndAt.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Attendance: %d working day(s)", slip.Attendance.TotalDays))
	pdf.Ln(10)

	if len(slip.Overtimes) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Overtime")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, ot := range slip.Overtimes {
			pdf.Cell(0, 7, fmt.Sprintf("%s  %d hour(s)  %d",
				ot.Date.Format("2006-01-02"), ot.Hours, ot.Amount))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(slip.Reimbursements) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Reimbursements")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, rb := range slip.Reimbursements {
			pdf.Cell(0, 7, fmt.Sprintf("%s  %d", rb.Description, rb.Amount))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Base salary: %d", slip.Summary.BaseSalary))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Prorated pay: %d", slip.Summary.ProratedAmount))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Overtime total: %d", slip.Summary.OvertimeTotal))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Reimbursement total: %d", slip.Summary.ReimbursementTotal))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Take-home pay: %d", slip.Summary.TakeHomePay))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
