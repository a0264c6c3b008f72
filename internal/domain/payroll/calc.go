package payroll

import (
	"github.com/attendly/payroll-backend-go/internal/domain/overtime"
	"github.com/attendly/payroll-backend-go/internal/domain/period"
	"github.com/attendly/payroll-backend-go/internal/domain/reimbursement"
	"github.com/attendly/payroll-backend-go/internal/domain/user"
	"github.com/attendly/payroll-backend-go/internal/pkg/datetime"
)

// CalcInput carries everything BuildPayslip needs; the function itself
// touches no storage.
type CalcInput struct {
	Employee       user.User
	Period         period.PayPeriod
	AttendanceDays int64
	Overtimes      []overtime.OvertimeRecord
	Reimbursements []reimbursement.ReimbursementRecord
	HoursPerDay    int
}

// BuildPayslip derives a payslip from a processed period's records.
//
// All division truncates: prorated pay for a partially attended period
// rounds down, and the remainder is not redistributed. An employee
// attending every working day receives exactly the base salary only when
// the salary divides evenly by the working-day count.
func BuildPayslip(in CalcInput) (Payslip, error) {
	totalWorkingDays := datetime.CountWorkingDays(in.Period.StartAt, in.Period.EndAt)
	if totalWorkingDays == 0 {
		return Payslip{}, ErrNoWorkingDays
	}

	hourlyRate := in.Employee.Salary / (totalWorkingDays * int64(in.HoursPerDay))
	overtimeRate := hourlyRate * 2

	overtimes := make([]PayslipOvertime, 0, len(in.Overtimes))
	var overtimeTotal int64
	for _, rec := range in.Overtimes {
		amount := overtimeRate * int64(rec.ExtraHours)
		overtimes = append(overtimes, PayslipOvertime{
			Date:   rec.UpdatedAt,
			Hours:  rec.ExtraHours,
			Amount: amount,
		})
		overtimeTotal += amount
	}

	reimbursements := make([]PayslipReimbursement, 0, len(in.Reimbursements))
	var reimbursementTotal int64
	for _, rec := range in.Reimbursements {
		reimbursements = append(reimbursements, PayslipReimbursement{
			Description: rec.Description,
			Amount:      rec.Amount,
		})
		reimbursementTotal += rec.Amount
	}

	proratedAmount := in.Employee.Salary * in.AttendanceDays / totalWorkingDays

	return Payslip{
		Employee: PayslipEmployee{
			ID:         in.Employee.ID,
			Username:   in.Employee.Username,
			BaseSalary: in.Employee.Salary,
		},
		Period: PayslipPeriod{
			StartAt: in.Period.StartAt,
			EndAt:   in.Period.EndAt,
		},
		Attendance: PayslipAttendance{
			TotalDays:      in.AttendanceDays,
			ProratedAmount: proratedAmount,
		},
		Overtimes:      overtimes,
		Reimbursements: reimbursements,
		Summary: PayslipSummary{
			BaseSalary:         in.Employee.Salary,
			ProratedAmount:     proratedAmount,
			OvertimeTotal:      overtimeTotal,
			ReimbursementTotal: reimbursementTotal,
			TakeHomePay:        proratedAmount + overtimeTotal + reimbursementTotal,
		},
	}, nil
}
