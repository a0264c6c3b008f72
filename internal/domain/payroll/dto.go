package payroll

import "time"

// Payslip is derived, never persisted. All monetary fields are integer
// minor currency units; there is no floating point in the payroll path.
type Payslip struct {
	Employee       PayslipEmployee        `json:"employee"`
	Period         PayslipPeriod          `json:"period"`
	Attendance     PayslipAttendance      `json:"attendance"`
	Overtimes      []PayslipOvertime      `json:"overtimes"`
	Reimbursements []PayslipReimbursement `json:"reimbursements"`
	Summary        PayslipSummary         `json:"summary"`
}

type PayslipEmployee struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	BaseSalary int64  `json:"base_salary"`
}

type PayslipPeriod struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

type PayslipAttendance struct {
	TotalDays      int64 `json:"total_days"`
	ProratedAmount int64 `json:"prorated_amount"`
}

type PayslipOvertime struct {
	Date   time.Time `json:"date"`
	Hours  int16     `json:"hours"`
	Amount int64     `json:"amount"`
}

type PayslipReimbursement struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type PayslipSummary struct {
	BaseSalary         int64 `json:"base_salary"`
	ProratedAmount     int64 `json:"prorated_amount"`
	OvertimeTotal      int64 `json:"overtime_total"`
	ReimbursementTotal int64 `json:"reimbursement_total"`
	TakeHomePay        int64 `json:"take_home_pay"`
}

// PayslipBatch is the admin view across all employees.
type PayslipBatch struct {
	Payslips      []Payslip `json:"payslips"`
	TotalTakeHome int64     `json:"total_take_home"`
}
