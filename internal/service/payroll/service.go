package payroll

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/attendly/payroll-backend-go/internal/domain/attendance"
	"github.com/attendly/payroll-backend-go/internal/domain/overtime"
	"github.com/attendly/payroll-backend-go/internal/domain/payroll"
	"github.com/attendly/payroll-backend-go/internal/domain/period"
	"github.com/attendly/payroll-backend-go/internal/domain/reimbursement"
	"github.com/attendly/payroll-backend-go/internal/domain/user"
)

// generateAllConcurrency bounds the number of per-employee payslip
// builds running at once during the admin summary.
const generateAllConcurrency = 8

type PayrollServiceImpl struct {
	userRepo          user.UserRepository
	periodRepo        period.PeriodRepository
	attendanceRepo    attendance.AttendanceRepository
	overtimeRepo      overtime.OvertimeRepository
	reimbursementRepo reimbursement.ReimbursementRepository
	hoursPerDay       int
}

func NewPayrollService(
	userRepo user.UserRepository,
	periodRepo period.PeriodRepository,
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	reimbursementRepo reimbursement.ReimbursementRepository,
	hoursPerDay int,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		userRepo:          userRepo,
		periodRepo:        periodRepo,
		attendanceRepo:    attendanceRepo,
		overtimeRepo:      overtimeRepo,
		reimbursementRepo: reimbursementRepo,
		hoursPerDay:       hoursPerDay,
	}
}

// GeneratePayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, employeeID, periodID string) (payroll.Payslip, error) {
	p, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.Payslip{}, err
	}
	if err := p.EnsureProcessed(); err != nil {
		return payroll.Payslip{}, err
	}

	emp, err := s.userRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	return s.buildFor(ctx, emp, p)
}

// GenerateAll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GenerateAll(ctx context.Context, periodID string) (payroll.PayslipBatch, error) {
	p, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.PayslipBatch{}, err
	}
	if err := p.EnsureProcessed(); err != nil {
		return payroll.PayslipBatch{}, err
	}

	employees, err := s.userRepo.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return payroll.PayslipBatch{}, err
	}

	slips := make([]payroll.Payslip, len(employees))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(generateAllConcurrency)
	for i, emp := range employees {
		g.Go(func() error {
			slip, err := s.buildFor(ctx, emp, p)
			if err != nil {
				return err
			}
			slips[i] = slip
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return payroll.PayslipBatch{}, err
	}

	var total int64
	for _, slip := range slips {
		total += slip.Summary.TakeHomePay
	}

	return payroll.PayslipBatch{
		Payslips:      slips,
		TotalTakeHome: total,
	}, nil
}

func (s *PayrollServiceImpl) buildFor(ctx context.Context, emp user.User, p period.PayPeriod) (payroll.Payslip, error) {
	attendanceDays, err := s.attendanceRepo.CountByEmployeeAndPeriod(ctx, emp.ID, p.ID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	overtimes, err := s.overtimeRepo.ListByEmployeeAndPeriod(ctx, emp.ID, p.ID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	reimbursements, err := s.reimbursementRepo.ListByEmployeeAndPeriod(ctx, emp.ID, p.ID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	return payroll.BuildPayslip(payroll.CalcInput{
		Employee:       emp,
		Period:         p,
		AttendanceDays: attendanceDays,
		Overtimes:      overtimes,
		Reimbursements: reimbursements,
		HoursPerDay:    s.hoursPerDay,
	})
}
