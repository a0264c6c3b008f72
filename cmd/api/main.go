package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/attendly/payroll-backend-go/internal/config"
	"github.com/attendly/payroll-backend-go/internal/db"
	appHTTP "github.com/attendly/payroll-backend-go/internal/handler/http"
	"github.com/attendly/payroll-backend-go/internal/pkg/database"
	"github.com/attendly/payroll-backend-go/internal/pkg/jwt"
	"github.com/attendly/payroll-backend-go/internal/pkg/keylock"
	"github.com/attendly/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/payroll-backend-go/internal/service/attendance"
	authService "github.com/attendly/payroll-backend-go/internal/service/auth"
	overtimeService "github.com/attendly/payroll-backend-go/internal/service/overtime"
	payrollService "github.com/attendly/payroll-backend-go/internal/service/payroll"
	periodService "github.com/attendly/payroll-backend-go/internal/service/period"
	reimbursementService "github.com/attendly/payroll-backend-go/internal/service/reimbursement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	pool, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer pool.Close()

	bootCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.Migrate(bootCtx, pool, cfg.App.MigrationsDir); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}
	if err := db.Seed(bootCtx, pool, cfg.Seed); err != nil {
		fmt.Println("Error seeding database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(pool)
	periodRepo := postgresql.NewPeriodRepository(pool)
	attendanceRepo := postgresql.NewAttendanceRepository(pool)
	overtimeRepo := postgresql.NewOvertimeRepository(pool)
	reimbursementRepo := postgresql.NewReimbursementRepository(pool)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	locks := keylock.New()

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	periodSvc := periodService.NewPeriodService(periodRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, periodRepo, locks, cfg.App.Timezone)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, attendanceRepo, periodRepo, locks, cfg.App.Timezone, cfg.Workday)
	reimbursementSvc := reimbursementService.NewReimbursementService(reimbursementRepo, periodRepo)
	payrollSvc := payrollService.NewPayrollService(userRepo, periodRepo, attendanceRepo, overtimeRepo, reimbursementRepo, cfg.HoursPerDay())

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:    jwtSvc,
		Auth:          appHTTP.NewAuthHandler(authSvc),
		Period:        appHTTP.NewPeriodHandler(periodSvc),
		Attendance:    appHTTP.NewAttendanceHandler(attendanceSvc),
		Overtime:      appHTTP.NewOvertimeHandler(overtimeSvc),
		Reimbursement: appHTTP.NewReimbursementHandler(reimbursementSvc),
		Payroll:       appHTTP.NewPayrollHandler(payrollSvc),
		Env:           cfg.App.Env,
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
