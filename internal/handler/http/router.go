package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/attendly/payroll-backend-go/internal/handler/http/middleware"
	"github.com/attendly/payroll-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService    jwt.Service
	Auth          AuthHandler
	Period        PeriodHandler
	Attendance    AttendanceHandler
	Overtime      OvertimeHandler
	Reimbursement ReimbursementHandler
	Payroll       PayrollHandler
	Env           string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.Auth.Login)
			r.Post("/refresh", deps.Auth.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/periods", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", deps.Period.Create)
				})

				r.Route("/{periodID}", func(r chi.Router) {
					r.Get("/", deps.Period.Get)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/process", deps.Period.Process)
						r.Get("/payslips", deps.Payroll.Payslips)
					})

					// Employee self-service
					r.Group(func(r chi.Router) {
						r.Use(middleware.EmployeeOnly)
						r.Post("/attendances", deps.Attendance.CheckIn)
						r.Post("/overtimes", deps.Overtime.Request)
						r.Post("/reimbursements", deps.Reimbursement.Submit)
						r.Get("/payslip", deps.Payroll.Payslip)
						r.Get("/payslip/pdf", deps.Payroll.PayslipPDF)
					})
				})
			})
		})
	})

	return r
}
