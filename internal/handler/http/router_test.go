package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/payroll-backend-go/internal/domain/attendance"
	"github.com/attendly/payroll-backend-go/internal/domain/auth"
	"github.com/attendly/payroll-backend-go/internal/domain/overtime"
	"github.com/attendly/payroll-backend-go/internal/domain/payroll"
	"github.com/attendly/payroll-backend-go/internal/domain/period"
	"github.com/attendly/payroll-backend-go/internal/domain/reimbursement"
	"github.com/attendly/payroll-backend-go/internal/domain/user"
	"github.com/attendly/payroll-backend-go/internal/pkg/jwt"
)

// Stub services let the router tests drive the middleware stack and the
// error-to-status mapping without a database.

type stubAuthService struct {
	resp auth.TokenResponse
	err  error
}

func (s *stubAuthService) Login(context.Context, auth.LoginRequest) (auth.TokenResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Refresh(context.Context, auth.RefreshRequest) (auth.TokenResponse, error) {
	return s.resp, s.err
}

type stubPeriodService struct {
	resp period.PeriodResponse
	err  error
}

func (s *stubPeriodService) Create(context.Context, period.CreatePeriodRequest) (period.PeriodResponse, error) {
	return s.resp, s.err
}

func (s *stubPeriodService) Get(context.Context, string) (period.PeriodResponse, error) {
	return s.resp, s.err
}

func (s *stubPeriodService) Process(context.Context, string, string) (period.PeriodResponse, error) {
	return s.resp, s.err
}

type stubAttendanceService struct {
	resp attendance.AttendanceResponse
	err  error
}

func (s *stubAttendanceService) CheckIn(context.Context, attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	return s.resp, s.err
}

type stubOvertimeService struct {
	resp overtime.OvertimeResponse
	err  error
}

func (s *stubOvertimeService) Request(context.Context, overtime.OvertimeRequest) (overtime.OvertimeResponse, error) {
	return s.resp, s.err
}

type stubReimbursementService struct {
	resp reimbursement.ReimbursementResponse
	err  error
}

func (s *stubReimbursementService) Submit(context.Context, reimbursement.ReimbursementRequest) (reimbursement.ReimbursementResponse, error) {
	return s.resp, s.err
}

type stubPayrollService struct {
	slip  payroll.Payslip
	batch payroll.PayslipBatch
	pdf   []byte
	err   error
}

func (s *stubPayrollService) GeneratePayslip(context.Context, string, string) (payroll.Payslip, error) {
	return s.slip, s.err
}

func (s *stubPayrollService) GenerateAll(context.Context, string) (payroll.PayslipBatch, error) {
	return s.batch, s.err
}

func (s *stubPayrollService) RenderPDF(context.Context, payroll.Payslip) ([]byte, error) {
	return s.pdf, s.err
}

type routerFixture struct {
	jwtService    jwt.Service
	authSvc       *stubAuthService
	periodSvc     *stubPeriodService
	attendanceSvc *stubAttendanceService
	overtimeSvc   *stubOvertimeService
	reimburseSvc  *stubReimbursementService
	payrollSvc    *stubPayrollService
	router        http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	f := &routerFixture{
		jwtService:    jwt.NewJWTService("router-test-secret", "1h", "24h"),
		authSvc:       &stubAuthService{},
		periodSvc:     &stubPeriodService{},
		attendanceSvc: &stubAttendanceService{},
		overtimeSvc:   &stubOvertimeService{},
		reimburseSvc:  &stubReimbursementService{},
		payrollSvc:    &stubPayrollService{},
	}

	f.router = NewRouter(RouterDeps{
		JWTService:    f.jwtService,
		Auth:          NewAuthHandler(f.authSvc),
		Period:        NewPeriodHandler(f.periodSvc),
		Attendance:    NewAttendanceHandler(f.attendanceSvc),
		Overtime:      NewOvertimeHandler(f.overtimeSvc),
		Reimbursement: NewReimbursementHandler(f.reimburseSvc),
		Payroll:       NewPayrollHandler(f.payrollSvc),
		Env:           "test",
	})
	return f
}

func (f *routerFixture) token(t *testing.T, role user.Role) string {
	t.Helper()
	token, _, err := f.jwtService.GenerateAccessToken(uuid.NewString(), "7", role)
	require.NoError(t, err)
	return token
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	f := newRouterFixture(t)
	f.authSvc.resp = auth.TokenResponse{AccessToken: "aaa", RefreshToken: "rrr", ExpiresAt: 123}

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{Username: "7", Password: "7"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "aaa")
}

func TestLoginInvalidCredentials(t *testing.T) {
	f := newRouterFixture(t)
	f.authSvc.err = auth.ErrInvalidCredentials

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{Username: "7", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedEndpointWithoutToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/periods/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePeriodRequiresAdmin(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/periods", f.token(t, user.RoleEmployee),
		period.CreatePeriodRequest{StartAt: "2024-06-01T00:00:00Z", EndAt: "2024-06-30T00:00:00Z"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreatePeriodAsAdmin(t *testing.T) {
	f := newRouterFixture(t)
	f.periodSvc.resp = period.PeriodResponse{ID: uuid.NewString()}

	rec := f.do(t, http.MethodPost, "/api/v1/periods", f.token(t, user.RoleAdmin),
		period.CreatePeriodRequest{StartAt: "2024-06-01T00:00:00Z", EndAt: "2024-06-30T00:00:00Z"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreatePeriodInvalidRange(t *testing.T) {
	f := newRouterFixture(t)
	f.periodSvc.err = period.ErrInvalidDateRange

	rec := f.do(t, http.MethodPost, "/api/v1/periods", f.token(t, user.RoleAdmin),
		period.CreatePeriodRequest{StartAt: "2024-06-30T00:00:00Z", EndAt: "2024-06-01T00:00:00Z"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "end_at is lower than start_at")
}

func TestProcessPeriodConflict(t *testing.T) {
	f := newRouterFixture(t)
	f.periodSvc.err = period.ErrAlreadyProcessed

	rec := f.do(t, http.MethodPost, "/api/v1/periods/"+uuid.NewString()+"/process", f.token(t, user.RoleAdmin), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetPeriodNotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.periodSvc.err = period.ErrPeriodNotFound

	rec := f.do(t, http.MethodGet, "/api/v1/periods/"+uuid.NewString(), f.token(t, user.RoleEmployee), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPeriodMalformedID(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/periods/not-a-uuid", f.token(t, user.RoleEmployee), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckInStatusDependsOnCreated(t *testing.T) {
	f := newRouterFixture(t)
	path := "/api/v1/periods/" + uuid.NewString() + "/attendances"
	token := f.token(t, user.RoleEmployee)

	f.attendanceSvc.resp = attendance.AttendanceResponse{ID: uuid.NewString(), Created: true}
	rec := f.do(t, http.MethodPost, path, token, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)

	f.attendanceSvc.resp.Created = false
	rec = f.do(t, http.MethodPost, path, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckInRejectsAdmin(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/periods/"+uuid.NewString()+"/attendances", f.token(t, user.RoleAdmin), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOvertimeErrorMapping(t *testing.T) {
	f := newRouterFixture(t)
	path := "/api/v1/periods/" + uuid.NewString() + "/overtimes"
	token := f.token(t, user.RoleEmployee)
	body := overtime.OvertimeRequest{ExtraHours: 2}

	cases := []struct {
		err  error
		code int
	}{
		{overtime.ErrNoCheckIn, http.StatusBadRequest},
		{overtime.ErrWorkHoursNotDone, http.StatusBadRequest},
		{overtime.ErrCapExceeded, http.StatusBadRequest},
		{period.ErrAlreadyProcessed, http.StatusConflict},
	}
	for _, tc := range cases {
		f.overtimeSvc.err = tc.err
		rec := f.do(t, http.MethodPost, path, token, body)
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}

func TestSubmitReimbursement(t *testing.T) {
	f := newRouterFixture(t)
	f.reimburseSvc.resp = reimbursement.ReimbursementResponse{ID: uuid.NewString(), Amount: 150_000}

	rec := f.do(t, http.MethodPost, "/api/v1/periods/"+uuid.NewString()+"/reimbursements",
		f.token(t, user.RoleEmployee),
		reimbursement.ReimbursementRequest{Description: "taxi", Amount: 150_000})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPayslipNotProcessed(t *testing.T) {
	f := newRouterFixture(t)
	f.payrollSvc.err = period.ErrNotProcessed

	rec := f.do(t, http.MethodGet, "/api/v1/periods/"+uuid.NewString()+"/payslip", f.token(t, user.RoleEmployee), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPayslipPDFContentType(t *testing.T) {
	f := newRouterFixture(t)
	f.payrollSvc.pdf = []byte("%PDF-1.4 fake")

	rec := f.do(t, http.MethodGet, "/api/v1/periods/"+uuid.NewString()+"/payslip/pdf", f.token(t, user.RoleEmployee), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
}

func TestPayslipsRequiresAdmin(t *testing.T) {
	f := newRouterFixture(t)
	path := "/api/v1/periods/" + uuid.NewString() + "/payslips"

	rec := f.do(t, http.MethodGet, path, f.token(t, user.RoleEmployee), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f.payrollSvc.batch = payroll.PayslipBatch{Payslips: []payroll.Payslip{}, TotalTakeHome: 0}
	rec = f.do(t, http.MethodGet, path, f.token(t, user.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_take_home")
}

func TestRefreshTokenRejectsAccessTokenType(t *testing.T) {
	f := newRouterFixture(t)
	f.authSvc.err = auth.ErrInvalidToken

	rec := f.do(t, http.MethodPost, "/api/v1/auth/refresh", "", auth.RefreshRequest{RefreshToken: "bad"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
