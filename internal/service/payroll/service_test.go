package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/attendhq/attendance-backend-go/internal/domain/employee"
	"github.com/attendhq/attendance-backend-go/internal/domain/payroll"
	"github.com/attendhq/attendance-backend-go/internal/pkg/document"
	"github.com/attendhq/attendance-backend-go/internal/pkg/ratelimit"
	"github.com/attendhq/attendance-backend-go/internal/pkg/sse"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- in-memory fakes ----

type fakePayslipRepo struct {
	slips  map[string]payroll.Payslip
	nextID int
}

func newFakePayslipRepo() *fakePayslipRepo {
	return &fakePayslipRepo{slips: make(map[string]payroll.Payslip)}
}

func slipKey(employeeID string, period payroll.Period) string {
	return employeeID + "/" + period.String()
}

func (r *fakePayslipRepo) Create(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	key := slipKey(p.EmployeeID, payroll.Period{Year: p.PeriodYear, Month: time.Month(p.PeriodMonth)})
	if _, exists := r.slips[key]; exists {
		return payroll.Payslip{}, payroll.ErrPayslipAlreadyExists
	}
	r.nextID++
	p.ID = fmt.Sprintf("ps-%d", r.nextID)
	r.slips[key] = p
	return p, nil
}

func (r *fakePayslipRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, period payroll.Period) (payroll.Payslip, error) {
	if p, ok := r.slips[slipKey(employeeID, period)]; ok {
		return p, nil
	}
	return payroll.Payslip{}, payroll.ErrPayslipNotFound
}

type fakeSalaryRepo struct {
	structures map[string]payroll.SalaryStructure
}

func (r *fakeSalaryRepo) GetByEmployeeID(ctx context.Context, employeeID string) (payroll.SalaryStructure, error) {
	if s, ok := r.structures[employeeID]; ok {
		return s, nil
	}
	return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
}

type fakeEmployeeRepo struct{}

func (fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, FullName: "Employee " + id}, nil
}

type fakeFileService struct {
	uploads   []string
	failAfter int // fail the n-th upload (1-based); 0 disables
}

func (s *fakeFileService) UploadPayslip(ctx context.Context, employeeID string, period string, doc []byte, contentType string) (string, error) {
	if s.failAfter > 0 && len(s.uploads)+1 == s.failAfter {
		return "", errors.New("storage unavailable")
	}
	path := fmt.Sprintf("payslips/%s/%s.html", employeeID, period)
	s.uploads = append(s.uploads, path)
	return "http://localhost:8080/uploads/" + path, nil
}

type fakeRenderer struct{}

func (fakeRenderer) Render(ctx context.Context, data document.PayslipData) ([]byte, error) {
	return []byte("payslip " + data.Period + " " + data.EmployeeName), nil
}

func (fakeRenderer) ContentType() string { return "text/plain" }

// ---- test harness ----

type harness struct {
	svc      payroll.PayrollService
	payslips *fakePayslipRepo
	salaries *fakeSalaryRepo
	files    *fakeFileService
	hub      *sse.Hub
}

func newHarness(employeeIDs ...string) *harness {
	structures := make(map[string]payroll.SalaryStructure, len(employeeIDs))
	for _, id := range employeeIDs {
		structures[id] = payroll.SalaryStructure{
			EmployeeID: id,
			Basic:      decimal.NewFromInt(30000),
			HRA:        decimal.NewFromInt(12000),
			PF:         decimal.NewFromInt(1800),
		}
	}

	h := &harness{
		payslips: newFakePayslipRepo(),
		salaries: &fakeSalaryRepo{structures: structures},
		files:    &fakeFileService{},
		hub:      sse.NewHub(),
	}
	h.svc = NewPayrollService(
		h.payslips,
		h.salaries,
		fakeEmployeeRepo{},
		h.files,
		fakeRenderer{},
		ratelimit.None(),
		h.hub,
	)
	return h
}

func outcomes(items []payroll.BatchItemResult) []payroll.BatchOutcome {
	out := make([]payroll.BatchOutcome, 0, len(items))
	for _, item := range items {
		out = append(out, item.Outcome)
	}
	return out
}

func TestGenerateBatch(t *testing.T) {
	h := newHarness("u1", "u2", "u3")

	result, err := h.svc.GenerateBatch(context.Background(), payroll.GenerateBatchRequest{
		EmployeeIDs: []string{"u1", "u2", "u3"},
		Period:      "2026-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, []payroll.BatchOutcome{
		payroll.OutcomeGenerated,
		payroll.OutcomeGenerated,
		payroll.OutcomeGenerated,
	}, outcomes(result.Items))
	assert.Len(t, h.payslips.slips, 3)
	assert.Len(t, h.files.uploads, 3)

	// Amounts come straight from the salary structure.
	slip, err := h.payslips.GetByEmployeeAndPeriod(context.Background(), "u1", payroll.Period{Year: 2026, Month: time.January})
	require.NoError(t, err)
	assert.True(t, slip.Gross.Equal(decimal.NewFromInt(42000)))
	assert.True(t, slip.Deductions.Equal(decimal.NewFromInt(1800)))
	assert.True(t, slip.NetSalary.Equal(decimal.NewFromInt(40200)))
}

func TestGenerateBatchIsIdempotent(t *testing.T) {
	h := newHarness("u1", "u2", "u3")
	req := payroll.GenerateBatchRequest{
		EmployeeIDs: []string{"u1", "u2", "u3"},
		Period:      "2026-01",
	}

	_, err := h.svc.GenerateBatch(context.Background(), req)
	require.NoError(t, err)

	result, err := h.svc.GenerateBatch(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, []payroll.BatchOutcome{
		payroll.OutcomeAlreadyExists,
		payroll.OutcomeAlreadyExists,
		payroll.OutcomeAlreadyExists,
	}, outcomes(result.Items))

	// Nothing rendered or uploaded the second time around.
	assert.Len(t, h.payslips.slips, 3)
	assert.Len(t, h.files.uploads, 3)
}

func TestGenerateBatchSkipsMissingSalaryStructure(t *testing.T) {
	h := newHarness("u1", "u3")

	result, err := h.svc.GenerateBatch(context.Background(), payroll.GenerateBatchRequest{
		EmployeeIDs: []string{"u1", "u2", "u3"},
		Period:      "2026-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, []payroll.BatchOutcome{
		payroll.OutcomeGenerated,
		payroll.OutcomeNoSalaryStructure,
		payroll.OutcomeGenerated,
	}, outcomes(result.Items))
	assert.Len(t, h.payslips.slips, 2)
}

func TestGenerateBatchAbortsOnUploadFailure(t *testing.T) {
	h := newHarness("u1", "u2", "u3")
	h.files.failAfter = 2

	req := payroll.GenerateBatchRequest{
		EmployeeIDs: []string{"u1", "u2", "u3"},
		Period:      "2026-01",
	}
	result, err := h.svc.GenerateBatch(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "u2")

	// u1 is kept, u2 aborted the batch before u3 was attempted.
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, []payroll.BatchOutcome{payroll.OutcomeGenerated}, outcomes(result.Items))
	assert.Len(t, h.payslips.slips, 1)

	// Re-running picks up where it stopped.
	h.files.failAfter = 0
	result, err = h.svc.GenerateBatch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []payroll.BatchOutcome{
		payroll.OutcomeAlreadyExists,
		payroll.OutcomeGenerated,
		payroll.OutcomeGenerated,
	}, outcomes(result.Items))
	assert.Len(t, h.payslips.slips, 3)
}

func TestGenerateBatchPublishesProgress(t *testing.T) {
	h := newHarness("u1", "u2")

	events, cleanup := h.hub.Subscribe("batch-1")
	defer cleanup()

	result, err := h.svc.GenerateBatch(context.Background(), payroll.GenerateBatchRequest{
		EmployeeIDs: []string{"u1", "u2"},
		Period:      "2026-01",
		BatchID:     "batch-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "batch-1", result.BatchID)

	for want := 1; want <= 2; want++ {
		event := <-events
		assert.Equal(t, "progress", event.Name)
		item, ok := event.Data.(payroll.BatchItemResult)
		require.True(t, ok)
		assert.Equal(t, want, item.Processed)
		assert.Equal(t, 2, item.Total)
	}
}

func TestGenerateBatchValidation(t *testing.T) {
	h := newHarness("u1")

	_, err := h.svc.GenerateBatch(context.Background(), payroll.GenerateBatchRequest{
		EmployeeIDs: []string{},
		Period:      "2026-01",
	})
	assert.Error(t, err)

	_, err = h.svc.GenerateBatch(context.Background(), payroll.GenerateBatchRequest{
		EmployeeIDs: []string{"u1"},
		Period:      "January 2026",
	})
	assert.Error(t, err)
}

func TestGetPayslip(t *testing.T) {
	h := newHarness("u1")

	_, err := h.svc.GenerateBatch(context.Background(), payroll.GenerateBatchRequest{
		EmployeeIDs: []string{"u1"},
		Period:      "2026-01",
	})
	require.NoError(t, err)

	got, err := h.svc.GetPayslip(context.Background(), "u1", "2026-01")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.EmployeeID)
	assert.Equal(t, "2026-01", got.Period)
	assert.Equal(t, "42000", got.Gross)
	assert.Equal(t, "40200", got.NetSalary)
	assert.Contains(t, got.PDFURL, "payslips/u1/2026-01.html")

	_, err = h.svc.GetPayslip(context.Background(), "u1", "2026-02")
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)

	_, err = h.svc.GetPayslip(context.Background(), "u1", "bad-period")
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}
