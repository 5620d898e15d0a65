package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendhq/attendance-backend-go/internal/domain/employee"
	"github.com/attendhq/attendance-backend-go/internal/domain/payroll"
	"github.com/attendhq/attendance-backend-go/internal/pkg/document"
	"github.com/attendhq/attendance-backend-go/internal/pkg/ratelimit"
	"github.com/attendhq/attendance-backend-go/internal/pkg/sse"
	"github.com/attendhq/attendance-backend-go/internal/service/file"
)

type PayrollServiceImpl struct {
	payroll.PayslipRepository
	payroll.SalaryStructureRepository
	employee.EmployeeRepository
	fileService file.FileService
	renderer    document.Renderer
	limiter     ratelimit.Limiter
	hub         *sse.Hub
}

func NewPayrollService(
	payslipRepo payroll.PayslipRepository,
	salaryRepo payroll.SalaryStructureRepository,
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
	renderer document.Renderer,
	limiter ratelimit.Limiter,
	hub *sse.Hub,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayslipRepository:         payslipRepo,
		SalaryStructureRepository: salaryRepo,
		EmployeeRepository:        employeeRepo,
		fileService:               fileService,
		renderer:                  renderer,
		limiter:                   limiter,
		hub:                       hub,
	}
}

// GenerateBatch implements payroll.PayrollService. Employees are processed
// strictly in request order, paced by the limiter. Per-employee skips
// (existing payslip, missing salary structure) advance the batch; a failure
// in rendering, upload, or persistence aborts the remainder and returns the
// partial result alongside the error. Nothing is rolled back, so re-running
// the same batch resumes where it stopped.
func (p *PayrollServiceImpl) GenerateBatch(ctx context.Context, req payroll.GenerateBatchRequest) (payroll.BatchResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResult{}, err
	}

	period, err := payroll.ParsePeriod(req.Period)
	if err != nil {
		return payroll.BatchResult{}, err
	}

	result := payroll.BatchResult{
		BatchID: req.BatchID,
		Total:   len(req.EmployeeIDs),
		Items:   make([]payroll.BatchItemResult, 0, len(req.EmployeeIDs)),
	}

	for i, employeeID := range req.EmployeeIDs {
		if i > 0 {
			if err := p.limiter.Wait(ctx); err != nil {
				return result, fmt.Errorf("batch interrupted: %w", err)
			}
		} else if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("batch interrupted: %w", err)
		}

		outcome, err := p.generateOne(ctx, employeeID, period)
		if err != nil {
			slog.Error("Payroll: batch aborted",
				"batch_id", req.BatchID,
				"employee_id", employeeID,
				"processed", result.Processed,
				"total", result.Total,
				"error", err)
			return result, fmt.Errorf("failed to generate payslip for %s: %w", employeeID, err)
		}

		result.Processed++
		item := payroll.BatchItemResult{
			Processed:  result.Processed,
			Total:      result.Total,
			EmployeeID: employeeID,
			Outcome:    outcome,
		}
		result.Items = append(result.Items, item)
		p.publishProgress(req.BatchID, item)
	}

	slog.Info("Payroll: batch complete",
		"batch_id", req.BatchID,
		"period", period.String(),
		"processed", result.Processed,
		"total", result.Total)

	return result, nil
}

// generateOne runs the render -> upload -> persist pipeline for a single
// employee and classifies the outcome.
func (p *PayrollServiceImpl) generateOne(ctx context.Context, employeeID string, period payroll.Period) (payroll.BatchOutcome, error) {
	_, err := p.PayslipRepository.GetByEmployeeAndPeriod(ctx, employeeID, period)
	if err == nil {
		return payroll.OutcomeAlreadyExists, nil
	}
	if !errors.Is(err, payroll.ErrPayslipNotFound) {
		return "", fmt.Errorf("failed to check existing payslip: %w", err)
	}

	structure, err := p.SalaryStructureRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, payroll.ErrSalaryStructureNotFound) {
			return payroll.OutcomeNoSalaryStructure, nil
		}
		return "", fmt.Errorf("failed to get salary structure: %w", err)
	}

	emp, err := p.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return "", fmt.Errorf("failed to get employee: %w", err)
	}

	doc, err := p.renderer.Render(ctx, document.PayslipData{
		EmployeeName:     emp.FullName,
		Period:           period.String(),
		Basic:            structure.Basic,
		HRA:              structure.HRA,
		SpecialAllowance: structure.SpecialAllowance,
		Gross:            structure.Gross(),
		Deductions:       structure.Deductions(),
		NetSalary:        structure.Net(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render payslip: %w", err)
	}

	url, err := p.fileService.UploadPayslip(ctx, employeeID, period.String(), doc, p.renderer.ContentType())
	if err != nil {
		return "", fmt.Errorf("failed to upload payslip: %w", err)
	}

	_, err = p.PayslipRepository.Create(ctx, payroll.Payslip{
		EmployeeID:  employeeID,
		PeriodYear:  period.Year,
		PeriodMonth: int(period.Month),
		Gross:       structure.Gross(),
		Deductions:  structure.Deductions(),
		NetSalary:   structure.Net(),
		PDFURL:      url,
	})
	if err != nil {
		// A concurrent batch won the insert; the stored payslip is the
		// authoritative one.
		if errors.Is(err, payroll.ErrPayslipAlreadyExists) {
			return payroll.OutcomeAlreadyExists, nil
		}
		return "", fmt.Errorf("failed to persist payslip: %w", err)
	}

	return payroll.OutcomeGenerated, nil
}

func (p *PayrollServiceImpl) publishProgress(batchID string, item payroll.BatchItemResult) {
	if p.hub == nil || batchID == "" {
		return
	}
	p.hub.Publish(batchID, sse.Event{
		BatchID: batchID,
		Name:    "progress",
		Data:    item,
	})
}

// GetPayslip implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetPayslip(ctx context.Context, employeeID string, period string) (payroll.PayslipResponse, error) {
	if employeeID == "" {
		return payroll.PayslipResponse{}, payroll.ErrPayslipNotFound
	}

	parsed, err := payroll.ParsePeriod(period)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	slip, err := p.PayslipRepository.GetByEmployeeAndPeriod(ctx, employeeID, parsed)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return payroll.PayslipResponse{
		ID:          slip.ID,
		EmployeeID:  slip.EmployeeID,
		Period:      payroll.Period{Year: slip.PeriodYear, Month: time.Month(slip.PeriodMonth)}.String(),
		Gross:       slip.Gross.String(),
		Deductions:  slip.Deductions.String(),
		NetSalary:   slip.NetSalary.String(),
		PDFURL:      slip.PDFURL,
		GeneratedAt: slip.GeneratedAt.UTC().Format(time.RFC3339),
	}, nil
}
