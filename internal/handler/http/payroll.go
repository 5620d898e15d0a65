package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/attendhq/attendance-backend-go/internal/domain/payroll"
	"github.com/attendhq/attendance-backend-go/internal/handler/http/response"
	"github.com/attendhq/attendance-backend-go/internal/pkg/sse"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PayrollHandler interface {
	GenerateBatch(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	hub            *sse.Hub
}

func NewPayrollHandler(payrollService payroll.PayrollService, hub *sse.Hub) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		hub:            hub,
	}
}

// GenerateBatch implements PayrollHandler. The response is an SSE stream:
// one progress event per employee, then a completed (or failed) event with
// the batch summary. Progress is pushed by the service through the hub while
// generation runs in a separate goroutine.
func (h *payrollHandlerImpl) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	req.BatchID = uuid.NewString()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(req.BatchID)
	defer cleanup()

	fmt.Fprintf(w, "event: started\ndata: {\"batch_id\":%q,\"total\":%d}\n\n", req.BatchID, len(req.EmployeeIDs))
	flusher.Flush()

	type batchDone struct {
		result payroll.BatchResult
		err    error
	}
	done := make(chan batchDone, 1)
	go func() {
		result, err := h.payrollService.GenerateBatch(r.Context(), req)
		done <- batchDone{result: result, err: err}
	}()

	for {
		select {
		case event := <-events:
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data)
			flusher.Flush()

		case d := <-done:
			// Drain progress that raced the completion signal.
			for {
				select {
				case event := <-events:
					if data, err := json.Marshal(event.Data); err == nil {
						fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data)
					}
					continue
				default:
				}
				break
			}

			name := "completed"
			if d.err != nil {
				name = "failed"
			}
			data, err := json.Marshal(d.result)
			if err == nil {
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
			}
			flusher.Flush()
			return

		case <-r.Context().Done():
			return
		}
	}
}

// GetPayslip implements PayrollHandler.
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	period := r.URL.Query().Get("period")
	if period == "" {
		response.BadRequest(w, "Query parameter 'period' is required", nil)
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), employeeID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
