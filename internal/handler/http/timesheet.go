package http

import (
	"net/http"

	"github.com/pontoflow/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontoflow/ponto-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// Report implements TimesheetHandler.
func (h *timesheetHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.Report(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements TimesheetHandler.
func (h *timesheetHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.Export(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func filterFromQuery(r *http.Request) timesheet.ReportFilter {
	q := r.URL.Query()
	return timesheet.ReportFilter{
		StartDate: q.Get("start"),
		EndDate:   q.Get("end"),
	}
}
