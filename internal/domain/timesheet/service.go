package timesheet

import "context"

// TimesheetService computes the banco-de-horas report for the
// authenticated employee.
type TimesheetService interface {
	// Report walks the window and returns the visual report: rows for days
	// with punches, absences or exception days, newest first, plus the
	// running total balance.
	Report(ctx context.Context, filter ReportFilter) (ReportResponse, error)

	// Export walks the same window in include-every-day mode and returns
	// paginated rows for the printable document.
	Export(ctx context.Context, filter ReportFilter) (ExportResponse, error)
}
