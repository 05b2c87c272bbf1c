package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crastudio/crastudio"
	"github.com/crastudio/crastudio/infrastructure/api/middleware"
	"github.com/crastudio/crastudio/infrastructure/report"
)

// ReportingRouter handles the dashboard and export endpoints.
type ReportingRouter struct {
	client *crastudio.Client
	pdf    report.PDF
	excel  report.Excel
	logger *slog.Logger
}

// NewReportingRouter creates a new ReportingRouter.
func NewReportingRouter(client *crastudio.Client) *ReportingRouter {
	return &ReportingRouter{
		client: client,
		pdf:    report.NewPDF(),
		excel:  report.NewExcel(),
		logger: client.Logger(),
	}
}

// Routes returns the chi router for reporting endpoints.
func (r *ReportingRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/dashboard", r.Dashboard)
	router.Get("/export/pdf", r.ExportPDF)
	router.Get("/export/excel", r.ExportExcel)
	router.Get("/technical-file", r.TechnicalFile)

	return router
}

// Dashboard handles GET /api/v1/reporting/dashboard.
func (r *ReportingRouter) Dashboard(w http.ResponseWriter, req *http.Request) {
	metrics, err := r.client.Dashboard.Metrics(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, metrics)
}

// ExportPDF handles GET /api/v1/reporting/export/pdf. The report_type query
// parameter selects the dataset; unknown types fall back to the gap report.
func (r *ReportingRouter) ExportPDF(w http.ResponseWriter, req *http.Request) {
	reportType := req.URL.Query().Get("report_type")

	table, err := r.client.Reports.Build(req.Context(), reportType)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data, err := r.pdf.Render(table)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeAttachment(w, data, "application/pdf", "cra_report.pdf")
}

// ExportExcel handles GET /api/v1/reporting/export/excel.
func (r *ReportingRouter) ExportExcel(w http.ResponseWriter, req *http.Request) {
	sheets, err := r.client.Reports.WorkbookSheets(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data, err := r.excel.Workbook(sheets...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeAttachment(w, data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "cra_workbook.xlsx")
}

// TechnicalFile handles GET /api/v1/reporting/technical-file: the technical
// documentation pack as a single PDF.
func (r *ReportingRouter) TechnicalFile(w http.ResponseWriter, req *http.Request) {
	tables, err := r.client.Reports.TechnicalFile(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data, err := r.pdf.Render(tables...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeAttachment(w, data, "application/pdf", "technical_file.pdf")
}

func writeAttachment(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
