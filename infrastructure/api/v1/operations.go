package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crastudio/crastudio"
	"github.com/crastudio/crastudio/application/service"
	"github.com/crastudio/crastudio/infrastructure/api/middleware"
	"github.com/crastudio/crastudio/infrastructure/api/v1/dto"
)

// OperationsRouter handles vulnerability tracking and audit endpoints.
type OperationsRouter struct {
	client *crastudio.Client
	logger *slog.Logger
}

// NewOperationsRouter creates a new OperationsRouter.
func NewOperationsRouter(client *crastudio.Client) *OperationsRouter {
	return &OperationsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router mounted at /operations.
func (r *OperationsRouter) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/vulnerabilities", r.ListVulnerabilities)
	router.Post("/vulnerabilities", r.ReportVulnerability)
	return router
}

// AuditRoutes returns the chi router mounted at /audit.
func (r *OperationsRouter) AuditRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/findings", r.ListFindings)
	router.Post("/findings", r.RecordFinding)
	return router
}

// ListVulnerabilities handles GET /api/v1/operations/vulnerabilities.
func (r *OperationsRouter) ListVulnerabilities(w http.ResponseWriter, req *http.Request) {
	vulns, err := r.client.Operations.Vulnerabilities(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, vulns)
}

// ReportVulnerability handles POST /api/v1/operations/vulnerabilities.
func (r *OperationsRouter) ReportVulnerability(w http.ResponseWriter, req *http.Request) {
	var body dto.VulnerabilityCreateRequest
	if err := decodeJSON(req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	vuln, err := r.client.Operations.ReportVulnerability(req.Context(), service.VulnerabilityParams{
		ProductID:     body.ProductID,
		VulnID:        body.VulnID,
		Severity:      body.Severity,
		Status:        body.Status,
		DetectedOn:    body.DetectedOn,
		TargetFixDate: body.TargetFixDate,
		CVDReported:   body.CVDReported,
		Notes:         body.Notes,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, vuln)
}

// ListFindings handles GET /api/v1/audit/findings.
func (r *OperationsRouter) ListFindings(w http.ResponseWriter, req *http.Request) {
	findings, err := r.client.Operations.Findings(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, findings)
}

// RecordFinding handles POST /api/v1/audit/findings.
func (r *OperationsRouter) RecordFinding(w http.ResponseWriter, req *http.Request) {
	var body dto.FindingCreateRequest
	if err := decodeJSON(req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	finding, err := r.client.Operations.RecordFinding(req.Context(), service.FindingParams{
		ProductID:            body.ProductID,
		AuditDate:            body.AuditDate,
		Auditor:              body.Auditor,
		Finding:              body.Finding,
		CAPAOwner:            body.CAPAOwner,
		CAPAStatus:           body.CAPAStatus,
		ConfidentialityLevel: body.ConfidentialityLevel,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, finding)
}
