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

// WorkflowRouter handles the assessment workflow endpoints: applicability,
// economic roles, criticality, assessments, actions, and evidence. Each
// group mounts under its own path prefix.
type WorkflowRouter struct {
	client *crastudio.Client
	logger *slog.Logger
}

// NewWorkflowRouter creates a new WorkflowRouter.
func NewWorkflowRouter(client *crastudio.Client) *WorkflowRouter {
	return &WorkflowRouter{
		client: client,
		logger: client.Logger(),
	}
}

// ApplicabilityRoutes returns the chi router mounted at /applicability.
func (r *WorkflowRouter) ApplicabilityRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/decisions", r.ListDecisions)
	router.Post("/decisions", r.RecordDecision)
	return router
}

// RoleRoutes returns the chi router mounted at /economic-roles.
func (r *WorkflowRouter) RoleRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", r.ListRoles)
	router.Post("/", r.AssignRole)
	return router
}

// CriticalityRoutes returns the chi router mounted at /criticality.
func (r *WorkflowRouter) CriticalityRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", r.ListClassifications)
	router.Post("/", r.Classify)
	router.Get("/overview", r.ConformityOverview)
	return router
}

// AssessmentRoutes returns the chi router mounted at /assessments.
func (r *WorkflowRouter) AssessmentRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", r.ListAssessments)
	router.Post("/", r.RecordAssessment)
	return router
}

// ActionRoutes returns the chi router mounted at /actions.
func (r *WorkflowRouter) ActionRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", r.ListActions)
	router.Post("/", r.PlanAction)
	return router
}

// EvidenceRoutes returns the chi router mounted at /evidence.
func (r *WorkflowRouter) EvidenceRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", r.ListEvidence)
	router.Post("/", r.RegisterEvidence)
	return router
}

// ListDecisions handles GET /api/v1/applicability/decisions.
func (r *WorkflowRouter) ListDecisions(w http.ResponseWriter, req *http.Request) {
	decisions, err := r.client.Workflow.ApplicabilityDecisions(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, decisions)
}

// RecordDecision handles POST /api/v1/applicability/decisions.
func (r *WorkflowRouter) RecordDecision(w http.ResponseWriter, req *http.Request) {
	var body dto.ApplicabilityCreateRequest
	if err := decodeJSON(req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	decision, err := r.client.Workflow.RecordApplicability(req.Context(), service.ApplicabilityParams{
		ProductID:     body.ProductID,
		InScope:       body.InScope,
		Justification: body.Justification,
		DecisionDate:  body.DecisionDate,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, decision)
}

// ListRoles handles GET /api/v1/economic-roles.
func (r *WorkflowRouter) ListRoles(w http.ResponseWriter, req *http.Request) {
	roles, err := r.client.Workflow.Roles(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, roles)
}

// AssignRole handles POST /api/v1/economic-roles.
func (r *WorkflowRouter) AssignRole(w http.ResponseWriter, req *http.Request) {
	var body dto.RoleCreateRequest
	if err := decodeJSON(req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	role, err := r.client.Workflow.AssignRole(req.Context(), service.RoleParams{
		ProductID:         body.ProductID,
		Role:              body.Role,
		Owner:             body.Owner,
		TraceabilityNotes: body.TraceabilityNotes,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, role)
}

// ListClassifications handles GET /api/v1/criticality.
func (r *WorkflowRouter) ListClassifications(w http.ResponseWriter, req *http.Request) {
	classifications, err := r.client.Workflow.Classifications(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, classifications)
}

// Classify handles POST /api/v1/criticality.
func (r *WorkflowRouter) Classify(w http.ResponseWriter, req *http.Request) {
	var body dto.CriticalityCreateRequest
	if err := decodeJSON(req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	classification, err := r.client.Workflow.ClassifyCriticality(req.Context(), service.CriticalityParams{
		ProductID:            body.ProductID,
		Level:                body.Level,
		ConformityRoute:      body.ConformityRoute,
		NotifiedBodyRequired: body.NotifiedBodyRequired,
		Notes:                body.Notes,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, classification)
}

// ConformityOverview handles GET /api/v1/criticality/overview.
func (r *WorkflowRouter) ConformityOverview(w http.ResponseWriter, req *http.Request) {
	overview, err := r.client.Workflow.ConformityOverview(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, overview)
}

// ListAssessments handles GET /api/v1/assessments.
func (r *WorkflowRouter) ListAssessments(w http.ResponseWriter, req *http.Request) {
	assessments, err := r.client.Workflow.Assessments(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, assessments)
}

// RecordAssessment handles POST /api/v1/assessments.
func (r *WorkflowRouter) RecordAssessment(w http.ResponseWriter, req *http.Request) {
	var body dto.AssessmentCreateRequest
	if err := decodeJSON(req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	assessment, err := r.client.Workflow.RecordAssessment(req.Context(), service.AssessmentParams{
		ProductID:      body.ProductID,
		RequirementID:  body.RequirementID,
		MaturityScore:  body.MaturityScore,
		RiskScore:      body.RiskScore,
		GapSummary:     body.GapSummary,
		Owner:          body.Owner,
		Status:         body.Status,
		EvidenceStatus: body.EvidenceStatus,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, assessment)
}

// ListActions handles GET /api/v1/actions.
func (r *WorkflowRouter) ListActions(w http.ResponseWriter, req *http.Request) {
	actions, err := r.client.Workflow.Actions(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, actions)
}

// PlanAction handles POST /api/v1/actions.
func (r *WorkflowRouter) PlanAction(w http.ResponseWriter, req *http.Request) {
	var body dto.ActionCreateRequest
	if err := decodeJSON(req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	action, err := r.client.Workflow.PlanAction(req.Context(), service.ActionParams{
		ProductID:     body.ProductID,
		RequirementID: body.RequirementID,
		Title:         body.Title,
		Owner:         body.Owner,
		DueDate:       body.DueDate,
		Status:        body.Status,
		Priority:      body.Priority,
		Notes:         body.Notes,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, action)
}

// ListEvidence handles GET /api/v1/evidence.
func (r *WorkflowRouter) ListEvidence(w http.ResponseWriter, req *http.Request) {
	artifacts, err := r.client.Workflow.EvidenceItems(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, artifacts)
}

// RegisterEvidence handles POST /api/v1/evidence.
func (r *WorkflowRouter) RegisterEvidence(w http.ResponseWriter, req *http.Request) {
	var body dto.EvidenceCreateRequest
	if err := decodeJSON(req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	artifact, err := r.client.Workflow.RegisterEvidence(req.Context(), service.EvidenceParams{
		ProductID:         body.ProductID,
		RequirementID:     body.RequirementID,
		ArtifactName:      body.ArtifactName,
		ArtifactType:      body.ArtifactType,
		LinkOrPath:        body.LinkOrPath,
		UploadedOn:        body.UploadedOn,
		CompletenessScore: body.CompletenessScore,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, artifact)
}
