package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crastudio/crastudio"
	"github.com/crastudio/crastudio/application/service"
	"github.com/crastudio/crastudio/infrastructure/api/middleware"
	"github.com/crastudio/crastudio/infrastructure/api/v1/dto"
)

// RequirementsRouter handles requirements catalog endpoints.
type RequirementsRouter struct {
	client *crastudio.Client
	logger *slog.Logger
}

// NewRequirementsRouter creates a new RequirementsRouter.
func NewRequirementsRouter(client *crastudio.Client) *RequirementsRouter {
	return &RequirementsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for catalog endpoints.
func (r *RequirementsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/", r.Add)
	router.Patch("/{req_id}/deactivate", r.Deactivate)

	return router
}

// List handles GET /api/v1/requirements. The active_only query parameter
// restricts the listing to the live catalog and defaults to true.
func (r *RequirementsRouter) List(w http.ResponseWriter, req *http.Request) {
	activeOnly := true
	if raw := req.URL.Query().Get("active_only"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			activeOnly = v
		}
	}

	requirements, err := r.client.Catalog.Requirements(req.Context(), activeOnly)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, requirements)
}

// Add handles POST /api/v1/requirements.
func (r *RequirementsRouter) Add(w http.ResponseWriter, req *http.Request) {
	var body dto.RequirementCreateRequest
	if err := decodeJSON(req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	requirement, err := r.client.Catalog.AddRequirement(req.Context(), service.RequirementCreateParams{
		ReqID:            body.ReqID,
		Title:            body.Title,
		Text:             body.Text,
		Source:           body.Source,
		Tags:             body.Tags,
		EvidenceExamples: body.EvidenceExamples,
		TestMethod:       body.TestMethod,
		Severity:         body.Severity,
		Weight:           body.Weight,
		Version:          body.Version,
		EffectiveDate:    body.EffectiveDate,
		Supersedes:       body.Supersedes,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, requirement)
}

// Deactivate handles PATCH /api/v1/requirements/{req_id}/deactivate.
func (r *RequirementsRouter) Deactivate(w http.ResponseWriter, req *http.Request) {
	reqID := chi.URLParam(req, "req_id")

	if err := r.client.Catalog.Deactivate(req.Context(), reqID); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
