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

// ProgramRouter handles organization endpoints.
type ProgramRouter struct {
	client *crastudio.Client
	logger *slog.Logger
}

// NewProgramRouter creates a new ProgramRouter.
func NewProgramRouter(client *crastudio.Client) *ProgramRouter {
	return &ProgramRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for program endpoints.
func (r *ProgramRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/organizations", r.ListOrganizations)
	router.Post("/organizations", r.CreateOrganization)

	return router
}

// ListOrganizations handles GET /api/v1/program/organizations.
func (r *ProgramRouter) ListOrganizations(w http.ResponseWriter, req *http.Request) {
	orgs, err := r.client.Program.Organizations(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, orgs)
}

// CreateOrganization handles POST /api/v1/program/organizations.
func (r *ProgramRouter) CreateOrganization(w http.ResponseWriter, req *http.Request) {
	var body dto.OrganizationCreateRequest
	if err := decodeJSON(req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	org, err := r.client.Program.CreateOrganization(req.Context(), service.OrganizationCreateParams{
		Name:      body.Name,
		OrgType:   body.OrgType,
		Markets:   body.Markets,
		CreatedAt: body.CreatedAt,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, org)
}
