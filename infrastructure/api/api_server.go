package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/crastudio/crastudio"
	apimiddleware "github.com/crastudio/crastudio/infrastructure/api/middleware"
	v1 "github.com/crastudio/crastudio/infrastructure/api/v1"
)

// APIServer provides the HTTP API backed by a crastudio Client.
type APIServer struct {
	client       *crastudio.Client
	apiKeys      []string
	server       *Server
	router       chi.Router
	routerCalled bool
	logger       *slog.Logger
}

// NewAPIServer creates a new APIServer wired to the given Client. apiKeys
// configures write protection: mutating methods require a valid X-API-KEY
// header. Read-only endpoints, the dashboard, and the exports stay open.
func NewAPIServer(client *crastudio.Client, apiKeys []string) *APIServer {
	return &APIServer{
		client:  client,
		apiKeys: apiKeys,
		logger:  client.Logger(),
	}
}

// Router returns the chi router for customization before starting.
// Call this first, add custom middleware with router.Use(), then call
// MountRoutes(). If not called, ListenAndServe creates a default router.
func (a *APIServer) Router() chi.Router {
	if a.router != nil {
		return a.router
	}

	a.router = chi.NewRouter()
	a.routerCalled = true
	return a.router
}

// MountRoutes wires up all v1 API routes on the router.
func (a *APIServer) MountRoutes() {
	if a.router == nil {
		a.Router()
	}
	a.mountRoutes(a.router)
}

func (a *APIServer) mountRoutes(router chi.Router) {
	c := a.client

	programRouter := v1.NewProgramRouter(c)
	inventoryRouter := v1.NewInventoryRouter(c)
	requirementsRouter := v1.NewRequirementsRouter(c)
	workflowRouter := v1.NewWorkflowRouter(c)
	operationsRouter := v1.NewOperationsRouter(c)
	reportingRouter := v1.NewReportingRouter(c)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second))

		// Reporting is read-only and stays open.
		r.Mount("/reporting", reportingRouter.Routes())

		// Everything else carries write protection on mutating methods.
		r.Group(func(r chi.Router) {
			r.Use(apimiddleware.WriteProtect(apimiddleware.NewAuthConfigWithKeys(a.apiKeys)))

			r.Mount("/program", programRouter.Routes())
			r.Mount("/inventory", inventoryRouter.Routes())
			r.Mount("/requirements", requirementsRouter.Routes())
			r.Mount("/applicability", workflowRouter.ApplicabilityRoutes())
			r.Mount("/economic-roles", workflowRouter.RoleRoutes())
			r.Mount("/criticality", workflowRouter.CriticalityRoutes())
			r.Mount("/assessments", workflowRouter.AssessmentRoutes())
			r.Mount("/actions", workflowRouter.ActionRoutes())
			r.Mount("/evidence", workflowRouter.EvidenceRoutes())
			r.Mount("/operations", operationsRouter.Routes())
			r.Mount("/audit", operationsRouter.AuditRoutes())
		})
	})
}

// ListenAndServe starts the HTTP server on the given address.
func (a *APIServer) ListenAndServe(addr string) error {
	server := NewServer(addr, a.logger)
	a.server = &server

	if a.routerCalled && a.router != nil {
		server.Router().Mount("/", a.router)
	} else {
		a.mountRoutes(server.Router())
	}

	return server.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns the router as an http.Handler for use with custom servers.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		a.Router()
		a.MountRoutes()
	}
	return a.router
}
