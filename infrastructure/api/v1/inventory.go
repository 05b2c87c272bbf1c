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

// InventoryRouter handles product inventory endpoints.
type InventoryRouter struct {
	client *crastudio.Client
	logger *slog.Logger
}

// NewInventoryRouter creates a new InventoryRouter.
func NewInventoryRouter(client *crastudio.Client) *InventoryRouter {
	return &InventoryRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for inventory endpoints.
func (r *InventoryRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/products", r.ListProducts)
	router.Post("/products", r.CreateProduct)

	return router
}

// ListProducts handles GET /api/v1/inventory/products.
func (r *InventoryRouter) ListProducts(w http.ResponseWriter, req *http.Request) {
	products, err := r.client.Program.Products(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, products)
}

// CreateProduct handles POST /api/v1/inventory/products.
func (r *InventoryRouter) CreateProduct(w http.ResponseWriter, req *http.Request) {
	var body dto.ProductCreateRequest
	if err := decodeJSON(req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	product, err := r.client.Program.CreateProduct(req.Context(), service.ProductCreateParams{
		OrganizationID: body.OrganizationID,
		Name:           body.Name,
		ProductType:    body.ProductType,
		Family:         body.Family,
		Market:         body.Market,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, product)
}
