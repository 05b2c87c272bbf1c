// Package service implements the application services behind the API:
// program setup, the requirements catalog, the assessment workflow,
// operations tracking, dashboard aggregation, and report building.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/domain/record"
	"github.com/crastudio/crastudio/infrastructure/persistence"
)

// OrganizationCreateParams configures creating an organization.
type OrganizationCreateParams struct {
	Name      string
	OrgType   string
	Markets   string
	CreatedAt string
}

// ProductCreateParams configures creating a product.
type ProductCreateParams struct {
	OrganizationID int64
	Name           string
	ProductType    string
	Family         string
	Market         string
}

// Program provides organization and product inventory operations.
type Program struct {
	organizations persistence.OrganizationStore
	products      persistence.ProductStore
	logger        *slog.Logger
	now           func() time.Time
}

// NewProgram creates a new Program service.
func NewProgram(
	organizations persistence.OrganizationStore,
	products persistence.ProductStore,
	logger *slog.Logger,
) *Program {
	return &Program{
		organizations: organizations,
		products:      products,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateOrganization registers a new organization and returns it with its
// assigned identifier. The creation date defaults to today when omitted.
func (s *Program) CreateOrganization(ctx context.Context, params OrganizationCreateParams) (compliance.Organization, error) {
	if params.Name == "" {
		return compliance.Organization{}, fmt.Errorf("%w: name is required", compliance.ErrValidation)
	}
	if params.OrgType == "" {
		return compliance.Organization{}, fmt.Errorf("%w: org_type is required", compliance.ErrValidation)
	}

	org := compliance.Organization{
		Name:      params.Name,
		OrgType:   params.OrgType,
		Markets:   params.Markets,
		CreatedAt: params.CreatedAt,
	}
	if org.CreatedAt == "" {
		org.CreatedAt = s.now().Format("2006-01-02")
	}

	if err := s.organizations.Create(ctx, &org); err != nil {
		return compliance.Organization{}, err
	}

	s.logger.Info("organization created",
		slog.Int64("id", org.ID),
		slog.String("name", org.Name),
		slog.String("org_type", org.OrgType),
	)
	return org, nil
}

// Organizations lists all organizations, most recent first.
func (s *Program) Organizations(ctx context.Context) ([]compliance.Organization, error) {
	return s.organizations.Find(ctx, record.LatestFirst())
}

// CreateProduct adds a product to the inventory. The owning organization
// must exist.
func (s *Program) CreateProduct(ctx context.Context, params ProductCreateParams) (compliance.Product, error) {
	if params.Name == "" {
		return compliance.Product{}, fmt.Errorf("%w: name is required", compliance.ErrValidation)
	}
	if err := s.requireOrganization(ctx, params.OrganizationID); err != nil {
		return compliance.Product{}, err
	}

	product := compliance.Product{
		OrganizationID: params.OrganizationID,
		Name:           params.Name,
		ProductType:    params.ProductType,
		Family:         params.Family,
		Market:         params.Market,
	}
	if err := s.products.Create(ctx, &product); err != nil {
		return compliance.Product{}, err
	}

	s.logger.Info("product created",
		slog.Int64("id", product.ID),
		slog.Int64("organization_id", product.OrganizationID),
		slog.String("name", product.Name),
	)
	return product, nil
}

// Products lists the full inventory, most recent first.
func (s *Program) Products(ctx context.Context) ([]compliance.Product, error) {
	return s.products.Find(ctx, record.LatestFirst())
}

func (s *Program) requireOrganization(ctx context.Context, id int64) error {
	exists, err := s.organizations.Exists(ctx, record.WithID(id))
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("organization %d: %w", id, compliance.ErrNotFound)
	}
	return nil
}
