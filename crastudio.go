// Package crastudio provides a compliance tracking library for the EU Cyber
// Resilience Act: a product inventory, a requirements catalog, a gap
// assessment workflow, vulnerability and audit records, and report exports.
//
// Basic usage:
//
//	client, err := crastudio.New(
//	    crastudio.WithSQLite(".crastudio/crastudio.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	org, err := client.Program.CreateOrganization(ctx, service.OrganizationCreateParams{
//	    Name:    "Example Motors",
//	    OrgType: compliance.OrgTypeOEM,
//	})
package crastudio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/crastudio/crastudio/application/service"
	"github.com/crastudio/crastudio/infrastructure/persistence"
	"github.com/crastudio/crastudio/internal/config"
	"github.com/crastudio/crastudio/internal/database"
)

// Client is the main entry point for the crastudio library. Access
// resources via struct fields:
//
//	client.Program.Products(ctx)
//	client.Catalog.Requirements(ctx, true)
//	client.Dashboard.Metrics(ctx)
type Client struct {
	Program    *service.Program
	Catalog    *service.Catalog
	Workflow   *service.Workflow
	Operations *service.Operations
	Dashboard  *service.Dashboard
	Reports    *service.Report

	db      database.Database
	logger  *slog.Logger
	apiKeys []string
	closed  atomic.Bool
}

// New creates a new Client with the given options. The schema is migrated
// and, unless disabled, an empty requirements catalog is seeded with the
// baseline entries.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	dbURL := cfg.dbURL
	if dbURL == "" {
		if err := os.MkdirAll(cfg.dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		dbURL = "sqlite:///" + filepath.Join(cfg.dataDir, config.DefaultDBName)
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if db.IsPostgres() {
		if err := db.ConfigurePool(config.DefaultPoolMax, config.DefaultPoolIdle, time.Hour); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if err := persistence.AutoMigrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	client := newClient(db, logger, cfg.apiKeys)

	if !cfg.skipSeed {
		if err := client.Catalog.SeedDefaults(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return client, nil
}

// newClient wires the stores and services over an open database handle.
func newClient(db database.Database, logger *slog.Logger, apiKeys []string) *Client {
	organizations := persistence.NewOrganizationStore(db)
	products := persistence.NewProductStore(db)
	requirements := persistence.NewRequirementStore(db)
	applicability := persistence.NewApplicabilityStore(db)
	roles := persistence.NewEconomicRoleStore(db)
	criticality := persistence.NewCriticalityStore(db)
	assessments := persistence.NewAssessmentStore(db)
	actions := persistence.NewActionStore(db)
	evidence := persistence.NewEvidenceStore(db)
	vulnerabilities := persistence.NewVulnerabilityStore(db)
	findings := persistence.NewAuditFindingStore(db)

	return &Client{
		Program: service.NewProgram(organizations, products, logger),
		Catalog: service.NewCatalog(requirements, logger),
		Workflow: service.NewWorkflow(
			applicability, roles, criticality,
			assessments, actions, evidence,
			products, requirements,
			logger,
		),
		Operations: service.NewOperations(vulnerabilities, findings, products, logger),
		Dashboard:  service.NewDashboard(products, assessments, actions, roles),
		Reports: service.NewReport(
			products, applicability, criticality,
			assessments, actions, evidence,
			vulnerabilities, findings,
		),
		db:      db,
		logger:  logger,
		apiKeys: apiKeys,
	}
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// APIKeys returns the configured API keys for HTTP write protection.
func (c *Client) APIKeys() []string {
	return c.apiKeys
}

// DB returns the underlying database handle.
func (c *Client) DB() database.Database {
	return c.db
}

// Close releases the database connection. Safe to call more than once.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.db.Close()
}
