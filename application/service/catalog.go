package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/infrastructure/persistence"
	"github.com/crastudio/crastudio/internal/database"
)

// RequirementCreateParams configures adding a catalog requirement.
type RequirementCreateParams struct {
	ReqID            string
	Title            string
	Text             string
	Source           string
	Tags             string
	EvidenceExamples string
	TestMethod       string
	Severity         string
	Weight           int
	Version          string
	EffectiveDate    string
	Supersedes       string
}

// Catalog provides requirements catalog operations: adding entries,
// listing, deactivation, and the first-startup baseline seed.
type Catalog struct {
	requirements persistence.RequirementStore
	logger       *slog.Logger
}

// NewCatalog creates a new Catalog service.
func NewCatalog(requirements persistence.RequirementStore, logger *slog.Logger) *Catalog {
	return &Catalog{
		requirements: requirements,
		logger:       logger,
	}
}

// AddRequirement inserts a catalog entry. req_id must be unique among all
// requirements ever created, active or not; a duplicate is a conflict.
func (s *Catalog) AddRequirement(ctx context.Context, params RequirementCreateParams) (compliance.Requirement, error) {
	if params.ReqID == "" {
		return compliance.Requirement{}, fmt.Errorf("%w: req_id is required", compliance.ErrValidation)
	}
	if params.Title == "" {
		return compliance.Requirement{}, fmt.Errorf("%w: title is required", compliance.ErrValidation)
	}
	if params.Weight == 0 {
		params.Weight = 5
	}
	if params.Weight < 1 || params.Weight > 10 {
		return compliance.Requirement{}, fmt.Errorf("%w: weight must be between 1 and 10", compliance.ErrValidation)
	}

	req := compliance.Requirement{
		ReqID:            params.ReqID,
		Title:            params.Title,
		Text:             params.Text,
		Source:           params.Source,
		Tags:             params.Tags,
		EvidenceExamples: params.EvidenceExamples,
		TestMethod:       params.TestMethod,
		Severity:         params.Severity,
		Weight:           params.Weight,
		Version:          params.Version,
		EffectiveDate:    params.EffectiveDate,
		Supersedes:       params.Supersedes,
		Active:           1,
	}
	if err := s.requirements.Create(ctx, &req); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return compliance.Requirement{}, fmt.Errorf("requirement %s already exists: %w", params.ReqID, compliance.ErrConflict)
		}
		return compliance.Requirement{}, err
	}

	s.logger.Info("requirement added",
		slog.String("req_id", req.ReqID),
		slog.String("severity", req.Severity),
	)
	return req, nil
}

// Requirements lists catalog entries ordered by req_id, optionally
// restricted to active entries.
func (s *Catalog) Requirements(ctx context.Context, activeOnly bool) ([]compliance.Requirement, error) {
	return s.requirements.List(ctx, activeOnly)
}

// Deactivate retires a requirement from the live catalog. Deactivating an
// unknown or already inactive req_id is a no-op; the row stays queryable in
// unfiltered listings either way.
func (s *Catalog) Deactivate(ctx context.Context, reqID string) error {
	affected, err := s.requirements.Deactivate(ctx, reqID)
	if err != nil {
		return err
	}
	s.logger.Info("requirement deactivated",
		slog.String("req_id", reqID),
		slog.Int64("rows", affected),
	)
	return nil
}

// SeedDefaults populates an empty catalog with the baseline requirements.
// Safe to call on every startup.
func (s *Catalog) SeedDefaults(ctx context.Context) error {
	seeded, err := s.requirements.SeedBaseline(ctx)
	if err != nil {
		return fmt.Errorf("seed default requirements: %w", err)
	}
	if seeded {
		s.logger.Info("requirements catalog seeded",
			slog.Int("count", len(compliance.BaselineRequirements)),
		)
	}
	return nil
}
