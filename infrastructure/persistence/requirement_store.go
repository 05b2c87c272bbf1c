package persistence

import (
	"context"
	"fmt"

	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/domain/record"
	"github.com/crastudio/crastudio/internal/database"
	"gorm.io/gorm"
)

// RequirementStore persists the requirements catalog. Unlike the other
// stores it carries two mutations beyond insert: deactivation, and the
// first-startup baseline seed.
type RequirementStore struct {
	database.Repository[compliance.Requirement]
	db database.Database
}

// NewRequirementStore creates a new RequirementStore.
func NewRequirementStore(db database.Database) RequirementStore {
	return RequirementStore{
		Repository: database.NewRepository[compliance.Requirement](db, "requirement"),
		db:         db,
	}
}

// List returns catalog entries ordered by req_id. When activeOnly is set,
// deactivated requirements are excluded.
func (s RequirementStore) List(ctx context.Context, activeOnly bool) ([]compliance.Requirement, error) {
	options := []record.Option{record.WithOrderAsc("req_id")}
	if activeOnly {
		options = append(options, record.WithActive(true))
	}
	return s.Find(ctx, options...)
}

// Deactivate clears the active flag on the requirement with the given req_id
// and returns the number of rows affected. Deactivating an already inactive
// or unknown req_id affects zero rows.
func (s RequirementStore) Deactivate(ctx context.Context, reqID string) (int64, error) {
	return s.Updates(ctx, map[string]any{"active": 0}, record.WithReqID(reqID))
}

// SeedBaseline inserts the baseline catalog into an empty requirements table.
// The seed runs in a single transaction so a partial baseline can never be
// observed; a non-empty catalog is left untouched.
func (s RequirementStore) SeedBaseline(ctx context.Context) (bool, error) {
	seeded := false
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		var count int64
		if result := tx.Model(&compliance.Requirement{}).Count(&count); result.Error != nil {
			return fmt.Errorf("count requirements: %w", result.Error)
		}
		if count > 0 {
			return nil
		}
		baseline := make([]compliance.Requirement, len(compliance.BaselineRequirements))
		copy(baseline, compliance.BaselineRequirements)
		if result := tx.Create(&baseline); result.Error != nil {
			return fmt.Errorf("seed requirements: %w", result.Error)
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}
