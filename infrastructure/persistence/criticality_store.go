package persistence

import (
	"context"
	"fmt"

	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/internal/database"
)

// CriticalityStore persists criticality classifications.
type CriticalityStore struct {
	database.Repository[compliance.Criticality]
}

// NewCriticalityStore creates a new CriticalityStore.
func NewCriticalityStore(db database.Database) CriticalityStore {
	return CriticalityStore{
		Repository: database.NewRepository[compliance.Criticality](db, "criticality"),
	}
}

// ConformityOverview returns the criticality history joined with product
// names, most recent classification first.
func (s CriticalityStore) ConformityOverview(ctx context.Context) ([]compliance.ConformityOverviewRow, error) {
	var rows []compliance.ConformityOverviewRow
	result := s.DB(ctx).
		Table("criticality").
		Select("products.name AS product, criticality.level, criticality.conformity_route, criticality.notified_body_required, criticality.notes").
		Joins("JOIN products ON products.id = criticality.product_id").
		Order("criticality.id DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("conformity overview: %w", result.Error)
	}
	return rows, nil
}
