// Package persistence provides database storage implementations.
package persistence

import (
	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/internal/database"
)

// AutoMigrate creates or updates the schema for all tracked record types.
// It is idempotent and runs on every startup.
func AutoMigrate(db database.Database) error {
	return db.GORM().AutoMigrate(
		&compliance.Organization{},
		&compliance.Product{},
		&compliance.ApplicabilityDecision{},
		&compliance.EconomicRole{},
		&compliance.Criticality{},
		&compliance.Requirement{},
		&compliance.Assessment{},
		&compliance.Action{},
		&compliance.Evidence{},
		&compliance.Vulnerability{},
		&compliance.AuditFinding{},
	)
}
