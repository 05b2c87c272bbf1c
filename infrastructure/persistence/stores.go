package persistence

import (
	"context"
	"fmt"

	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/internal/database"
	"gorm.io/gorm"
)

// The record stores below are thin instantiations of the generic repository,
// one per table. Every entity is append-only; none of these expose update or
// delete operations. The requirement catalog, which does mutate one flag,
// lives in requirement_store.go.

// OrganizationStore persists organizations.
type OrganizationStore struct {
	database.Repository[compliance.Organization]
}

// NewOrganizationStore creates a new OrganizationStore.
func NewOrganizationStore(db database.Database) OrganizationStore {
	return OrganizationStore{
		Repository: database.NewRepository[compliance.Organization](db, "organization"),
	}
}

// ProductStore persists products.
type ProductStore struct {
	database.Repository[compliance.Product]
}

// NewProductStore creates a new ProductStore.
func NewProductStore(db database.Database) ProductStore {
	return ProductStore{
		Repository: database.NewRepository[compliance.Product](db, "product"),
	}
}

// ApplicabilityStore persists applicability decisions.
type ApplicabilityStore struct {
	database.Repository[compliance.ApplicabilityDecision]
}

// NewApplicabilityStore creates a new ApplicabilityStore.
func NewApplicabilityStore(db database.Database) ApplicabilityStore {
	return ApplicabilityStore{
		Repository: database.NewRepository[compliance.ApplicabilityDecision](db, "applicability decision"),
	}
}

// EconomicRoleStore persists economic operator roles.
type EconomicRoleStore struct {
	database.Repository[compliance.EconomicRole]
}

// NewEconomicRoleStore creates a new EconomicRoleStore.
func NewEconomicRoleStore(db database.Database) EconomicRoleStore {
	return EconomicRoleStore{
		Repository: database.NewRepository[compliance.EconomicRole](db, "economic role"),
	}
}

// RoleBreakdown returns role-assignment counts grouped by role.
func (s EconomicRoleStore) RoleBreakdown(ctx context.Context) (map[string]int64, error) {
	return groupCount(s.DB(ctx).Model(&compliance.EconomicRole{}), "role")
}

// AssessmentStore persists gap assessments.
type AssessmentStore struct {
	database.Repository[compliance.Assessment]
}

// NewAssessmentStore creates a new AssessmentStore.
func NewAssessmentStore(db database.Database) AssessmentStore {
	return AssessmentStore{
		Repository: database.NewRepository[compliance.Assessment](db, "assessment"),
	}
}

// AssessedProductCount returns the number of distinct products with at least
// one assessment.
func (s AssessmentStore) AssessedProductCount(ctx context.Context) (int64, error) {
	var count int64
	result := s.DB(ctx).
		Model(&compliance.Assessment{}).
		Distinct("product_id").
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("count assessed products: %w", result.Error)
	}
	return count, nil
}

// EvidenceStatusBreakdown returns assessment counts grouped by evidence
// status.
func (s AssessmentStore) EvidenceStatusBreakdown(ctx context.Context) (map[string]int64, error) {
	return groupCount(s.DB(ctx).Model(&compliance.Assessment{}), "evidence_status")
}

// ActionStore persists remediation actions.
type ActionStore struct {
	database.Repository[compliance.Action]
}

// NewActionStore creates a new ActionStore.
func NewActionStore(db database.Database) ActionStore {
	return ActionStore{
		Repository: database.NewRepository[compliance.Action](db, "action"),
	}
}

// EvidenceStore persists evidence artifacts.
type EvidenceStore struct {
	database.Repository[compliance.Evidence]
}

// NewEvidenceStore creates a new EvidenceStore.
func NewEvidenceStore(db database.Database) EvidenceStore {
	return EvidenceStore{
		Repository: database.NewRepository[compliance.Evidence](db, "evidence"),
	}
}

// VulnerabilityStore persists vulnerabilities.
type VulnerabilityStore struct {
	database.Repository[compliance.Vulnerability]
}

// NewVulnerabilityStore creates a new VulnerabilityStore.
func NewVulnerabilityStore(db database.Database) VulnerabilityStore {
	return VulnerabilityStore{
		Repository: database.NewRepository[compliance.Vulnerability](db, "vulnerability"),
	}
}

// AuditFindingStore persists audit findings.
type AuditFindingStore struct {
	database.Repository[compliance.AuditFinding]
}

// NewAuditFindingStore creates a new AuditFindingStore.
func NewAuditFindingStore(db database.Database) AuditFindingStore {
	return AuditFindingStore{
		Repository: database.NewRepository[compliance.AuditFinding](db, "audit finding"),
	}
}

// groupCount runs a GROUP BY over column and returns the counts keyed by the
// column value.
func groupCount(db *gorm.DB, column string) (map[string]int64, error) {
	var rows []struct {
		Key   string
		Count int64
	}
	result := db.
		Select(fmt.Sprintf("%s AS key, COUNT(*) AS count", column)).
		Group(column).
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("group by %s: %w", column, result.Error)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}
