package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/domain/record"
	"github.com/crastudio/crastudio/infrastructure/persistence"
)

// DashboardMetrics aggregates the program posture shown on the dashboard.
type DashboardMetrics struct {
	Products          int64            `json:"products"`
	AssessedProducts  int64            `json:"products_assessed"`
	OpenGaps          int64            `json:"open_gaps"`
	HighRisks         int64            `json:"high_risk_findings"`
	ActionsDue90Days  int64            `json:"due_90_days"`
	EvidenceBreakdown map[string]int64 `json:"evidence_breakdown"`
	RoleBreakdown     map[string]int64 `json:"role_breakdown"`
}

// Dashboard computes program-level aggregates over the workflow stores.
type Dashboard struct {
	products    persistence.ProductStore
	assessments persistence.AssessmentStore
	actions     persistence.ActionStore
	roles       persistence.EconomicRoleStore
	now         func() time.Time
}

// NewDashboard creates a new Dashboard service.
func NewDashboard(
	products persistence.ProductStore,
	assessments persistence.AssessmentStore,
	actions persistence.ActionStore,
	roles persistence.EconomicRoleStore,
) *Dashboard {
	return &Dashboard{
		products:    products,
		assessments: assessments,
		actions:     actions,
		roles:       roles,
		now:         time.Now,
	}
}

// highRiskThreshold is the risk score at and above which an assessment
// counts as a high risk.
const highRiskThreshold = 8

// Metrics computes the dashboard aggregates. Open gaps are assessments not
// yet closed; the due window counts unfinished actions due within the next
// 90 days, inclusive.
func (s *Dashboard) Metrics(ctx context.Context) (DashboardMetrics, error) {
	metrics := DashboardMetrics{}

	var err error
	if metrics.Products, err = s.products.Count(ctx); err != nil {
		return DashboardMetrics{}, fmt.Errorf("count products: %w", err)
	}
	if metrics.AssessedProducts, err = s.assessments.AssessedProductCount(ctx); err != nil {
		return DashboardMetrics{}, err
	}
	if metrics.OpenGaps, err = s.assessments.Count(ctx, record.WithStatusNot(compliance.StatusClosed)); err != nil {
		return DashboardMetrics{}, fmt.Errorf("count open gaps: %w", err)
	}
	if metrics.HighRisks, err = s.assessments.Count(ctx, record.WithRiskScoreAtLeast(highRiskThreshold)); err != nil {
		return DashboardMetrics{}, fmt.Errorf("count high risks: %w", err)
	}

	dueBy := s.now().AddDate(0, 0, 90)
	metrics.ActionsDue90Days, err = s.actions.Count(ctx,
		record.WithDueOnOrBefore(dueBy),
		record.WithStatusNot(compliance.ActionDone),
	)
	if err != nil {
		return DashboardMetrics{}, fmt.Errorf("count due actions: %w", err)
	}

	if metrics.EvidenceBreakdown, err = s.assessments.EvidenceStatusBreakdown(ctx); err != nil {
		return DashboardMetrics{}, err
	}
	if metrics.RoleBreakdown, err = s.roles.RoleBreakdown(ctx); err != nil {
		return DashboardMetrics{}, err
	}

	return metrics, nil
}
