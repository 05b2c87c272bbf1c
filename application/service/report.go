package service

import (
	"context"
	"fmt"

	"github.com/crastudio/crastudio/domain/record"
	"github.com/crastudio/crastudio/domain/reporting"
	"github.com/crastudio/crastudio/infrastructure/persistence"
)

// Report types accepted by the PDF export. An unrecognized type falls back
// to the gap report.
const (
	ReportGap           = "gap"
	ReportRemediation   = "remediation"
	ReportTechnicalFile = "technical_file"
	ReportVulnerability = "vulnerability"
	ReportAudit         = "audit"
)

// Report builds the tabular datasets behind the PDF and Excel exports.
type Report struct {
	products        persistence.ProductStore
	applicability   persistence.ApplicabilityStore
	criticality     persistence.CriticalityStore
	assessments     persistence.AssessmentStore
	actions         persistence.ActionStore
	evidence        persistence.EvidenceStore
	vulnerabilities persistence.VulnerabilityStore
	findings        persistence.AuditFindingStore
}

// NewReport creates a new Report service.
func NewReport(
	products persistence.ProductStore,
	applicability persistence.ApplicabilityStore,
	criticality persistence.CriticalityStore,
	assessments persistence.AssessmentStore,
	actions persistence.ActionStore,
	evidence persistence.EvidenceStore,
	vulnerabilities persistence.VulnerabilityStore,
	findings persistence.AuditFindingStore,
) *Report {
	return &Report{
		products:        products,
		applicability:   applicability,
		criticality:     criticality,
		assessments:     assessments,
		actions:         actions,
		evidence:        evidence,
		vulnerabilities: vulnerabilities,
		findings:        findings,
	}
}

// Build returns the dataset for the given report type. Unknown types fall
// back to the gap report.
func (s *Report) Build(ctx context.Context, reportType string) (reporting.Table, error) {
	switch reportType {
	case ReportRemediation:
		return s.actionsTable(ctx, "Remediation Plan")
	case ReportTechnicalFile:
		return s.evidenceTable(ctx, "Technical File Evidence")
	case ReportVulnerability:
		return s.vulnerabilitiesTable(ctx)
	case ReportAudit:
		return s.findingsTable(ctx)
	default:
		return s.assessmentsTable(ctx, "Gap Assessment Report")
	}
}

// WorkbookSheets returns the four datasets of the Excel export, in sheet
// order.
func (s *Report) WorkbookSheets(ctx context.Context) ([]reporting.Table, error) {
	inventory, err := s.inventoryTable(ctx, "Inventory")
	if err != nil {
		return nil, err
	}
	gaps, err := s.assessmentsTable(ctx, "Gaps")
	if err != nil {
		return nil, err
	}
	actions, err := s.actionsTable(ctx, "Actions")
	if err != nil {
		return nil, err
	}
	evidence, err := s.evidenceTable(ctx, "Evidence")
	if err != nil {
		return nil, err
	}
	return []reporting.Table{inventory, gaps, actions, evidence}, nil
}

// annexVIIPack lists the documents a CRA technical file must contain per
// Annex VII. Rendered as the checklist page of the technical file export.
var annexVIIPack = []string{
	"Product Description",
	"Risk Assessment",
	"SBOM",
	"Test Reports",
	"Update Policy",
	"User Instructions",
	"EU Declaration of Conformity Draft Fields",
}

// TechnicalFile returns the technical documentation pack: the Annex VII
// document checklist followed by the inventory, scope decisions, conformity
// classifications, gap assessments, and registered evidence, one table per
// section.
func (s *Report) TechnicalFile(ctx context.Context) ([]reporting.Table, error) {
	checklist := reporting.Table{
		Title:   "Annex VII Document Checklist",
		Columns: []string{"document"},
	}
	for _, doc := range annexVIIPack {
		checklist.Rows = append(checklist.Rows, []any{doc})
	}

	inventory, err := s.inventoryTable(ctx, "Product Inventory")
	if err != nil {
		return nil, err
	}
	scope, err := s.applicabilityTable(ctx)
	if err != nil {
		return nil, err
	}
	conformity, err := s.criticalityTable(ctx)
	if err != nil {
		return nil, err
	}
	gaps, err := s.assessmentsTable(ctx, "Gap Assessments")
	if err != nil {
		return nil, err
	}
	evidence, err := s.evidenceTable(ctx, "Evidence Register")
	if err != nil {
		return nil, err
	}
	return []reporting.Table{checklist, inventory, scope, conformity, gaps, evidence}, nil
}

func (s *Report) inventoryTable(ctx context.Context, title string) (reporting.Table, error) {
	products, err := s.products.Find(ctx, record.LatestFirst())
	if err != nil {
		return reporting.Table{}, fmt.Errorf("build inventory: %w", err)
	}
	table := reporting.Table{
		Title:   title,
		Columns: []string{"id", "organization_id", "name", "product_type", "family", "market"},
	}
	for _, p := range products {
		table.Rows = append(table.Rows, []any{p.ID, p.OrganizationID, p.Name, p.ProductType, p.Family, p.Market})
	}
	return table, nil
}

func (s *Report) applicabilityTable(ctx context.Context) (reporting.Table, error) {
	decisions, err := s.applicability.Find(ctx, record.LatestFirst())
	if err != nil {
		return reporting.Table{}, fmt.Errorf("build applicability: %w", err)
	}
	table := reporting.Table{
		Title:   "Applicability Decisions",
		Columns: []string{"id", "product_id", "in_scope", "justification", "decision_date"},
	}
	for _, d := range decisions {
		table.Rows = append(table.Rows, []any{d.ID, d.ProductID, d.InScope, d.Justification, d.DecisionDate})
	}
	return table, nil
}

func (s *Report) criticalityTable(ctx context.Context) (reporting.Table, error) {
	classifications, err := s.criticality.Find(ctx, record.LatestFirst())
	if err != nil {
		return reporting.Table{}, fmt.Errorf("build criticality: %w", err)
	}
	table := reporting.Table{
		Title:   "Conformity Classification",
		Columns: []string{"id", "product_id", "level", "conformity_route", "notified_body_required", "notes"},
	}
	for _, c := range classifications {
		table.Rows = append(table.Rows, []any{c.ID, c.ProductID, c.Level, c.ConformityRoute, c.NotifiedBodyRequired, c.Notes})
	}
	return table, nil
}

func (s *Report) assessmentsTable(ctx context.Context, title string) (reporting.Table, error) {
	assessments, err := s.assessments.Find(ctx, record.LatestFirst())
	if err != nil {
		return reporting.Table{}, fmt.Errorf("build assessments: %w", err)
	}
	table := reporting.Table{
		Title: title,
		Columns: []string{
			"id", "product_id", "requirement_id", "maturity_score", "risk_score",
			"gap_summary", "owner", "status", "evidence_status",
		},
	}
	for _, a := range assessments {
		table.Rows = append(table.Rows, []any{
			a.ID, a.ProductID, a.RequirementID, a.MaturityScore, a.RiskScore,
			a.GapSummary, a.Owner, a.Status, a.EvidenceStatus,
		})
	}
	return table, nil
}

func (s *Report) actionsTable(ctx context.Context, title string) (reporting.Table, error) {
	actions, err := s.actions.Find(ctx, record.LatestFirst())
	if err != nil {
		return reporting.Table{}, fmt.Errorf("build actions: %w", err)
	}
	table := reporting.Table{
		Title: title,
		Columns: []string{
			"id", "product_id", "requirement_id", "title", "owner",
			"due_date", "status", "priority", "notes",
		},
	}
	for _, a := range actions {
		table.Rows = append(table.Rows, []any{
			a.ID, a.ProductID, a.RequirementID, a.Title, a.Owner,
			a.DueDate, a.Status, a.Priority, a.Notes,
		})
	}
	return table, nil
}

func (s *Report) evidenceTable(ctx context.Context, title string) (reporting.Table, error) {
	artifacts, err := s.evidence.Find(ctx, record.LatestFirst())
	if err != nil {
		return reporting.Table{}, fmt.Errorf("build evidence: %w", err)
	}
	table := reporting.Table{
		Title: title,
		Columns: []string{
			"id", "product_id", "requirement_id", "artifact_name", "artifact_type",
			"link_or_path", "uploaded_on", "completeness_score",
		},
	}
	for _, e := range artifacts {
		table.Rows = append(table.Rows, []any{
			e.ID, e.ProductID, e.RequirementID, e.ArtifactName, e.ArtifactType,
			e.LinkOrPath, e.UploadedOn, e.CompletenessScore,
		})
	}
	return table, nil
}

func (s *Report) vulnerabilitiesTable(ctx context.Context) (reporting.Table, error) {
	vulns, err := s.vulnerabilities.Find(ctx, record.LatestFirst())
	if err != nil {
		return reporting.Table{}, fmt.Errorf("build vulnerabilities: %w", err)
	}
	table := reporting.Table{
		Title: "Vulnerability Report",
		Columns: []string{
			"id", "product_id", "vuln_id", "severity", "status",
			"detected_on", "target_fix_date", "cvd_reported", "notes",
		},
	}
	for _, v := range vulns {
		table.Rows = append(table.Rows, []any{
			v.ID, v.ProductID, v.VulnID, v.Severity, v.Status,
			v.DetectedOn, v.TargetFixDate, v.CVDReported, v.Notes,
		})
	}
	return table, nil
}

func (s *Report) findingsTable(ctx context.Context) (reporting.Table, error) {
	findings, err := s.findings.Find(ctx, record.LatestFirst())
	if err != nil {
		return reporting.Table{}, fmt.Errorf("build audit findings: %w", err)
	}
	table := reporting.Table{
		Title: "Audit Findings",
		Columns: []string{
			"id", "product_id", "audit_date", "auditor", "finding",
			"capa_owner", "capa_status", "confidentiality_level",
		},
	}
	for _, f := range findings {
		table.Rows = append(table.Rows, []any{
			f.ID, f.ProductID, f.AuditDate, f.Auditor, f.Finding,
			f.CAPAOwner, f.CAPAStatus, f.ConfidentialityLevel,
		})
	}
	return table, nil
}
