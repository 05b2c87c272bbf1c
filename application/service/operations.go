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

// VulnerabilityParams configures reporting a vulnerability.
type VulnerabilityParams struct {
	ProductID     int64
	VulnID        string
	Severity      string
	Status        string
	DetectedOn    string
	TargetFixDate string
	CVDReported   bool
	Notes         string
}

// FindingParams configures recording an audit finding.
type FindingParams struct {
	ProductID            int64
	AuditDate            string
	Auditor              string
	Finding              string
	CAPAOwner            string
	CAPAStatus           string
	ConfidentialityLevel string
}

// Operations provides vulnerability tracking and internal audit records.
type Operations struct {
	vulnerabilities persistence.VulnerabilityStore
	findings        persistence.AuditFindingStore
	products        persistence.ProductStore
	logger          *slog.Logger
	now             func() time.Time
}

// NewOperations creates a new Operations service.
func NewOperations(
	vulnerabilities persistence.VulnerabilityStore,
	findings persistence.AuditFindingStore,
	products persistence.ProductStore,
	logger *slog.Logger,
) *Operations {
	return &Operations{
		vulnerabilities: vulnerabilities,
		findings:        findings,
		products:        products,
		logger:          logger,
		now:             time.Now,
	}
}

// ReportVulnerability records a vulnerability against a product. The
// detection date defaults to today.
func (s *Operations) ReportVulnerability(ctx context.Context, params VulnerabilityParams) (compliance.Vulnerability, error) {
	if params.VulnID == "" {
		return compliance.Vulnerability{}, fmt.Errorf("%w: vuln_id is required", compliance.ErrValidation)
	}
	if err := s.requireProduct(ctx, params.ProductID); err != nil {
		return compliance.Vulnerability{}, err
	}

	vuln := compliance.Vulnerability{
		ProductID:     params.ProductID,
		VulnID:        params.VulnID,
		Severity:      params.Severity,
		Status:        defaultString(params.Status, compliance.VulnOpen),
		DetectedOn:    params.DetectedOn,
		TargetFixDate: params.TargetFixDate,
		CVDReported:   boolFlag(params.CVDReported),
		Notes:         params.Notes,
	}
	if vuln.DetectedOn == "" {
		vuln.DetectedOn = s.now().Format("2006-01-02")
	}
	if err := s.vulnerabilities.Create(ctx, &vuln); err != nil {
		return compliance.Vulnerability{}, err
	}

	s.logger.Info("vulnerability reported",
		slog.Int64("product_id", vuln.ProductID),
		slog.String("vuln_id", vuln.VulnID),
		slog.String("severity", vuln.Severity),
	)
	return vuln, nil
}

// Vulnerabilities lists vulnerabilities, most recent first.
func (s *Operations) Vulnerabilities(ctx context.Context) ([]compliance.Vulnerability, error) {
	return s.vulnerabilities.Find(ctx, record.LatestFirst())
}

// RecordFinding records an internal audit finding. The audit date defaults
// to today.
func (s *Operations) RecordFinding(ctx context.Context, params FindingParams) (compliance.AuditFinding, error) {
	if params.Finding == "" {
		return compliance.AuditFinding{}, fmt.Errorf("%w: finding is required", compliance.ErrValidation)
	}
	if err := s.requireProduct(ctx, params.ProductID); err != nil {
		return compliance.AuditFinding{}, err
	}

	finding := compliance.AuditFinding{
		ProductID:            params.ProductID,
		AuditDate:            params.AuditDate,
		Auditor:              params.Auditor,
		Finding:              params.Finding,
		CAPAOwner:            params.CAPAOwner,
		CAPAStatus:           defaultString(params.CAPAStatus, compliance.CAPAOpen),
		ConfidentialityLevel: defaultString(params.ConfidentialityLevel, compliance.ConfInternal),
	}
	if finding.AuditDate == "" {
		finding.AuditDate = s.now().Format("2006-01-02")
	}
	if err := s.findings.Create(ctx, &finding); err != nil {
		return compliance.AuditFinding{}, err
	}
	return finding, nil
}

// Findings lists audit findings, most recent first.
func (s *Operations) Findings(ctx context.Context) ([]compliance.AuditFinding, error) {
	return s.findings.Find(ctx, record.LatestFirst())
}

func (s *Operations) requireProduct(ctx context.Context, id int64) error {
	exists, err := s.products.Exists(ctx, record.WithID(id))
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("product %d: %w", id, compliance.ErrNotFound)
	}
	return nil
}
