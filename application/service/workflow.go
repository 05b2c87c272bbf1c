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

// ApplicabilityParams configures recording an applicability decision.
type ApplicabilityParams struct {
	ProductID     int64
	InScope       bool
	Justification string
	DecisionDate  string
}

// RoleParams configures assigning an economic-operator role.
type RoleParams struct {
	ProductID         int64
	Role              string
	Owner             string
	TraceabilityNotes string
}

// CriticalityParams configures classifying a product.
type CriticalityParams struct {
	ProductID            int64
	Level                string
	ConformityRoute      string
	NotifiedBodyRequired bool
	Notes                string
}

// AssessmentParams configures recording a gap assessment.
type AssessmentParams struct {
	ProductID      int64
	RequirementID  int64
	MaturityScore  int
	RiskScore      int
	GapSummary     string
	Owner          string
	Status         string
	EvidenceStatus string
}

// ActionParams configures planning a remediation action.
type ActionParams struct {
	ProductID     int64
	RequirementID int64
	Title         string
	Owner         string
	DueDate       string
	Status        string
	Priority      string
	Notes         string
}

// EvidenceParams configures registering an evidence artifact.
type EvidenceParams struct {
	ProductID         int64
	RequirementID     int64
	ArtifactName      string
	ArtifactType      string
	LinkOrPath        string
	UploadedOn        string
	CompletenessScore int
}

// Workflow provides the assessment workflow: applicability decisions, role
// assignments, criticality classifications, gap assessments, remediation
// actions, and evidence. Every create validates that the referenced product
// (and requirement, where applicable) exists.
type Workflow struct {
	applicability persistence.ApplicabilityStore
	roles         persistence.EconomicRoleStore
	criticality   persistence.CriticalityStore
	assessments   persistence.AssessmentStore
	actions       persistence.ActionStore
	evidence      persistence.EvidenceStore
	products      persistence.ProductStore
	requirements  persistence.RequirementStore
	logger        *slog.Logger
	now           func() time.Time
}

// NewWorkflow creates a new Workflow service.
func NewWorkflow(
	applicability persistence.ApplicabilityStore,
	roles persistence.EconomicRoleStore,
	criticality persistence.CriticalityStore,
	assessments persistence.AssessmentStore,
	actions persistence.ActionStore,
	evidence persistence.EvidenceStore,
	products persistence.ProductStore,
	requirements persistence.RequirementStore,
	logger *slog.Logger,
) *Workflow {
	return &Workflow{
		applicability: applicability,
		roles:         roles,
		criticality:   criticality,
		assessments:   assessments,
		actions:       actions,
		evidence:      evidence,
		products:      products,
		requirements:  requirements,
		logger:        logger,
		now:           time.Now,
	}
}

// RecordApplicability appends a scope decision for a product. Decisions keep
// their full history; the latest row wins for display.
func (s *Workflow) RecordApplicability(ctx context.Context, params ApplicabilityParams) (compliance.ApplicabilityDecision, error) {
	if err := s.requireProduct(ctx, params.ProductID); err != nil {
		return compliance.ApplicabilityDecision{}, err
	}

	decision := compliance.ApplicabilityDecision{
		ProductID:     params.ProductID,
		InScope:       boolFlag(params.InScope),
		Justification: params.Justification,
		DecisionDate:  params.DecisionDate,
	}
	if decision.DecisionDate == "" {
		decision.DecisionDate = s.today()
	}
	if err := s.applicability.Create(ctx, &decision); err != nil {
		return compliance.ApplicabilityDecision{}, err
	}
	return decision, nil
}

// ApplicabilityDecisions lists scope decisions, most recent first.
func (s *Workflow) ApplicabilityDecisions(ctx context.Context) ([]compliance.ApplicabilityDecision, error) {
	return s.applicability.Find(ctx, record.LatestFirst())
}

// AssignRole appends an economic-operator role assignment for a product.
func (s *Workflow) AssignRole(ctx context.Context, params RoleParams) (compliance.EconomicRole, error) {
	if params.Role == "" {
		return compliance.EconomicRole{}, fmt.Errorf("%w: role is required", compliance.ErrValidation)
	}
	if err := s.requireProduct(ctx, params.ProductID); err != nil {
		return compliance.EconomicRole{}, err
	}

	role := compliance.EconomicRole{
		ProductID:         params.ProductID,
		Role:              params.Role,
		Owner:             params.Owner,
		TraceabilityNotes: params.TraceabilityNotes,
	}
	if err := s.roles.Create(ctx, &role); err != nil {
		return compliance.EconomicRole{}, err
	}
	return role, nil
}

// Roles lists role assignments, most recent first.
func (s *Workflow) Roles(ctx context.Context) ([]compliance.EconomicRole, error) {
	return s.roles.Find(ctx, record.LatestFirst())
}

// ClassifyCriticality appends a criticality classification for a product.
func (s *Workflow) ClassifyCriticality(ctx context.Context, params CriticalityParams) (compliance.Criticality, error) {
	if err := s.requireProduct(ctx, params.ProductID); err != nil {
		return compliance.Criticality{}, err
	}

	classification := compliance.Criticality{
		ProductID:            params.ProductID,
		Level:                params.Level,
		ConformityRoute:      params.ConformityRoute,
		NotifiedBodyRequired: boolFlag(params.NotifiedBodyRequired),
		Notes:                params.Notes,
	}
	if err := s.criticality.Create(ctx, &classification); err != nil {
		return compliance.Criticality{}, err
	}
	return classification, nil
}

// Classifications lists criticality classifications, most recent first.
func (s *Workflow) Classifications(ctx context.Context) ([]compliance.Criticality, error) {
	return s.criticality.Find(ctx, record.LatestFirst())
}

// ConformityOverview returns the classification history joined with product
// names for conformity planning.
func (s *Workflow) ConformityOverview(ctx context.Context) ([]compliance.ConformityOverviewRow, error) {
	return s.criticality.ConformityOverview(ctx)
}

// RecordAssessment appends a gap assessment. Maturity is scored 0 to 5 and
// risk 1 to 10; multiple assessments per (product, requirement) pair are
// permitted.
func (s *Workflow) RecordAssessment(ctx context.Context, params AssessmentParams) (compliance.Assessment, error) {
	if params.MaturityScore < 0 || params.MaturityScore > 5 {
		return compliance.Assessment{}, fmt.Errorf("%w: maturity_score must be between 0 and 5", compliance.ErrValidation)
	}
	if params.RiskScore < 1 || params.RiskScore > 10 {
		return compliance.Assessment{}, fmt.Errorf("%w: risk_score must be between 1 and 10", compliance.ErrValidation)
	}
	if err := s.requireProduct(ctx, params.ProductID); err != nil {
		return compliance.Assessment{}, err
	}
	if err := s.requireRequirement(ctx, params.RequirementID); err != nil {
		return compliance.Assessment{}, err
	}

	assessment := compliance.Assessment{
		ProductID:      params.ProductID,
		RequirementID:  params.RequirementID,
		MaturityScore:  params.MaturityScore,
		RiskScore:      params.RiskScore,
		GapSummary:     params.GapSummary,
		Owner:          params.Owner,
		Status:         defaultString(params.Status, compliance.StatusOpen),
		EvidenceStatus: defaultString(params.EvidenceStatus, compliance.EvidenceMissing),
	}
	if err := s.assessments.Create(ctx, &assessment); err != nil {
		return compliance.Assessment{}, err
	}
	return assessment, nil
}

// Assessments lists gap assessments, most recent first.
func (s *Workflow) Assessments(ctx context.Context) ([]compliance.Assessment, error) {
	return s.assessments.Find(ctx, record.LatestFirst())
}

// PlanAction appends a remediation action.
func (s *Workflow) PlanAction(ctx context.Context, params ActionParams) (compliance.Action, error) {
	if params.Title == "" {
		return compliance.Action{}, fmt.Errorf("%w: title is required", compliance.ErrValidation)
	}
	if err := s.requireProduct(ctx, params.ProductID); err != nil {
		return compliance.Action{}, err
	}
	if err := s.requireRequirement(ctx, params.RequirementID); err != nil {
		return compliance.Action{}, err
	}

	action := compliance.Action{
		ProductID:     params.ProductID,
		RequirementID: params.RequirementID,
		Title:         params.Title,
		Owner:         params.Owner,
		DueDate:       params.DueDate,
		Status:        defaultString(params.Status, compliance.ActionOpen),
		Priority:      defaultString(params.Priority, compliance.PriorityMedium),
		Notes:         params.Notes,
	}
	if err := s.actions.Create(ctx, &action); err != nil {
		return compliance.Action{}, err
	}
	return action, nil
}

// Actions lists remediation actions, most recent first.
func (s *Workflow) Actions(ctx context.Context) ([]compliance.Action, error) {
	return s.actions.Find(ctx, record.LatestFirst())
}

// RegisterEvidence appends an evidence artifact. Completeness is scored 0 to
// 100; the upload date defaults to today.
func (s *Workflow) RegisterEvidence(ctx context.Context, params EvidenceParams) (compliance.Evidence, error) {
	if params.ArtifactName == "" {
		return compliance.Evidence{}, fmt.Errorf("%w: artifact_name is required", compliance.ErrValidation)
	}
	if params.CompletenessScore < 0 || params.CompletenessScore > 100 {
		return compliance.Evidence{}, fmt.Errorf("%w: completeness_score must be between 0 and 100", compliance.ErrValidation)
	}
	if err := s.requireProduct(ctx, params.ProductID); err != nil {
		return compliance.Evidence{}, err
	}
	if err := s.requireRequirement(ctx, params.RequirementID); err != nil {
		return compliance.Evidence{}, err
	}

	artifact := compliance.Evidence{
		ProductID:         params.ProductID,
		RequirementID:     params.RequirementID,
		ArtifactName:      params.ArtifactName,
		ArtifactType:      params.ArtifactType,
		LinkOrPath:        params.LinkOrPath,
		UploadedOn:        params.UploadedOn,
		CompletenessScore: params.CompletenessScore,
	}
	if artifact.UploadedOn == "" {
		artifact.UploadedOn = s.today()
	}
	if err := s.evidence.Create(ctx, &artifact); err != nil {
		return compliance.Evidence{}, err
	}
	return artifact, nil
}

// EvidenceItems lists evidence artifacts, most recent first.
func (s *Workflow) EvidenceItems(ctx context.Context) ([]compliance.Evidence, error) {
	return s.evidence.Find(ctx, record.LatestFirst())
}

func (s *Workflow) requireProduct(ctx context.Context, id int64) error {
	exists, err := s.products.Exists(ctx, record.WithID(id))
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("product %d: %w", id, compliance.ErrNotFound)
	}
	return nil
}

func (s *Workflow) requireRequirement(ctx context.Context, id int64) error {
	exists, err := s.requirements.Exists(ctx, record.WithID(id))
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("requirement %d: %w", id, compliance.ErrNotFound)
	}
	return nil
}

func (s *Workflow) today() string {
	return s.now().Format("2006-01-02")
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
