// Package dto defines the request bodies accepted by the v1 API.
package dto

// OrganizationCreateRequest is the body of POST /program/organizations.
type OrganizationCreateRequest struct {
	Name      string `json:"name"`
	OrgType   string `json:"org_type"`
	Markets   string `json:"markets"`
	CreatedAt string `json:"created_at"`
}

// ProductCreateRequest is the body of POST /inventory/products.
type ProductCreateRequest struct {
	OrganizationID int64  `json:"organization_id"`
	Name           string `json:"name"`
	ProductType    string `json:"product_type"`
	Family         string `json:"family"`
	Market         string `json:"market"`
}

// RequirementCreateRequest is the body of POST /requirements.
type RequirementCreateRequest struct {
	ReqID            string `json:"req_id"`
	Title            string `json:"title"`
	Text             string `json:"text"`
	Source           string `json:"source"`
	Tags             string `json:"tags"`
	EvidenceExamples string `json:"evidence_examples"`
	TestMethod       string `json:"test_method"`
	Severity         string `json:"severity"`
	Weight           int    `json:"weight"`
	Version          string `json:"version"`
	EffectiveDate    string `json:"effective_date"`
	Supersedes       string `json:"supersedes"`
}

// ApplicabilityCreateRequest is the body of POST /applicability/decisions.
type ApplicabilityCreateRequest struct {
	ProductID     int64  `json:"product_id"`
	InScope       bool   `json:"in_scope"`
	Justification string `json:"justification"`
	DecisionDate  string `json:"decision_date"`
}

// RoleCreateRequest is the body of POST /economic-roles.
type RoleCreateRequest struct {
	ProductID         int64  `json:"product_id"`
	Role              string `json:"role"`
	Owner             string `json:"owner"`
	TraceabilityNotes string `json:"traceability_notes"`
}

// CriticalityCreateRequest is the body of POST /criticality.
type CriticalityCreateRequest struct {
	ProductID            int64  `json:"product_id"`
	Level                string `json:"level"`
	ConformityRoute      string `json:"conformity_route"`
	NotifiedBodyRequired bool   `json:"notified_body_required"`
	Notes                string `json:"notes"`
}

// AssessmentCreateRequest is the body of POST /assessments.
type AssessmentCreateRequest struct {
	ProductID      int64  `json:"product_id"`
	RequirementID  int64  `json:"requirement_id"`
	MaturityScore  int    `json:"maturity_score"`
	RiskScore      int    `json:"risk_score"`
	GapSummary     string `json:"gap_summary"`
	Owner          string `json:"owner"`
	Status         string `json:"status"`
	EvidenceStatus string `json:"evidence_status"`
}

// ActionCreateRequest is the body of POST /actions.
type ActionCreateRequest struct {
	ProductID     int64  `json:"product_id"`
	RequirementID int64  `json:"requirement_id"`
	Title         string `json:"title"`
	Owner         string `json:"owner"`
	DueDate       string `json:"due_date"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	Notes         string `json:"notes"`
}

// EvidenceCreateRequest is the body of POST /evidence.
type EvidenceCreateRequest struct {
	ProductID         int64  `json:"product_id"`
	RequirementID     int64  `json:"requirement_id"`
	ArtifactName      string `json:"artifact_name"`
	ArtifactType      string `json:"artifact_type"`
	LinkOrPath        string `json:"link_or_path"`
	UploadedOn        string `json:"uploaded_on"`
	CompletenessScore int    `json:"completeness_score"`
}

// VulnerabilityCreateRequest is the body of POST /operations/vulnerabilities.
type VulnerabilityCreateRequest struct {
	ProductID     int64  `json:"product_id"`
	VulnID        string `json:"vuln_id"`
	Severity      string `json:"severity"`
	Status        string `json:"status"`
	DetectedOn    string `json:"detected_on"`
	TargetFixDate string `json:"target_fix_date"`
	CVDReported   bool   `json:"cvd_reported"`
	Notes         string `json:"notes"`
}

// FindingCreateRequest is the body of POST /audit/findings.
type FindingCreateRequest struct {
	ProductID            int64  `json:"product_id"`
	AuditDate            string `json:"audit_date"`
	Auditor              string `json:"auditor"`
	Finding              string `json:"finding"`
	CAPAOwner            string `json:"capa_owner"`
	CAPAStatus           string `json:"capa_status"`
	ConfidentialityLevel string `json:"confidentiality_level"`
}
