package compliance

// Requirement severities and CRA sources offered by the catalog.
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// Requirement is a catalog entry derived from a CRA Annex reference.
// req_id is globally unique among all requirements ever created, active or
// not. Requirements are never deleted; deactivation clears the active flag.
type Requirement struct {
	ID               int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ReqID            string `gorm:"column:req_id;uniqueIndex;size:64" json:"req_id"`
	Title            string `gorm:"column:title;size:255" json:"title"`
	Text             string `gorm:"column:text;type:text" json:"text"`
	Source           string `gorm:"column:source;size:64" json:"source"`
	Tags             string `gorm:"column:tags;size:255" json:"tags"`
	EvidenceExamples string `gorm:"column:evidence_examples;type:text" json:"evidence_examples"`
	TestMethod       string `gorm:"column:test_method;size:255" json:"test_method"`
	Severity         string `gorm:"column:severity;size:32" json:"severity"`
	Weight           int    `gorm:"column:weight" json:"weight"`
	Version          string `gorm:"column:version;size:32" json:"version"`
	EffectiveDate    string `gorm:"column:effective_date;size:10" json:"effective_date"`
	Supersedes       string `gorm:"column:supersedes;size:64" json:"supersedes"`
	Active           int    `gorm:"column:active;default:1" json:"active"`
}

// TableName returns the table name.
func (Requirement) TableName() string {
	return "requirements"
}

// IsActive reports whether the requirement is still part of the live catalog.
func (r Requirement) IsActive() bool {
	return r.Active != 0
}

// BaselineRequirements is the seed set inserted into an empty catalog on
// first startup: default CRA Annex references every program starts from.
var BaselineRequirements = []Requirement{
	{
		ReqID:            "CRA-AI1-001",
		Title:            "Secure by default configuration",
		Text:             "Products shall be delivered with secure-by-default settings and hardening controls.",
		Source:           "Annex I.1",
		Tags:             "security-by-design,hardening",
		EvidenceExamples: "Configuration baseline, hardening checklist",
		TestMethod:       "Config review + penetration test",
		Severity:         SeverityHigh,
		Weight:           10,
		Version:          "1.0",
		EffectiveDate:    "2026-01-01",
		Active:           1,
	},
	{
		ReqID:            "CRA-AI2-001",
		Title:            "Coordinated vulnerability disclosure",
		Text:             "Operator shall maintain CVD policy, triage workflow, and patch delivery timeline.",
		Source:           "Annex I.2",
		Tags:             "vulnerability-handling,operations",
		EvidenceExamples: "CVD policy, ticket history, patch release notes",
		TestMethod:       "Process audit + sampling",
		Severity:         SeverityCritical,
		Weight:           10,
		Version:          "1.0",
		EffectiveDate:    "2026-01-01",
		Active:           1,
	},
	{
		ReqID:            "CRA-AII-001",
		Title:            "User information and instructions",
		Text:             "Manufacturer shall provide security usage instructions and support period information.",
		Source:           "Annex II",
		Tags:             "user-information,documentation",
		EvidenceExamples: "User manual, release notes, support statement",
		TestMethod:       "Document review",
		Severity:         SeverityMedium,
		Weight:           6,
		Version:          "1.0",
		EffectiveDate:    "2026-01-01",
		Active:           1,
	},
}
