package compliance

// Assessment statuses and evidence statuses.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusClosed     = "Closed"

	EvidenceMissing  = "Missing"
	EvidencePartial  = "Partial"
	EvidenceComplete = "Complete"
)

// Assessment records a gap assessment of a product against a requirement.
// Multiple assessments per (product, requirement) pair are permitted; the
// store performs no deduplication.
type Assessment struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      int64  `gorm:"column:product_id;index" json:"product_id"`
	RequirementID  int64  `gorm:"column:requirement_id;index" json:"requirement_id"`
	MaturityScore  int    `gorm:"column:maturity_score" json:"maturity_score"`
	RiskScore      int    `gorm:"column:risk_score" json:"risk_score"`
	GapSummary     string `gorm:"column:gap_summary;type:text" json:"gap_summary"`
	Owner          string `gorm:"column:owner;size:255" json:"owner"`
	Status         string `gorm:"column:status;size:32" json:"status"`
	EvidenceStatus string `gorm:"column:evidence_status;size:32" json:"evidence_status"`
}

// TableName returns the table name.
func (Assessment) TableName() string {
	return "assessments"
}

// Action statuses and priorities for the remediation planner.
const (
	ActionOpen       = "Open"
	ActionInProgress = "In Progress"
	ActionBlocked    = "Blocked"
	ActionDone       = "Done"

	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Action is a remediation work item addressing a gap.
type Action struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID     int64  `gorm:"column:product_id;index" json:"product_id"`
	RequirementID int64  `gorm:"column:requirement_id;index" json:"requirement_id"`
	Title         string `gorm:"column:title;size:255" json:"title"`
	Owner         string `gorm:"column:owner;size:255" json:"owner"`
	DueDate       string `gorm:"column:due_date;size:10" json:"due_date"`
	Status        string `gorm:"column:status;size:32" json:"status"`
	Priority      string `gorm:"column:priority;size:32" json:"priority"`
	Notes         string `gorm:"column:notes;type:text" json:"notes"`
}

// TableName returns the table name.
func (Action) TableName() string {
	return "actions"
}

// Evidence artifact types registered in the technical file.
const (
	ArtifactSBOM           = "SBOM"
	ArtifactRiskAssessment = "Risk Assessment"
	ArtifactTestReport     = "Test Report"
	ArtifactUserDocs       = "User Docs"
	ArtifactDoC            = "DoC"
	ArtifactOther          = "Other"
)

// Evidence is an artifact backing a requirement for a product.
type Evidence struct {
	ID                int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID         int64  `gorm:"column:product_id;index" json:"product_id"`
	RequirementID     int64  `gorm:"column:requirement_id;index" json:"requirement_id"`
	ArtifactName      string `gorm:"column:artifact_name;size:255" json:"artifact_name"`
	ArtifactType      string `gorm:"column:artifact_type;size:64" json:"artifact_type"`
	LinkOrPath        string `gorm:"column:link_or_path;size:1024" json:"link_or_path"`
	UploadedOn        string `gorm:"column:uploaded_on;size:10" json:"uploaded_on"`
	CompletenessScore int    `gorm:"column:completeness_score" json:"completeness_score"`
}

// TableName returns the table name.
func (Evidence) TableName() string {
	return "evidence"
}
