package compliance

// Vulnerability workflow statuses.
const (
	VulnOpen          = "Open"
	VulnTriaged       = "Triaged"
	VulnFixInProgress = "Fix In Progress"
	VulnResolved      = "Resolved"
)

// Vulnerability tracks an operational vulnerability against a product,
// including whether it was reported through the CVD workflow.
type Vulnerability struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID     int64  `gorm:"column:product_id;index" json:"product_id"`
	VulnID        string `gorm:"column:vuln_id;size:64" json:"vuln_id"`
	Severity      string `gorm:"column:severity;size:32" json:"severity"`
	Status        string `gorm:"column:status;size:32" json:"status"`
	DetectedOn    string `gorm:"column:detected_on;size:10" json:"detected_on"`
	TargetFixDate string `gorm:"column:target_fix_date;size:10" json:"target_fix_date"`
	CVDReported   int    `gorm:"column:cvd_reported" json:"cvd_reported"`
	Notes         string `gorm:"column:notes;type:text" json:"notes"`
}

// TableName returns the table name.
func (Vulnerability) TableName() string {
	return "vulnerabilities"
}

// CAPA statuses and confidentiality levels for audit findings.
const (
	CAPAOpen       = "Open"
	CAPAInProgress = "In Progress"
	CAPAClosed     = "Closed"

	ConfInternal     = "Internal"
	ConfRestricted   = "Restricted"
	ConfConfidential = "Confidential"
)

// AuditFinding records an internal audit finding and its CAPA follow-up.
type AuditFinding struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID            int64  `gorm:"column:product_id;index" json:"product_id"`
	AuditDate            string `gorm:"column:audit_date;size:10" json:"audit_date"`
	Auditor              string `gorm:"column:auditor;size:255" json:"auditor"`
	Finding              string `gorm:"column:finding;type:text" json:"finding"`
	CAPAOwner            string `gorm:"column:capa_owner;size:255" json:"capa_owner"`
	CAPAStatus           string `gorm:"column:capa_status;size:32" json:"capa_status"`
	ConfidentialityLevel string `gorm:"column:confidentiality_level;size:32" json:"confidentiality_level"`
}

// TableName returns the table name.
func (AuditFinding) TableName() string {
	return "audits"
}
