// Package compliance defines the record types tracked by a CRA deployment
// program: the organizations and products under scope, their regulatory
// classifications, the requirements catalog, and the workflow records
// (assessments, actions, evidence, vulnerabilities, audit findings).
//
// Every type maps one-to-one onto a database table. All records are
// append-only; the only mutation anywhere in the model is requirement
// deactivation. Multi-row facts about a product (applicability, roles,
// criticality) keep their full history, and the highest id is authoritative
// for display. Dates are stored as ISO "YYYY-MM-DD" strings and boolean
// flags as 0/1 integer columns, mirroring the original schema.
package compliance

// Organization types selectable during program setup.
const (
	OrgTypeOEM           = "OEM"
	OrgTypeTier1         = "Tier-1"
	OrgTypeDealer        = "Dealer"
	OrgTypeAuthorizedRep = "Authorized Representative"
	OrgTypeImporter      = "Importer"
	OrgTypeDistributor   = "Distributor"
)

// Organization is a legal entity running the deployment program.
type Organization struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"column:name;not null;size:255" json:"name"`
	OrgType   string `gorm:"column:org_type;not null;size:64" json:"org_type"`
	Markets   string `gorm:"column:markets;size:255" json:"markets"`
	CreatedAt string `gorm:"column:created_at;size:10" json:"created_at"`
}

// TableName returns the table name.
func (Organization) TableName() string {
	return "organizations"
}

// Product is an item of the inventory: an ECU, platform, backend service,
// dealer system, or plant OT asset.
type Product struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationID int64  `gorm:"column:organization_id;index" json:"organization_id"`
	Name           string `gorm:"column:name;not null;size:255" json:"name"`
	ProductType    string `gorm:"column:product_type;size:64" json:"product_type"`
	Family         string `gorm:"column:family;size:255" json:"family"`
	Market         string `gorm:"column:market;size:255" json:"market"`
}

// TableName returns the table name.
func (Product) TableName() string {
	return "products"
}

// ApplicabilityDecision records whether a product falls within CRA scope.
// Decisions are append-only; the latest row per product wins for display.
type ApplicabilityDecision struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID     int64  `gorm:"column:product_id;index" json:"product_id"`
	InScope       int    `gorm:"column:in_scope;not null" json:"in_scope"`
	Justification string `gorm:"column:justification;type:text" json:"justification"`
	DecisionDate  string `gorm:"column:decision_date;size:10" json:"decision_date"`
}

// TableName returns the table name.
func (ApplicabilityDecision) TableName() string {
	return "applicability"
}

// Economic operator roles under the CRA.
const (
	RoleManufacturer  = "Manufacturer"
	RoleImporter      = "Importer"
	RoleDistributor   = "Distributor"
	RoleAuthorizedRep = "Authorized Representative"
)

// EconomicRole assigns an economic-operator role for a product.
type EconomicRole struct {
	ID                int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID         int64  `gorm:"column:product_id;index" json:"product_id"`
	Role              string `gorm:"column:role;size:64" json:"role"`
	Owner             string `gorm:"column:owner;size:255" json:"owner"`
	TraceabilityNotes string `gorm:"column:traceability_notes;type:text" json:"traceability_notes"`
}

// TableName returns the table name.
func (EconomicRole) TableName() string {
	return "economic_roles"
}

// Criticality levels and Annex VIII conformity routes.
const (
	LevelDefault   = "Default"
	LevelImportant = "Important"
	LevelCritical  = "Critical"

	RouteModuleA       = "Module A"
	RouteModuleBC      = "Module B+C"
	RouteModuleH       = "Module H"
	RouteCertification = "Certification Scheme"
)

// Criticality classifies a product's criticality level and conformity route.
type Criticality struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID            int64  `gorm:"column:product_id;index" json:"product_id"`
	Level                string `gorm:"column:level;size:64" json:"level"`
	ConformityRoute      string `gorm:"column:conformity_route;size:64" json:"conformity_route"`
	NotifiedBodyRequired int    `gorm:"column:notified_body_required" json:"notified_body_required"`
	Notes                string `gorm:"column:notes;type:text" json:"notes"`
}

// TableName returns the table name.
func (Criticality) TableName() string {
	return "criticality"
}

// ConformityOverviewRow joins the criticality history with product names for
// the conformity planning view, latest classification first.
type ConformityOverviewRow struct {
	Product              string `json:"product"`
	Level                string `json:"level"`
	ConformityRoute      string `json:"conformity_route"`
	NotifiedBodyRequired int    `json:"notified_body_required"`
	Notes                string `json:"notes"`
}
