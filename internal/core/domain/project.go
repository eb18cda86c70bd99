package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusPreLim    ProjectStatus = "pre-lim"
	StatusOngoing   ProjectStatus = "ongoing"
	StatusCompleted ProjectStatus = "completed"
)

// BillingType determines how a project is invoiced.
type BillingType string

const (
	BillingHourly  BillingType = "hourly"
	BillingLumpSum BillingType = "lump_sum"
)

// ProjectType distinguishes plain jobs from the nested structures.
// A variation order is a child that adds scope to its parent job.
// A structure container never carries work itself; its status and hours
// are derived from its structure children.
type ProjectType string

const (
	TypeStandard           ProjectType = "standard"
	TypeVariationOrder     ProjectType = "variation_order"
	TypeStructureContainer ProjectType = "structure_container"
	TypeStructureChild     ProjectType = "structure_child"
)

// projectCodePattern matches job codes like "J25001" and sub-codes like
// "J25001_2" used for variation orders and structure children.
var projectCodePattern = regexp.MustCompile(`^J\d{5}(_\d+)?$`)

// ValidProjectCode reports whether code follows the J-number convention.
func ValidProjectCode(code string) bool {
	return projectCodePattern.MatchString(code)
}

// Project is an engineering job tracked by the business.
type Project struct {
	ProjectID       string          `json:"projectID"`
	ProjectCode     string          `json:"projectCode"`
	Title           string          `json:"title"`
	ClientName      string          `json:"clientName"`
	Status          ProjectStatus   `json:"status"`
	BillingType     BillingType     `json:"billingType"`
	ProjectType     ProjectType     `json:"projectType"`
	ParentProjectID *string         `json:"parentProjectID,omitempty"`
	PlannedHours    decimal.Decimal `json:"plannedHours"`
	AuditFields
}

// IsContainer reports whether the project aggregates structure children.
func (p Project) IsContainer() bool {
	return p.ProjectType == TypeStructureContainer
}

// DeriveStructureStatus computes a structure container's status from its
// children. The container itself never stores a status of its own:
//   - all children completed -> completed
//   - any child ongoing or completed -> ongoing
//   - otherwise -> pre-lim (also the empty-container state)
func DeriveStructureStatus(children []Project) ProjectStatus {
	if len(children) == 0 {
		return StatusPreLim
	}
	allCompleted := true
	anyStarted := false
	for _, c := range children {
		switch c.Status {
		case StatusCompleted:
			anyStarted = true
		case StatusOngoing:
			allCompleted = false
			anyStarted = true
		default:
			allCompleted = false
		}
	}
	if allCompleted {
		return StatusCompleted
	}
	if anyStarted {
		return StatusOngoing
	}
	return StatusPreLim
}

// SumPlannedHours totals the planned hours across children, used when a
// structure container reports its hours.
func SumPlannedHours(children []Project) decimal.Decimal {
	total := decimal.Zero
	for _, c := range children {
		total = total.Add(c.PlannedHours)
	}
	return total
}
