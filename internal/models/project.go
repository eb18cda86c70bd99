package models

import "github.com/shopspring/decimal"

// Project represents a row in the projects table.
type Project struct {
	ProjectID       string          `json:"projectID"`
	ProjectCode     string          `json:"projectCode"` // unique, J-number format
	Title           string          `json:"title"`
	ClientName      string          `json:"clientName"`
	Status          string          `json:"status"`
	BillingType     string          `json:"billingType"`
	ProjectType     string          `json:"projectType"`
	ParentProjectID *string         `json:"parentProjectID"`
	PlannedHours    decimal.Decimal `json:"plannedHours"`
	AuditFields
}
