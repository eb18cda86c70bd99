package dto

import (
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest defines the payload for creating a project.
// The projectcode binding tag enforces the J-number format (J + 5 digits,
// optionally suffixed _n for variation orders and structure children).
type CreateProjectRequest struct {
	ProjectCode     string          `json:"projectCode" binding:"required,projectcode"`
	Title           string          `json:"title" binding:"required"`
	ClientName      string          `json:"clientName" binding:"required"`
	Status          string          `json:"status" binding:"omitempty,oneof=pre-lim ongoing completed"`
	BillingType     string          `json:"billingType" binding:"required,oneof=hourly lump_sum"`
	ProjectType     string          `json:"projectType" binding:"omitempty,oneof=standard variation_order structure_container structure_child"`
	ParentProjectID *string         `json:"parentProjectID,omitempty"`
	PlannedHours    decimal.Decimal `json:"plannedHours"`
}

// UpdateProjectRequest defines the payload for updating a project.
// Nil fields are left unchanged.
type UpdateProjectRequest struct {
	Title        *string          `json:"title,omitempty"`
	ClientName   *string          `json:"clientName,omitempty"`
	Status       *string          `json:"status,omitempty" binding:"omitempty,oneof=pre-lim ongoing completed"`
	BillingType  *string          `json:"billingType,omitempty" binding:"omitempty,oneof=hourly lump_sum"`
	PlannedHours *decimal.Decimal `json:"plannedHours,omitempty"`
}

// ProjectResponse defines the structure for API responses containing project details.
type ProjectResponse struct {
	ProjectID       string          `json:"projectID"`
	ProjectCode     string          `json:"projectCode"`
	Title           string          `json:"title"`
	ClientName      string          `json:"clientName"`
	Status          string          `json:"status"`
	BillingType     string          `json:"billingType"`
	ProjectType     string          `json:"projectType"`
	ParentProjectID *string         `json:"parentProjectID,omitempty"`
	PlannedHours    decimal.Decimal `json:"plannedHours"`
}

// ListProjectsResponse is a page of projects with an opaque continuation token.
type ListProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToProjectResponse converts a domain.Project to a ProjectResponse DTO
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:       p.ProjectID,
		ProjectCode:     p.ProjectCode,
		Title:           p.Title,
		ClientName:      p.ClientName,
		Status:          string(p.Status),
		BillingType:     string(p.BillingType),
		ProjectType:     string(p.ProjectType),
		ParentProjectID: p.ParentProjectID,
		PlannedHours:    p.PlannedHours,
	}
}

// ToListProjectsResponse converts a page of domain projects to the list DTO.
func ToListProjectsResponse(projects []domain.Project, nextToken *string) ListProjectsResponse {
	resp := ListProjectsResponse{
		Projects:  make([]ProjectResponse, len(projects)),
		NextToken: nextToken,
	}
	for i := range projects {
		resp.Projects[i] = ToProjectResponse(&projects[i])
	}
	return resp
}
