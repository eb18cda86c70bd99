package dto

import (
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTeamMemberRequest defines the payload for adding a team member.
type CreateTeamMemberRequest struct {
	Name       string           `json:"name" binding:"required"`
	Email      string           `json:"email" binding:"required,email"`
	Role       string           `json:"role" binding:"required"`
	HourlyRate *decimal.Decimal `json:"hourlyRate,omitempty"`
	Password   string           `json:"password" binding:"required,min=8"`
}

// UpdateTeamMemberRequest defines the payload for updating a team member.
type UpdateTeamMemberRequest struct {
	Name       *string          `json:"name,omitempty"`
	Role       *string          `json:"role,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourlyRate,omitempty"`
}

// SetProjectRateRequest defines the payload for a per-project hourly rate override.
type SetProjectRateRequest struct {
	ProjectID    string          `json:"projectID" binding:"required"`
	TeamMemberID string          `json:"teamMemberID" binding:"required"`
	HourlyRate   decimal.Decimal `json:"hourlyRate" binding:"required"`
}

// TeamMemberResponse defines the structure for API responses containing member details.
type TeamMemberResponse struct {
	TeamMemberID string           `json:"teamMemberID"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Role         string           `json:"role"`
	HourlyRate   *decimal.Decimal `json:"hourlyRate,omitempty"`
}

// ProjectRateResponse defines the structure for project rate responses.
type ProjectRateResponse struct {
	ProjectID    string          `json:"projectID"`
	TeamMemberID string          `json:"teamMemberID"`
	HourlyRate   decimal.Decimal `json:"hourlyRate"`
}

// ToTeamMemberResponse converts a domain.TeamMember to its response DTO
func ToTeamMemberResponse(m *domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		TeamMemberID: m.TeamMemberID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         m.Role,
		HourlyRate:   m.HourlyRate,
	}
}

// ToListTeamMemberResponse converts a slice of domain members to response DTOs.
func ToListTeamMemberResponse(members []domain.TeamMember) []TeamMemberResponse {
	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = ToTeamMemberResponse(&members[i])
	}
	return responses
}

// ToProjectRateResponse converts a domain.ProjectRate to its response DTO
func ToProjectRateResponse(r *domain.ProjectRate) ProjectRateResponse {
	return ProjectRateResponse{
		ProjectID:    r.ProjectID,
		TeamMemberID: r.TeamMemberID,
		HourlyRate:   r.HourlyRate,
	}
}

// ToListProjectRateResponse converts a slice of domain rates to response DTOs.
func ToListProjectRateResponse(rates []domain.ProjectRate) []ProjectRateResponse {
	responses := make([]ProjectRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToProjectRateResponse(&rates[i])
	}
	return responses
}
