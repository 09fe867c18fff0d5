package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// CreateProjectRequest defines the data needed to create a new project.
// The ledger triple is not accepted from clients; it always starts at zero.
type CreateProjectRequest struct {
	VendorID    string          `json:"vendorID" binding:"required"`
	ProjectName string          `json:"projectName" binding:"required"`
	CompanyName string          `json:"companyName" binding:"required"`
	Estimated   decimal.Decimal `json:"estimated"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID   string          `json:"projectID"`
	VendorID    string          `json:"vendorID"`
	ProjectName string          `json:"projectName"`
	CompanyName string          `json:"companyName"`
	Billed      decimal.Decimal `json:"billed"`
	Paid        decimal.Decimal `json:"paid"`
	Balance     decimal.Decimal `json:"balance"`
	Estimated   decimal.Decimal `json:"estimated"`
	CreatedAt   string          `json:"createdAt"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:   p.ProjectID,
		VendorID:    p.VendorID,
		ProjectName: p.ProjectName,
		CompanyName: p.CompanyName,
		Billed:      p.Billed,
		Paid:        p.Paid,
		Balance:     p.Balance,
		Estimated:   p.Estimated,
		CreatedAt:   p.CreatedAt,
	}
}

// ListProjectsResponse wraps the list of projects for a vendor.
type ListProjectsResponse struct {
	Count    int               `json:"count"`
	Projects []ProjectResponse `json:"projects"`
}

// ToListProjectsResponse converts a slice of domain.Project to the list DTO.
func ToListProjectsResponse(projects []domain.Project) ListProjectsResponse {
	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = ToProjectResponse(&p)
	}
	return ListProjectsResponse{Count: len(res), Projects: res}
}
