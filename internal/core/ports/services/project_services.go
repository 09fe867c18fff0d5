package services

import (
	"context"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/dto"
)

// ProjectReaderSvc defines read operations for project data
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a specific project by its ID.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjectsByVendor retrieves all projects for a vendor. Returns
	// apperrors.ErrNotFound if the vendor does not exist.
	ListProjectsByVendor(ctx context.Context, vendorID string) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations for project data
type ProjectWriterSvc interface {
	// CreateProject creates a new project with a zeroed ledger triple.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)

	// DeleteProjectCascade tears down one project: all its payments, then
	// bills, then the project record. Non-atomic but idempotent.
	DeleteProjectCascade(ctx context.Context, projectID string) error
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
