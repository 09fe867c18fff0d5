package repositories

import (
	"context"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a specific project by its ID.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjectsByVendor retrieves all projects referencing a vendor.
	ListProjectsByVendor(ctx context.Context, vendorID string) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data.
//
// Note the deliberate absence of any way to write billed/paid/balance here:
// those fields are mutated exclusively through LedgerRepository.
type ProjectWriter interface {
	// SaveProject persists a new project with a zeroed ledger triple.
	// Returns apperrors.ErrDuplicate if the ID already exists.
	SaveProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes a project record. Idempotent.
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
