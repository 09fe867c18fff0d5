package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
	"github.com/vendorpay/vpa_backend/internal/models"
	"github.com/vendorpay/vpa_backend/internal/utils/mapping"
)

type PgxProjectRepository struct {
	db *pgxpool.Pool
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{db: db}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, vendor_id, project_name, company_name, billed, paid, balance, estimated, created_at`

func scanProject(row pgx.Row) (models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.VendorID,
		&m.ProjectName,
		&m.CompanyName,
		&m.Billed,
		&m.Paid,
		&m.Balance,
		&m.Estimated,
		&m.CreatedAt,
	)
	return m, err
}

// SaveProject persists a new project. The ledger triple is written as-is;
// services always pass zeroes, and nothing outside the ledger repository
// updates these columns afterwards.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	modelProject := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		modelProject.ProjectID,
		modelProject.VendorID,
		modelProject.ProjectName,
		modelProject.CompanyName,
		modelProject.Billed,
		modelProject.Paid,
		modelProject.Balance,
		modelProject.Estimated,
		modelProject.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`
	modelProject, err := scanProject(r.db.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}

	domainProject := mapping.ToDomainProject(modelProject)
	return &domainProject, nil
}

func (r *PgxProjectRepository) ListProjectsByVendor(ctx context.Context, vendorID string) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE vendor_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, vendorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query projects for vendor "+vendorID, err)
	}
	defer rows.Close()

	var modelProjects []models.Project
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan project", err)
		}
		modelProjects = append(modelProjects, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating projects", err)
	}

	return mapping.ToDomainProjectSlice(modelProjects), nil
}

// DeleteProject is idempotent; see DeleteVendor.
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete project "+projectID, err)
	}
	return nil
}
