package mapping

import (
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:   d.ProjectID,
		VendorID:    d.VendorID,
		ProjectName: d.ProjectName,
		CompanyName: d.CompanyName,
		Billed:      d.Billed,
		Paid:        d.Paid,
		Balance:     d.Balance,
		Estimated:   d.Estimated,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:   m.ProjectID,
		VendorID:    m.VendorID,
		ProjectName: m.ProjectName,
		CompanyName: m.CompanyName,
		Billed:      m.Billed,
		Paid:        m.Paid,
		Balance:     m.Balance,
		Estimated:   m.Estimated,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainProjectSlice converts a slice of model Projects to a slice of domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}
