package services

import (
	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
	portssvc "github.com/vendorpay/vpa_backend/internal/core/ports/services"
	"github.com/vendorpay/vpa_backend/internal/platform/company"
	"github.com/vendorpay/vpa_backend/internal/platform/config"
)

// NewServiceContainer creates and initializes all application services.
func NewServiceContainer(cfg *config.Config, companyMaster company.Master, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Vendor:    NewVendorService(repos.VendorRepo, repos.ProjectRepo, repos.BillRepo, repos.PaymentRepo),
		Project:   NewProjectService(repos.ProjectRepo, repos.VendorRepo, repos.BillRepo, repos.PaymentRepo),
		Bill:      NewBillService(repos.BillRepo, repos.LedgerRepo),
		Payment:   NewPaymentService(repos.PaymentRepo, repos.ProjectRepo, repos.VendorRepo, repos.LedgerRepo, companyMaster),
		Reporting: NewReportingService(repos.ReportingRepo),
		Auth:      NewAuthService(repos.UserRepo, cfg),
	}
}
