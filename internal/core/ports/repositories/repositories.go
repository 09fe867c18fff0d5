package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	VendorRepo    VendorRepositoryFacade
	ProjectRepo   ProjectRepositoryFacade
	LedgerRepo    LedgerRepository
	BillRepo      BillRepositoryFacade
	PaymentRepo   PaymentRepositoryFacade
	ReportingRepo ReportingRepository
	UserRepo      UserRepositoryFacade
}
