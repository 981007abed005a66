package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Readers serve the non-locking read paths; every mutation goes through TxManager.
type RepositoryProvider struct {
	TxManager       TransactionManager
	TripRepo        TripReader
	AllocationRepo  AllocationReader
	AccountRepo     AccountReader
	TransactionRepo TransactionReader
	PaymentRepo     PaymentReader
	CustomsRateRepo CustomsRateReader
}
