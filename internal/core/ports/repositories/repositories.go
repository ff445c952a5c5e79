package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both repositories share one backing store, so a pgx.Tx begun on either can be
// passed to the in-transaction methods of the other.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryWithTx
	CardRepo        CardRepositoryWithTx
}
