package dbmetrics

import "context"

type txContextKey struct{}

// WithExecutor stores an open transaction executor in the context.
// Transaction managers use it to propagate the transaction into
// repositories without changing their signatures.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor returns the transaction executor from the context if one is
// active, otherwise the fallback (typically the repository's own DB handle)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether the context carries an open transaction.
// Repositories use it to decide whether row locking clauses make sense.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
