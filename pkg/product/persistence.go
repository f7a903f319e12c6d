package product

import "context"

// Transaction exposes the product mutations a persistence implementation
// must support within an atomic scope. Products are keyed by token.
type Transaction interface {
	Snapshot() TransactionView
	CreateProduct(BaseProduct) (BaseProduct, error)
	UpdateProduct(token string, mutator func(*BaseProduct) error) (BaseProduct, error)
	DeleteProduct(token string) error
}

// TransactionView provides read-only access to snapshot data for rules and
// callers.
type TransactionView interface {
	ListProducts() []BaseProduct
	FindProduct(token string) (BaseProduct, bool)
}

// Store is a minimal abstraction over durable product backends.
type Store interface {
	RunInTransaction(ctx context.Context, fn func(Transaction) error) (Result, error)
	View(ctx context.Context, fn func(TransactionView) error) error
	GetProduct(token string) (BaseProduct, bool)
	ListProducts() []BaseProduct
}
