package observability

import (
	"context"
	"time"

	"igsdbcore/pkg/product"
)

// InstrumentedStore wraps a product.Store and reports each operation to the
// configured recorder.
type InstrumentedStore struct {
	inner    product.Store
	recorder MetricsRecorder
}

// InstrumentStore decorates store with recorder. A nil recorder returns the
// store unchanged.
func InstrumentStore(store product.Store, recorder MetricsRecorder) product.Store {
	if recorder == nil {
		return store
	}
	return &InstrumentedStore{inner: store, recorder: recorder}
}

func (s *InstrumentedStore) RunInTransaction(ctx context.Context, fn func(product.Transaction) error) (product.Result, error) {
	start := time.Now()
	res, err := s.inner.RunInTransaction(ctx, fn)
	s.recorder.Observe(ctx, "run_in_transaction", err == nil, time.Since(start))
	return res, err
}

func (s *InstrumentedStore) View(ctx context.Context, fn func(product.TransactionView) error) error {
	start := time.Now()
	err := s.inner.View(ctx, fn)
	s.recorder.Observe(ctx, "view", err == nil, time.Since(start))
	return err
}

// GetProduct records the lookup as a successful operation whether or not the
// token exists; a miss is an answer, not a failure.
func (s *InstrumentedStore) GetProduct(token string) (product.BaseProduct, bool) {
	start := time.Now()
	p, ok := s.inner.GetProduct(token)
	s.recorder.Observe(context.Background(), "get_product", true, time.Since(start))
	return p, ok
}

func (s *InstrumentedStore) ListProducts() []product.BaseProduct {
	start := time.Now()
	out := s.inner.ListProducts()
	s.recorder.Observe(context.Background(), "list_products", true, time.Since(start))
	return out
}
