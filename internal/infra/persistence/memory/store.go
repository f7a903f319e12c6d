// Package memory provides an in-memory implementation of the product store
// used for tests and ephemeral environments.
package memory

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"igsdbcore/pkg/product"
)

// Compile-time contract assertion ensuring the store satisfies the product
// persistence interface.
var _ product.Store = (*Store)(nil)

type (
	// BaseProduct aliases product.BaseProduct for persistence operations.
	BaseProduct = product.BaseProduct
	// Change aliases product.Change captured in transactions.
	Change = product.Change
	// Result aliases product.Result summarizing rule evaluation.
	Result = product.Result
	// RulesEngine aliases product.RulesEngine used to evaluate rules.
	RulesEngine = product.RulesEngine
	// Transaction aliases product.Transaction.
	Transaction = product.Transaction
	// TransactionView aliases product.TransactionView.
	TransactionView = product.TransactionView
)

// Snapshot captures a point-in-time clone of the store state.
type Snapshot struct {
	Products map[string]BaseProduct `json:"products"`
}

// Store holds products keyed by token behind a mutex.
type Store struct {
	mu       sync.RWMutex
	products map[string]BaseProduct
	engine   *RulesEngine
}

// NewStore constructs an empty in-memory store. A nil engine disables rule
// evaluation.
func NewStore(engine *RulesEngine) *Store {
	return &Store{products: make(map[string]BaseProduct), engine: engine}
}

func (s *Store) newToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Errorf("memory store token: %w", err))
	}
	return hex.EncodeToString(buf)
}

// cloneProduct deep-copies a product through its JSON form. The model is a
// nested tree of pointers and slices; a structural copy is the only safe
// way to hand values across the store boundary.
func cloneProduct(p BaseProduct) BaseProduct {
	raw, err := json.Marshal(p)
	if err != nil {
		panic(fmt.Errorf("memory store clone: %w", err))
	}
	var out BaseProduct
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Errorf("memory store clone: %w", err))
	}
	return out
}

func cloneState(products map[string]BaseProduct) map[string]BaseProduct {
	out := make(map[string]BaseProduct, len(products))
	for token, p := range products {
		out[token] = cloneProduct(p)
	}
	return out
}

// ExportState returns a snapshot clone of all stored products.
func (s *Store) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Products: cloneState(s.products)}
}

// ImportState replaces the store contents with the snapshot.
func (s *Store) ImportState(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snapshot.Products == nil {
		s.products = make(map[string]BaseProduct)
		return
	}
	s.products = cloneState(snapshot.Products)
}

// RulesEngine returns the configured rules engine.
func (s *Store) RulesEngine() *RulesEngine { return s.engine }

// GetProduct returns the product stored under token.
func (s *Store) GetProduct(token string) (BaseProduct, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[token]
	if !ok {
		return BaseProduct{}, false
	}
	return cloneProduct(p), true
}

// ListProducts returns all stored products ordered by token.
func (s *Store) ListProducts() []BaseProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listProducts(s.products)
}

func listProducts(products map[string]BaseProduct) []BaseProduct {
	tokens := make([]string, 0, len(products))
	for token := range products {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	out := make([]BaseProduct, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, cloneProduct(products[token]))
	}
	return out
}

type view struct {
	products map[string]BaseProduct
}

func (v view) ListProducts() []BaseProduct { return listProducts(v.products) }

func (v view) FindProduct(token string) (BaseProduct, bool) {
	p, ok := v.products[token]
	if !ok {
		return BaseProduct{}, false
	}
	return cloneProduct(p), true
}

// View runs fn against a read-only snapshot of the current state.
func (s *Store) View(_ context.Context, fn func(TransactionView) error) error {
	s.mu.RLock()
	staged := cloneState(s.products)
	s.mu.RUnlock()
	return fn(view{products: staged})
}

type transaction struct {
	store   *Store
	staged  map[string]BaseProduct
	changes []Change
}

func (t *transaction) Snapshot() TransactionView { return view{products: t.staged} }

func (t *transaction) CreateProduct(p BaseProduct) (BaseProduct, error) {
	token := ""
	if p.Token != nil {
		token = *p.Token
	}
	if token == "" {
		token = t.store.newToken()
		p.Token = &token
	}
	if _, exists := t.staged[token]; exists {
		return BaseProduct{}, fmt.Errorf("product %s already exists", token)
	}
	stored := cloneProduct(p)
	t.staged[token] = stored
	t.changes = append(t.changes, Change{Action: product.ActionCreate, Token: token, After: &stored})
	return cloneProduct(stored), nil
}

func (t *transaction) UpdateProduct(token string, mutator func(*BaseProduct) error) (BaseProduct, error) {
	current, ok := t.staged[token]
	if !ok {
		return BaseProduct{}, fmt.Errorf("product %s not found", token)
	}
	before := cloneProduct(current)
	updated := cloneProduct(current)
	if err := mutator(&updated); err != nil {
		return BaseProduct{}, err
	}
	updated.Token = &token
	t.staged[token] = updated
	stored := cloneProduct(updated)
	t.changes = append(t.changes, Change{Action: product.ActionUpdate, Token: token, Before: &before, After: &stored})
	return cloneProduct(updated), nil
}

func (t *transaction) DeleteProduct(token string) error {
	current, ok := t.staged[token]
	if !ok {
		return fmt.Errorf("product %s not found", token)
	}
	before := cloneProduct(current)
	delete(t.staged, token)
	t.changes = append(t.changes, Change{Action: product.ActionDelete, Token: token, Before: &before})
	return nil
}

// RunInTransaction stages fn against a cloned state, evaluates rules over
// the collected changes, and commits unless a blocking violation occurred.
func (s *Store) RunInTransaction(ctx context.Context, fn func(Transaction) error) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{store: s, staged: cloneState(s.products)}
	if err := fn(tx); err != nil {
		return Result{}, err
	}

	var res Result
	if s.engine != nil {
		evaluated, err := s.engine.Evaluate(ctx, view{products: tx.staged}, tx.changes)
		if err != nil {
			return Result{}, err
		}
		res = evaluated
		if res.HasBlocking() {
			return res, product.RuleViolationError{Result: res}
		}
	}
	s.products = tx.staged
	return res, nil
}
