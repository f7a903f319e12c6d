package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"

	"igsdbcore/internal/infra/persistence/memory"
	"igsdbcore/pkg/product"
)

// stubState is a process-local stand-in for the Postgres state table.
type stubState struct {
	mu      sync.Mutex
	buckets map[string][]byte
	execs   []string
}

func newStubState() *stubState {
	return &stubState{buckets: make(map[string][]byte)}
}

type stubConnector struct{ state *stubState }

func (c stubConnector) Connect(context.Context) (driver.Conn, error) {
	return &stubConn{state: c.state}, nil
}
func (c stubConnector) Driver() driver.Driver { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return nil, io.EOF }

type stubConn struct{ state *stubState }

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return nil, io.EOF }
func (c *stubConn) Close() error                        { return nil }
func (c *stubConn) Begin() (driver.Tx, error)           { return stubTx{}, nil }
func (c *stubConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return stubTx{}, nil
}
func (c *stubConn) Ping(context.Context) error { return nil }

func (c *stubConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.execs = append(c.state.execs, query)
	if strings.HasPrefix(query, "INSERT INTO state") {
		bucket := args[0].Value.(string)
		payload := append([]byte(nil), args[1].Value.([]byte)...)
		c.state.buckets[bucket] = payload
	}
	return driver.RowsAffected(1), nil
}

func (c *stubConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	if !strings.HasPrefix(query, "SELECT bucket, payload FROM state") {
		return nil, io.EOF
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	rows := &stubRows{}
	for bucket, payload := range c.state.buckets {
		rows.data = append(rows.data, [2]driver.Value{bucket, append([]byte(nil), payload...)})
	}
	return rows, nil
}

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stubRows struct {
	data []([2]driver.Value)
	pos  int
}

func (r *stubRows) Columns() []string { return []string{"bucket", "payload"} }
func (r *stubRows) Close() error      { return nil }
func (r *stubRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.data) {
		return io.EOF
	}
	dest[0] = r.data[r.pos][0]
	dest[1] = r.data[r.pos][1]
	r.pos++
	return nil
}

func openStub(t *testing.T, state *stubState) func() {
	t.Helper()
	return OverrideSQLOpen(func(_, _ string) (*sql.DB, error) {
		return sql.OpenDB(stubConnector{state: state}), nil
	})
}

func TestNewStoreCreatesStateTable(t *testing.T) {
	state := newStubState()
	restore := openStub(t, state)
	defer restore()

	if _, err := NewStore("", product.NewRulesEngine()); err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	sawDDL := false
	for _, stmt := range state.execs {
		if strings.Contains(strings.ToUpper(stmt), "CREATE TABLE") {
			sawDDL = true
			break
		}
	}
	if !sawDDL {
		t.Fatalf("expected state table DDL, got execs: %v", state.execs)
	}
}

func TestRunInTransactionPersistsSnapshot(t *testing.T) {
	state := newStubState()
	restore := openStub(t, state)
	defer restore()

	store, err := NewStore("ignored", product.NewRulesEngine())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	token := "pg-token"
	p, _ := product.NewBaseProduct("GLAZING", "MONOLITHIC", "PUBLISHED")
	p.Token = &token
	if _, err := store.RunInTransaction(context.Background(), func(tx product.Transaction) error {
		_, err := tx.CreateProduct(*p)
		return err
	}); err != nil {
		t.Fatalf("transaction: %v", err)
	}

	state.mu.Lock()
	payload := state.buckets["products"]
	state.mu.Unlock()
	if len(payload) == 0 {
		t.Fatalf("expected snapshot in products bucket")
	}
	var decoded map[string]product.BaseProduct
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if _, ok := decoded[token]; !ok {
		t.Fatalf("snapshot missing product %s: %v", token, decoded)
	}
}

func TestNewStoreHydratesFromSnapshot(t *testing.T) {
	state := newStubState()
	token := "seeded"
	p, _ := product.NewBaseProduct("SHADING", "WOVEN_SHADE", "PUBLISHED")
	p.Token = &token
	seed, err := json.Marshal(memory.Snapshot{Products: map[string]product.BaseProduct{token: *p}}.Products)
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	state.buckets["products"] = seed

	restore := openStub(t, state)
	defer restore()

	store, err := NewStore("", product.NewRulesEngine())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	got, ok := store.GetProduct(token)
	if !ok {
		t.Fatalf("expected seeded product loaded")
	}
	if got.Subtype != product.SubtypeWovenShade {
		t.Fatalf("unexpected subtype: %s", got.Subtype)
	}
}

func TestBlockedTransactionNotPersisted(t *testing.T) {
	state := newStubState()
	restore := openStub(t, state)
	defer restore()

	store, err := NewStore("", product.NewRulesEngine())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	bad, _ := product.NewBaseProduct("GLAZING", "COATED", "PROPOSED")
	tir := 0.4
	bad.PhysicalProperties = &product.PhysicalProperties{PredefinedTIRBack: &tir}
	if _, err := store.RunInTransaction(context.Background(), func(tx product.Transaction) error {
		_, err := tx.CreateProduct(*bad)
		return err
	}); err == nil {
		t.Fatalf("expected rule violation")
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if len(state.buckets) != 0 {
		t.Fatalf("blocked transaction must not snapshot: %v", state.buckets)
	}
}
