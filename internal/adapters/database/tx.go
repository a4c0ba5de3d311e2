package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TxManager = (*TxManager)(nil)
	_ ports.Tx        = (*Tx)(nil)
)

// txContextKey is an unexported key type to avoid context key collisions.
type txContextKey struct{}

// TxManager begins sqlx transactions and carries them in the context.
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a TxManager over db.
func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// Begin starts a transaction. Read-only is passed to Postgres; SQLite treats
// it as advisory because the driver does not support read-only transactions.
func (m *TxManager) Begin(ctx context.Context, opts ports.TxOptions) (context.Context, ports.Tx, error) {
	sqlOpts := &sql.TxOptions{ReadOnly: opts.ReadOnly && m.db.DriverName() == DriverPostgres}

	stx, err := m.db.BeginTxx(ctx, sqlOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction %s: %w", opts.Name, err)
	}

	tx := &Tx{tx: stx, name: opts.Name}
	return context.WithValue(ctx, txContextKey{}, tx), tx, nil
}

// Tx is a database transaction handle. It is not safe for concurrent use.
type Tx struct {
	tx        *sqlx.Tx
	name      string
	completed bool
}

// Commit commits the transaction. The handle is completed afterwards even
// when the commit fails.
func (t *Tx) Commit(context.Context) error {
	t.completed = true
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction %s: %w", t.name, err)
	}
	return nil
}

// Rollback aborts the transaction.
func (t *Tx) Rollback(context.Context) error {
	t.completed = true
	if err := t.tx.Rollback(); err != nil {
		return fmt.Errorf("rolling back transaction %s: %w", t.name, err)
	}
	return nil
}

// Completed reports whether Commit or Rollback has been called.
func (t *Tx) Completed() bool { return t.completed }

// txFromContext returns the open transaction carried by ctx, if any.
func txFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	t, ok := ctx.Value(txContextKey{}).(*Tx)
	if !ok || t.completed {
		return nil, false
	}
	return t.tx, true
}
