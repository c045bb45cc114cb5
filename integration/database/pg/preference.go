package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/christopherstationary/website/core/preference"
)

// Schema creates the preferences table.
const Schema = `CREATE TABLE IF NOT EXISTS site_preferences (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const (
	selectPreference = `SELECT value FROM site_preferences WHERE key = $1`
	upsertPreference = `INSERT INTO site_preferences (key, value, updated_at) VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PreferenceStore keeps preferences in the site_preferences table. Calls
// join a transaction attached to the context with WithTx.
type PreferenceStore struct {
	db Querier
}

var _ preference.Store = (*PreferenceStore)(nil)

// NewPreferenceStore returns a preference.Store backed by db.
func NewPreferenceStore(db Querier) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// Migrate creates the table when missing.
func (s *PreferenceStore) Migrate(ctx context.Context) error {
	if _, err := s.querier(ctx).Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create site_preferences: %w", err)
	}
	return nil
}

func (s *PreferenceStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.querier(ctx).QueryRow(ctx, selectPreference, key).Scan(&value)
	if IsNotFoundError(err) {
		return "", preference.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select preference %s: %w", key, err)
	}
	return value, nil
}

func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.querier(ctx).Exec(ctx, upsertPreference, key, value); err != nil {
		return fmt.Errorf("upsert preference %s: %w", key, err)
	}
	return nil
}

func (s *PreferenceStore) querier(ctx context.Context) Querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.db
}
