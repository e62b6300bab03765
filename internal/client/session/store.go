package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/scribe/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/scribe/internal/dbx"
)

const (
	TokenKey   = "token"
	SavedAtKey = "token_saved_at"
)

// Store persists the session token in the local metadata table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Load returns the persisted token, or "" when there is none.
func (s *Store) Load(ctx context.Context) (string, error) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, TokenKey)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return string(v), nil
}

// SavedAt returns when the current token was written. The zero time means
// no token is stored.
func (s *Store) SavedAt(ctx context.Context) (time.Time, error) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, SavedAtKey)
	if err != nil {
		return time.Time{}, fmt.Errorf("load token timestamp: %w", err)
	}
	if v == nil {
		return time.Time{}, nil
	}
	sec, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token timestamp: %w", err)
	}
	return time.Unix(sec, 0), nil
}

// Save writes the token and its timestamp in one transaction.
func (s *Store) Save(ctx context.Context, token string) error {
	savedAt := strconv.FormatInt(s.now().Unix(), 10)
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, SavedAtKey, []byte(savedAt))
	})
}

// Clear removes the token and its timestamp.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, TokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, SavedAtKey)
	})
}
