package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository stores one JSON document per named key.
// Documents are always overwritten whole, never patched.
type DocumentRepository interface {
	GetDocument(ctx context.Context, key string) ([]byte, error)
	PutDocument(ctx context.Context, key string, body []byte) error
	DeleteDocument(ctx context.Context, key string) error
}

// DocumentRepo is a sqlx implementation of DocumentRepository.
type DocumentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo constructs a DocumentRepo.
func NewDocumentRepo(db *sqlx.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// GetDocument fetches the raw body stored under key.
func (r *DocumentRepo) GetDocument(ctx context.Context, key string) ([]byte, error) {
	var body string
	err := r.db.GetContext(ctx, &body, `SELECT body FROM documents WHERE key=$1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

// PutDocument replaces the document stored under key.
func (r *DocumentRepo) PutDocument(ctx context.Context, key string, body []byte) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO documents (key, body, updated_at) VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`, key, string(body))
	return err
}

// DeleteDocument removes the document; a missing key is not an error.
func (r *DocumentRepo) DeleteDocument(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE key=$1`, key)
	return err
}
