// Package sessions stores server-side sign-in sessions in PostgreSQL.
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/dbx"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/oklog/ulid/v2"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create opens a session for userID under a fresh ULID.
func (r *PostgresRepository) Create(ctx context.Context, userID string) (*models.Session, error) {
	query := `
		INSERT INTO sessions (id, user_id)
		VALUES ($1, $2)
		RETURNING created_at
	`
	s := &models.Session{ID: ulid.Make().String(), UserID: userID}
	if err := r.db.QueryRowContext(ctx, query, s.ID, userID).Scan(&s.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// Find returns common.ErrorNotFound for unknown or malformed ids.
func (r *PostgresRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	if _, err := ulid.ParseStrict(id); err != nil {
		return nil, common.ErrorNotFound
	}

	query := `
		SELECT id, user_id, created_at
		FROM sessions
		WHERE id = $1
	`
	s := &models.Session{}
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.UserID, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM sessions
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
