// Package accounts provides the PostgreSQL-backed account store: identity,
// credentials, roles, token balance and capability vectors.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/dbx"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const msgPersistFailed = "Failed to persist account."

const selectAccount = `
	SELECT id, email, username, password_hash, email_confirmed, confirmation_hash,
	       tokens, engine_access, material_strength_access, version, created_at
	FROM users
`

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts acc. acc.ID must already be set.
func (r *PostgresRepository) Create(ctx context.Context, acc *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO users (id, email, email_norm, username, username_norm, password_hash,
		                   email_confirmed, confirmation_hash, tokens,
		                   engine_access, material_strength_access)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING version, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		acc.ID, acc.Email, NormalizeEmail(acc.Email), acc.UserName, NormalizeUserName(acc.UserName),
		acc.PasswordHash, acc.EmailConfirmed, nullString(acc.ConfirmationHash), acc.Tokens,
		acc.EngineAccess, acc.MaterialAccess,
	).Scan(&acc.Version, &acc.CreatedAt)
	if err != nil {
		return nil, persistErr(err, acc.Email, acc.UserName)
	}
	return acc, nil
}

func (r *PostgresRepository) AddRole(ctx context.Context, userID, role string) error {
	query := `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, role); err != nil {
		return common.NewStoreError(fmt.Errorf("add role: %w", err), msgPersistFailed)
	}
	return nil
}

// FindByID returns common.ErrorNotFound for ids that are not UUIDs without
// touching the database.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	return r.findOne(ctx, selectAccount+` WHERE id = $1`, id)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, selectAccount+` WHERE email_norm = $1`, NormalizeEmail(email))
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg any) (*models.Account, error) {
	acc := &models.Account{}
	var confirmation sql.NullString

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&acc.ID, &acc.Email, &acc.UserName, &acc.PasswordHash, &acc.EmailConfirmed, &confirmation,
		&acc.Tokens, &acc.EngineAccess, &acc.MaterialAccess, &acc.Version, &acc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	acc.ConfirmationHash = confirmation.String
	return acc, nil
}

func (r *PostgresRepository) Roles(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT role FROM user_roles
		WHERE user_id = $1
		ORDER BY role
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return roles, nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE id = $1`
	return r.execOne(ctx, query, "", "", userID, passwordHash)
}

func (r *PostgresRepository) UpdateUsername(ctx context.Context, userID, userName string) error {
	query := `UPDATE users SET username = $2, username_norm = $3 WHERE id = $1`
	return r.execOne(ctx, query, "", userName, userID, userName, NormalizeUserName(userName))
}

func (r *PostgresRepository) ConfirmEmail(ctx context.Context, userID string) error {
	query := `UPDATE users SET email_confirmed = TRUE, confirmation_hash = NULL WHERE id = $1`
	return r.execOne(ctx, query, "", "", userID)
}

func (r *PostgresRepository) UpdateAccess(ctx context.Context, userID string, domain models.Domain, v models.Vector, tokens, expectedVersion int64) (int64, error) {
	column, err := accessColumn(domain)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		UPDATE users SET %s = $2, tokens = $3, version = version + 1
		WHERE id = $1 AND version = $4
		RETURNING version
	`, column)

	var version int64
	err = r.db.QueryRowContext(ctx, query, userID, v, tokens, expectedVersion).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrVersionConflict
		}
		return 0, persistErr(err, "", "")
	}
	return version, nil
}

// execOne runs an UPDATE that must hit exactly one row.
func (r *PostgresRepository) execOne(ctx context.Context, query, email, userName string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return persistErr(err, email, userName)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return persistErr(err, email, userName)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func accessColumn(d models.Domain) (string, error) {
	switch d {
	case models.DomainEngines:
		return "engine_access", nil
	case models.DomainMaterialStrength:
		return "material_strength_access", nil
	default:
		return "", fmt.Errorf("unknown capability domain %q", d)
	}
}

// persistErr turns a driver error into a StoreError with a message fit for
// the caller. Unique violations also wrap common.ErrConflict.
func persistErr(err error, email, userName string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		conflict := fmt.Errorf("%w: %w", common.ErrConflict, err)
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return common.NewStoreError(conflict, fmt.Sprintf("Email '%s' is already taken.", email))
		case strings.Contains(pgErr.ConstraintName, "username"):
			return common.NewStoreError(conflict, fmt.Sprintf("Username '%s' is already taken.", userName))
		}
	}
	return common.NewStoreError(fmt.Errorf("db error: %w", err), msgPersistFailed)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
