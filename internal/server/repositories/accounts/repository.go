package accounts

import (
	"context"

	"github.com/dmitrijs2005/tokengate/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, acc *models.Account) (*models.Account, error)
	AddRole(ctx context.Context, userID, role string) error
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Roles(ctx context.Context, userID string) ([]string, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateUsername(ctx context.Context, userID, userName string) error
	ConfirmEmail(ctx context.Context, userID string) error
	// UpdateAccess writes one capability vector and the new balance when the
	// stored version still equals expectedVersion, returning the new version.
	// A stale version yields common.ErrVersionConflict.
	UpdateAccess(ctx context.Context, userID string, domain models.Domain, v models.Vector, tokens, expectedVersion int64) (int64, error)
}
