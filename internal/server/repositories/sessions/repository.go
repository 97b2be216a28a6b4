package sessions

import (
	"context"

	"github.com/dmitrijs2005/tokengate/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string) (*models.Session, error)
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}
