package cards

import (
	"context"

	"github.com/dmitrijs2005/todocards/internal/server/models"
)

// Repository stores card headers. Todo rows live in the todos repository.
type Repository interface {
	Create(ctx context.Context, card *models.Card) error
	Get(ctx context.Context, id string) (*models.Card, error)
	GetOwnerID(ctx context.Context, id string) (string, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Card, error)
	UpdateTitle(ctx context.Context, id string, title string) error
	Delete(ctx context.Context, id string) error
}
