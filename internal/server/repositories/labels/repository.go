package labels

import (
	"context"

	"github.com/dmitrijs2005/todocards/internal/server/models"
)

type Repository interface {
	FindByName(ctx context.Context, name string) (*models.Label, error)
	Insert(ctx context.Context, name string) error
	ListByCards(ctx context.Context, cardIDs []string) (map[string][]models.Label, error)
	ClearCard(ctx context.Context, cardID string) error
	Attach(ctx context.Context, cardID string, labelIDs []int64) error
}
