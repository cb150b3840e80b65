package todos

import (
	"context"
	"time"

	"github.com/dmitrijs2005/todocards/internal/common"
	"github.com/dmitrijs2005/todocards/internal/server/models"
)

// Repository stores the todo rows of cards, one row per slot.
type Repository interface {
	CreateSlate(ctx context.Context, cardID string, contents [common.TodoSlots]string) error
	ListByCard(ctx context.Context, cardID string) ([]models.TodoRow, error)
	ListByCards(ctx context.Context, cardIDs []string) ([]models.TodoRow, error)
	Update(ctx context.Context, rowID int64, content string, completedAt *time.Time) error
	DeleteByCard(ctx context.Context, cardID string) error
}
