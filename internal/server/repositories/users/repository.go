package users

import (
	"context"

	"github.com/dmitrijs2005/todocards/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
