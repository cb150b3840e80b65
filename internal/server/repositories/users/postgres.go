package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todocards/internal/common"
	"github.com/dmitrijs2005/todocards/internal/dbx"
	"github.com/dmitrijs2005/todocards/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create stores user.ID and fills CreatedAt from the database clock.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (id)
		 VALUES ($1)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, user.ID).Scan(&user.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: user %s already exists", common.ErrValidation, user.ID)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
