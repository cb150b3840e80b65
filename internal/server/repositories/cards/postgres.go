package cards

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepository) Create(ctx context.Context, card *models.Card) error {
	query :=
		`INSERT INTO cards (id, user_id, title, created_at)
		 VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, card.ID, card.UserID, card.Title, card.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get and GetOwnerID treat an id that is not a uuid as a missing card.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Card, error) {
	query :=
		`SELECT id, user_id, title, created_at FROM cards
		 WHERE id = $1`

	card := &models.Card{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&card.ID, &card.UserID, &card.Title, &card.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidText(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return card, nil
}

func (r *PostgresRepository) GetOwnerID(ctx context.Context, id string) (string, error) {
	query := `SELECT user_id FROM cards WHERE id = $1`

	var owner string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidText(err) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return owner, nil
}

// ListByUser returns the user's cards oldest first; cards created at the
// same instant are ordered by id.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Card, error) {
	query :=
		`SELECT id, user_id, title, created_at FROM cards
		 WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Card, 0)
	for rows.Next() {
		card := &models.Card{}
		if err := rows.Scan(&card.ID, &card.UserID, &card.Title, &card.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) UpdateTitle(ctx context.Context, id string, title string) error {
	query := `UPDATE cards SET title = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, title, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM cards WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
