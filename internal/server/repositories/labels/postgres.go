package labels

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

func (r *PostgresRepository) FindByName(ctx context.Context, name string) (*models.Label, error) {
	query := `SELECT id, name FROM labels WHERE name = $1`

	label := &models.Label{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&label.ID, &label.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return label, nil
}

// Insert creates the label unless another request already did.
func (r *PostgresRepository) Insert(ctx context.Context, name string) error {
	query :=
		`INSERT INTO labels (name) VALUES ($1)
		 ON CONFLICT (name) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByCards returns the labels of each card, sorted by name.
func (r *PostgresRepository) ListByCards(ctx context.Context, cardIDs []string) (map[string][]models.Label, error) {
	result := make(map[string][]models.Label, len(cardIDs))
	if len(cardIDs) == 0 {
		return result, nil
	}

	query, args, err := dbx.In(
		`SELECT cl.card_id, l.id, l.name FROM card_labels cl
		 JOIN labels l ON l.id = cl.label_id
		 WHERE cl.card_id IN (?)
		 ORDER BY cl.card_id ASC, l.name ASC`, cardIDs)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cardID string
		var label models.Label
		if err := rows.Scan(&cardID, &label.ID, &label.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result[cardID] = append(result[cardID], label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) ClearCard(ctx context.Context, cardID string) error {
	query := `DELETE FROM card_labels WHERE card_id = $1`

	if _, err := r.db.ExecContext(ctx, query, cardID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Attach(ctx context.Context, cardID string, labelIDs []int64) error {
	if len(labelIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO card_labels (card_id, label_id) VALUES `)
	args := make([]any, 0, len(labelIDs)*2)
	for i, id := range labelIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d)", len(args)+1, len(args)+2)
		args = append(args, cardID, id)
	}

	if _, err := r.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
