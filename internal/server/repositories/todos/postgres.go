package todos

import (
	"context"
	"fmt"
	"strings"
	"time"

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

// CreateSlate inserts every slot of a new card in a single statement.
func (r *PostgresRepository) CreateSlate(ctx context.Context, cardID string, contents [common.TodoSlots]string) error {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO todos (card_id, slot, content) VALUES `)

	args := make([]any, 0, len(contents)*3)
	for slot, content := range contents {
		if slot > 0 {
			sb.WriteString(", ")
		}
		n := len(args)
		fmt.Fprintf(&sb, "($%d, $%d, $%d)", n+1, n+2, n+3)
		args = append(args, cardID, slot, content)
	}

	if _, err := r.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByCard(ctx context.Context, cardID string) ([]models.TodoRow, error) {
	query :=
		`SELECT id, card_id, slot, content, completed_at FROM todos
		 WHERE card_id = $1
		 ORDER BY slot ASC`

	return r.list(ctx, query, cardID)
}

// ListByCards fetches the rows of all given cards with one IN query.
func (r *PostgresRepository) ListByCards(ctx context.Context, cardIDs []string) ([]models.TodoRow, error) {
	if len(cardIDs) == 0 {
		return []models.TodoRow{}, nil
	}

	query, args, err := dbx.In(
		`SELECT id, card_id, slot, content, completed_at FROM todos
		 WHERE card_id IN (?)
		 ORDER BY card_id ASC, slot ASC`, cardIDs)
	if err != nil {
		return nil, err
	}

	return r.list(ctx, query, args...)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.TodoRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.TodoRow, 0)
	for rows.Next() {
		var row models.TodoRow
		if err := rows.Scan(&row.ID, &row.CardID, &row.Slot, &row.Content, &row.CompletedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Update overwrites one row. A nil completedAt marks the todo as open.
func (r *PostgresRepository) Update(ctx context.Context, rowID int64, content string, completedAt *time.Time) error {
	query :=
		`UPDATE todos SET content = $1, completed_at = $2
		 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, content, completedAt, rowID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByCard(ctx context.Context, cardID string) error {
	query := `DELETE FROM todos WHERE card_id = $1`

	if _, err := r.db.ExecContext(ctx, query, cardID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
