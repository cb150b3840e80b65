package todos

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/todocards/internal/common"
	"github.com/dmitrijs2005/todocards/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

var todoColumns = []string{"id", "card_id", "slot", "content", "completed_at"}

func TestCreateSlate_SingleStatementForAllSlots(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	var contents [common.TodoSlots]string
	contents[0] = "milk"
	contents[3] = "eggs"

	args := make([]driver.Value, 0, common.TodoSlots*3)
	for slot, c := range contents {
		args = append(args, "c-1", int64(slot), c)
	}

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+todos\s*\(card_id,\s*slot,\s*content\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\),\s*\(\$4,\s*\$5,\s*\$6\).*\(\$28,\s*\$29,\s*\$30\)$`).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, common.TodoSlots))

	require.NoError(t, repo.CreateSlate(context.Background(), "c-1", contents))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSlate_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO todos`).WillReturnError(errors.New("disk full"))

	err := repo.CreateSlate(context.Background(), "c-1", [common.TodoSlots]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: disk full")
}

func TestListByCard(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	done := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*card_id,\s*slot,\s*content,\s*completed_at\s+FROM\s+todos\s+WHERE\s+card_id\s*=\s*\$1\s+ORDER\s+BY\s+slot\s+ASC$`).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows(todoColumns).
			AddRow(int64(11), "c-1", int64(0), "milk", done).
			AddRow(int64(12), "c-1", int64(1), "", nil))

	got, err := repo.ListByCard(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(11), got[0].ID)
	require.NotNil(t, got[0].CompletedAt)
	assert.True(t, got[0].CompletedAt.Equal(done))
	assert.Equal(t, models.TodoRow{ID: 12, CardID: "c-1", Slot: 1}, got[1])
}

func TestListByCards_UsesOneInQuery(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*card_id,\s*slot,\s*content,\s*completed_at\s+FROM\s+todos\s+WHERE\s+card_id\s+IN\s+\(\$1,\s*\$2\)\s+ORDER\s+BY\s+card_id\s+ASC,\s*slot\s+ASC$`).
		WithArgs("c-1", "c-2").
		WillReturnRows(sqlmock.NewRows(todoColumns).
			AddRow(int64(1), "c-1", int64(0), "a", nil).
			AddRow(int64(2), "c-2", int64(0), "b", nil))

	got, err := repo.ListByCards(context.Background(), []string{"c-1", "c-2"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c-2", got[1].CardID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCards_NoCardsSkipsQuery(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	got, err := repo.ListByCards(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCards_QueryError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`FROM todos`).WithArgs("c-1").WillReturnError(errors.New("timeout"))

	_, err := repo.ListByCards(context.Background(), []string{"c-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: timeout")
}

func TestUpdate(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	q := `(?s)^UPDATE\s+todos\s+SET\s+content\s*=\s*\$1,\s*completed_at\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3$`
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(q).WithArgs("done", now, int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("open", nil, int64(8)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("gone", nil, int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Update(context.Background(), 7, "done", &now))
	require.NoError(t, repo.Update(context.Background(), 8, "open", nil))
	require.ErrorIs(t, repo.Update(context.Background(), 9, "gone", nil), common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByCard(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	q := `(?s)^DELETE\s+FROM\s+todos\s+WHERE\s+card_id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("c-1").WillReturnResult(sqlmock.NewResult(0, common.TodoSlots))
	mock.ExpectExec(q).WithArgs("c-2").WillReturnError(errors.New("io"))

	require.NoError(t, repo.DeleteByCard(context.Background(), "c-1"))
	require.Error(t, repo.DeleteByCard(context.Background(), "c-2"))
}
