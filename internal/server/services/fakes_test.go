package services

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/todocards/internal/common"
	"github.com/dmitrijs2005/todocards/internal/dbx"
	"github.com/dmitrijs2005/todocards/internal/server/models"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/cards"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/labels"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/users"
)

// fakeStore backs every fake repository. It does not model transactions:
// rollbacks are asserted through sqlmock expectations instead.
type fakeStore struct {
	users      map[string]*models.User
	cards      map[string]*models.Card
	rows       map[string][]models.TodoRow
	labels     map[string]*models.Label
	cardLabels map[string][]int64

	nextRowID   int64
	nextLabelID int64

	writes []string
	reads  []string
	fail   map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      map[string]*models.User{},
		cards:      map[string]*models.Card{},
		rows:       map[string][]models.TodoRow{},
		labels:     map[string]*models.Label{},
		cardLabels: map[string][]int64{},
		fail:       map[string]error{},
	}
}

func (s *fakeStore) write(op string) error {
	s.writes = append(s.writes, op)
	return s.fail[op]
}

func (s *fakeStore) read(op string) error {
	s.reads = append(s.reads, op)
	return s.fail[op]
}

// addCard seeds a card with empty slots.
func (s *fakeStore) addCard(id, owner, title string, createdAt time.Time) {
	s.cards[id] = &models.Card{ID: id, UserID: owner, Title: title, CreatedAt: createdAt}
	rows := make([]models.TodoRow, common.TodoSlots)
	for slot := range rows {
		s.nextRowID++
		rows[slot] = models.TodoRow{ID: s.nextRowID, CardID: id, Slot: slot}
	}
	s.rows[id] = rows
}

type fakeUsersRepo struct{ s *fakeStore }

func (r *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if err := r.s.write("users.Create"); err != nil {
		return nil, err
	}
	u.CreatedAt = time.Now()
	r.s.users[u.ID] = u
	return u, nil
}

type fakeCardsRepo struct{ s *fakeStore }

func (r *fakeCardsRepo) Create(_ context.Context, c *models.Card) error {
	if err := r.s.write("cards.Create"); err != nil {
		return err
	}
	cp := *c
	r.s.cards[c.ID] = &cp
	return nil
}

func (r *fakeCardsRepo) Get(_ context.Context, id string) (*models.Card, error) {
	if err := r.s.read("cards.Get"); err != nil {
		return nil, err
	}
	c, ok := r.s.cards[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCardsRepo) GetOwnerID(_ context.Context, id string) (string, error) {
	if err := r.s.read("cards.GetOwnerID"); err != nil {
		return "", err
	}
	c, ok := r.s.cards[id]
	if !ok {
		return "", common.ErrNotFound
	}
	return c.UserID, nil
}

func (r *fakeCardsRepo) ListByUser(_ context.Context, userID string) ([]*models.Card, error) {
	if err := r.s.read("cards.ListByUser"); err != nil {
		return nil, err
	}
	result := make([]*models.Card, 0)
	for _, c := range r.s.cards {
		if c.UserID == userID {
			cp := *c
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *fakeCardsRepo) UpdateTitle(_ context.Context, id, title string) error {
	if err := r.s.write("cards.UpdateTitle"); err != nil {
		return err
	}
	r.s.cards[id].Title = title
	return nil
}

func (r *fakeCardsRepo) Delete(_ context.Context, id string) error {
	if err := r.s.write("cards.Delete"); err != nil {
		return err
	}
	delete(r.s.cards, id)
	return nil
}

type fakeTodosRepo struct{ s *fakeStore }

func (r *fakeTodosRepo) CreateSlate(_ context.Context, cardID string, contents [common.TodoSlots]string) error {
	if err := r.s.write("todos.CreateSlate"); err != nil {
		return err
	}
	rows := make([]models.TodoRow, 0, len(contents))
	for slot, c := range contents {
		r.s.nextRowID++
		rows = append(rows, models.TodoRow{ID: r.s.nextRowID, CardID: cardID, Slot: slot, Content: c})
	}
	r.s.rows[cardID] = rows
	return nil
}

func (r *fakeTodosRepo) ListByCard(_ context.Context, cardID string) ([]models.TodoRow, error) {
	if err := r.s.read("todos.ListByCard"); err != nil {
		return nil, err
	}
	return slices.Clone(r.s.rows[cardID]), nil
}

func (r *fakeTodosRepo) ListByCards(_ context.Context, cardIDs []string) ([]models.TodoRow, error) {
	if err := r.s.read("todos.ListByCards"); err != nil {
		return nil, err
	}
	var result []models.TodoRow
	for _, id := range cardIDs {
		result = append(result, r.s.rows[id]...)
	}
	return result, nil
}

func (r *fakeTodosRepo) Update(_ context.Context, rowID int64, content string, completedAt *time.Time) error {
	if err := r.s.write(fmt.Sprintf("todos.Update(%d)", rowID)); err != nil {
		return err
	}
	for _, rows := range r.s.rows {
		for i := range rows {
			if rows[i].ID == rowID {
				rows[i].Content = content
				rows[i].CompletedAt = completedAt
				return nil
			}
		}
	}
	return common.ErrNotFound
}

func (r *fakeTodosRepo) DeleteByCard(_ context.Context, cardID string) error {
	if err := r.s.write("todos.DeleteByCard"); err != nil {
		return err
	}
	delete(r.s.rows, cardID)
	return nil
}

type fakeLabelsRepo struct{ s *fakeStore }

func (r *fakeLabelsRepo) FindByName(_ context.Context, name string) (*models.Label, error) {
	if err := r.s.read("labels.FindByName"); err != nil {
		return nil, err
	}
	l, ok := r.s.labels[name]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLabelsRepo) Insert(_ context.Context, name string) error {
	if err := r.s.write("labels.Insert(" + name + ")"); err != nil {
		return err
	}
	if _, ok := r.s.labels[name]; !ok {
		r.s.nextLabelID++
		r.s.labels[name] = &models.Label{ID: r.s.nextLabelID, Name: name}
	}
	return nil
}

func (r *fakeLabelsRepo) ListByCards(_ context.Context, cardIDs []string) (map[string][]models.Label, error) {
	if err := r.s.read("labels.ListByCards"); err != nil {
		return nil, err
	}
	byID := map[int64]models.Label{}
	for _, l := range r.s.labels {
		byID[l.ID] = *l
	}
	result := map[string][]models.Label{}
	for _, id := range cardIDs {
		for _, lid := range r.s.cardLabels[id] {
			result[id] = append(result[id], byID[lid])
		}
	}
	return result, nil
}

func (r *fakeLabelsRepo) ClearCard(_ context.Context, cardID string) error {
	if err := r.s.write("labels.ClearCard"); err != nil {
		return err
	}
	delete(r.s.cardLabels, cardID)
	return nil
}

func (r *fakeLabelsRepo) Attach(_ context.Context, cardID string, ids []int64) error {
	if err := r.s.write("labels.Attach"); err != nil {
		return err
	}
	r.s.cardLabels[cardID] = append(r.s.cardLabels[cardID], ids...)
	return nil
}

type fakeRepoManager struct{ s *fakeStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return &fakeUsersRepo{m.s} }
func (m *fakeRepoManager) Cards(dbx.DBTX) cards.Repository             { return &fakeCardsRepo{m.s} }
func (m *fakeRepoManager) Todos(dbx.DBTX) todos.Repository             { return &fakeTodosRepo{m.s} }
func (m *fakeRepoManager) Labels(dbx.DBTX) labels.Repository           { return &fakeLabelsRepo{m.s} }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var fixedNow = time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

func newCardService(t *testing.T) (*CardService, *fakeStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	store := newFakeStore()
	rm := &fakeRepoManager{s: store}
	s := NewCardService(db, rm, NewLabelService(db, rm))
	s.now = func() time.Time { return fixedNow }
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("card-%d", n)
	}
	return s, store, mock
}

func itoa(n int64) string { return fmt.Sprint(n) }
