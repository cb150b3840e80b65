package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todocards/internal/common"
	"github.com/dmitrijs2005/todocards/internal/dbx"
	"github.com/dmitrijs2005/todocards/internal/server/models"
	"github.com/dmitrijs2005/todocards/internal/server/reconcile"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// CardService is the per-user card store. Every call that names a card
// passes through Authorize first.
type CardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	labels      *LabelService
	now         func() time.Time
	newID       func() string
}

func NewCardService(db *sql.DB, m repomanager.RepositoryManager, labels *LabelService) *CardService {
	return &CardService{
		db:          db,
		repomanager: m,
		labels:      labels,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Authorize fails with common.ErrNotFound when the card does not exist and
// with common.ErrNotOwner when it belongs to someone else.
func (s *CardService) Authorize(ctx context.Context, userID, cardID string) error {
	owner, err := s.repomanager.Cards(s.db).GetOwnerID(ctx, cardID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		return fmt.Errorf("error checking card owner: %w", err)
	}
	if owner != userID {
		return common.ErrNotOwner
	}
	return nil
}

func (s *CardService) guarded(ctx context.Context, userID, cardID string, fn func() error) error {
	if err := s.Authorize(ctx, userID, cardID); err != nil {
		return err
	}
	return fn()
}

// CreateCard stores a card and all of its todo slots atomically. A nil
// draft creates an untitled card with empty slots.
func (s *CardService) CreateCard(ctx context.Context, userID string, draft *models.CardDraft) (*models.Card, error) {
	if draft == nil {
		draft = &models.CardDraft{}
	}
	if len(draft.Todos) > common.TodoSlots {
		return nil, fmt.Errorf("%w: at most %d todos are allowed, got %d", common.ErrValidation, common.TodoSlots, len(draft.Todos))
	}

	var contents [common.TodoSlots]string
	copy(contents[:], draft.Todos)

	card := &models.Card{
		ID:        s.newID(),
		UserID:    userID,
		Title:     draft.Title,
		CreatedAt: s.now().UTC(),
		Labels:    []models.Label{},
	}
	for slot, content := range contents {
		card.Todos[slot].Content = content
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Cards(tx).Create(ctx, card); err != nil {
			return err
		}
		return s.repomanager.Todos(tx).CreateSlate(ctx, card.ID, contents)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating card: %w", err)
	}
	return card, nil
}

// ListCards returns the user's cards oldest first with their slates and
// labels. Todos and labels are each fetched with a single query.
func (s *CardService) ListCards(ctx context.Context, userID string) ([]*models.Card, error) {
	cards, err := s.repomanager.Cards(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing cards: %w", err)
	}
	if len(cards) == 0 {
		return []*models.Card{}, nil
	}

	if err := s.fill(ctx, cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetCard returns one assembled card of the user.
func (s *CardService) GetCard(ctx context.Context, cardID, userID string) (*models.Card, error) {
	var card *models.Card
	err := s.guarded(ctx, userID, cardID, func() error {
		var err error
		card, err = s.repomanager.Cards(s.db).Get(ctx, cardID)
		if err != nil {
			return fmt.Errorf("error loading card: %w", err)
		}
		return s.fill(ctx, []*models.Card{card})
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *CardService) fill(ctx context.Context, cards []*models.Card) error {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}

	rows, err := s.repomanager.Todos(s.db).ListByCards(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading todos: %w", err)
	}
	slates, err := reconcile.Group(ids, rows)
	if err != nil {
		return err
	}

	labels, err := s.repomanager.Labels(s.db).ListByCards(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading labels: %w", err)
	}

	for i, c := range cards {
		c.Todos = slates[i].Slate()
		c.Labels = labels[c.ID]
		if c.Labels == nil {
			c.Labels = []models.Label{}
		}
	}
	return nil
}

// UpdateCard writes only what differs from storage: the title when changed
// and one row per changed slot, all in one transaction. Nothing is written,
// and no transaction is opened, when the submission matches storage.
func (s *CardService) UpdateCard(ctx context.Context, cardID, userID, title string, todos models.Slate) error {
	return s.guarded(ctx, userID, cardID, func() error {
		card, err := s.repomanager.Cards(s.db).Get(ctx, cardID)
		if err != nil {
			return fmt.Errorf("error loading card: %w", err)
		}
		rows, err := s.repomanager.Todos(s.db).ListByCard(ctx, cardID)
		if err != nil {
			return fmt.Errorf("error loading todos: %w", err)
		}
		stored, err := reconcile.Group([]string{cardID}, rows)
		if err != nil {
			return err
		}

		titleChanged := card.Title != title
		updates := reconcile.Diff(stored[0], todos)
		if !titleChanged && len(updates) == 0 {
			return nil
		}

		now := s.now().UTC()
		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			if titleChanged {
				if err := s.repomanager.Cards(tx).UpdateTitle(ctx, cardID, title); err != nil {
					return err
				}
			}
			todoRepo := s.repomanager.Todos(tx)
			for _, u := range updates {
				var completedAt *time.Time
				if u.Completed {
					completedAt = &now
				}
				if err := todoRepo.Update(ctx, u.RowID, u.Content, completedAt); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error updating card: %w", err)
		}
		return nil
	})
}

// DeleteCard removes the card, its todo rows and its label links together.
func (s *CardService) DeleteCard(ctx context.Context, cardID, userID string) error {
	return s.guarded(ctx, userID, cardID, func() error {
		err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			if err := s.repomanager.Labels(tx).ClearCard(ctx, cardID); err != nil {
				return err
			}
			if err := s.repomanager.Todos(tx).DeleteByCard(ctx, cardID); err != nil {
				return err
			}
			return s.repomanager.Cards(tx).Delete(ctx, cardID)
		})
		if err != nil {
			return fmt.Errorf("error deleting card: %w", err)
		}
		return nil
	})
}

// SetLabels replaces the card's labels with names, creating unknown labels.
func (s *CardService) SetLabels(ctx context.Context, cardID, userID string, names []string) ([]models.Label, error) {
	var labels []models.Label
	err := s.guarded(ctx, userID, cardID, func() error {
		var err error
		labels, err = s.labels.ResolveOrCreate(ctx, names)
		if err != nil {
			return err
		}

		ids := make([]int64, len(labels))
		for i, l := range labels {
			ids[i] = l.ID
		}

		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := s.repomanager.Labels(tx)
			if err := repo.ClearCard(ctx, cardID); err != nil {
				return err
			}
			return repo.Attach(ctx, cardID, ids)
		})
		if err != nil {
			return fmt.Errorf("error setting labels: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return labels, nil
}
