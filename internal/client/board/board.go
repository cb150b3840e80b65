// Package board is the client's view-model of the user's cards. Local edits
// go to a working copy; saving pushes it to the server and either commits it
// or restores the last copy the server confirmed.
package board

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/todocards/internal/client/models"
	"github.com/dmitrijs2005/todocards/internal/common"
)

// State is the outcome of the last remote mutation of a card.
type State int

const (
	Idle State = iota
	Pending
	Committed
	RolledBack
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Committed:
		return "committed"
	case RolledBack:
		return "rolled back"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var ErrNoCard = errors.New("no such card")

// RemoteError is a server-side failure of a board mutation. Local state has
// already been restored and the sink notified when one is returned.
type RemoteError struct {
	Op    string
	Title string
	Err   error
}

func (e *RemoteError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Title, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func (b *Board) report(op, title string, err error) error {
	re := &RemoteError{Op: op, Title: title, Err: err}
	b.sink(re)
	return re
}

// Remote is the part of client.Client the board drives.
type Remote interface {
	ListCards(ctx context.Context) ([]models.Card, error)
	GetCard(ctx context.Context, id string) (models.Card, error)
	CreateCard(ctx context.Context, draft *models.Draft) (string, error)
	UpdateCard(ctx context.Context, card models.Card) error
	DeleteCard(ctx context.Context, id string) error
	SetLabels(ctx context.Context, id string, names []string) ([]string, error)
}

// ErrorSink receives every failed remote mutation after local state has been
// restored. It is called without the board lock held.
type ErrorSink func(err error)

type entry struct {
	working models.Card
	good    models.Card
	state   State
}

func (e *entry) dirty() bool {
	return e.working.Title != e.good.Title ||
		e.working.Todos != e.good.Todos ||
		!slices.Equal(e.working.Labels, e.good.Labels)
}

// Item is a read-only view of one card.
type Item struct {
	Card  models.Card
	State State
	Dirty bool
}

type Board struct {
	mu      sync.Mutex
	remote  Remote
	sink    ErrorSink
	entries []*entry
}

func New(remote Remote, sink ErrorSink) *Board {
	if sink == nil {
		sink = func(error) {}
	}
	return &Board{remote: remote, sink: sink}
}

func newEntry(c models.Card) *entry {
	return &entry{working: c.Clone(), good: c.Clone(), state: Idle}
}

// Load replaces the whole board with the server's cards.
func (b *Board) Load(ctx context.Context) error {
	cards, err := b.remote.ListCards(ctx)
	if err != nil {
		return err
	}

	entries := make([]*entry, len(cards))
	for i, c := range cards {
		entries[i] = newEntry(c)
	}

	b.mu.Lock()
	b.entries = entries
	b.mu.Unlock()
	return nil
}

// ReloadIfClean reloads only when no card has unsaved or in-flight changes.
func (b *Board) ReloadIfClean(ctx context.Context) (bool, error) {
	b.mu.Lock()
	for _, e := range b.entries {
		if e.dirty() || e.state == Pending {
			b.mu.Unlock()
			return false, nil
		}
	}
	b.mu.Unlock()

	if err := b.Load(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Items returns copies of every card in board order.
func (b *Board) Items() []Item {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := make([]Item, len(b.entries))
	for i, e := range b.entries {
		items[i] = Item{Card: e.working.Clone(), State: e.state, Dirty: e.dirty()}
	}
	return items
}

// Item returns card i.
func (b *Board) Item(i int) (Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, err := b.at(i)
	if err != nil {
		return Item{}, err
	}
	return Item{Card: e.working.Clone(), State: e.state, Dirty: e.dirty()}, nil
}

// at must be called with mu held.
func (b *Board) at(i int) (*entry, error) {
	if i < 0 || i >= len(b.entries) {
		return nil, fmt.Errorf("%w: #%d", ErrNoCard, i+1)
	}
	return b.entries[i], nil
}

func checkSlot(slot int) error {
	if slot < 0 || slot >= common.TodoSlots {
		return fmt.Errorf("%w: slot must be between 1 and %d", common.ErrValidation, common.TodoSlots)
	}
	return nil
}

// edit applies fn to the working copy of card i.
func (b *Board) edit(i int, fn func(c *models.Card)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, err := b.at(i)
	if err != nil {
		return err
	}
	fn(&e.working)
	return nil
}

func (b *Board) EditTitle(i int, title string) error {
	return b.edit(i, func(c *models.Card) { c.Title = title })
}

func (b *Board) EditTodo(i, slot int, content string) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	return b.edit(i, func(c *models.Card) { c.Todos[slot].Content = content })
}

// ToggleTodo flips the completion of one slot and saves the card at once.
func (b *Board) ToggleTodo(ctx context.Context, i, slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if err := b.edit(i, func(c *models.Card) { c.Todos[slot].Completed = !c.Todos[slot].Completed }); err != nil {
		return err
	}
	return b.Save(ctx, i)
}

// mutate runs one optimistic remote call for card i. The working copy is
// snapshotted and marked Pending. On success the returned apply is run on the
// confirmed card, and on the working copy unless it was edited meanwhile. On
// failure the confirmed card is restored and the sink is told.
func (b *Board) mutate(ctx context.Context, i int, op string, call func(ctx context.Context, snapshot models.Card) (func(c *models.Card), error)) error {
	b.mu.Lock()
	e, err := b.at(i)
	if err != nil {
		b.mu.Unlock()
		return err
	}
	snapshot := e.working.Clone()
	e.state = Pending
	b.mu.Unlock()

	apply, err := call(ctx, snapshot)

	b.mu.Lock()
	if err != nil {
		e.working = e.good.Clone()
		e.state = RolledBack
		b.mu.Unlock()

		return b.report(op, snapshot.Title, err)
	}
	defer b.mu.Unlock()

	untouched := e.working.Title == snapshot.Title && e.working.Todos == snapshot.Todos && slices.Equal(e.working.Labels, snapshot.Labels)
	apply(&e.good)
	if untouched {
		apply(&e.working)
	}
	e.state = Committed
	return nil
}

// Save pushes the working copy of card i. A clean card is not sent.
func (b *Board) Save(ctx context.Context, i int) error {
	b.mu.Lock()
	e, err := b.at(i)
	if err == nil && !e.dirty() {
		b.mu.Unlock()
		return nil
	}
	b.mu.Unlock()
	if err != nil {
		return err
	}

	return b.mutate(ctx, i, "save", func(ctx context.Context, snapshot models.Card) (func(*models.Card), error) {
		if err := b.remote.UpdateCard(ctx, snapshot); err != nil {
			return nil, err
		}
		return func(c *models.Card) { *c = snapshot.Clone() }, nil
	})
}

// SetLabels replaces the labels of card i with names. Title and todo edits
// stay local.
func (b *Board) SetLabels(ctx context.Context, i int, names []string) error {
	if err := b.edit(i, func(c *models.Card) { c.Labels = slices.Clone(names) }); err != nil {
		return err
	}

	return b.mutate(ctx, i, "label", func(ctx context.Context, snapshot models.Card) (func(*models.Card), error) {
		stored, err := b.remote.SetLabels(ctx, snapshot.ID, snapshot.Labels)
		if err != nil {
			return nil, err
		}
		return func(c *models.Card) { c.Labels = slices.Clone(stored) }, nil
	})
}

// Add creates a card remotely and appends the server's copy. It returns the
// new card's index.
func (b *Board) Add(ctx context.Context, draft *models.Draft) (int, error) {
	id, err := b.remote.CreateCard(ctx, draft)
	if err != nil {
		return -1, b.report("create", "", err)
	}

	card, err := b.remote.GetCard(ctx, id)
	if err != nil {
		return -1, b.report("fetch new card", id, err)
	}

	e := newEntry(card)
	e.state = Committed

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
	return len(b.entries) - 1, nil
}

// Delete removes card i at once and puts it back if the server refuses.
func (b *Board) Delete(ctx context.Context, i int) error {
	b.mu.Lock()
	e, err := b.at(i)
	if err != nil {
		b.mu.Unlock()
		return err
	}
	b.entries = slices.Delete(b.entries, i, i+1)
	b.mu.Unlock()

	if err := b.remote.DeleteCard(ctx, e.good.ID); err != nil {
		b.mu.Lock()
		e.state = RolledBack
		b.entries = slices.Insert(b.entries, min(i, len(b.entries)), e)
		b.mu.Unlock()

		return b.report("delete", e.good.Title, err)
	}
	return nil
}
