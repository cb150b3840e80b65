package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/todocards/internal/common"
)

type Todo struct {
	Content   string
	Completed bool
}

// Slate is the fixed set of todo slots of a card, indexed by slot.
type Slate [common.TodoSlots]Todo

type Card struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
	Todos     Slate
	Labels    []Label
}

// TodoRow is a todos table row as stored.
type TodoRow struct {
	ID          int64
	CardID      string
	Slot        int
	Content     string
	CompletedAt *time.Time
}

func (r TodoRow) Todo() Todo {
	return Todo{Content: r.Content, Completed: r.CompletedAt != nil}
}

// CardDraft is the optional payload of card creation. Todos may hold fewer
// than common.TodoSlots contents; the remaining slots start empty.
type CardDraft struct {
	Title string
	Todos []string
}

// NewSlate requires exactly common.TodoSlots todos.
func NewSlate(todos []Todo) (Slate, error) {
	var s Slate
	if len(todos) != len(s) {
		return s, fmt.Errorf("%w: todos must contain exactly %d items, got %d", common.ErrValidation, len(s), len(todos))
	}
	copy(s[:], todos)
	return s, nil
}
