// Package reconcile converts between the flat todo rows kept in storage and
// the fixed per-card slates seen by clients. It is pure: no I/O, no clock.
package reconcile

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/todocards/internal/common"
	"github.com/dmitrijs2005/todocards/internal/server/models"
)

// Rows holds the stored rows of one card, indexed by slot.
type Rows [common.TodoSlots]models.TodoRow

// Slate drops the storage details.
func (r Rows) Slate() models.Slate {
	var s models.Slate
	for i, row := range r {
		s[i] = row.Todo()
	}
	return s
}

// Group sorts rows by (card id, slot) and returns the slot-indexed rows of
// every card in cardIDs, in the same order. A card without exactly one row
// per slot, or a row of a card not in cardIDs, is reported as
// common.ErrCorruptSlate naming the card.
func Group(cardIDs []string, rows []models.TodoRow) ([]Rows, error) {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b models.TodoRow) int {
		if c := cmp.Compare(a.CardID, b.CardID); c != 0 {
			return c
		}
		return cmp.Compare(a.Slot, b.Slot)
	})

	byCard := make(map[string][]models.TodoRow, len(cardIDs))
	for _, id := range cardIDs {
		byCard[id] = nil
	}
	for _, row := range sorted {
		if _, ok := byCard[row.CardID]; !ok {
			return nil, fmt.Errorf("%w: row %d belongs to unexpected card %s", common.ErrCorruptSlate, row.ID, row.CardID)
		}
		byCard[row.CardID] = append(byCard[row.CardID], row)
	}

	result := make([]Rows, len(cardIDs))
	for i, id := range cardIDs {
		cardRows := byCard[id]
		if len(cardRows) != common.TodoSlots {
			return nil, fmt.Errorf("%w: card %s has %d todo rows, want %d", common.ErrCorruptSlate, id, len(cardRows), common.TodoSlots)
		}
		for slot, row := range cardRows {
			if row.Slot != slot {
				return nil, fmt.Errorf("%w: card %s has row %d at slot %d, want slot %d", common.ErrCorruptSlate, id, row.ID, row.Slot, slot)
			}
			result[i][slot] = row
		}
	}
	return result, nil
}

// Update is a single row rewrite produced by Diff.
type Update struct {
	RowID     int64
	Slot      int
	Content   string
	Completed bool
}

// Diff returns one Update per slot whose content or completed state differs
// from the stored row, in slot order. Completion is compared by presence of
// the stored timestamp, never by its value.
func Diff(stored Rows, submitted models.Slate) []Update {
	var updates []Update
	for slot, row := range stored {
		want := submitted[slot]
		if row.Content == want.Content && (row.CompletedAt != nil) == want.Completed {
			continue
		}
		updates = append(updates, Update{
			RowID:     row.ID,
			Slot:      slot,
			Content:   want.Content,
			Completed: want.Completed,
		})
	}
	return updates
}
