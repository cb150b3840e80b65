package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dmitrijs2005/todocards/internal/client/board"
	"github.com/dmitrijs2005/todocards/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestClip(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abcdef", 3, "abc"},
		{"žluťoučký kůň", 8, "žluťo..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clip(tt.in, tt.width))
	}
}

func TestTermWidth_Fallback(t *testing.T) {
	prev := getTermSize
	t.Cleanup(func() { getTermSize = prev })

	getTermSize = func(int) (int, int, error) { return 0, 0, errors.New("no tty") }
	assert.Equal(t, defaultWidth, termWidth())

	getTermSize = func(int) (int, int, error) { return 120, 40, nil }
	assert.Equal(t, 120, termWidth())
}

func TestRenderItem(t *testing.T) {
	c := models.Card{Title: "groceries", Labels: []string{"home"}}
	c.Todos[0] = models.Todo{Content: "milk"}
	c.Todos[3] = models.Todo{Content: "eggs", Completed: true}

	var buf bytes.Buffer
	renderItem(&buf, 1, board.Item{Card: c, State: board.RolledBack}, 80)

	want := "#2 groceries [home] (rolled back)\n" +
		"   1 [ ] milk\n" +
		"   4 [x] eggs\n"
	assert.Equal(t, want, buf.String())
}
