package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/todocards/internal/client/board"
	"golang.org/x/term"
)

const defaultWidth = 80

// getTermSize is a test seam for term.GetSize.
var getTermSize = term.GetSize

func termWidth() int {
	w, _, err := getTermSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// clip shortens s to at most width runes, marking the cut with "...".
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// renderItem prints card i and its non-empty slots, fitting each line into
// width columns.
func renderItem(w io.Writer, i int, it board.Item, width int) {
	header := fmt.Sprintf("#%d %s", i+1, it.Card.Title)
	if it.Card.Title == "" {
		header = fmt.Sprintf("#%d (untitled)", i+1)
	}
	if len(it.Card.Labels) > 0 {
		header += " [" + strings.Join(it.Card.Labels, ", ") + "]"
	}
	switch {
	case it.Dirty:
		header += " *unsaved*"
	case it.State == board.RolledBack:
		header += " (rolled back)"
	}
	fmt.Fprintln(w, clip(header, width))

	for slot, t := range it.Card.Todos {
		if t.Content == "" && !t.Completed {
			continue
		}
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		fmt.Fprintln(w, clip(fmt.Sprintf("  %2d %s %s", slot+1, box, t.Content), width))
	}
}
