package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/todocards/internal/client/models"
)

var errUsage = errors.New("usage")

func usage(form string) error {
	return fmt.Errorf("%w: %s", errUsage, form)
}

// number parses a 1-based position and returns it 0-based.
func number(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", what, s)
	}
	return n - 1, nil
}

func (a *App) List(ctx context.Context) error {
	items := a.board.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No cards yet, create one with 'new'")
		return nil
	}
	width := termWidth()
	for i, it := range items {
		renderItem(a.out, i, it, width)
	}
	return nil
}

func (a *App) New(ctx context.Context, args []string) error {
	var draft *models.Draft
	if len(args) > 0 {
		draft = &models.Draft{Title: strings.Join(args, " ")}
	}

	i, err := a.board.Add(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created card #%d\n", i+1)
	return nil
}

func (a *App) Title(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return usage("title <n> <text>")
	}
	i, err := number(args[0], "card")
	if err != nil {
		return err
	}
	if err := a.board.EditTitle(i, strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Card #%d edited, 'save %d' to push\n", i+1, i+1)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("edit <n> <slot> [text]")
	}
	i, err := number(args[0], "card")
	if err != nil {
		return err
	}
	slot, err := number(args[1], "slot")
	if err != nil {
		return err
	}
	if err := a.board.EditTodo(i, slot, strings.Join(args[2:], " ")); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Card #%d edited, 'save %d' to push\n", i+1, i+1)
	return nil
}

func (a *App) Check(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("check <n> <slot>")
	}
	i, err := number(args[0], "card")
	if err != nil {
		return err
	}
	slot, err := number(args[1], "slot")
	if err != nil {
		return err
	}
	return a.board.ToggleTodo(ctx, i, slot)
}

func (a *App) Save(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("save <n>")
	}
	i, err := number(args[0], "card")
	if err != nil {
		return err
	}
	if err := a.board.Save(ctx, i); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Card #%d saved\n", i+1)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete <n>")
	}
	i, err := number(args[0], "card")
	if err != nil {
		return err
	}
	if err := a.board.Delete(ctx, i); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Card #%d deleted\n", i+1)
	return nil
}

func (a *App) Labels(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return usage("labels <n> [names...]")
	}
	i, err := number(args[0], "card")
	if err != nil {
		return err
	}
	if err := a.board.SetLabels(ctx, i, args[1:]); err != nil {
		return err
	}
	item, err := a.board.Item(i)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Card #%d labels: %s\n", i+1, strings.Join(item.Card.Labels, ", "))
	return nil
}

func (a *App) Export(ctx context.Context) error {
	url, err := a.client.Export(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Export ready:", url)
	return nil
}

func (a *App) Reload(ctx context.Context) error {
	if err := a.board.Load(ctx); err != nil {
		return err
	}
	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Loaded %d cards\n", a.board.Len())
	return nil
}
