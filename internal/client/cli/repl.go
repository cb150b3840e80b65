package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/todocards/internal/client/board"
)

const helpText = `Available commands:
  list                      show all cards
  new [title]               create a card
  title <n> <text>          rename card n (local until save)
  edit <n> <slot> [text]    set a todo of card n (local until save)
  check <n> <slot>          toggle a todo and save
  save <n>                  push local edits of card n
  delete <n>                delete card n
  labels <n> [names...]     replace the labels of card n
  export                    export all cards to a download link
  reload                    fetch the board from the server
  exit                      leave the program`

// commander is the command surface the REPL dispatches to. App satisfies
// it; tests can provide a lightweight stub.
type commander interface {
	List(ctx context.Context) error
	New(ctx context.Context, args []string) error
	Title(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Check(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Labels(ctx context.Context, args []string) error
	Export(ctx context.Context) error
	Reload(ctx context.Context) error
}

// report prints err unless the board already alerted about it.
func report(out io.Writer, err error) {
	if err == nil {
		return
	}
	var re *board.RemoteError
	if errors.As(err, &re) {
		return
	}
	fmt.Fprintf(out, "error: %v\n", err)
}

// runREPL reads commands line by line until EOF, "exit" or "quit", or until
// ctx is cancelled between commands.
func runREPL(ctx context.Context, c commander, statusFn func() string, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "todo %s> ", statusFn())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			fmt.Fprintln(out, helpText)
		case "l", "list":
			err = c.List(ctx)
		case "new":
			err = c.New(ctx, args)
		case "title":
			err = c.Title(ctx, args)
		case "edit":
			err = c.Edit(ctx, args)
		case "check":
			err = c.Check(ctx, args)
		case "save":
			err = c.Save(ctx, args)
		case "delete":
			err = c.Delete(ctx, args)
		case "labels":
			err = c.Labels(ctx, args)
		case "export":
			err = c.Export(ctx)
		case "reload":
			err = c.Reload(ctx)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
		report(out, err)
	}
}
