package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/todocards/internal/client/board"
	"github.com/dmitrijs2005/todocards/internal/client/client"
	"github.com/dmitrijs2005/todocards/internal/client/config"
	"github.com/dmitrijs2005/todocards/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/todocards/internal/client/services"
	"github.com/dmitrijs2005/todocards/internal/common"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	client  client.Client
	session *services.SessionService
	board   *board.Board
	in      io.Reader
	out     io.Writer

	mu   sync.Mutex
	mode Mode
}

func newClient(c *config.Config) (client.Client, error) {
	switch c.Transport {
	case config.TransportGRPC:
		return client.NewGRPCClient(c.GRPCAddr, c.RequestTimeout)
	default:
		return client.NewHTTPClient(c.ServerURL, c.RequestTimeout), nil
	}
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := newClient(c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(c, apiClient, metadata.NewSQLiteRepository(db), os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, apiClient client.Client, meta metadata.Repository, in io.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		client:  apiClient,
		session: services.NewSessionService(apiClient, meta),
		in:      in,
		out:     out,
		mode:    ModeOnline,
	}
	a.board = board.New(apiClient, a.alert)
	return a
}

// alert is the board's error sink.
func (a *App) alert(err error) {
	fmt.Fprintf(a.out, "! %v (local changes rolled back)\n", err)
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode == mode {
		return false
	}
	a.mode = mode
	log.Printf("Switched to %s mode\n", mode)
	return true
}

// start restores the session and loads the board. A token the server no
// longer accepts is replaced by a fresh signup. An unreachable server leaves
// an empty board in offline mode.
func (a *App) start(ctx context.Context) error {
	reused, err := a.session.Start(ctx)
	if err != nil {
		return err
	}

	err = a.board.Load(ctx)
	if err != nil && reused {
		recovered, rerr := a.session.Recover(ctx, err)
		if rerr != nil {
			return rerr
		}
		if recovered {
			fmt.Fprintln(a.out, "Stored token was rejected, started a new session")
			err = a.board.Load(ctx)
		}
	}
	if errors.Is(err, common.ErrUnavailable) {
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Server unavailable, use 'reload' once it is back")
		return nil
	}
	return err
}

func (a *App) Run(ctx context.Context) error {
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.start(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Welcome to todocards (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.status, a.in, a.out)
	return nil
}

func (a *App) close() {
	if err := a.client.Close(); err != nil {
		log.Printf("client close error: %v", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}
}

func (a *App) status() string {
	return fmt.Sprintf("(%s)", a.Mode())
}

// checkOnline pings the server once and reloads a clean board when the
// server comes back.
func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.client.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	if a.setMode(ModeOnline) {
		if _, err := a.board.ReloadIfClean(ctx); err != nil {
			log.Printf("reload error: %v", err)
		}
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
