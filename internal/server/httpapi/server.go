// Package httpapi exposes the card store as a JSON REST API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/todocards/internal/logging"
	"github.com/dmitrijs2005/todocards/internal/server/models"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

type Identity interface {
	Signup(ctx context.Context) (string, error)
	Authenticate(ctx context.Context, token string) (string, error)
}

type Cards interface {
	CreateCard(ctx context.Context, userID string, draft *models.CardDraft) (*models.Card, error)
	ListCards(ctx context.Context, userID string) ([]*models.Card, error)
	GetCard(ctx context.Context, cardID, userID string) (*models.Card, error)
	UpdateCard(ctx context.Context, cardID, userID, title string, todos models.Slate) error
	DeleteCard(ctx context.Context, cardID, userID string) error
	SetLabels(ctx context.Context, cardID, userID string, names []string) ([]models.Label, error)
}

type Exporter interface {
	Export(ctx context.Context, userID string) (string, error)
}

type Server struct {
	address    string
	corsOrigin string
	users      Identity
	cards      Cards
	exports    Exporter
	metrics    *Metrics
	logger     logging.Logger
}

func NewServer(address, corsOrigin string, users Identity, cards Cards, exports Exporter, l logging.Logger) *Server {
	return &Server{
		address:    address,
		corsOrigin: corsOrigin,
		users:      users,
		cards:      cards,
		exports:    exports,
		metrics:    NewMetrics(),
		logger:     l.With("module", "http_server"),
	}
}

// Handler returns the routed API wrapped in the CORS layer.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.metrics.Middleware)

	r.HandleFunc("/ping", s.ping).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/signup", s.signup).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.authMiddleware)
	api.HandleFunc("/cards", s.listCards).Methods(http.MethodGet)
	api.HandleFunc("/cards", s.createCard).Methods(http.MethodPost)
	api.HandleFunc("/cards/{id}", s.getCard).Methods(http.MethodGet)
	api.HandleFunc("/cards/{id}", s.updateCard).Methods(http.MethodPut)
	api.HandleFunc("/cards/{id}", s.deleteCard).Methods(http.MethodDelete)
	api.HandleFunc("/cards/{id}/labels", s.setLabels).Methods(http.MethodPut)
	api.HandleFunc("/export", s.export).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{s.corsOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "starting HTTP server", "addr", s.address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info(ctx, "stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
