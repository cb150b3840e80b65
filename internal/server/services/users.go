// Package services holds the server business logic: identity, the card
// store with its ownership guard, the label resolver and exports.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todocards/internal/common"
	"github.com/dmitrijs2005/todocards/internal/server/auth"
	"github.com/dmitrijs2005/todocards/internal/server/config"
	"github.com/dmitrijs2005/todocards/internal/server/models"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// UserService creates anonymous users and validates their bearer tokens.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	tokenTTL    time.Duration
	newID       func() string
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		tokenTTL:    cfg.TokenTTL,
		newID:       uuid.NewString,
	}
}

// Signup stores a fresh user id and returns a token bound to it.
func (s *UserService) Signup(ctx context.Context) (string, error) {
	user, err := s.repomanager.Users(s.db).Create(ctx, &models.User{ID: s.newID()})
	if err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInternal, err)
	}
	return token, nil
}

// Authenticate returns the user id carried by token. Every failure matches
// common.ErrUnauthenticated; expired tokens also match common.ErrTokenExpired.
func (s *UserService) Authenticate(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: missing token", common.ErrUnauthenticated)
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUnauthenticated, err)
	}
	return userID, nil
}
