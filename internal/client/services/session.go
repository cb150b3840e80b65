// Package services contains application services for the todocards client.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todocards/internal/client/client"
	"github.com/dmitrijs2005/todocards/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/todocards/internal/common"
)

// TokenKey is the metadata key the access token is stored under.
const TokenKey = "access_token"

// SessionService keeps the anonymous identity of this installation: one
// token, obtained by signup on first start and reused afterwards.
type SessionService struct {
	client client.Client
	meta   metadata.Repository
}

func NewSessionService(c client.Client, meta metadata.Repository) *SessionService {
	return &SessionService{client: c, meta: meta}
}

// Start loads the stored token into the client, signing up first when none
// is stored. It reports whether an existing token was reused.
func (s *SessionService) Start(ctx context.Context) (bool, error) {
	token, ok, err := s.meta.Get(ctx, TokenKey)
	if err != nil {
		return false, fmt.Errorf("load token: %w", err)
	}
	if ok && token != "" {
		s.client.SetToken(token)
		return true, nil
	}
	return false, s.signup(ctx)
}

// Reset forgets the stored token and signs up again. Cards owned by the old
// identity become unreachable from this client.
func (s *SessionService) Reset(ctx context.Context) error {
	if err := s.meta.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("drop token: %w", err)
	}
	s.client.SetToken("")
	return s.signup(ctx)
}

// Recover resets the session when err says the stored token was rejected.
// It reports whether a reset happened.
func (s *SessionService) Recover(ctx context.Context, err error) (bool, error) {
	if !errors.Is(err, common.ErrUnauthenticated) {
		return false, nil
	}
	if err := s.Reset(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SessionService) signup(ctx context.Context) error {
	token, err := s.client.Signup(ctx)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	if err := s.meta.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	s.client.SetToken(token)
	return nil
}
