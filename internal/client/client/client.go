package client

import (
	"context"

	"github.com/dmitrijs2005/todocards/internal/client/models"
)

type Client interface {
	Close() error
	SetToken(token string)
	Signup(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
	ListCards(ctx context.Context) ([]models.Card, error)
	CreateCard(ctx context.Context, draft *models.Draft) (string, error)
	GetCard(ctx context.Context, id string) (models.Card, error)
	UpdateCard(ctx context.Context, card models.Card) error
	DeleteCard(ctx context.Context, id string) error
	SetLabels(ctx context.Context, id string, names []string) ([]string, error)
	Export(ctx context.Context) (string, error)
}
