// Package grpc serves the card store over todocards.v1.CardService.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/todocards/internal/logging"
	pb "github.com/dmitrijs2005/todocards/internal/proto"
	"github.com/dmitrijs2005/todocards/internal/server/models"
	"google.golang.org/grpc"
)

type userSvc interface {
	Signup(ctx context.Context) (string, error)
	Authenticate(ctx context.Context, token string) (string, error)
}

type cardSvc interface {
	CreateCard(ctx context.Context, userID string, draft *models.CardDraft) (*models.Card, error)
	ListCards(ctx context.Context, userID string) ([]*models.Card, error)
	GetCard(ctx context.Context, cardID, userID string) (*models.Card, error)
	UpdateCard(ctx context.Context, cardID, userID, title string, todos models.Slate) error
	DeleteCard(ctx context.Context, cardID, userID string) error
	SetLabels(ctx context.Context, cardID, userID string, names []string) ([]models.Label, error)
}

type exportSvc interface {
	Export(ctx context.Context, userID string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedCardServiceServer
	address string
	users   userSvc
	cards   cardSvc
	exports exportSvc
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, cs cardSvc, es exportSvc) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		cards:   cs,
		exports: es,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, lis)
}

func (s *GRPCServer) serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	pb.RegisterCardServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
