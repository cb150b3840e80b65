package client

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/todocards/internal/client/models"
	"github.com/dmitrijs2005/todocards/internal/common"
	pb "github.com/dmitrijs2005/todocards/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.CardServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	s.mu.RLock()
	token := s.accessToken
	s.mu.RUnlock()

	if token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewCardServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Signup(ctx context.Context) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Signup(ctx, &emptypb.Empty{})
	if err != nil {
		return "", mapGRPCError(err)
	}
	return resp.GetValue(), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.Ping(ctx, &emptypb.Empty{})
	return mapGRPCError(err)
}

func (s *GRPCClient) ListCards(ctx context.Context) ([]models.Card, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListCards(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, mapGRPCError(err)
	}

	var wire []pb.Card
	if err := pb.FromList(resp, &wire); err != nil {
		return nil, err
	}
	return fromWireList(wire)
}

func (s *GRPCClient) CreateCard(ctx context.Context, draft *models.Draft) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	in := &structpb.Struct{}
	if draft != nil {
		var err error
		if in, err = pb.ToStruct(pb.CardDraft{Title: draft.Title, Todos: draft.Todos}); err != nil {
			return "", err
		}
	}

	resp, err := s.client.CreateCard(ctx, in)
	if err != nil {
		return "", mapGRPCError(err)
	}
	return resp.GetValue(), nil
}

func (s *GRPCClient) GetCard(ctx context.Context, id string) (models.Card, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetCard(ctx, wrapperspb.String(id))
	if err != nil {
		return models.Card{}, mapGRPCError(err)
	}

	var wire pb.Card
	if err := pb.FromStruct(resp, &wire); err != nil {
		return models.Card{}, err
	}
	return fromWire(wire)
}

func (s *GRPCClient) UpdateCard(ctx context.Context, card models.Card) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	in, err := pb.ToStruct(toWireUpdate(card))
	if err != nil {
		return err
	}

	_, err = s.client.UpdateCard(ctx, in)
	return mapGRPCError(err)
}

func (s *GRPCClient) DeleteCard(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.DeleteCard(ctx, wrapperspb.String(id))
	return mapGRPCError(err)
}

func (s *GRPCClient) SetLabels(ctx context.Context, id string, names []string) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	in, err := pb.ToStruct(pb.LabelsRequest{ID: id, Labels: names})
	if err != nil {
		return nil, err
	}

	resp, err := s.client.SetLabels(ctx, in)
	if err != nil {
		return nil, mapGRPCError(err)
	}

	var out pb.LabelsResponse
	if err := pb.FromStruct(resp, &out); err != nil {
		return nil, err
	}
	return labelNames(out.Labels), nil
}

func (s *GRPCClient) Export(ctx context.Context) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Export(ctx, &emptypb.Empty{})
	if err != nil {
		return "", mapGRPCError(err)
	}
	return resp.GetValue(), nil
}
