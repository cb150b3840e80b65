package grpc

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todocards/internal/common"
	pb "github.com/dmitrijs2005/todocards/internal/proto"
	"github.com/dmitrijs2005/todocards/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func toWireCard(c *models.Card) pb.Card {
	w := pb.Card{
		ID:     c.ID,
		Title:  c.Title,
		Todos:  make([]pb.Todo, len(c.Todos)),
		Labels: models.LabelNames(c.Labels),
	}
	for i, t := range c.Todos {
		w.Todos[i] = pb.Todo{Content: t.Content, Completed: t.Completed}
	}
	return w
}

func decodeStruct(in *structpb.Struct, v any) error {
	if err := pb.FromStruct(in, v); err != nil {
		return status.Error(codes.InvalidArgument, fmt.Sprintf("malformed request: %v", err))
	}
	return nil
}

func (s *GRPCServer) Signup(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {

	token, err := s.users.Signup(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodSignup, err)
	}

	return wrapperspb.String(token), nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListCards(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.cards.ListCards(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodListCards, err)
	}

	wire := make([]pb.Card, len(cards))
	for i, c := range cards {
		wire[i] = toWireCard(c)
	}

	list, err := pb.ToList(wire)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodListCards, err)
	}
	return list, nil
}

func (s *GRPCServer) CreateCard(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var draft *models.CardDraft
	if len(in.GetFields()) > 0 {
		var req pb.CardDraft
		if err := decodeStruct(in, &req); err != nil {
			return nil, err
		}
		draft = &models.CardDraft{Title: req.Title, Todos: req.Todos}
	}

	card, err := s.cards.CreateCard(ctx, userID, draft)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodCreateCard, err)
	}

	return wrapperspb.String(card.ID), nil
}

func (s *GRPCServer) GetCard(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	card, err := s.cards.GetCard(ctx, in.GetValue(), userID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodGetCard, err)
	}

	out, err := pb.ToStruct(toWireCard(card))
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodGetCard, err)
	}
	return out, nil
}

func (s *GRPCServer) UpdateCard(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var req pb.CardUpdate
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}

	todos := make([]models.Todo, len(req.Todos))
	for i, t := range req.Todos {
		todos[i] = models.Todo{Content: t.Content, Completed: t.Completed}
	}
	slate, err := models.NewSlate(todos)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodUpdateCard, err)
	}

	if err := s.cards.UpdateCard(ctx, req.ID, userID, req.Title, slate); err != nil {
		return nil, s.toStatus(ctx, pb.MethodUpdateCard, err)
	}

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) DeleteCard(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cards.DeleteCard(ctx, in.GetValue(), userID); err != nil {
		return nil, s.toStatus(ctx, pb.MethodDeleteCard, err)
	}

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) SetLabels(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var req pb.LabelsRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	if req.ID == "" {
		return nil, s.toStatus(ctx, pb.MethodSetLabels, fmt.Errorf("%w: card id is required", common.ErrValidation))
	}

	labels, err := s.cards.SetLabels(ctx, req.ID, userID, req.Labels)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodSetLabels, err)
	}

	resp := pb.LabelsResponse{Labels: make([]pb.Label, len(labels))}
	for i, l := range labels {
		resp.Labels[i] = pb.Label{ID: l.ID, Name: l.Name}
	}

	out, err := pb.ToStruct(resp)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodSetLabels, err)
	}
	return out, nil
}

func (s *GRPCServer) Export(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	url, err := s.exports.Export(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodExport, err)
	}

	return wrapperspb.String(url), nil
}
