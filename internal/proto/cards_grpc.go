// Package proto describes the todocards.v1.CardService gRPC service. Payloads
// are protobuf well-known types so no generated message code is needed.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "todocards.v1.CardService"

const (
	MethodSignup     = "Signup"
	MethodPing       = "Ping"
	MethodListCards  = "ListCards"
	MethodCreateCard = "CreateCard"
	MethodGetCard    = "GetCard"
	MethodUpdateCard = "UpdateCard"
	MethodDeleteCard = "DeleteCard"
	MethodSetLabels  = "SetLabels"
	MethodExport     = "Export"
)

// FullMethod returns the "/service/method" name used by interceptors.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type CardServiceServer interface {
	Signup(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	ListCards(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	CreateCard(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	GetCard(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	UpdateCard(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	DeleteCard(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	SetLabels(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Export(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

type CardServiceClient interface {
	Signup(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ListCards(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	CreateCard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	GetCard(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateCard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteCard(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SetLabels(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Export(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

// UnimplementedCardServiceServer answers every call with codes.Unimplemented.
type UnimplementedCardServiceServer struct{}

func (UnimplementedCardServiceServer) Signup(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, unimplemented(MethodSignup)
}
func (UnimplementedCardServiceServer) Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, unimplemented(MethodPing)
}
func (UnimplementedCardServiceServer) ListCards(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, unimplemented(MethodListCards)
}
func (UnimplementedCardServiceServer) CreateCard(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, unimplemented(MethodCreateCard)
}
func (UnimplementedCardServiceServer) GetCard(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, unimplemented(MethodGetCard)
}
func (UnimplementedCardServiceServer) UpdateCard(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, unimplemented(MethodUpdateCard)
}
func (UnimplementedCardServiceServer) DeleteCard(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, unimplemented(MethodDeleteCard)
}
func (UnimplementedCardServiceServer) SetLabels(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodSetLabels)
}
func (UnimplementedCardServiceServer) Export(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, unimplemented(MethodExport)
}

func newEmpty() *emptypb.Empty                { return &emptypb.Empty{} }
func newStruct() *structpb.Struct             { return &structpb.Struct{} }
func newStringValue() *wrapperspb.StringValue { return &wrapperspb.StringValue{} }

// unaryHandler adapts a typed server method to grpc.MethodDesc.
func unaryHandler[Req, Resp proto.Message](method string, newReq func() Req, call func(CardServiceServer, context.Context, Req) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CardServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CardServiceServer), ctx, req.(Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var CardService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodSignup, newEmpty, CardServiceServer.Signup),
		unaryHandler(MethodPing, newEmpty, CardServiceServer.Ping),
		unaryHandler(MethodListCards, newEmpty, CardServiceServer.ListCards),
		unaryHandler(MethodCreateCard, newStruct, CardServiceServer.CreateCard),
		unaryHandler(MethodGetCard, newStringValue, CardServiceServer.GetCard),
		unaryHandler(MethodUpdateCard, newStruct, CardServiceServer.UpdateCard),
		unaryHandler(MethodDeleteCard, newStringValue, CardServiceServer.DeleteCard),
		unaryHandler(MethodSetLabels, newStruct, CardServiceServer.SetLabels),
		unaryHandler(MethodExport, newEmpty, CardServiceServer.Export),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "todocards/v1/cards.proto",
}

func RegisterCardServiceServer(s grpc.ServiceRegistrar, srv CardServiceServer) {
	s.RegisterService(&CardService_ServiceDesc, srv)
}

type cardServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCardServiceClient(cc grpc.ClientConnInterface) CardServiceClient {
	return &cardServiceClient{cc: cc}
}

func invoke[Resp proto.Message](ctx context.Context, cc grpc.ClientConnInterface, method string, in proto.Message, out Resp, opts []grpc.CallOption) (Resp, error) {
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		var zero Resp
		return zero, err
	}
	return out, nil
}

func (c *cardServiceClient) Signup(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke(ctx, c.cc, MethodSignup, in, newStringValue(), opts)
}

func (c *cardServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke(ctx, c.cc, MethodPing, in, newEmpty(), opts)
}

func (c *cardServiceClient) ListCards(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke(ctx, c.cc, MethodListCards, in, &structpb.ListValue{}, opts)
}

func (c *cardServiceClient) CreateCard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke(ctx, c.cc, MethodCreateCard, in, newStringValue(), opts)
}

func (c *cardServiceClient) GetCard(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, MethodGetCard, in, newStruct(), opts)
}

func (c *cardServiceClient) UpdateCard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke(ctx, c.cc, MethodUpdateCard, in, newEmpty(), opts)
}

func (c *cardServiceClient) DeleteCard(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke(ctx, c.cc, MethodDeleteCard, in, newEmpty(), opts)
}

func (c *cardServiceClient) SetLabels(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, MethodSetLabels, in, newStruct(), opts)
}

func (c *cardServiceClient) Export(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke(ctx, c.cc, MethodExport, in, newStringValue(), opts)
}
