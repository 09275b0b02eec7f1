package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/special-api/internal/errors"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "special.api.v1alpha1.ActorService"

// Full method names
const (
	MethodCreateActor        = "/" + ServiceName + "/CreateActor"
	MethodGetActor           = "/" + ServiceName + "/GetActor"
	MethodListActors         = "/" + ServiceName + "/ListActors"
	MethodUpdateRuleElements = "/" + ServiceName + "/UpdateRuleElements"
	MethodUpdateResource     = "/" + ServiceName + "/UpdateResource"
	MethodDeleteActor        = "/" + ServiceName + "/DeleteActor"
)

// ActorServiceServer is the server API for the actor service
type ActorServiceServer interface {
	CreateActor(context.Context, *CreateActorRequest) (*CreateActorResponse, error)
	GetActor(context.Context, *GetActorRequest) (*GetActorResponse, error)
	ListActors(context.Context, *ListActorsRequest) (*ListActorsResponse, error)
	UpdateRuleElements(context.Context, *UpdateRuleElementsRequest) (*UpdateRuleElementsResponse, error)
	UpdateResource(context.Context, *UpdateResourceRequest) (*UpdateResourceResponse, error)
	DeleteActor(context.Context, *DeleteActorRequest) (*DeleteActorResponse, error)
}

func unimplemented(method string) error {
	return errors.ToGRPCError(errors.Unimplementedf("method %s not implemented", method))
}

// UnimplementedActorServiceServer can be embedded for forward compatibility
type UnimplementedActorServiceServer struct{}

func (UnimplementedActorServiceServer) CreateActor(context.Context, *CreateActorRequest) (*CreateActorResponse, error) {
	return nil, unimplemented("CreateActor")
}

func (UnimplementedActorServiceServer) GetActor(context.Context, *GetActorRequest) (*GetActorResponse, error) {
	return nil, unimplemented("GetActor")
}

func (UnimplementedActorServiceServer) ListActors(context.Context, *ListActorsRequest) (*ListActorsResponse, error) {
	return nil, unimplemented("ListActors")
}

func (UnimplementedActorServiceServer) UpdateRuleElements(
	context.Context,
	*UpdateRuleElementsRequest,
) (*UpdateRuleElementsResponse, error) {
	return nil, unimplemented("UpdateRuleElements")
}

func (UnimplementedActorServiceServer) UpdateResource(
	context.Context,
	*UpdateResourceRequest,
) (*UpdateResourceResponse, error) {
	return nil, unimplemented("UpdateResource")
}

func (UnimplementedActorServiceServer) DeleteActor(context.Context, *DeleteActorRequest) (*DeleteActorResponse, error) {
	return nil, unimplemented("DeleteActor")
}

// RegisterActorServiceServer registers srv on s
func RegisterActorServiceServer(s grpc.ServiceRegistrar, srv ActorServiceServer) {
	s.RegisterService(&ActorServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc's untyped handler signature.
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(ActorServiceServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ActorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ActorServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ActorServiceDesc describes the actor service
var ActorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ActorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateActor", Handler: unaryHandler(MethodCreateActor, ActorServiceServer.CreateActor)},
		{MethodName: "GetActor", Handler: unaryHandler(MethodGetActor, ActorServiceServer.GetActor)},
		{MethodName: "ListActors", Handler: unaryHandler(MethodListActors, ActorServiceServer.ListActors)},
		{MethodName: "UpdateRuleElements", Handler: unaryHandler(MethodUpdateRuleElements, ActorServiceServer.UpdateRuleElements)},
		{MethodName: "UpdateResource", Handler: unaryHandler(MethodUpdateResource, ActorServiceServer.UpdateResource)},
		{MethodName: "DeleteActor", Handler: unaryHandler(MethodDeleteActor, ActorServiceServer.DeleteActor)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "special/api/v1alpha1/actor.json",
}

// ActorServiceClient is the client API for the actor service
type ActorServiceClient interface {
	CreateActor(ctx context.Context, in *CreateActorRequest, opts ...grpc.CallOption) (*CreateActorResponse, error)
	GetActor(ctx context.Context, in *GetActorRequest, opts ...grpc.CallOption) (*GetActorResponse, error)
	ListActors(ctx context.Context, in *ListActorsRequest, opts ...grpc.CallOption) (*ListActorsResponse, error)
	UpdateRuleElements(
		ctx context.Context,
		in *UpdateRuleElementsRequest,
		opts ...grpc.CallOption,
	) (*UpdateRuleElementsResponse, error)
	UpdateResource(ctx context.Context, in *UpdateResourceRequest, opts ...grpc.CallOption) (*UpdateResourceResponse, error)
	DeleteActor(ctx context.Context, in *DeleteActorRequest, opts ...grpc.CallOption) (*DeleteActorResponse, error)
}

type actorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewActorServiceClient creates a client that speaks the JSON codec
func NewActorServiceClient(cc grpc.ClientConnInterface) ActorServiceClient {
	return &actorServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *actorServiceClient) CreateActor(
	ctx context.Context,
	in *CreateActorRequest,
	opts ...grpc.CallOption,
) (*CreateActorResponse, error) {
	return invoke[CreateActorResponse](ctx, c.cc, MethodCreateActor, in, opts)
}

func (c *actorServiceClient) GetActor(
	ctx context.Context,
	in *GetActorRequest,
	opts ...grpc.CallOption,
) (*GetActorResponse, error) {
	return invoke[GetActorResponse](ctx, c.cc, MethodGetActor, in, opts)
}

func (c *actorServiceClient) ListActors(
	ctx context.Context,
	in *ListActorsRequest,
	opts ...grpc.CallOption,
) (*ListActorsResponse, error) {
	return invoke[ListActorsResponse](ctx, c.cc, MethodListActors, in, opts)
}

func (c *actorServiceClient) UpdateRuleElements(
	ctx context.Context,
	in *UpdateRuleElementsRequest,
	opts ...grpc.CallOption,
) (*UpdateRuleElementsResponse, error) {
	return invoke[UpdateRuleElementsResponse](ctx, c.cc, MethodUpdateRuleElements, in, opts)
}

func (c *actorServiceClient) UpdateResource(
	ctx context.Context,
	in *UpdateResourceRequest,
	opts ...grpc.CallOption,
) (*UpdateResourceResponse, error) {
	return invoke[UpdateResourceResponse](ctx, c.cc, MethodUpdateResource, in, opts)
}

func (c *actorServiceClient) DeleteActor(
	ctx context.Context,
	in *DeleteActorRequest,
	opts ...grpc.CallOption,
) (*DeleteActorResponse, error) {
	return invoke[DeleteActorResponse](ctx, c.cc, MethodDeleteActor, in, opts)
}
