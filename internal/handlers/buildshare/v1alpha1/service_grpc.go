package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "buildshare.v1alpha1.BuildService"

// Full method names
const (
	NormalizeBuildMethod = "/" + ServiceName + "/NormalizeBuild"
	SelectItemMethod     = "/" + ServiceName + "/SelectItem"
	SelectEnchantMethod  = "/" + ServiceName + "/SelectEnchant"
	UpdateDetailsMethod  = "/" + ServiceName + "/UpdateDetails"
	ListEnchantsMethod   = "/" + ServiceName + "/ListEnchants"
	SearchItemsMethod    = "/" + ServiceName + "/SearchItems"
	PreviewBuildMethod   = "/" + ServiceName + "/PreviewBuild"
)

// BuildServiceServer is the server API for BuildService.
// Requests and responses are google.protobuf.Struct documents.
type BuildServiceServer interface {
	NormalizeBuild(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectEnchant(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateDetails(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListEnchants(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SearchItems(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PreviewBuild(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterBuildServiceServer registers srv on s
func RegisterBuildServiceServer(s grpc.ServiceRegistrar, srv BuildServiceServer) {
	s.RegisterService(&BuildServiceDesc, srv)
}

type unaryCall func(BuildServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts a server method to a grpc.MethodHandler
func unaryHandler(fullMethod string, call unaryCall) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BuildServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(BuildServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BuildServiceDesc is the grpc.ServiceDesc for BuildService.
// Every method exchanges google.protobuf.Struct documents, so the service has
// no .proto of its own and Metadata is left empty.
var BuildServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BuildServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "NormalizeBuild", Handler: unaryHandler(NormalizeBuildMethod, BuildServiceServer.NormalizeBuild)},
		{MethodName: "SelectItem", Handler: unaryHandler(SelectItemMethod, BuildServiceServer.SelectItem)},
		{MethodName: "SelectEnchant", Handler: unaryHandler(SelectEnchantMethod, BuildServiceServer.SelectEnchant)},
		{MethodName: "UpdateDetails", Handler: unaryHandler(UpdateDetailsMethod, BuildServiceServer.UpdateDetails)},
		{MethodName: "ListEnchants", Handler: unaryHandler(ListEnchantsMethod, BuildServiceServer.ListEnchants)},
		{MethodName: "SearchItems", Handler: unaryHandler(SearchItemsMethod, BuildServiceServer.SearchItems)},
		{MethodName: "PreviewBuild", Handler: unaryHandler(PreviewBuildMethod, BuildServiceServer.PreviewBuild)},
	},
	Streams: []grpc.StreamDesc{},
}

// BuildServiceClient is the client API for BuildService
type BuildServiceClient interface {
	Call(ctx context.Context, fullMethod string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type buildServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBuildServiceClient creates a client on cc
func NewBuildServiceClient(cc grpc.ClientConnInterface) BuildServiceClient {
	return &buildServiceClient{cc: cc}
}

// Call invokes one of the unary methods by its full name
func (c *buildServiceClient) Call(ctx context.Context, fullMethod string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
