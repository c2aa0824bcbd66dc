package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// The service carries well-known types only, so its descriptor is declared
// here instead of being generated from a .proto file.

const (
	ServiceName            = "gosocial.realtime.v1.RealtimeService"
	GetDeltaFullMethod     = "/" + ServiceName + "/GetDelta"
	FilterOnlineFullMethod = "/" + ServiceName + "/FilterOnline"
)

// RealtimeServiceServer is the server API for RealtimeService.
type RealtimeServiceServer interface {
	// GetDelta takes {"last_ts": number} and returns one sync page for the caller.
	GetDelta(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// FilterOnline returns the subset of the given user ids that are connected.
	FilterOnline(context.Context, *structpb.ListValue) (*structpb.ListValue, error)
}

// UnimplementedRealtimeServiceServer can be embedded for forward compatibility.
type UnimplementedRealtimeServiceServer struct{}

func (UnimplementedRealtimeServiceServer) GetDelta(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDelta not implemented")
}

func (UnimplementedRealtimeServiceServer) FilterOnline(context.Context, *structpb.ListValue) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method FilterOnline not implemented")
}

func RegisterRealtimeServiceServer(s grpc.ServiceRegistrar, srv RealtimeServiceServer) {
	s.RegisterService(&RealtimeService_ServiceDesc, srv)
}

func _RealtimeService_GetDelta_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RealtimeServiceServer).GetDelta(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetDeltaFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RealtimeServiceServer).GetDelta(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _RealtimeService_FilterOnline_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RealtimeServiceServer).FilterOnline(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FilterOnlineFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RealtimeServiceServer).FilterOnline(ctx, req.(*structpb.ListValue))
	}
	return interceptor(ctx, in, info, handler)
}

var RealtimeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RealtimeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDelta",
			Handler:    _RealtimeService_GetDelta_Handler,
		},
		{
			MethodName: "FilterOnline",
			Handler:    _RealtimeService_FilterOnline_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gosocial/realtime/v1/realtime.proto",
}

// RealtimeServiceClient is the client API for RealtimeService.
type RealtimeServiceClient interface {
	GetDelta(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	FilterOnline(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type realtimeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRealtimeServiceClient(cc grpc.ClientConnInterface) RealtimeServiceClient {
	return &realtimeServiceClient{cc}
}

func (c *realtimeServiceClient) GetDelta(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetDeltaFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *realtimeServiceClient) FilterOnline(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, FilterOnlineFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
