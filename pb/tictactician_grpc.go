package pb

import (
	"context"

	"google.golang.org/grpc"
)

type TictacticianClient interface {
	Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error)
	Canonicalize(ctx context.Context, in *CanonicalizeRequest, opts ...grpc.CallOption) (*CanonicalizeResponse, error)
}

type tictacticianClient struct {
	cc grpc.ClientConnInterface
}

func NewTictacticianClient(cc grpc.ClientConnInterface) TictacticianClient {
	return &tictacticianClient{cc}
}

func (c *tictacticianClient) Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error) {
	out := new(AnalyzeResponse)
	err := c.cc.Invoke(ctx, "/tictactician.Tictactician/Analyze", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tictacticianClient) Canonicalize(ctx context.Context, in *CanonicalizeRequest, opts ...grpc.CallOption) (*CanonicalizeResponse, error) {
	out := new(CanonicalizeResponse)
	err := c.cc.Invoke(ctx, "/tictactician.Tictactician/Canonicalize", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type TictacticianServer interface {
	Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error)
	Canonicalize(context.Context, *CanonicalizeRequest) (*CanonicalizeResponse, error)
}

func RegisterTictacticianServer(s *grpc.Server, srv TictacticianServer) {
	s.RegisterService(&_Tictactician_serviceDesc, srv)
}

func _Tictactician_Analyze_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TictacticianServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tictactician.Tictactician/Analyze",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TictacticianServer).Analyze(ctx, req.(*AnalyzeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Tictactician_Canonicalize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CanonicalizeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TictacticianServer).Canonicalize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tictactician.Tictactician/Canonicalize",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TictacticianServer).Canonicalize(ctx, req.(*CanonicalizeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Tictactician_serviceDesc = grpc.ServiceDesc{
	ServiceName: "tictactician.Tictactician",
	HandlerType: (*TictacticianServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Analyze",
			Handler:    _Tictactician_Analyze_Handler,
		},
		{
			MethodName: "Canonicalize",
			Handler:    _Tictactician_Canonicalize_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tictactician.proto",
}
