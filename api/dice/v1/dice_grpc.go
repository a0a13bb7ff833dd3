package dicev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "dice.v1.DiceService"

// LocaleHeader is the metadata key carrying the caller's locale.
const LocaleHeader = "x-locale"

const (
	DiceServiceRollDiceFullMethodName = "/" + ServiceName + "/RollDice"
	DiceServiceGetRollFullMethodName  = "/" + ServiceName + "/GetRoll"
)

// DiceServiceClient is the client API for DiceService.
type DiceServiceClient interface {
	// RollDice rolls the requested dice groups.
	RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error)
	// GetRoll returns a previously recorded roll.
	GetRoll(ctx context.Context, in *GetRollRequest, opts ...grpc.CallOption) (*RollRecord, error)
}

type diceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDiceServiceClient returns a DiceService client using the JSON codec.
func NewDiceServiceClient(cc grpc.ClientConnInterface) DiceServiceClient {
	return &diceServiceClient{cc: cc}
}

func (c *diceServiceClient) RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error) {
	out := new(RollDiceResponse)
	if err := c.cc.Invoke(ctx, DiceServiceRollDiceFullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *diceServiceClient) GetRoll(ctx context.Context, in *GetRollRequest, opts ...grpc.CallOption) (*RollRecord, error) {
	out := new(RollRecord)
	if err := c.cc.Invoke(ctx, DiceServiceGetRollFullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

// DiceServiceServer is the server API for DiceService.
type DiceServiceServer interface {
	RollDice(context.Context, *RollDiceRequest) (*RollDiceResponse, error)
	GetRoll(context.Context, *GetRollRequest) (*RollRecord, error)
}

// UnimplementedDiceServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedDiceServiceServer struct{}

func (UnimplementedDiceServiceServer) RollDice(context.Context, *RollDiceRequest) (*RollDiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RollDice not implemented")
}

func (UnimplementedDiceServiceServer) GetRoll(context.Context, *GetRollRequest) (*RollRecord, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRoll not implemented")
}

// RegisterDiceServiceServer registers srv on s.
func RegisterDiceServiceServer(s grpc.ServiceRegistrar, srv DiceServiceServer) {
	s.RegisterService(&DiceServiceDesc, srv)
}

func rollDiceHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RollDiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiceServiceServer).RollDice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiceServiceRollDiceFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiceServiceServer).RollDice(ctx, req.(*RollDiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getRollHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRollRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiceServiceServer).GetRoll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiceServiceGetRollFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiceServiceServer).GetRoll(ctx, req.(*GetRollRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DiceServiceDesc is the grpc.ServiceDesc for DiceService.
var DiceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RollDice",
			Handler:    rollDiceHandler,
		},
		{
			MethodName: "GetRoll",
			Handler:    getRollHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dice/v1/dice.go",
}
