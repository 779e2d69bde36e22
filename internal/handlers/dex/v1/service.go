// Package v1 serves dex.v1.DexService over gRPC. Messages are
// google.protobuf.Struct documents shaped by the request and response types
// in messages.go.
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dex.v1.DexService"

// Method names
const (
	MethodCreateSession   = "CreateSession"
	MethodEndSession      = "EndSession"
	MethodUpdateListing   = "UpdateListing"
	MethodGetListing      = "GetListing"
	MethodShowPokemon     = "ShowPokemon"
	MethodNavigatePokemon = "NavigatePokemon"
	MethodListMoves       = "ListMoves"
	MethodGetMove         = "GetMove"
	MethodCloseMove       = "CloseMove"
	MethodEffectiveness   = "Effectiveness"
	MethodSuggest         = "Suggest"
)

// FullMethod returns the gRPC path of a method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// DexServiceServer is the server API for dex.v1.DexService
type DexServiceServer interface {
	CreateSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EndSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateListing(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetListing(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ShowPokemon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	NavigatePokemon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListMoves(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetMove(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CloseMove(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Effectiveness(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Suggest(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(DexServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(DexServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(DexServiceServer), ctx, req.(*structpb.Struct))
			})
		},
	}
}

// DexServiceDesc describes dex.v1.DexService for grpc.Server registration
var DexServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DexServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodCreateSession, DexServiceServer.CreateSession),
		unary(MethodEndSession, DexServiceServer.EndSession),
		unary(MethodUpdateListing, DexServiceServer.UpdateListing),
		unary(MethodGetListing, DexServiceServer.GetListing),
		unary(MethodShowPokemon, DexServiceServer.ShowPokemon),
		unary(MethodNavigatePokemon, DexServiceServer.NavigatePokemon),
		unary(MethodListMoves, DexServiceServer.ListMoves),
		unary(MethodGetMove, DexServiceServer.GetMove),
		unary(MethodCloseMove, DexServiceServer.CloseMove),
		unary(MethodEffectiveness, DexServiceServer.Effectiveness),
		unary(MethodSuggest, DexServiceServer.Suggest),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dex/v1/dex.proto",
}

// RegisterDexServiceServer registers srv on s
func RegisterDexServiceServer(s grpc.ServiceRegistrar, srv DexServiceServer) {
	s.RegisterService(&DexServiceDesc, srv)
}
