package chaingrpc

import (
	"context"
	"fmt"

	"github.com/blockberries/chainwire/types"

	"google.golang.org/grpc"
)

const serviceName = "github.com/blockberries/chainwire.v1.ChainService"

// ChainServiceServer is the server-side interface for the chain
// service: transaction submission and block/receipt retrieval, all
// payloads in canonical wire encoding.
type ChainServiceServer interface {
	SubmitTransaction(context.Context, *types.Transaction) (*TransactionAck, error)
	GetBlock(context.Context, *BlockRequest) (*types.Block, error)
	GetReceipt(context.Context, *ReceiptRequest) (*types.Receipt, error)
}

// RegisterChainServiceServer registers the ChainServiceServer on a
// gRPC server.
func RegisterChainServiceServer(s *grpc.Server, srv ChainServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// --- Handler functions ---

func handlerSubmitTransaction(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.Transaction)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChainServiceServer).SubmitTransaction(ctx, req)
}

func handlerGetBlock(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(BlockRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChainServiceServer).GetBlock(ctx, req)
}

func handlerGetReceipt(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(ReceiptRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChainServiceServer).GetReceipt(ctx, req)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for the chain
// service.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ChainServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SubmitTransaction", Handler: handlerSubmitTransaction},
		{MethodName: "GetBlock", Handler: handlerGetBlock},
		{MethodName: "GetReceipt", Handler: handlerGetReceipt},
	},
	Metadata: "github.com/blockberries/chainwire/v1/service.wire",
}
