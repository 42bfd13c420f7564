package chaingrpc

import (
	"context"
	"net"

	"github.com/blockberries/chainwire/types"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// Backend is the node-side store the chain service serves from.
type Backend interface {
	// SubmitTransaction accepts a transaction for inclusion and
	// returns its hash.
	SubmitTransaction(ctx context.Context, tx types.Transaction) (types.Sha256Hash, error)

	// BlockByHash returns the block with the given block hash.
	BlockByHash(ctx context.Context, hash types.Sha256Hash) (types.Block, error)

	// ReceiptByTransactionHash returns the receipt of the transaction
	// with the given hash.
	ReceiptByTransactionHash(ctx context.Context, txHash types.Sha256Hash) (types.Receipt, error)
}

// Compile-time interface check.
var _ ChainServiceServer = (*Server)(nil)

// Server exposes a Backend as a gRPC chain service. Entities travel
// in their canonical wire encoding.
type Server struct {
	backend Backend
	log     zerolog.Logger
}

// NewServer creates a chain service server around the given backend.
func NewServer(backend Backend, log zerolog.Logger) *Server {
	return &Server{
		backend: backend,
		log:     log.With().Str("component", "chain_service").Logger(),
	}
}

// Register adds the chain service to a gRPC server.
func (s *Server) Register(gs *grpc.Server) {
	RegisterChainServiceServer(gs, s)
}

// Serve starts a gRPC server on the given listener and blocks until
// it stops.
func (s *Server) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	s.log.Info().Str("addr", lis.Addr().String()).Msg("chain service listening")
	return gs.Serve(lis)
}

// --- ChainService RPCs ---

func (s *Server) SubmitTransaction(ctx context.Context, tx *types.Transaction) (*TransactionAck, error) {
	hash, err := s.backend.SubmitTransaction(ctx, *tx)
	if err != nil {
		s.log.Warn().Err(err).Str("tx", tx.Hash.String()).Msg("transaction rejected")
		return nil, err
	}
	s.log.Debug().Str("tx", hash.String()).Msg("transaction accepted")
	return &TransactionAck{Hash: hash}, nil
}

func (s *Server) GetBlock(ctx context.Context, req *BlockRequest) (*types.Block, error) {
	block, err := s.backend.BlockByHash(ctx, req.Hash)
	if err != nil {
		s.log.Debug().Err(err).Str("block", req.Hash.String()).Msg("block lookup failed")
		return nil, err
	}
	return &block, nil
}

func (s *Server) GetReceipt(ctx context.Context, req *ReceiptRequest) (*types.Receipt, error) {
	receipt, err := s.backend.ReceiptByTransactionHash(ctx, req.TxHash)
	if err != nil {
		s.log.Debug().Err(err).Str("tx", req.TxHash.String()).Msg("receipt lookup failed")
		return nil, err
	}
	return &receipt, nil
}
