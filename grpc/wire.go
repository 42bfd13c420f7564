package chaingrpc

import (
	"fmt"

	"github.com/blockberries/chainwire/types"
	"github.com/blockberries/chainwire/wire"
)

// Transport-specific wrapper types for RPC methods whose parameters
// are not themselves chainwire entities. Each is a plain 32-byte hash
// on the wire.

// TransactionAck acknowledges an accepted transaction with its hash.
type TransactionAck struct {
	Hash types.Sha256Hash
}

func (a *TransactionAck) Encode() []byte {
	out := make([]byte, 32)
	wire.PutBytes(out, 0, a.Hash[:])
	return out
}

func (a *TransactionAck) Decode(buf []byte) error {
	if len(buf) < 32 {
		return fmt.Errorf("transaction ack: %w", wire.ErrIncorrectLength)
	}
	a.Hash = wire.Bytes32At(buf, 0)
	return nil
}

// BlockRequest asks for the block with the given block hash.
type BlockRequest struct {
	Hash types.Sha256Hash
}

func (r *BlockRequest) Encode() []byte {
	out := make([]byte, 32)
	wire.PutBytes(out, 0, r.Hash[:])
	return out
}

func (r *BlockRequest) Decode(buf []byte) error {
	if len(buf) < 32 {
		return fmt.Errorf("block request: %w", wire.ErrIncorrectLength)
	}
	r.Hash = wire.Bytes32At(buf, 0)
	return nil
}

// ReceiptRequest asks for the receipt of the given transaction hash.
type ReceiptRequest struct {
	TxHash types.Sha256Hash
}

func (r *ReceiptRequest) Encode() []byte {
	out := make([]byte, 32)
	wire.PutBytes(out, 0, r.TxHash[:])
	return out
}

func (r *ReceiptRequest) Decode(buf []byte) error {
	if len(buf) < 32 {
		return fmt.Errorf("receipt request: %w", wire.ErrIncorrectLength)
	}
	r.TxHash = wire.Bytes32At(buf, 0)
	return nil
}
