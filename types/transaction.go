package types

import (
	"fmt"

	"github.com/blockberries/chainwire/wire"
)

// Wire layout of the Transaction fixed region.
const (
	txFromAddress = 0
	txToAddress   = 32
	txValue       = 64
	txTip         = 72
	txGasLimit    = 80
	txGasPrice    = 88
	txNonce       = 96
	txHash        = 104
	txSignature   = 136
	txDataSize    = 200

	transactionBaseSize = 204
)

var transactionLayout = wire.Layout{
	{Name: "from_address", Size: 32, Offset: txFromAddress},
	{Name: "to_address", Size: 32, Offset: txToAddress},
	{Name: "value", Size: 8, Offset: txValue},
	{Name: "tip", Size: 8, Offset: txTip},
	{Name: "gas_limit", Size: 8, Offset: txGasLimit},
	{Name: "gas_price", Size: 8, Offset: txGasPrice},
	{Name: "n_txs_on_chain_from_address", Size: 8, Offset: txNonce},
	{Name: "hash", Size: 32, Offset: txHash},
	{Name: "signature", Size: 64, Offset: txSignature},
	{Name: "data_size", Size: 4, Offset: txDataSize},
}

// Transaction is an authenticated, non-repudiable message produced by
// an external account to authorize a state transition, either a token
// transfer or a smart contract call. Hash and signature correctness is
// verified by the crypto layer, not here.
type Transaction struct {
	FromAddress            PublicAddress
	ToAddress              PublicAddress
	Value                  uint64
	Tip                    uint64
	GasLimit               uint64
	GasPrice               uint64
	NTxsOnChainFromAddress uint64
	Data                   []byte
	Hash                   Sha256Hash
	Signature              Signature
}

// EncodedSize returns the exact wire size of the transaction.
func (tx *Transaction) EncodedSize() int {
	return transactionBaseSize + len(tx.Data)
}

// Encode returns the canonical wire bytes of the transaction.
func (tx *Transaction) Encode() []byte {
	buf := make([]byte, tx.EncodedSize())
	tx.encodeTo(buf)
	return buf
}

// encodeTo writes the transaction at the front of buf, which must hold
// at least EncodedSize bytes, and returns the number of bytes written.
func (tx *Transaction) encodeTo(buf []byte) int {
	wire.PutBytes(buf, txFromAddress, tx.FromAddress[:])
	wire.PutBytes(buf, txToAddress, tx.ToAddress[:])
	wire.PutUint64(buf, txValue, tx.Value)
	wire.PutUint64(buf, txTip, tx.Tip)
	wire.PutUint64(buf, txGasLimit, tx.GasLimit)
	wire.PutUint64(buf, txGasPrice, tx.GasPrice)
	wire.PutUint64(buf, txNonce, tx.NTxsOnChainFromAddress)
	wire.PutBytes(buf, txHash, tx.Hash[:])
	wire.PutBytes(buf, txSignature, tx.Signature[:])
	wire.PutUint32(buf, txDataSize, uint32(len(tx.Data)))
	wire.PutBytes(buf, transactionBaseSize, tx.Data)
	return tx.EncodedSize()
}

// transactionWireSize reports the total encoded size of the
// self-describing transaction item at the front of buf.
func transactionWireSize(buf []byte) (int, error) {
	if len(buf) < transactionBaseSize {
		return 0, fmt.Errorf("transaction: %w", wire.ErrIncorrectLength)
	}
	return transactionBaseSize + int(wire.Uint32At(buf, txDataSize)), nil
}

// Decode parses a transaction from buf.
func (tx *Transaction) Decode(buf []byte) error {
	if len(buf) < transactionBaseSize {
		return fmt.Errorf("transaction: %w", wire.ErrIncorrectLength)
	}
	dataSize := int(wire.Uint32At(buf, txDataSize))
	if len(buf) < transactionBaseSize+dataSize {
		return fmt.Errorf("transaction data: %w", wire.ErrIncorrectLength)
	}
	tx.FromAddress = wire.Bytes32At(buf, txFromAddress)
	tx.ToAddress = wire.Bytes32At(buf, txToAddress)
	tx.Value = wire.Uint64At(buf, txValue)
	tx.Tip = wire.Uint64At(buf, txTip)
	tx.GasLimit = wire.Uint64At(buf, txGasLimit)
	tx.GasPrice = wire.Uint64At(buf, txGasPrice)
	tx.NTxsOnChainFromAddress = wire.Uint64At(buf, txNonce)
	tx.Hash = wire.Bytes32At(buf, txHash)
	tx.Signature = wire.Bytes64At(buf, txSignature)
	tx.Data = make([]byte, dataSize)
	copy(tx.Data, buf[transactionBaseSize:transactionBaseSize+dataSize])
	return nil
}

// DecodeTransaction parses a transaction from buf.
func DecodeTransaction(buf []byte) (Transaction, error) {
	var tx Transaction
	if err := tx.Decode(buf); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// TransactionCodec adapts Transaction to the wire composition layer,
// e.g. wire.SliceOf(TransactionCodec) for a standalone transaction
// list.
var TransactionCodec = wire.NewCodec(
	func(tx Transaction) []byte { return tx.Encode() },
	DecodeTransaction,
)
