package types

import (
	"fmt"
	"unicode/utf8"

	"github.com/blockberries/chainwire/wire"
)

// Execution-context parameter bundles, constructed by the execution
// host immediately before invoking sandboxed contract code, and the
// CallData envelope embedded in a Transaction's data field.

// Wire layout of the CallData fixed region.
const (
	callDataMethodSize = 0
	callDataArgsSize   = 4

	callDataBaseSize = 8
)

var callDataLayout = wire.Layout{
	{Name: "method_name_size", Size: 4, Offset: callDataMethodSize},
	{Name: "arguments_size", Size: 4, Offset: callDataArgsSize},
}

// CallData addresses a contract entry point. An empty method name is
// the convention for a contract's default entry point.
type CallData struct {
	MethodName string
	Arguments  []byte
}

// Encode returns the canonical wire bytes of the call data.
func (c *CallData) Encode() []byte {
	buf := make([]byte, callDataBaseSize+len(c.MethodName)+len(c.Arguments))
	wire.PutUint32(buf, callDataMethodSize, uint32(len(c.MethodName)))
	wire.PutUint32(buf, callDataArgsSize, uint32(len(c.Arguments)))
	wire.PutBytes(buf, callDataBaseSize, []byte(c.MethodName))
	wire.PutBytes(buf, callDataBaseSize+len(c.MethodName), c.Arguments)
	return buf
}

// Decode parses call data from buf. The method name must be valid
// UTF-8; anything else is ErrStringParse, never a silent substitution.
func (c *CallData) Decode(buf []byte) error {
	if len(buf) < callDataBaseSize {
		return fmt.Errorf("call data: %w", wire.ErrIncorrectLength)
	}
	methodSize := int(wire.Uint32At(buf, callDataMethodSize))
	argsSize := int(wire.Uint32At(buf, callDataArgsSize))
	rest := buf[callDataBaseSize:]
	if len(rest) < methodSize+argsSize {
		return fmt.Errorf("call data payload: %w", wire.ErrIncorrectLength)
	}

	methodBytes := rest[:methodSize]
	if !utf8.Valid(methodBytes) {
		return fmt.Errorf("call data method name: %w", wire.ErrStringParse)
	}
	c.MethodName = string(methodBytes)
	c.Arguments = make([]byte, argsSize)
	copy(c.Arguments, rest[methodSize:methodSize+argsSize])
	return nil
}

// DecodeCallData parses call data from buf.
func DecodeCallData(buf []byte) (CallData, error) {
	var c CallData
	if err := c.Decode(buf); err != nil {
		return CallData{}, err
	}
	return c, nil
}

// Wire layout of the ParamsFromTransaction fixed region.
const (
	paramsTxFromAddress = 0
	paramsTxToAddress   = 32
	paramsTxValue       = 64
	paramsTxHash        = 72
	paramsTxDataSize    = 104

	paramsTxBaseSize = 108
)

var paramsFromTransactionLayout = wire.Layout{
	{Name: "from_address", Size: 32, Offset: paramsTxFromAddress},
	{Name: "to_address", Size: 32, Offset: paramsTxToAddress},
	{Name: "value", Size: 8, Offset: paramsTxValue},
	{Name: "transaction_hash", Size: 32, Offset: paramsTxHash},
	{Name: "data_size", Size: 4, Offset: paramsTxDataSize},
}

// ParamsFromTransaction is the slice of the enclosing transaction an
// executing contract is allowed to see.
type ParamsFromTransaction struct {
	FromAddress     PublicAddress
	ToAddress       PublicAddress
	Value           uint64
	Data            []byte
	TransactionHash Sha256Hash
}

// Encode returns the canonical wire bytes of the params.
func (p *ParamsFromTransaction) Encode() []byte {
	buf := make([]byte, paramsTxBaseSize+len(p.Data))
	wire.PutBytes(buf, paramsTxFromAddress, p.FromAddress[:])
	wire.PutBytes(buf, paramsTxToAddress, p.ToAddress[:])
	wire.PutUint64(buf, paramsTxValue, p.Value)
	wire.PutBytes(buf, paramsTxHash, p.TransactionHash[:])
	wire.PutUint32(buf, paramsTxDataSize, uint32(len(p.Data)))
	wire.PutBytes(buf, paramsTxBaseSize, p.Data)
	return buf
}

// Decode parses params from buf.
func (p *ParamsFromTransaction) Decode(buf []byte) error {
	if len(buf) < paramsTxBaseSize {
		return fmt.Errorf("params from transaction: %w", wire.ErrIncorrectLength)
	}
	dataSize := int(wire.Uint32At(buf, paramsTxDataSize))
	if len(buf) < paramsTxBaseSize+dataSize {
		return fmt.Errorf("params from transaction data: %w", wire.ErrIncorrectLength)
	}
	p.FromAddress = wire.Bytes32At(buf, paramsTxFromAddress)
	p.ToAddress = wire.Bytes32At(buf, paramsTxToAddress)
	p.Value = wire.Uint64At(buf, paramsTxValue)
	p.TransactionHash = wire.Bytes32At(buf, paramsTxHash)
	p.Data = make([]byte, dataSize)
	copy(p.Data, buf[paramsTxBaseSize:paramsTxBaseSize+dataSize])
	return nil
}

// DecodeParamsFromTransaction parses params from buf.
func DecodeParamsFromTransaction(buf []byte) (ParamsFromTransaction, error) {
	var p ParamsFromTransaction
	if err := p.Decode(buf); err != nil {
		return ParamsFromTransaction{}, err
	}
	return p, nil
}

// Wire layout of the ParamsFromBlockchain region, fully fixed-size.
const (
	paramsBcBlockNumber = 0
	paramsBcPrevHash    = 8
	paramsBcTimestamp   = 40
	paramsBcRandomBytes = 44

	paramsBcBaseSize = 76
)

var paramsFromBlockchainLayout = wire.Layout{
	{Name: "this_block_number", Size: 8, Offset: paramsBcBlockNumber},
	{Name: "prev_block_hash", Size: 32, Offset: paramsBcPrevHash},
	{Name: "timestamp", Size: 4, Offset: paramsBcTimestamp},
	{Name: "random_bytes", Size: 32, Offset: paramsBcRandomBytes},
}

// ParamsFromBlockchain is the slice of chain context an executing
// contract is allowed to see.
type ParamsFromBlockchain struct {
	ThisBlockNumber uint64
	PrevBlockHash   Sha256Hash
	// Unix timestamp, seconds.
	Timestamp   uint32
	RandomBytes Sha256Hash
}

// Encode returns the canonical wire bytes of the params.
func (p *ParamsFromBlockchain) Encode() []byte {
	buf := make([]byte, paramsBcBaseSize)
	wire.PutUint64(buf, paramsBcBlockNumber, p.ThisBlockNumber)
	wire.PutBytes(buf, paramsBcPrevHash, p.PrevBlockHash[:])
	wire.PutUint32(buf, paramsBcTimestamp, p.Timestamp)
	wire.PutBytes(buf, paramsBcRandomBytes, p.RandomBytes[:])
	return buf
}

// Decode parses params from buf.
func (p *ParamsFromBlockchain) Decode(buf []byte) error {
	if len(buf) < paramsBcBaseSize {
		return fmt.Errorf("params from blockchain: %w", wire.ErrIncorrectLength)
	}
	p.ThisBlockNumber = wire.Uint64At(buf, paramsBcBlockNumber)
	p.PrevBlockHash = wire.Bytes32At(buf, paramsBcPrevHash)
	p.Timestamp = wire.Uint32At(buf, paramsBcTimestamp)
	p.RandomBytes = wire.Bytes32At(buf, paramsBcRandomBytes)
	return nil
}

// DecodeParamsFromBlockchain parses params from buf.
func DecodeParamsFromBlockchain(buf []byte) (ParamsFromBlockchain, error) {
	var p ParamsFromBlockchain
	if err := p.Decode(buf); err != nil {
		return ParamsFromBlockchain{}, err
	}
	return p, nil
}
