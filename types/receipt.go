package types

import (
	"fmt"

	"github.com/blockberries/chainwire/wire"
)

// Wire layout of the Receipt fixed region.
const (
	receiptStatusCode      = 0
	receiptGasConsumed     = 1
	receiptReturnValueSize = 9
	receiptEventsSize      = 13

	receiptBaseSize = 17
)

var receiptLayout = wire.Layout{
	{Name: "status_code", Size: 1, Offset: receiptStatusCode},
	{Name: "gas_consumed", Size: 8, Offset: receiptGasConsumed},
	{Name: "return_value_size", Size: 4, Offset: receiptReturnValueSize},
	{Name: "events_size", Size: 4, Offset: receiptEventsSize},
}

// Receipt is the execution outcome of the transaction at the same
// position in the enclosing Block. The codec does not enforce that
// positional pairing; an outer layer does.
//
// On the wire the fixed region is followed by the return value bytes
// and then the events as self-describing items: the events_size field
// holds the total byte length of the event region, and each event's
// own header gives that single event's size.
type Receipt struct {
	StatusCode  ReceiptStatusCode
	GasConsumed uint64
	ReturnValue []byte
	Events      []Event
}

// EncodedSize returns the exact wire size of the receipt.
func (r *Receipt) EncodedSize() int {
	return receiptBaseSize + len(r.ReturnValue) + r.eventsWireSize()
}

func (r *Receipt) eventsWireSize() int {
	size := 0
	for i := range r.Events {
		size += r.Events[i].EncodedSize()
	}
	return size
}

// Encode returns the canonical wire bytes of the receipt.
func (r *Receipt) Encode() []byte {
	buf := make([]byte, r.EncodedSize())
	r.encodeTo(buf)
	return buf
}

func (r *Receipt) encodeTo(buf []byte) int {
	buf[receiptStatusCode] = r.StatusCode.Byte()
	wire.PutUint64(buf, receiptGasConsumed, r.GasConsumed)
	wire.PutUint32(buf, receiptReturnValueSize, uint32(len(r.ReturnValue)))
	wire.PutUint32(buf, receiptEventsSize, uint32(r.eventsWireSize()))
	wire.PutBytes(buf, receiptBaseSize, r.ReturnValue)
	pos := receiptBaseSize + len(r.ReturnValue)
	for i := range r.Events {
		pos += r.Events[i].encodeTo(buf[pos:])
	}
	return r.EncodedSize()
}

// receiptWireSize reports the total encoded size of the
// self-describing receipt item at the front of buf.
func receiptWireSize(buf []byte) (int, error) {
	if len(buf) < receiptBaseSize {
		return 0, fmt.Errorf("receipt: %w", wire.ErrIncorrectLength)
	}
	returnValueSize := int(wire.Uint32At(buf, receiptReturnValueSize))
	eventsSize := int(wire.Uint32At(buf, receiptEventsSize))
	return receiptBaseSize + returnValueSize + eventsSize, nil
}

// Decode parses a receipt from buf.
func (r *Receipt) Decode(buf []byte) error {
	if len(buf) < receiptBaseSize {
		return fmt.Errorf("receipt: %w", wire.ErrIncorrectLength)
	}
	status, err := StatusCodeFromByte(buf[receiptStatusCode])
	if err != nil {
		return fmt.Errorf("receipt: %w", err)
	}
	returnValueSize := int(wire.Uint32At(buf, receiptReturnValueSize))
	eventsSize := int(wire.Uint32At(buf, receiptEventsSize))
	if len(buf) < receiptBaseSize+returnValueSize+eventsSize {
		return fmt.Errorf("receipt payload: %w", wire.ErrIncorrectLength)
	}

	r.StatusCode = status
	r.GasConsumed = wire.Uint64At(buf, receiptGasConsumed)
	r.ReturnValue = make([]byte, returnValueSize)
	copy(r.ReturnValue, buf[receiptBaseSize:])

	region := buf[receiptBaseSize+returnValueSize : receiptBaseSize+returnValueSize+eventsSize]
	events := make([]Event, 0)
	pos := 0
	for pos < len(region) {
		size, err := eventWireSize(region[pos:])
		if err != nil {
			return err
		}
		if pos+size > len(region) {
			return fmt.Errorf("receipt events: %w", wire.ErrIncorrectLength)
		}
		var e Event
		if err := e.Decode(region[pos : pos+size]); err != nil {
			return err
		}
		events = append(events, e)
		pos += size
	}
	r.Events = events
	return nil
}

// DecodeReceipt parses a receipt from buf.
func DecodeReceipt(buf []byte) (Receipt, error) {
	var r Receipt
	if err := r.Decode(buf); err != nil {
		return Receipt{}, err
	}
	return r, nil
}

// ReceiptCodec adapts Receipt to the wire composition layer.
var ReceiptCodec = wire.NewCodec(
	func(r Receipt) []byte { return r.Encode() },
	DecodeReceipt,
)
