package types

import (
	"fmt"

	"github.com/blockberries/chainwire/wire"
)

// Wire layout of the Event fixed region.
const (
	eventTopicSize = 0
	eventValueSize = 4

	eventBaseSize = 8
)

var eventLayout = wire.Layout{
	{Name: "topic_size", Size: 4, Offset: eventTopicSize},
	{Name: "value_size", Size: 4, Offset: eventValueSize},
}

// Event is a message emitted by a smart contract execution, persisted
// in emission order inside the enclosing Receipt.
type Event struct {
	Topic []byte
	Value []byte
}

// EncodedSize returns the exact wire size of the event.
func (e *Event) EncodedSize() int {
	return eventBaseSize + len(e.Topic) + len(e.Value)
}

// Encode returns the canonical wire bytes of the event.
func (e *Event) Encode() []byte {
	buf := make([]byte, e.EncodedSize())
	e.encodeTo(buf)
	return buf
}

func (e *Event) encodeTo(buf []byte) int {
	wire.PutUint32(buf, eventTopicSize, uint32(len(e.Topic)))
	wire.PutUint32(buf, eventValueSize, uint32(len(e.Value)))
	wire.PutBytes(buf, eventBaseSize, e.Topic)
	wire.PutBytes(buf, eventBaseSize+len(e.Topic), e.Value)
	return e.EncodedSize()
}

// eventWireSize reports the total encoded size of the self-describing
// event item at the front of buf.
func eventWireSize(buf []byte) (int, error) {
	if len(buf) < eventBaseSize {
		return 0, fmt.Errorf("event: %w", wire.ErrIncorrectLength)
	}
	topicSize := int(wire.Uint32At(buf, eventTopicSize))
	valueSize := int(wire.Uint32At(buf, eventValueSize))
	return eventBaseSize + topicSize + valueSize, nil
}

// Decode parses an event from buf.
func (e *Event) Decode(buf []byte) error {
	if len(buf) < eventBaseSize {
		return fmt.Errorf("event: %w", wire.ErrIncorrectLength)
	}
	topicSize := int(wire.Uint32At(buf, eventTopicSize))
	valueSize := int(wire.Uint32At(buf, eventValueSize))
	if len(buf) < eventBaseSize+topicSize+valueSize {
		return fmt.Errorf("event payload: %w", wire.ErrIncorrectLength)
	}
	e.Topic = make([]byte, topicSize)
	copy(e.Topic, buf[eventBaseSize:])
	e.Value = make([]byte, valueSize)
	copy(e.Value, buf[eventBaseSize+topicSize:eventBaseSize+topicSize+valueSize])
	return nil
}

// DecodeEvent parses an event from buf.
func DecodeEvent(buf []byte) (Event, error) {
	var e Event
	if err := e.Decode(buf); err != nil {
		return Event{}, err
	}
	return e, nil
}

// EventCodec adapts Event to the wire composition layer.
var EventCodec = wire.NewCodec(
	func(e Event) []byte { return e.Encode() },
	DecodeEvent,
)
