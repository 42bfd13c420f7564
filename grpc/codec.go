// Package chaingrpc provides a gRPC transport that carries chainwire
// entities in their canonical wire encoding.
//
// No protobuf code generation is involved. Any message implementing
// wire.Marshaler / wire.Unmarshaler rides gRPC as its exact canonical
// bytes, so what travels on the network is what gets hashed and
// signed.
package chaingrpc

import (
	"fmt"

	"github.com/blockberries/chainwire/wire"

	"google.golang.org/grpc/encoding"
)

const codecName = "chainwire"

// WireCodec implements grpc/encoding.Codec over the chainwire
// canonical encoding.
type WireCodec struct{}

func (WireCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(wire.Marshaler)
	if !ok {
		return nil, fmt.Errorf("chainwire codec: %T does not implement wire.Marshaler", v)
	}
	return m.Encode(), nil
}

func (WireCodec) Unmarshal(data []byte, v any) error {
	u, ok := v.(wire.Unmarshaler)
	if !ok {
		return fmt.Errorf("chainwire codec: %T does not implement wire.Unmarshaler", v)
	}
	if err := u.Decode(data); err != nil {
		return fmt.Errorf("chainwire unmarshal: %w", err)
	}
	return nil
}

func (WireCodec) Name() string { return codecName }

func init() {
	encoding.RegisterCodec(WireCodec{})
}
