// Package wire implements the byte-level encoding engine shared by all
// chainwire entities: little-endian primitive reads and writes at fixed
// offsets, declarative per-entity layout tables, and a generic
// length-value composition layer for optional values, tuples, and
// homogeneous sequences.
//
// Every encoding is deterministic and byte-exact: two encodes of the
// same logical value, on any machine, produce identical bytes. Decoding
// never panics on malformed input; it returns one of the sentinel
// errors defined in this package.
package wire

// A Codec pairs an encode and a decode function for a single type.
// Codecs compose: see OptionOf, PairOf, TripleOf, and SliceOf.
type Codec[T any] struct {
	encode func(T) []byte
	decode func([]byte) (T, error)
}

// NewCodec builds a Codec from an encode/decode pair. The encode
// function must be total; the decode function must reject any
// malformed input with an error rather than panicking.
func NewCodec[T any](encode func(T) []byte, decode func([]byte) (T, error)) Codec[T] {
	return Codec[T]{encode: encode, decode: decode}
}

// Encode returns the wire bytes for v.
func (c Codec[T]) Encode(v T) []byte {
	return c.encode(v)
}

// Decode parses a value of T from buf.
func (c Codec[T]) Decode(buf []byte) (T, error) {
	return c.decode(buf)
}

// Marshaler is implemented by every chainwire entity. Encoding is
// total: it cannot fail for a well-typed in-memory value.
type Marshaler interface {
	Encode() []byte
}

// Unmarshaler is implemented by every chainwire entity. Decode must
// reject malformed or truncated input with an error, never a panic.
type Unmarshaler interface {
	Decode(buf []byte) error
}
