package wire

import "fmt"

// u32Len is the width of every count and size prefix on the wire.
const u32Len = 4

// Bytes is the innermost leaf codec: a raw byte sequence with no
// self-framing. It relies on an enclosing option, tuple, or sequence
// to supply its length. Both directions copy, so decoded values never
// alias the input buffer.
var Bytes = NewCodec(
	func(v []byte) []byte {
		out := make([]byte, len(v))
		copy(out, v)
		return out
	},
	func(buf []byte) ([]byte, error) {
		out := make([]byte, len(buf))
		copy(out, buf)
		return out, nil
	},
)

// OptionOf frames an optional value of T as one tag byte (0 = absent,
// nonzero = present) followed, if present, by T's full encoding.
// A nil pointer encodes as absent.
func OptionOf[T any](elem Codec[T]) Codec[*T] {
	return NewCodec(
		func(v *T) []byte {
			if v == nil {
				return []byte{0}
			}
			enc := elem.Encode(*v)
			out := make([]byte, 1+len(enc))
			out[0] = 1
			copy(out[1:], enc)
			return out
		},
		func(buf []byte) (*T, error) {
			if len(buf) == 0 {
				return nil, fmt.Errorf("option tag: %w", ErrIncorrectLength)
			}
			if buf[0] == 0 {
				return nil, nil
			}
			v, err := elem.Decode(buf[1:])
			if err != nil {
				return nil, err
			}
			return &v, nil
		},
	)
}

// Pair is a 2-tuple of independently framed values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a 3-tuple of independently framed values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// PairOf frames a 2-tuple as two u32 length prefixes followed by the
// two element encodings, in order. Decoding is strict: the buffer
// after the prefixes must hold exactly the sum of the declared
// lengths, with no trailing bytes.
func PairOf[A, B any](a Codec[A], b Codec[B]) Codec[Pair[A, B]] {
	return NewCodec(
		func(v Pair[A, B]) []byte {
			encA := a.Encode(v.First)
			encB := b.Encode(v.Second)
			out := make([]byte, 2*u32Len+len(encA)+len(encB))
			PutUint32(out, 0, uint32(len(encA)))
			PutUint32(out, u32Len, uint32(len(encB)))
			copy(out[2*u32Len:], encA)
			copy(out[2*u32Len+len(encA):], encB)
			return out
		},
		func(buf []byte) (Pair[A, B], error) {
			var out Pair[A, B]
			if len(buf) < 2*u32Len {
				return out, fmt.Errorf("pair lengths: %w", ErrIncorrectLength)
			}
			sizeA := int(Uint32At(buf, 0))
			sizeB := int(Uint32At(buf, u32Len))
			rest := buf[2*u32Len:]
			if len(rest) != sizeA+sizeB {
				return out, fmt.Errorf("pair payload: %w", ErrIncorrectLength)
			}
			first, err := a.Decode(rest[:sizeA])
			if err != nil {
				return out, err
			}
			second, err := b.Decode(rest[sizeA:])
			if err != nil {
				return out, err
			}
			out.First, out.Second = first, second
			return out, nil
		},
	)
}

// TripleOf frames a 3-tuple the same way PairOf frames a 2-tuple:
// three u32 length prefixes, then the three element encodings, with
// strict accounting of the remainder.
func TripleOf[A, B, C any](a Codec[A], b Codec[B], c Codec[C]) Codec[Triple[A, B, C]] {
	return NewCodec(
		func(v Triple[A, B, C]) []byte {
			encA := a.Encode(v.First)
			encB := b.Encode(v.Second)
			encC := c.Encode(v.Third)
			out := make([]byte, 3*u32Len+len(encA)+len(encB)+len(encC))
			PutUint32(out, 0, uint32(len(encA)))
			PutUint32(out, u32Len, uint32(len(encB)))
			PutUint32(out, 2*u32Len, uint32(len(encC)))
			pos := 3 * u32Len
			pos += copy(out[pos:], encA)
			pos += copy(out[pos:], encB)
			copy(out[pos:], encC)
			return out
		},
		func(buf []byte) (Triple[A, B, C], error) {
			var out Triple[A, B, C]
			if len(buf) < 3*u32Len {
				return out, fmt.Errorf("triple lengths: %w", ErrIncorrectLength)
			}
			sizeA := int(Uint32At(buf, 0))
			sizeB := int(Uint32At(buf, u32Len))
			sizeC := int(Uint32At(buf, 2*u32Len))
			rest := buf[3*u32Len:]
			if len(rest) != sizeA+sizeB+sizeC {
				return out, fmt.Errorf("triple payload: %w", ErrIncorrectLength)
			}
			first, err := a.Decode(rest[:sizeA])
			if err != nil {
				return out, err
			}
			second, err := b.Decode(rest[sizeA : sizeA+sizeB])
			if err != nil {
				return out, err
			}
			third, err := c.Decode(rest[sizeA+sizeB:])
			if err != nil {
				return out, err
			}
			out.First, out.Second, out.Third = first, second, third
			return out, nil
		},
	)
}

// SliceOf frames a homogeneous sequence with the length-value pattern:
// a u32 element count, then count u32 per-element sizes, then the
// concatenated element encodings. This is the external framing for
// standalone lists; it is distinct from the self-describing item
// convention used inside Receipts and Blocks, where each element's own
// header carries its size.
func SliceOf[T any](elem Codec[T]) Codec[[]T] {
	return NewCodec(
		func(vs []T) []byte {
			encoded := make([][]byte, len(vs))
			total := u32Len * (1 + len(vs))
			for i, v := range vs {
				encoded[i] = elem.Encode(v)
				total += len(encoded[i])
			}
			out := make([]byte, total)
			PutUint32(out, 0, uint32(len(vs)))
			pos := u32Len * (1 + len(vs))
			for i, enc := range encoded {
				PutUint32(out, u32Len*(1+i), uint32(len(enc)))
				pos += copy(out[pos:], enc)
			}
			return out
		},
		func(buf []byte) ([]T, error) {
			if len(buf) < u32Len {
				return nil, fmt.Errorf("sequence count: %w", ErrIncorrectLength)
			}
			count := int(Uint32At(buf, 0))
			sizes := buf[u32Len:]
			if len(sizes) < count*u32Len {
				return nil, fmt.Errorf("sequence size table: %w", ErrIncorrectLength)
			}
			data := sizes[count*u32Len:]

			out := make([]T, 0, count)
			pos := 0
			for i := 0; i < count; i++ {
				size := int(Uint32At(sizes, i*u32Len))
				if len(data) < pos+size {
					return nil, fmt.Errorf("sequence element %d: %w", i, ErrIncorrectLength)
				}
				v, err := elem.Decode(data[pos : pos+size])
				if err != nil {
					return nil, err
				}
				out = append(out, v)
				pos += size
			}
			return out, nil
		},
	)
}
