package wire_test

import (
	"testing"

	"github.com/blockberries/chainwire/wire"

	"github.com/stretchr/testify/require"
)

func TestPutUint32_LittleEndian(t *testing.T) {
	buf := make([]byte, 8)
	wire.PutUint32(buf, 2, 0x01020304)
	require.Equal(t, []byte{0, 0, 0x04, 0x03, 0x02, 0x01, 0, 0}, buf)
	require.Equal(t, uint32(0x01020304), wire.Uint32At(buf, 2))
}

func TestPutUint64_LittleEndian(t *testing.T) {
	buf := make([]byte, 12)
	wire.PutUint64(buf, 4, 0x0102030405060708)
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf[4:])
	require.Equal(t, uint64(0x0102030405060708), wire.Uint64At(buf, 4))
}

func TestPutBytes(t *testing.T) {
	buf := make([]byte, 6)
	wire.PutBytes(buf, 2, []byte{0xAA, 0xBB})
	require.Equal(t, []byte{0, 0, 0xAA, 0xBB, 0, 0}, buf)
}

func TestBytesAt_Fixed(t *testing.T) {
	buf := make([]byte, 100)
	for i := range buf {
		buf[i] = byte(i)
	}

	b32 := wire.Bytes32At(buf, 3)
	require.Equal(t, buf[3:35], b32[:])

	b64 := wire.Bytes64At(buf, 10)
	require.Equal(t, buf[10:74], b64[:])

	// Reads copy: mutating the source must not change the result.
	buf[3] = 0xFF
	require.Equal(t, byte(3), b32[0])
}
