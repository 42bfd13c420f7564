package wire

import "encoding/binary"

// All multi-byte integers on the wire are little-endian.

// PutUint32 writes v at byte offset off in buf.
func PutUint32(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:], v)
}

// PutUint64 writes v at byte offset off in buf.
func PutUint64(buf []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(buf[off:], v)
}

// Uint32At reads a uint32 at byte offset off in buf. The caller must
// have validated that buf holds at least off+4 bytes.
func Uint32At(buf []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(buf[off:])
}

// Uint64At reads a uint64 at byte offset off in buf. The caller must
// have validated that buf holds at least off+8 bytes.
func Uint64At(buf []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(buf[off:])
}

// PutBytes copies src into buf starting at byte offset off.
func PutBytes(buf []byte, off int, src []byte) {
	copy(buf[off:off+len(src)], src)
}

// Bytes32At reads a fixed 32-byte array at byte offset off in buf.
func Bytes32At(buf []byte, off int) (out [32]byte) {
	copy(out[:], buf[off:off+32])
	return out
}

// Bytes64At reads a fixed 64-byte array at byte offset off in buf.
func Bytes64At(buf []byte, off int) (out [64]byte) {
	copy(out[:], buf[off:off+64])
	return out
}
