package types

import "encoding/base64"

// Addresses, hashes, and signatures are rendered as unpadded URL-safe
// base64 wherever they appear as text (logs, JSON-RPC, explorers).

// ToBase64URL encodes bytes as an unpadded Base64URL string.
func ToBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// FromBase64URL decodes an unpadded Base64URL string.
func FromBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
