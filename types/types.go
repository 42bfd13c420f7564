// Package types defines the core protocol entities (transactions,
// blocks, receipts, events, proofs, and contract-call parameter
// bundles) together with their canonical binary wire encodings.
//
// Layouts are fixed-offset and little-endian: each entity opens with a
// fixed-size field region described by a layout table, followed by its
// variable-length payloads in declared order. The same bytes are used
// for hashing, signing, network transmission, and persistence, so two
// encodes of the same logical value are always byte-identical.
//
// The codec carries hash and signature fields but never computes or
// verifies them; that belongs to the crypto layer consuming the bytes.
package types

// PublicAddress is an opaque 32-byte account identifier.
type PublicAddress [32]byte

// Sha256Hash is an opaque 32-byte digest, produced externally.
type Sha256Hash [32]byte

// Signature is an opaque 64-byte signature, produced externally.
type Signature [64]byte

// String renders the address as unpadded Base64URL.
func (a PublicAddress) String() string { return ToBase64URL(a[:]) }

// String renders the hash as unpadded Base64URL.
func (h Sha256Hash) String() string { return ToBase64URL(h[:]) }

// String renders the signature as unpadded Base64URL.
func (s Signature) String() string { return ToBase64URL(s[:]) }
