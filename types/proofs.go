package types

import (
	"fmt"

	"github.com/blockberries/chainwire/wire"
)

// Wire layout of the MerkleProof fixed region.
const (
	merkleRootHash        = 0
	merkleTotalLeaves     = 32
	merkleLeafIndicesSize = 36
	merkleLeafHashesSize  = 40
	merkleProofSize       = 44

	merkleBaseSize = 48
)

var merkleProofLayout = wire.Layout{
	{Name: "root_hash", Size: 32, Offset: merkleRootHash},
	{Name: "total_leaves_count", Size: 4, Offset: merkleTotalLeaves},
	{Name: "leaf_indices_size", Size: 4, Offset: merkleLeafIndicesSize},
	{Name: "leaf_hashes_size", Size: 4, Offset: merkleLeafHashesSize},
	{Name: "proof_size", Size: 4, Offset: merkleProofSize},
}

// MerkleProof proves membership of specific leaves under a root hash
// without the full leaf set. LeafIndices and LeafHashes have matching
// cardinality by convention; the codec does not enforce it.
type MerkleProof struct {
	RootHash         Sha256Hash
	TotalLeavesCount uint32
	LeafIndices      []uint32
	LeafHashes       []Sha256Hash
	Proof            []byte
}

// Encode returns the canonical wire bytes of the proof.
func (p *MerkleProof) Encode() []byte {
	leafIndicesSize := 4 * len(p.LeafIndices)
	leafHashesSize := 32 * len(p.LeafHashes)
	buf := make([]byte, merkleBaseSize+leafIndicesSize+leafHashesSize+len(p.Proof))

	wire.PutBytes(buf, merkleRootHash, p.RootHash[:])
	wire.PutUint32(buf, merkleTotalLeaves, p.TotalLeavesCount)
	wire.PutUint32(buf, merkleLeafIndicesSize, uint32(leafIndicesSize))
	wire.PutUint32(buf, merkleLeafHashesSize, uint32(leafHashesSize))
	wire.PutUint32(buf, merkleProofSize, uint32(len(p.Proof)))

	pos := merkleBaseSize
	for _, idx := range p.LeafIndices {
		wire.PutUint32(buf, pos, idx)
		pos += 4
	}
	for i := range p.LeafHashes {
		wire.PutBytes(buf, pos, p.LeafHashes[i][:])
		pos += 32
	}
	wire.PutBytes(buf, pos, p.Proof)
	return buf
}

// Decode parses a proof from buf.
func (p *MerkleProof) Decode(buf []byte) error {
	if len(buf) < merkleBaseSize {
		return fmt.Errorf("merkle proof: %w", wire.ErrIncorrectLength)
	}
	leafIndicesSize := int(wire.Uint32At(buf, merkleLeafIndicesSize))
	leafHashesSize := int(wire.Uint32At(buf, merkleLeafHashesSize))
	proofSize := int(wire.Uint32At(buf, merkleProofSize))
	if len(buf) < merkleBaseSize+leafIndicesSize+leafHashesSize+proofSize {
		return fmt.Errorf("merkle proof payload: %w", wire.ErrIncorrectLength)
	}
	if leafIndicesSize%4 != 0 {
		return fmt.Errorf("merkle leaf indices: %w", wire.ErrIncorrectLength)
	}
	if leafHashesSize%32 != 0 {
		return fmt.Errorf("merkle leaf hashes: %w", wire.ErrIncorrectLength)
	}

	p.RootHash = wire.Bytes32At(buf, merkleRootHash)
	p.TotalLeavesCount = wire.Uint32At(buf, merkleTotalLeaves)

	pos := merkleBaseSize
	p.LeafIndices = make([]uint32, 0, leafIndicesSize/4)
	for end := pos + leafIndicesSize; pos < end; pos += 4 {
		p.LeafIndices = append(p.LeafIndices, wire.Uint32At(buf, pos))
	}
	p.LeafHashes = make([]Sha256Hash, 0, leafHashesSize/32)
	for end := pos + leafHashesSize; pos < end; pos += 32 {
		p.LeafHashes = append(p.LeafHashes, wire.Bytes32At(buf, pos))
	}
	p.Proof = make([]byte, proofSize)
	copy(p.Proof, buf[pos:pos+proofSize])
	return nil
}

// DecodeMerkleProof parses a proof from buf.
func DecodeMerkleProof(buf []byte) (MerkleProof, error) {
	var p MerkleProof
	if err := p.Decode(buf); err != nil {
		return MerkleProof{}, err
	}
	return p, nil
}

// StateProof is the ordered list of opaque trie nodes a verifier walks
// to check StateProofItems against a root hash.
type StateProof = [][]byte

// StateProofItem is one key to verify against a trie root, together
// with the value claimed for it. A nil Value claims the key is absent;
// absence of a value is distinct from absence of the key's entry.
type StateProofItem struct {
	Key   []byte
	Value *[]byte
}

// Wire layout of the StateProofs fixed region.
const (
	stateProofsRootHash  = 0
	stateProofsItemsSize = 32
	stateProofsProofSize = 36

	stateProofsBaseSize = 40
)

var stateProofsLayout = wire.Layout{
	{Name: "root_hash", Size: 32, Offset: stateProofsRootHash},
	{Name: "items_size", Size: 4, Offset: stateProofsItemsSize},
	{Name: "proof_size", Size: 4, Offset: stateProofsProofSize},
}

// StateProofs proves presence or absence of key-value pairs against a
// trie root. Items and the proof blobs are framed with the generic
// composition layer: items as a sequence of (key, optional value)
// pairs, the proof as a sequence of opaque blobs.
type StateProofs struct {
	RootHash Sha256Hash
	Items    []StateProofItem
	Proof    StateProof
}

var (
	stateProofItemCodec  = wire.PairOf(wire.Bytes, wire.OptionOf(wire.Bytes))
	stateProofItemsCodec = wire.SliceOf(stateProofItemCodec)
	stateProofBlobsCodec = wire.SliceOf(wire.Bytes)
)

// Encode returns the canonical wire bytes of the proofs.
func (p *StateProofs) Encode() []byte {
	pairs := make([]wire.Pair[[]byte, *[]byte], len(p.Items))
	for i, item := range p.Items {
		pairs[i] = wire.Pair[[]byte, *[]byte]{First: item.Key, Second: item.Value}
	}
	items := stateProofItemsCodec.Encode(pairs)
	proof := stateProofBlobsCodec.Encode(p.Proof)

	buf := make([]byte, stateProofsBaseSize+len(items)+len(proof))
	wire.PutBytes(buf, stateProofsRootHash, p.RootHash[:])
	wire.PutUint32(buf, stateProofsItemsSize, uint32(len(items)))
	wire.PutUint32(buf, stateProofsProofSize, uint32(len(proof)))
	wire.PutBytes(buf, stateProofsBaseSize, items)
	wire.PutBytes(buf, stateProofsBaseSize+len(items), proof)
	return buf
}

// Decode parses state proofs from buf.
func (p *StateProofs) Decode(buf []byte) error {
	if len(buf) < stateProofsBaseSize {
		return fmt.Errorf("state proofs: %w", wire.ErrIncorrectLength)
	}
	itemsSize := int(wire.Uint32At(buf, stateProofsItemsSize))
	proofSize := int(wire.Uint32At(buf, stateProofsProofSize))
	rest := buf[stateProofsBaseSize:]
	if len(rest) < itemsSize+proofSize {
		return fmt.Errorf("state proofs payload: %w", wire.ErrIncorrectLength)
	}

	pairs, err := stateProofItemsCodec.Decode(rest[:itemsSize])
	if err != nil {
		return err
	}
	proof, err := stateProofBlobsCodec.Decode(rest[itemsSize : itemsSize+proofSize])
	if err != nil {
		return err
	}

	p.RootHash = wire.Bytes32At(buf, stateProofsRootHash)
	p.Items = make([]StateProofItem, len(pairs))
	for i, pair := range pairs {
		p.Items[i] = StateProofItem{Key: pair.First, Value: pair.Second}
	}
	p.Proof = proof
	return nil
}

// DecodeStateProofs parses state proofs from buf.
func DecodeStateProofs(buf []byte) (StateProofs, error) {
	var p StateProofs
	if err := p.Decode(buf); err != nil {
		return StateProofs{}, err
	}
	return p, nil
}
