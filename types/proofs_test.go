package types_test

import (
	"testing"

	"github.com/blockberries/chainwire/types"
	"github.com/blockberries/chainwire/wire"
	"github.com/blockberries/chainwire/wiretest"

	"github.com/stretchr/testify/require"
)

func TestMerkleProof_RoundTrip(t *testing.T) {
	r := wiretest.Rand(40)
	p := wiretest.MerkleProof(r, 7)
	require.Equal(t, p, roundTrip(t, &p))
}

func TestMerkleProof_RoundTripEmpty(t *testing.T) {
	r := wiretest.Rand(41)
	p := types.MerkleProof{
		RootHash:         wiretest.Hash(r),
		TotalLeavesCount: 0,
		LeafIndices:      []uint32{},
		LeafHashes:       []types.Sha256Hash{},
		Proof:            []byte{},
	}
	got := roundTrip(t, &p)
	require.Equal(t, p, got)
	require.Len(t, p.Encode(), 48)
}

func TestMerkleProof_MisalignedRegions(t *testing.T) {
	r := wiretest.Rand(42)
	p := wiretest.MerkleProof(r, 2)
	enc := p.Encode()

	// Indices region length not a multiple of 4.
	badIdx := append([]byte(nil), enc...)
	wire.PutUint32(badIdx, 36, 6)
	var out types.MerkleProof
	require.ErrorIs(t, out.Decode(badIdx), wire.ErrIncorrectLength)

	// Hashes region length not a multiple of 32.
	badHash := append([]byte(nil), enc...)
	wire.PutUint32(badHash, 40, 33)
	require.ErrorIs(t, out.Decode(badHash), wire.ErrIncorrectLength)
}

func TestStateProofs_RoundTrip(t *testing.T) {
	r := wiretest.Rand(43)
	p := wiretest.StateProofs(r, 8, 4)
	require.Equal(t, p, roundTrip(t, &p))
}

// Presence and absence of values must survive the trip: an item with
// a nil Value claims its key is absent, which is not the same claim
// as an empty value.
func TestStateProofs_PresentAndAbsentValues(t *testing.T) {
	r := wiretest.Rand(44)
	some := wiretest.BytesN(r, 32)
	big := wiretest.BytesN(r, 35)
	empty := []byte{}
	p := types.StateProofs{
		RootHash: wiretest.Hash(r),
		Items: []types.StateProofItem{
			{Key: wiretest.BytesN(r, 21), Value: &some},
			{Key: wiretest.BytesN(r, 23), Value: nil},
			{Key: wiretest.BytesN(r, 24), Value: &big},
			{Key: wiretest.BytesN(r, 5), Value: &empty},
		},
		Proof: [][]byte{
			wiretest.BytesN(r, 100),
			wiretest.BytesN(r, 0),
			wiretest.BytesN(r, 7),
		},
	}

	got := roundTrip(t, &p)
	require.Equal(t, p, got)
	require.NotNil(t, got.Items[0].Value)
	require.Nil(t, got.Items[1].Value)
	require.NotNil(t, got.Items[3].Value)
	require.Empty(t, *got.Items[3].Value)
}

func TestStateProofs_RoundTripEmpty(t *testing.T) {
	r := wiretest.Rand(45)
	p := types.StateProofs{
		RootHash: wiretest.Hash(r),
		Items:    []types.StateProofItem{},
		Proof:    [][]byte{},
	}
	got := roundTrip(t, &p)
	require.Equal(t, p, got)
}

func TestStateProofs_TruncatedItems(t *testing.T) {
	r := wiretest.Rand(46)
	p := wiretest.StateProofs(r, 3, 2)
	enc := p.Encode()

	// Overstate the items region so it eats into the proof blobs.
	itemsSize := wire.Uint32At(enc, 32)
	wire.PutUint32(enc, 32, itemsSize+1)

	var out types.StateProofs
	require.ErrorIs(t, out.Decode(enc), wire.ErrIncorrectLength)
}
