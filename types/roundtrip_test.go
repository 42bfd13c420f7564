package types_test

import (
	"testing"

	"github.com/blockberries/chainwire/types"
	"github.com/blockberries/chainwire/wire"
	"github.com/blockberries/chainwire/wiretest"

	"github.com/stretchr/testify/require"
)

// roundTrip encodes v, decodes into a fresh T, and returns it.
func roundTrip[T any, P interface {
	*T
	wire.Marshaler
	wire.Unmarshaler
}](t *testing.T, v *T) T {
	t.Helper()
	data := P(v).Encode()
	var out T
	require.NoError(t, P(&out).Decode(data))
	return out
}

// Every entity must reject a one-byte truncation and an empty buffer
// with IncorrectLength.
func TestTruncationSensitivity(t *testing.T) {
	r := wiretest.Rand(1)
	mp := wiretest.MerkleProof(r, 3)
	sp := wiretest.StateProofs(r, 3, 2)
	tx := wiretest.Transaction(r)
	rc := wiretest.Receipt(r, 3)
	ev := wiretest.Event(r)
	hd := wiretest.BlockHeader(r)
	bl := wiretest.Block(r, 5, 5)
	cd := types.CallData{MethodName: "transfer", Arguments: []byte{1, 2}}
	pt := types.ParamsFromTransaction{Data: []byte{1, 2, 3}}
	pb := types.ParamsFromBlockchain{ThisBlockNumber: 7}
	dp := types.ContractDeployment{ContractCode: []byte{0x00, 0x61}, ContractInitArguments: []byte{9}}

	entities := []struct {
		name  string
		bytes []byte
		fresh func() wire.Unmarshaler
	}{
		{"transaction", tx.Encode(), func() wire.Unmarshaler { return new(types.Transaction) }},
		{"event", ev.Encode(), func() wire.Unmarshaler { return new(types.Event) }},
		{"receipt", rc.Encode(), func() wire.Unmarshaler { return new(types.Receipt) }},
		{"block_header", hd.Encode(), func() wire.Unmarshaler { return new(types.BlockHeader) }},
		{"block", bl.Encode(), func() wire.Unmarshaler { return new(types.Block) }},
		{"merkle_proof", mp.Encode(), func() wire.Unmarshaler { return new(types.MerkleProof) }},
		{"state_proofs", sp.Encode(), func() wire.Unmarshaler { return new(types.StateProofs) }},
		{"call_data", cd.Encode(), func() wire.Unmarshaler { return new(types.CallData) }},
		{"params_from_transaction", pt.Encode(), func() wire.Unmarshaler { return new(types.ParamsFromTransaction) }},
		{"params_from_blockchain", pb.Encode(), func() wire.Unmarshaler { return new(types.ParamsFromBlockchain) }},
		{"contract_deployment", dp.Encode(), func() wire.Unmarshaler { return new(types.ContractDeployment) }},
	}

	for _, tc := range entities {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fresh().Decode(tc.bytes[:len(tc.bytes)-1])
			require.ErrorIs(t, err, wire.ErrIncorrectLength, "truncated by one byte")

			err = tc.fresh().Decode(nil)
			require.ErrorIs(t, err, wire.ErrIncorrectLength, "empty buffer")
		})
	}
}

// Encoding the same logical value twice yields byte-identical output.
func TestDeterminism(t *testing.T) {
	r := wiretest.Rand(2)
	bl := wiretest.Block(r, 50, 20)
	require.Equal(t, bl.Encode(), bl.Encode())

	tx := wiretest.Transaction(r)
	require.Equal(t, tx.Encode(), tx.Encode())

	sp := wiretest.StateProofs(r, 4, 3)
	require.Equal(t, sp.Encode(), sp.Encode())
}
