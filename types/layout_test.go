package types

import (
	"testing"

	"github.com/blockberries/chainwire/wire"

	"github.com/stretchr/testify/require"
)

// Every entity layout table must be contiguous and gap-free, and its
// derived base size must match the constant the codec slices with.
func TestEntityLayouts(t *testing.T) {
	cases := []struct {
		name     string
		layout   wire.Layout
		baseSize int
	}{
		{"transaction", transactionLayout, transactionBaseSize},
		{"event", eventLayout, eventBaseSize},
		{"receipt", receiptLayout, receiptBaseSize},
		{"block_header", blockHeaderLayout, headerBaseSize},
		{"block_region_lengths", blockRegionLensLayout, blockRegionLensSize},
		{"merkle_proof", merkleProofLayout, merkleBaseSize},
		{"state_proofs", stateProofsLayout, stateProofsBaseSize},
		{"call_data", callDataLayout, callDataBaseSize},
		{"params_from_transaction", paramsFromTransactionLayout, paramsTxBaseSize},
		{"params_from_blockchain", paramsFromBlockchainLayout, paramsBcBaseSize},
		{"contract_deployment", contractDeploymentLayout, deployBaseSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.layout.Validate())
			require.Equal(t, tc.baseSize, tc.layout.BaseSize())
		})
	}
}

// Fixed-region sizes are bit-exact wire contracts.
func TestBaseSizeContracts(t *testing.T) {
	require.Equal(t, 204, transactionBaseSize)
	require.Equal(t, 276, headerBaseSize)
	require.Equal(t, 17, receiptBaseSize)
	require.Equal(t, 8, eventBaseSize)
	require.Equal(t, 48, merkleBaseSize)
}
