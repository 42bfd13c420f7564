// Package wiretest provides deterministic random entity fixtures for
// exercising the chainwire codecs in tests.
//
// All generators draw from a caller-supplied *rand.Rand, so a fixed
// seed reproduces the exact same entities.
package wiretest

import (
	"math/rand"

	"github.com/blockberries/chainwire/types"
)

// Rand returns a seeded generator for reproducible fixtures.
func Rand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// BytesN returns n random bytes. Always non-nil, even for n == 0.
func BytesN(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

// Address returns a random public address.
func Address(r *rand.Rand) (a types.PublicAddress) {
	r.Read(a[:])
	return a
}

// Hash returns a random 32-byte hash.
func Hash(r *rand.Rand) (h types.Sha256Hash) {
	r.Read(h[:])
	return h
}

// Sig returns a random 64-byte signature.
func Sig(r *rand.Rand) (s types.Signature) {
	r.Read(s[:])
	return s
}

// Transaction returns a random transaction with up to 1 KiB of data.
func Transaction(r *rand.Rand) types.Transaction {
	return types.Transaction{
		FromAddress:            Address(r),
		ToAddress:              Address(r),
		Value:                  r.Uint64(),
		Tip:                    r.Uint64(),
		GasLimit:               r.Uint64(),
		GasPrice:               r.Uint64(),
		NTxsOnChainFromAddress: r.Uint64(),
		Data:                   BytesN(r, r.Intn(1025)),
		Hash:                   Hash(r),
		Signature:              Sig(r),
	}
}

// Event returns a random event with up to 1 KiB topic and value.
func Event(r *rand.Rand) types.Event {
	return types.Event{
		Topic: BytesN(r, r.Intn(1025)),
		Value: BytesN(r, r.Intn(1025)),
	}
}

var statusCodes = []types.ReceiptStatusCode{
	types.StatusSuccess,
	types.StatusWrongNonce,
	types.StatusNotEnoughBalanceForGasLimit,
	types.StatusNotEnoughBalanceForTransfer,
	types.StatusPreExecutionGasExhausted,
	types.StatusDisallowedOpcode,
	types.StatusCannotCompile,
	types.StatusNoExportedContractMethod,
	types.StatusOtherDeployError,
	types.StatusExecutionProperGasExhausted,
	types.StatusRuntimeError,
	types.StatusInternalExecutionProperGasExhaustion,
	types.StatusInternalRuntimeError,
	types.StatusInternalNotEnoughBalanceForTransfer,
	types.StatusElse,
}

// StatusCode returns a random defined receipt status code.
func StatusCode(r *rand.Rand) types.ReceiptStatusCode {
	return statusCodes[r.Intn(len(statusCodes))]
}

// StatusCodes returns every defined receipt status code.
func StatusCodes() []types.ReceiptStatusCode {
	out := make([]types.ReceiptStatusCode, len(statusCodes))
	copy(out, statusCodes)
	return out
}

// Receipt returns a random receipt with nEvents events.
func Receipt(r *rand.Rand, nEvents int) types.Receipt {
	events := make([]types.Event, 0, nEvents)
	for i := 0; i < nEvents; i++ {
		events = append(events, Event(r))
	}
	return types.Receipt{
		StatusCode:  StatusCode(r),
		GasConsumed: r.Uint64(),
		ReturnValue: BytesN(r, r.Intn(1025)),
		Events:      events,
	}
}

// BlockHeader returns a random block header.
func BlockHeader(r *rand.Rand) types.BlockHeader {
	return types.BlockHeader{
		BlockchainID:       r.Uint64(),
		BlockVersionNumber: r.Uint64(),
		Timestamp:          r.Uint32(),
		PrevBlockHash:      Hash(r),
		ThisBlockHash:      Hash(r),
		StateHash:          Hash(r),
		TxsHash:            Hash(r),
		ReceiptsHash:       Hash(r),
		ProposerPublicKey:  Address(r),
		Signature:          Sig(r),
	}
}

// Block returns a random block with nTxs transactions and nReceipts
// receipts, each receipt carrying up to ten events.
func Block(r *rand.Rand, nTxs, nReceipts int) types.Block {
	txs := make([]types.Transaction, 0, nTxs)
	for i := 0; i < nTxs; i++ {
		txs = append(txs, Transaction(r))
	}
	receipts := make([]types.Receipt, 0, nReceipts)
	for i := 0; i < nReceipts; i++ {
		receipts = append(receipts, Receipt(r, r.Intn(11)))
	}
	return types.Block{
		Header:       BlockHeader(r),
		Transactions: txs,
		Receipts:     receipts,
	}
}

// MerkleProof returns a random proof over nLeaves proven leaves.
func MerkleProof(r *rand.Rand, nLeaves int) types.MerkleProof {
	indices := make([]uint32, 0, nLeaves)
	hashes := make([]types.Sha256Hash, 0, nLeaves)
	for i := 0; i < nLeaves; i++ {
		indices = append(indices, r.Uint32())
		hashes = append(hashes, Hash(r))
	}
	return types.MerkleProof{
		RootHash:         Hash(r),
		TotalLeavesCount: uint32(nLeaves) + r.Uint32()%128,
		LeafIndices:      indices,
		LeafHashes:       hashes,
		Proof:            BytesN(r, r.Intn(257)),
	}
}

// StateProofs returns random state proofs over nItems keys, roughly
// half of them claiming an absent value.
func StateProofs(r *rand.Rand, nItems, nBlobs int) types.StateProofs {
	items := make([]types.StateProofItem, 0, nItems)
	for i := 0; i < nItems; i++ {
		item := types.StateProofItem{Key: BytesN(r, 1+r.Intn(64))}
		if r.Intn(2) == 0 {
			value := BytesN(r, r.Intn(64))
			item.Value = &value
		}
		items = append(items, item)
	}
	proof := make([][]byte, 0, nBlobs)
	for i := 0; i < nBlobs; i++ {
		proof = append(proof, BytesN(r, r.Intn(128)))
	}
	return types.StateProofs{
		RootHash: Hash(r),
		Items:    items,
		Proof:    proof,
	}
}
