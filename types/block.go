package types

import (
	"fmt"
	"sync"

	"github.com/blockberries/chainwire/wire"
)

// Wire layout of the BlockHeader, which is entirely fixed-size.
const (
	headerBlockchainID      = 0
	headerVersion           = 8
	headerTimestamp         = 16
	headerPrevBlockHash     = 20
	headerThisBlockHash     = 52
	headerStateHash         = 84
	headerTxsHash           = 116
	headerReceiptsHash      = 148
	headerProposerPublicKey = 180
	headerSignature         = 212

	headerBaseSize = 276
)

var blockHeaderLayout = wire.Layout{
	{Name: "blockchain_id", Size: 8, Offset: headerBlockchainID},
	{Name: "block_version_number", Size: 8, Offset: headerVersion},
	{Name: "timestamp", Size: 4, Offset: headerTimestamp},
	{Name: "prev_block_hash", Size: 32, Offset: headerPrevBlockHash},
	{Name: "this_block_hash", Size: 32, Offset: headerThisBlockHash},
	{Name: "state_hash", Size: 32, Offset: headerStateHash},
	{Name: "txs_hash", Size: 32, Offset: headerTxsHash},
	{Name: "receipts_hash", Size: 32, Offset: headerReceiptsHash},
	{Name: "proposer_public_key", Size: 32, Offset: headerProposerPublicKey},
	{Name: "signature", Size: 64, Offset: headerSignature},
}

// Offsets of the two aggregate byte lengths that follow the header in
// an encoded Block: the transaction region length and the receipt
// region length.
const (
	blockTxRegionLen      = 0
	blockReceiptRegionLen = 4

	blockRegionLensSize = 8
)

var blockRegionLensLayout = wire.Layout{
	{Name: "transactions_size", Size: 4, Offset: blockTxRegionLen},
	{Name: "receipts_size", Size: 4, Offset: blockReceiptRegionLen},
}

// BlockHeader carries the chain identity, timing, and the external
// commitments (hashes, proposer key, signature) for one block. All
// hash fields are computed elsewhere and merely carried here.
type BlockHeader struct {
	BlockchainID       uint64
	BlockVersionNumber uint64
	// Unix timestamp, seconds.
	Timestamp         uint32
	PrevBlockHash     Sha256Hash
	ThisBlockHash     Sha256Hash
	StateHash         Sha256Hash
	TxsHash           Sha256Hash
	ReceiptsHash      Sha256Hash
	ProposerPublicKey PublicAddress
	Signature         Signature
}

// Encode returns the canonical wire bytes of the header.
func (h *BlockHeader) Encode() []byte {
	buf := make([]byte, headerBaseSize)
	wire.PutUint64(buf, headerBlockchainID, h.BlockchainID)
	wire.PutUint64(buf, headerVersion, h.BlockVersionNumber)
	wire.PutUint32(buf, headerTimestamp, h.Timestamp)
	wire.PutBytes(buf, headerPrevBlockHash, h.PrevBlockHash[:])
	wire.PutBytes(buf, headerThisBlockHash, h.ThisBlockHash[:])
	wire.PutBytes(buf, headerStateHash, h.StateHash[:])
	wire.PutBytes(buf, headerTxsHash, h.TxsHash[:])
	wire.PutBytes(buf, headerReceiptsHash, h.ReceiptsHash[:])
	wire.PutBytes(buf, headerProposerPublicKey, h.ProposerPublicKey[:])
	wire.PutBytes(buf, headerSignature, h.Signature[:])
	return buf
}

// Decode parses a header from the front of buf. Bytes past the fixed
// region are ignored, so a full Block encoding is a valid input.
func (h *BlockHeader) Decode(buf []byte) error {
	if len(buf) < headerBaseSize {
		return fmt.Errorf("block header: %w", wire.ErrIncorrectLength)
	}
	h.BlockchainID = wire.Uint64At(buf, headerBlockchainID)
	h.BlockVersionNumber = wire.Uint64At(buf, headerVersion)
	h.Timestamp = wire.Uint32At(buf, headerTimestamp)
	h.PrevBlockHash = wire.Bytes32At(buf, headerPrevBlockHash)
	h.ThisBlockHash = wire.Bytes32At(buf, headerThisBlockHash)
	h.StateHash = wire.Bytes32At(buf, headerStateHash)
	h.TxsHash = wire.Bytes32At(buf, headerTxsHash)
	h.ReceiptsHash = wire.Bytes32At(buf, headerReceiptsHash)
	h.ProposerPublicKey = wire.Bytes32At(buf, headerProposerPublicKey)
	h.Signature = wire.Bytes64At(buf, headerSignature)
	return nil
}

// DecodeBlockHeader parses a header from the front of buf.
func DecodeBlockHeader(buf []byte) (BlockHeader, error) {
	var h BlockHeader
	if err := h.Decode(buf); err != nil {
		return BlockHeader{}, err
	}
	return h, nil
}

// Block is the unit of parallel encode and decode: header, then the
// ordered transaction list, then the ordered receipt list. The codec
// does not require the two lists to have equal length; positional
// pairing of receipts to transactions is an outer layer's concern.
//
// Wire form: header (276 bytes), u32 transaction-region byte length,
// u32 receipt-region byte length, transaction region, receipt region.
// Each region is a flat run of self-describing items.
type Block struct {
	Header       BlockHeader
	Transactions []Transaction
	Receipts     []Receipt
}

// Encode returns the canonical wire bytes of the block. The
// transaction and receipt regions are built concurrently, each in its
// own exactly-sized buffer, so the output depends only on the list
// contents and order, never on scheduling.
func (b *Block) Encode() []byte {
	headerBytes := b.Header.Encode()

	var txRegion, receiptRegion []byte
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		txRegion = encodeTransactionRegion(b.Transactions)
	}()
	go func() {
		defer wg.Done()
		receiptRegion = encodeReceiptRegion(b.Receipts)
	}()
	wg.Wait()

	out := make([]byte, 0, headerBaseSize+blockRegionLensSize+len(txRegion)+len(receiptRegion))
	out = append(out, headerBytes...)
	var lens [blockRegionLensSize]byte
	wire.PutUint32(lens[:], blockTxRegionLen, uint32(len(txRegion)))
	wire.PutUint32(lens[:], blockReceiptRegionLen, uint32(len(receiptRegion)))
	out = append(out, lens[:]...)
	out = append(out, txRegion...)
	out = append(out, receiptRegion...)
	return out
}

// encodeTransactionRegion lays the transactions out back to back as
// self-describing items. The buffer is sized up front and allocated
// once.
func encodeTransactionRegion(txs []Transaction) []byte {
	total := 0
	for i := range txs {
		total += txs[i].EncodedSize()
	}
	buf := make([]byte, total)
	pos := 0
	for i := range txs {
		pos += txs[i].encodeTo(buf[pos:])
	}
	return buf
}

func encodeReceiptRegion(receipts []Receipt) []byte {
	total := 0
	for i := range receipts {
		total += receipts[i].EncodedSize()
	}
	buf := make([]byte, total)
	pos := 0
	for i := range receipts {
		pos += receipts[i].encodeTo(buf[pos:])
	}
	return buf
}

// Decode parses a block from buf. The transaction and receipt regions
// are scanned concurrently; each scan owns a disjoint slice of the
// input and fails the whole decode on the first malformed item.
// When both scans fail, the transaction-region error is surfaced.
func (b *Block) Decode(buf []byte) error {
	var header BlockHeader
	if err := header.Decode(buf); err != nil {
		return err
	}

	rest := buf[headerBaseSize:]
	if len(rest) < blockRegionLensSize {
		return fmt.Errorf("block region lengths: %w", wire.ErrIncorrectLength)
	}
	txLen := int(wire.Uint32At(rest, blockTxRegionLen))
	receiptLen := int(wire.Uint32At(rest, blockReceiptRegionLen))
	rest = rest[blockRegionLensSize:]
	if len(rest) < txLen+receiptLen {
		return fmt.Errorf("block regions: %w", wire.ErrIncorrectLength)
	}
	txRegion := rest[:txLen]
	receiptRegion := rest[txLen : txLen+receiptLen]

	var (
		txs        []Transaction
		receipts   []Receipt
		txErr      error
		receiptErr error
	)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		txs, txErr = decodeTransactionRegion(txRegion)
	}()
	go func() {
		defer wg.Done()
		receipts, receiptErr = decodeReceiptRegion(receiptRegion)
	}()
	wg.Wait()

	if txErr != nil {
		return txErr
	}
	if receiptErr != nil {
		return receiptErr
	}

	b.Header = header
	b.Transactions = txs
	b.Receipts = receipts
	return nil
}

// decodeTransactionRegion linear-scans a flat run of self-describing
// transaction items until the region is exhausted.
func decodeTransactionRegion(region []byte) ([]Transaction, error) {
	txs := make([]Transaction, 0)
	pos := 0
	for pos < len(region) {
		size, err := transactionWireSize(region[pos:])
		if err != nil {
			return nil, err
		}
		if pos+size > len(region) {
			return nil, fmt.Errorf("transaction region: %w", wire.ErrIncorrectLength)
		}
		var tx Transaction
		if err := tx.Decode(region[pos : pos+size]); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
		pos += size
	}
	return txs, nil
}

func decodeReceiptRegion(region []byte) ([]Receipt, error) {
	receipts := make([]Receipt, 0)
	pos := 0
	for pos < len(region) {
		size, err := receiptWireSize(region[pos:])
		if err != nil {
			return nil, err
		}
		if pos+size > len(region) {
			return nil, fmt.Errorf("receipt region: %w", wire.ErrIncorrectLength)
		}
		var r Receipt
		if err := r.Decode(region[pos : pos+size]); err != nil {
			return nil, err
		}
		receipts = append(receipts, r)
		pos += size
	}
	return receipts, nil
}

// DecodeBlock parses a block from buf.
func DecodeBlock(buf []byte) (Block, error) {
	var b Block
	if err := b.Decode(buf); err != nil {
		return Block{}, err
	}
	return b, nil
}

// BlockCodec adapts Block to the wire composition layer.
var BlockCodec = wire.NewCodec(
	func(b Block) []byte { return b.Encode() },
	DecodeBlock,
)
