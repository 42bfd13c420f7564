package chaingrpc_test

import (
	"context"
	"errors"
	"net"
	"reflect"
	"sync"
	"testing"
	"time"

	chaingrpc "github.com/blockberries/chainwire/grpc"
	"github.com/blockberries/chainwire/types"
	"github.com/blockberries/chainwire/wiretest"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var errNotFound = errors.New("not found")

// memBackend is an in-memory Backend for transport tests.
type memBackend struct {
	mu       sync.Mutex
	blocks   map[types.Sha256Hash]types.Block
	receipts map[types.Sha256Hash]types.Receipt
	accepted []types.Transaction
}

func newMemBackend() *memBackend {
	return &memBackend{
		blocks:   make(map[types.Sha256Hash]types.Block),
		receipts: make(map[types.Sha256Hash]types.Receipt),
	}
}

func (m *memBackend) SubmitTransaction(_ context.Context, tx types.Transaction) (types.Sha256Hash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accepted = append(m.accepted, tx)
	return tx.Hash, nil
}

func (m *memBackend) BlockByHash(_ context.Context, hash types.Sha256Hash) (types.Block, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	block, ok := m.blocks[hash]
	if !ok {
		return types.Block{}, errNotFound
	}
	return block, nil
}

func (m *memBackend) ReceiptByTransactionHash(_ context.Context, txHash types.Sha256Hash) (types.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	receipt, ok := m.receipts[txHash]
	if !ok {
		return types.Receipt{}, errNotFound
	}
	return receipt, nil
}

// startServer starts a gRPC server on a random port and returns the
// listener address and a cleanup function.
func startServer(t *testing.T, backend chaingrpc.Backend) (string, func()) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := grpc.NewServer()
	chaingrpc.NewServer(backend, zerolog.Nop()).Register(s)

	go func() {
		_ = s.Serve(lis)
	}()

	return lis.Addr().String(), func() {
		s.GracefulStop()
	}
}

func dial(t *testing.T, addr string) *chaingrpc.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := chaingrpc.Dial(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	return client
}

func TestWireCodec(t *testing.T) {
	codec := chaingrpc.WireCodec{}
	if codec.Name() != "chainwire" {
		t.Fatalf("codec name: %q", codec.Name())
	}

	r := wiretest.Rand(69)
	ack := &chaingrpc.TransactionAck{Hash: wiretest.Hash(r)}
	data, err := codec.Marshal(ack)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got chaingrpc.TransactionAck
	if err := codec.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Hash != ack.Hash {
		t.Fatalf("hash: got %s, want %s", got.Hash, ack.Hash)
	}

	if _, err := codec.Marshal(struct{}{}); err == nil {
		t.Fatal("expected error for non-wire message")
	}
	if err := codec.Unmarshal(nil, struct{}{}); err == nil {
		t.Fatal("expected error for non-wire message")
	}
}

func TestGRPC_SubmitTransaction(t *testing.T) {
	backend := newMemBackend()
	addr, cleanup := startServer(t, backend)
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	r := wiretest.Rand(70)
	tx := wiretest.Transaction(r)

	hash, err := client.SubmitTransaction(context.Background(), tx)
	if err != nil {
		t.Fatalf("SubmitTransaction: %v", err)
	}
	if hash != tx.Hash {
		t.Fatalf("ack hash: got %s, want %s", hash, tx.Hash)
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.accepted) != 1 {
		t.Fatalf("expected 1 accepted transaction, got %d", len(backend.accepted))
	}
	if !reflect.DeepEqual(backend.accepted[0], tx) {
		t.Fatal("transaction mutated in transit")
	}
}

func TestGRPC_GetBlock(t *testing.T) {
	backend := newMemBackend()

	r := wiretest.Rand(71)
	block := wiretest.Block(r, 20, 20)
	backend.blocks[block.Header.ThisBlockHash] = block

	addr, cleanup := startServer(t, backend)
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	got, err := client.GetBlock(context.Background(), block.Header.ThisBlockHash)
	if err != nil {
		t.Fatalf("GetBlock: %v", err)
	}
	if !reflect.DeepEqual(got, block) {
		t.Fatal("block mutated in transit")
	}

	if _, err := client.GetBlock(context.Background(), wiretest.Hash(r)); err == nil {
		t.Fatal("expected error for unknown block hash")
	}
}

func TestGRPC_GetReceipt(t *testing.T) {
	backend := newMemBackend()

	r := wiretest.Rand(72)
	txHash := wiretest.Hash(r)
	receipt := wiretest.Receipt(r, 4)
	backend.receipts[txHash] = receipt

	addr, cleanup := startServer(t, backend)
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	got, err := client.GetReceipt(context.Background(), txHash)
	if err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}
	if !reflect.DeepEqual(got, receipt) {
		t.Fatal("receipt mutated in transit")
	}

	if _, err := client.GetReceipt(context.Background(), wiretest.Hash(r)); err == nil {
		t.Fatal("expected error for unknown transaction hash")
	}
}
