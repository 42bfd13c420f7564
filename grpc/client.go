package chaingrpc

import (
	"context"
	"fmt"

	"github.com/blockberries/chainwire/types"

	"google.golang.org/grpc"
)

// Client is a chain service client. All payloads travel in canonical
// wire encoding.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote chain service.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(WireCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("chain service client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

// SubmitTransaction submits a transaction and returns the hash the
// node accepted it under.
func (c *Client) SubmitTransaction(ctx context.Context, tx types.Transaction) (types.Sha256Hash, error) {
	ack := new(TransactionAck)
	if err := c.cc.Invoke(ctx, fullMethod("SubmitTransaction"), &tx, ack); err != nil {
		return types.Sha256Hash{}, err
	}
	return ack.Hash, nil
}

// GetBlock fetches the block with the given block hash.
func (c *Client) GetBlock(ctx context.Context, hash types.Sha256Hash) (types.Block, error) {
	resp := new(types.Block)
	req := &BlockRequest{Hash: hash}
	if err := c.cc.Invoke(ctx, fullMethod("GetBlock"), req, resp); err != nil {
		return types.Block{}, err
	}
	return *resp, nil
}

// GetReceipt fetches the receipt of the transaction with the given
// hash.
func (c *Client) GetReceipt(ctx context.Context, txHash types.Sha256Hash) (types.Receipt, error) {
	resp := new(types.Receipt)
	req := &ReceiptRequest{TxHash: txHash}
	if err := c.cc.Invoke(ctx, fullMethod("GetReceipt"), req, resp); err != nil {
		return types.Receipt{}, err
	}
	return *resp, nil
}
