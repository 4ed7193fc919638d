package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ContractCaller is the slice of the RPC surface the pool and token readers
// need. *Client implements it; tests fake it.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Client wraps one chain's RPC connection. Clients are constructed explicitly
// by the caller and injected into whatever reads pool state; there is no
// package-level connection.
type Client struct {
	Name string

	rpc *ethclient.Client
}

// Dial connects to a chain and verifies the endpoint actually responds
// before handing the client out.
func Dial(ctx context.Context, name, rpcURL string) (*Client, error) {
	rpc, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s rpc: %w", name, err)
	}

	if _, err := rpc.ChainID(ctx); err != nil {
		rpc.Close()
		return nil, fmt.Errorf("verify %s rpc connectivity: %w", name, err)
	}

	return &Client{Name: name, rpc: rpc}, nil
}

func (c *Client) Close() {
	c.rpc.Close()
}

func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return c.rpc.CallContract(ctx, msg, blockNumber)
}

// BlockNumber returns the chain head, useful for pinning a scan to one block.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.rpc.BlockNumber(ctx)
}
