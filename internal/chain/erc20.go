package chain

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
)

// TokenMetadata describes an ERC-20 token. Decimals drive reserve
// normalization, so a failed lookup propagates as an error instead of
// defaulting — sizing trades against guessed decimals is worse than failing.
type TokenMetadata struct {
	Address  common.Address
	Name     string
	Symbol   string
	Decimals uint8
}

// TokenReader fetches ERC-20 metadata over RPC. Metadata is immutable, so
// results are held in a small LRU and each token is queried at most once per
// process.
type TokenReader struct {
	caller ContractCaller
	cache  *lru.Cache[common.Address, TokenMetadata]
}

func NewTokenReader(caller ContractCaller, cacheSize int) (*TokenReader, error) {
	cache, err := lru.New[common.Address, TokenMetadata](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create metadata cache: %w", err)
	}
	return &TokenReader{caller: caller, cache: cache}, nil
}

// Metadata returns the token's name, symbol and decimals.
func (r *TokenReader) Metadata(ctx context.Context, token common.Address) (TokenMetadata, error) {
	if md, ok := r.cache.Get(token); ok {
		return md, nil
	}

	contractABI, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("parse erc20 ABI: %w", err)
	}

	name, err := r.callString(ctx, contractABI, token, "name")
	if err != nil {
		return TokenMetadata{}, err
	}
	symbol, err := r.callString(ctx, contractABI, token, "symbol")
	if err != nil {
		return TokenMetadata{}, err
	}
	decimals, err := r.callUint8(ctx, contractABI, token, "decimals")
	if err != nil {
		return TokenMetadata{}, err
	}

	md := TokenMetadata{
		Address:  token,
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
	}
	r.cache.Add(token, md)
	return md, nil
}

func (r *TokenReader) call(ctx context.Context, contractABI abi.ABI, token common.Address, method string) ([]interface{}, error) {
	data, err := contractABI.Pack(method)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	msg := ethereum.CallMsg{To: &token, Data: data}
	result, err := r.caller.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s on %s: %w", method, token.Hex(), err)
	}

	unpacked, err := contractABI.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(unpacked) < 1 {
		return nil, fmt.Errorf("empty %s result from %s", method, token.Hex())
	}
	return unpacked, nil
}

func (r *TokenReader) callString(ctx context.Context, contractABI abi.ABI, token common.Address, method string) (string, error) {
	unpacked, err := r.call(ctx, contractABI, token, method)
	if err != nil {
		return "", err
	}
	s, ok := unpacked[0].(string)
	if !ok {
		return "", fmt.Errorf("%s type assertion failed for %s", method, token.Hex())
	}
	return s, nil
}

func (r *TokenReader) callUint8(ctx context.Context, contractABI abi.ABI, token common.Address, method string) (uint8, error) {
	unpacked, err := r.call(ctx, contractABI, token, method)
	if err != nil {
		return 0, err
	}
	v, ok := unpacked[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("%s type assertion failed for %s", method, token.Hex())
	}
	return v, nil
}
