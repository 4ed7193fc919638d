package chain

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type fakeTokenCaller struct {
	t           *testing.T
	contractABI abi.ABI
	name        string
	symbol      string
	decimals    uint8
	failWith    error
	calls       int
}

func newTokenCaller(t *testing.T, name, symbol string, decimals uint8) *fakeTokenCaller {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	require.NoError(t, err)
	return &fakeTokenCaller{
		t:           t,
		contractABI: parsed,
		name:        name,
		symbol:      symbol,
		decimals:    decimals,
	}
}

func (f *fakeTokenCaller) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}

	for name, method := range f.contractABI.Methods {
		if !bytes.Equal(msg.Data[:4], method.ID) {
			continue
		}
		switch name {
		case "name":
			return method.Outputs.Pack(f.name)
		case "symbol":
			return method.Outputs.Pack(f.symbol)
		case "decimals":
			return method.Outputs.Pack(f.decimals)
		}
	}
	return nil, fmt.Errorf("unknown selector %x", msg.Data[:4])
}

func TestTokenReaderMetadata(t *testing.T) {
	caller := newTokenCaller(t, "ZeroCoin", "ZERC", 18)
	reader, err := NewTokenReader(caller, 4)
	require.NoError(t, err)

	md, err := reader.Metadata(context.Background(), testOther)
	require.NoError(t, err)
	require.Equal(t, testOther, md.Address)
	require.Equal(t, "ZeroCoin", md.Name)
	require.Equal(t, "ZERC", md.Symbol)
	require.Equal(t, uint8(18), md.Decimals)
}

func TestTokenReaderCachesByAddress(t *testing.T) {
	caller := newTokenCaller(t, "USD Coin", "USDC", 6)
	reader, err := NewTokenReader(caller, 4)
	require.NoError(t, err)

	first, err := reader.Metadata(context.Background(), testStable)
	require.NoError(t, err)
	callsAfterFirst := caller.calls
	require.Equal(t, 3, callsAfterFirst) // name, symbol, decimals

	second, err := reader.Metadata(context.Background(), testStable)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, callsAfterFirst, caller.calls, "cached lookup must not hit RPC")
}

func TestTokenReaderFailsLoud(t *testing.T) {
	// metadata errors propagate; no placeholder defaults
	caller := newTokenCaller(t, "USD Coin", "USDC", 6)
	caller.failWith = fmt.Errorf("execution reverted")

	reader, err := NewTokenReader(caller, 4)
	require.NoError(t, err)

	_, err = reader.Metadata(context.Background(), common.HexToAddress("0x01"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "execution reverted")
}
