package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/kinsyudev/dcentralabs-assignment/internal/amm"
)

// PoolState is a pool's raw reserve state with the stable side resolved, in
// base units as returned by the contract.
type PoolState struct {
	Address       common.Address
	StableReserve *uint256.Int
	OtherReserve  *uint256.Int
}

// FetchReserves reads getReserves from a pair contract. A nil block number
// reads the latest state.
func FetchReserves(
	ctx context.Context,
	caller ContractCaller,
	poolAddress common.Address,
	blockNum *big.Int,
) (reserve0, reserve1 *uint256.Int, err error) {
	contractABI, err := abi.JSON(strings.NewReader(uniswapV2PairABI))
	if err != nil {
		return nil, nil, fmt.Errorf("parse pair ABI: %w", err)
	}

	data, err := contractABI.Pack("getReserves")
	if err != nil {
		return nil, nil, fmt.Errorf("pack getReserves: %w", err)
	}

	msg := ethereum.CallMsg{
		To:   &poolAddress,
		Data: data,
	}

	result, err := caller.CallContract(ctx, msg, blockNum)
	if err != nil {
		return nil, nil, fmt.Errorf("call getReserves on %s: %w", poolAddress.Hex(), err)
	}

	unpacked, err := contractABI.Unpack("getReserves", result)
	if err != nil {
		return nil, nil, fmt.Errorf("unpack reserves: %w", err)
	}
	if len(unpacked) < 2 {
		return nil, nil, fmt.Errorf("unexpected unpack result length: %d", len(unpacked))
	}

	r0, ok := unpacked[0].(*big.Int)
	if !ok {
		return nil, nil, fmt.Errorf("reserve0 type assertion failed")
	}
	r1, ok := unpacked[1].(*big.Int)
	if !ok {
		return nil, nil, fmt.Errorf("reserve1 type assertion failed")
	}

	reserve0, overflow := uint256.FromBig(r0)
	if overflow {
		return nil, nil, fmt.Errorf("reserve0 overflows uint256: %s", r0)
	}
	reserve1, overflow = uint256.FromBig(r1)
	if overflow {
		return nil, nil, fmt.Errorf("reserve1 overflows uint256: %s", r1)
	}

	return reserve0, reserve1, nil
}

// FetchToken0 returns the pair's token0 address.
func FetchToken0(
	ctx context.Context,
	caller ContractCaller,
	poolAddress common.Address,
	blockNum *big.Int,
) (common.Address, error) {
	contractABI, err := abi.JSON(strings.NewReader(uniswapV2PairABI))
	if err != nil {
		return common.Address{}, fmt.Errorf("parse pair ABI: %w", err)
	}

	data, err := contractABI.Pack("token0")
	if err != nil {
		return common.Address{}, fmt.Errorf("pack token0: %w", err)
	}

	msg := ethereum.CallMsg{To: &poolAddress, Data: data}
	result, err := caller.CallContract(ctx, msg, blockNum)
	if err != nil {
		return common.Address{}, fmt.Errorf("call token0 on %s: %w", poolAddress.Hex(), err)
	}

	return common.BytesToAddress(result), nil
}

// LoadPool fetches a pool's reserves and orients them so the stable asset
// comes first, regardless of the pair's token ordering on that chain.
func LoadPool(
	ctx context.Context,
	caller ContractCaller,
	poolAddress, stableAddress common.Address,
	blockNum *big.Int,
) (*PoolState, error) {
	token0, err := FetchToken0(ctx, caller, poolAddress, blockNum)
	if err != nil {
		return nil, fmt.Errorf("fetch token0: %w", err)
	}

	reserve0, reserve1, err := FetchReserves(ctx, caller, poolAddress, blockNum)
	if err != nil {
		return nil, fmt.Errorf("fetch reserves: %w", err)
	}

	state := &PoolState{Address: poolAddress}
	if token0 == stableAddress {
		state.StableReserve = reserve0
		state.OtherReserve = reserve1
	} else {
		state.StableReserve = reserve1
		state.OtherReserve = reserve0
	}

	return state, nil
}

// Normalize converts a raw base-unit amount into a decimal token amount.
// This is the boundary between raw chain state and the float64 math core.
func Normalize(raw *uint256.Int, decimals uint8) float64 {
	value := new(big.Float).SetInt(raw.ToBig())
	scale := new(big.Float).SetInt(new(big.Int).Exp(
		big.NewInt(10),
		big.NewInt(int64(decimals)),
		nil,
	))
	normalized, _ := new(big.Float).Quo(value, scale).Float64()
	return normalized
}

// Reserves returns the pool's decimal-normalized reserves for the math core.
func (p *PoolState) Reserves(stableDecimals, otherDecimals uint8) amm.PoolReserves {
	return amm.PoolReserves{
		Stable: Normalize(p.StableReserve, stableDecimals),
		Other:  Normalize(p.OtherReserve, otherDecimals),
	}
}
