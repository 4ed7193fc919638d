package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

// Tracked USDC/ZERC addresses — Ethereum mainnet
var (
	EthPoolAddress   = common.HexToAddress("0x29eBA991F9D9E71C6bBd69cb71c074193fd877Fd")
	EthUSDCAddress   = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	EthZERCAddress   = common.HexToAddress("0xf8428A5a99cb452Ea50B6Ea70b052DaA3dF4934F")
	EthRouterAddress = common.HexToAddress("0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D")
)

// Tracked USDC/ZERC addresses — Polygon PoS
var (
	PolygonPoolAddress   = common.HexToAddress("0x514480cF3eD104B5c34A17A15859a190E38E97AF")
	PolygonUSDCAddress   = common.HexToAddress("0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359")
	PolygonZERCAddress   = common.HexToAddress("0xE1b3eb06806601828976e491914e3De18B5d6b28")
	PolygonRouterAddress = common.HexToAddress("0xa5E0829CaCEd8fFDD4De3c43696c57F7D7A678ff")
)

// Public fallback endpoints, overridable via ETH_RPC_URL / POLYGON_RPC_URL
const (
	DefaultEthRPC     = "https://eth.llamarpc.com"
	DefaultPolygonRPC = "https://polygon.llamarpc.com"
)

// Uniswap V2 Pair ABI — getReserves plus token0 for reserve orientation
const uniswapV2PairABI = `[
	{
		"constant": true,
		"inputs": [],
		"name": "getReserves",
		"outputs": [
			{"internalType": "uint112", "name": "reserve0", "type": "uint112"},
			{"internalType": "uint112", "name": "reserve1", "type": "uint112"},
			{"internalType": "uint32",  "name": "blockTimestampLast", "type": "uint32"}
		],
		"payable": false,
		"stateMutability": "view",
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "token0",
		"outputs": [{"internalType": "address", "name": "", "type": "address"}],
		"payable": false,
		"stateMutability": "view",
		"type": "function"
	}
]`

// ERC-20 ABI — metadata getters only
const erc20ABI = `[
	{
		"constant": true,
		"inputs": [],
		"name": "name",
		"outputs": [{"internalType": "string", "name": "", "type": "string"}],
		"payable": false,
		"stateMutability": "view",
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "symbol",
		"outputs": [{"internalType": "string", "name": "", "type": "string"}],
		"payable": false,
		"stateMutability": "view",
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "decimals",
		"outputs": [{"internalType": "uint8", "name": "", "type": "uint8"}],
		"payable": false,
		"stateMutability": "view",
		"type": "function"
	}
]`
