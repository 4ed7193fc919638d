package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"

	"github.com/kinsyudev/dcentralabs-assignment/internal/amm"
	"github.com/kinsyudev/dcentralabs-assignment/internal/chain"
	"github.com/kinsyudev/dcentralabs-assignment/internal/export"
	"github.com/kinsyudev/dcentralabs-assignment/internal/simulator"
	"github.com/kinsyudev/dcentralabs-assignment/internal/storage"
)

func main() {
	_ = godotenv.Load()

	rounds := flag.Int("rounds", 10, "max arbitrage rounds to simulate")
	minGap := flag.Float64("min-gap", 0.01, "stop once the relative price gap falls below this (percent)")
	dbPath := flag.String("db", "", "optional sqlite path to log the run")
	parquetPath := flag.String("parquet", "", "optional parquet path to export per-round results")
	timeout := flag.Duration("timeout", 60*time.Second, "overall deadline for RPC calls")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	ethClient, err := chain.Dial(ctx, "ethereum", getenv("ETH_RPC_URL", chain.DefaultEthRPC))
	if err != nil {
		log.Fatalf("connect to ethereum: %v", err)
	}
	defer ethClient.Close()

	polClient, err := chain.Dial(ctx, "polygon", getenv("POLYGON_RPC_URL", chain.DefaultPolygonRPC))
	if err != nil {
		log.Fatalf("connect to polygon: %v", err)
	}
	defer polClient.Close()

	ethSide, err := loadSide(ctx, ethClient, chain.EthPoolAddress, chain.EthUSDCAddress, chain.EthZERCAddress)
	if err != nil {
		log.Fatalf("load ethereum pool: %v", err)
	}

	polSide, err := loadSide(ctx, polClient, chain.PolygonPoolAddress, chain.PolygonUSDCAddress, chain.PolygonZERCAddress)
	if err != nil {
		log.Fatalf("load polygon pool: %v", err)
	}

	snap := amm.Snapshot{PoolA: ethSide.reserves, PoolB: polSide.reserves}
	pair := fmt.Sprintf("%s/%s", ethSide.stable.Symbol, ethSide.other.Symbol)

	fmt.Printf("Pool Reserves (%s):\n", pair)
	fmt.Println("===================")
	printSide("ethereum", ethSide)
	printSide("polygon", polSide)

	priceEth, err := amm.Price(snap.PoolA.Stable, snap.PoolA.Other)
	if err != nil {
		log.Fatalf("ethereum pool is malformed: %v", err)
	}
	pricePol, err := amm.Price(snap.PoolB.Stable, snap.PoolB.Other)
	if err != nil {
		log.Fatalf("polygon pool is malformed: %v", err)
	}

	fmt.Println("\nPrices:")
	fmt.Println("=======")
	fmt.Printf("  ethereum: %.6f %s per %s\n", priceEth, ethSide.stable.Symbol, ethSide.other.Symbol)
	fmt.Printf("  polygon:  %.6f %s per %s\n", pricePol, polSide.stable.Symbol, polSide.other.Symbol)
	fmt.Printf("  gap:      %.4f%%\n", amm.PriceGapPct(priceEth, pricePol))

	result, err := simulator.Simulate(snap, *rounds, *minGap)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}

	if len(result.Rounds) == 0 {
		fmt.Printf("\nNo arbitrage currently available (%s)\n", result.StopReason)
	} else {
		fmt.Println("\nSimulated Rounds:")
		fmt.Println("=================")
		for i, round := range result.Rounds {
			fmt.Printf("  round %d: %s\n", i+1, directionLabel(round.Direction))
			fmt.Printf("    input:   %.2f %s\n", round.Input, ethSide.stable.Symbol)
			fmt.Printf("    bridged: %.6f %s\n", round.Bridged, ethSide.other.Symbol)
			fmt.Printf("    output:  %.2f %s\n", round.Output, ethSide.stable.Symbol)
			fmt.Printf("    profit:  %.2f %s\n", round.Profit, ethSide.stable.Symbol)
		}

		fmt.Println("\nTotals:")
		fmt.Println("=======")
		fmt.Printf("  rounds:  %d (stopped: %s)\n", len(result.Rounds), result.StopReason)
		fmt.Printf("  input:   %.2f %s\n", result.TotalInput, ethSide.stable.Symbol)
		fmt.Printf("  bridged: %.6f %s\n", result.TotalBridged, ethSide.other.Symbol)
		fmt.Printf("  output:  %.2f %s\n", result.TotalOutput, ethSide.stable.Symbol)
		fmt.Printf("  profit:  %.2f %s\n", result.TotalProfit, ethSide.stable.Symbol)

		finalEth, _ := amm.Price(result.Final.PoolA.Stable, result.Final.PoolA.Other)
		finalPol, _ := amm.Price(result.Final.PoolB.Stable, result.Final.PoolB.Other)
		fmt.Printf("  final gap: %.4f%%\n", amm.PriceGapPct(finalEth, finalPol))
	}

	if *dbPath != "" {
		db, err := storage.NewRunDB(*dbPath)
		if err != nil {
			log.Fatalf("open run db: %v", err)
		}
		defer db.Close()

		runID, err := db.SaveRun(pair, result)
		if err != nil {
			log.Fatalf("save run: %v", err)
		}
		fmt.Printf("\nlogged run %d to %s\n", runID, *dbPath)
	}

	if *parquetPath != "" {
		if err := export.WriteRounds(*parquetPath, result.Rounds); err != nil {
			log.Fatalf("export rounds: %v", err)
		}
		fmt.Printf("exported %d rounds to %s\n", len(result.Rounds), *parquetPath)
	}
}

// poolSide bundles one chain's pool state with its token metadata.
type poolSide struct {
	state    *chain.PoolState
	stable   chain.TokenMetadata
	other    chain.TokenMetadata
	reserves amm.PoolReserves
}

func loadSide(ctx context.Context, client *chain.Client, pool, stable, other common.Address) (*poolSide, error) {
	tokens, err := chain.NewTokenReader(client, 16)
	if err != nil {
		return nil, err
	}

	stableMD, err := tokens.Metadata(ctx, stable)
	if err != nil {
		return nil, fmt.Errorf("stable token metadata: %w", err)
	}
	otherMD, err := tokens.Metadata(ctx, other)
	if err != nil {
		return nil, fmt.Errorf("token metadata: %w", err)
	}

	state, err := chain.LoadPool(ctx, client, pool, stable, nil)
	if err != nil {
		return nil, err
	}

	return &poolSide{
		state:    state,
		stable:   stableMD,
		other:    otherMD,
		reserves: state.Reserves(stableMD.Decimals, otherMD.Decimals),
	}, nil
}

func printSide(name string, side *poolSide) {
	fmt.Printf("\n%s (%s):\n", name, side.state.Address.Hex())
	fmt.Printf("  %s: %.2f\n", side.stable.Symbol, side.reserves.Stable)
	fmt.Printf("  %s: %.6f\n", side.other.Symbol, side.reserves.Other)
}

func directionLabel(d amm.Direction) string {
	switch d {
	case amm.DirectionBuyOnA:
		return "buy on ethereum, sell on polygon"
	case amm.DirectionBuyOnB:
		return "buy on polygon, sell on ethereum"
	default:
		return d.String()
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
