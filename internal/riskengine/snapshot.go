package riskengine

import (
	"context"
	"fmt"
	"log"
	"sync"

	"rug-radar/internal/provider"
)

// HolderFetcher is the slice of the holder/security provider the engine
// consumes.
type HolderFetcher interface {
	FetchReport(ctx context.Context, mint string) (*provider.HolderReport, error)
}

// MarketFetcher is the slice of the market data provider the engine
// consumes.
type MarketFetcher interface {
	FetchMarketData(ctx context.Context, mint string) (*provider.MarketReport, error)
}

// HolderResult is the failure-as-value outcome of the holder fetch.
type HolderResult struct {
	OK   bool
	Err  string
	Data *provider.HolderReport
}

// MarketResult is the failure-as-value outcome of the market fetch.
type MarketResult struct {
	OK   bool
	Err  string
	Data *provider.MarketReport
}

// Snapshot is everything one evaluation sees. Immutable once gathered;
// one per analysis request.
type Snapshot struct {
	Holder HolderResult
	Market MarketResult
}

// gather fetches both providers concurrently and waits for both to
// settle. A failure (or panic) in one fetch never blocks or invalidates
// the other; it becomes a failed result inside the snapshot.
func gather(ctx context.Context, mint string, holder HolderFetcher, market MarketFetcher) Snapshot {
	var snap Snapshot
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		snap.Holder = fetchHolder(ctx, mint, holder)
	}()
	go func() {
		defer wg.Done()
		snap.Market = fetchMarket(ctx, mint, market)
	}()

	wg.Wait()
	return snap
}

func fetchHolder(ctx context.Context, mint string, f HolderFetcher) (res HolderResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("holder provider panicked for %s: %v", mint, r)
			res = HolderResult{Err: fmt.Sprintf("provider panic: %v", r)}
		}
	}()

	data, err := f.FetchReport(ctx, mint)
	if err != nil {
		log.Printf("holder provider failed for %s: %v", mint, err)
		return HolderResult{Err: err.Error()}
	}
	return HolderResult{OK: true, Data: data}
}

func fetchMarket(ctx context.Context, mint string, f MarketFetcher) (res MarketResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("market provider panicked for %s: %v", mint, r)
			res = MarketResult{Err: fmt.Sprintf("provider panic: %v", r)}
		}
	}()

	data, err := f.FetchMarketData(ctx, mint)
	if err != nil {
		log.Printf("market provider failed for %s: %v", mint, err)
		return MarketResult{Err: err.Error()}
	}
	return MarketResult{OK: true, Data: data}
}
