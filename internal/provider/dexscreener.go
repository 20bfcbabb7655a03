package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const dexscreenerBaseURL = "https://api.dexscreener.com"

// DexScreenerProvider fetches trading pair data for a Solana token and
// derives activity metrics from the most liquid pair.
type DexScreenerProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewDexScreenerProvider creates a new provider with built-in rate limiting.
// Rate limited to 60 requests per minute.
func NewDexScreenerProvider(tracer trace.Tracer) *DexScreenerProvider {
	return &DexScreenerProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: dexscreenerBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(60, time.Second),
	}
}

type dexPair struct {
	PairAddress string   `json:"pairAddress"`
	DexID       string   `json:"dexId"`
	PriceUSD    string   `json:"priceUsd"`
	FDV         *float64 `json:"fdv"`
	MarketCap   *float64 `json:"marketCap"`
	Liquidity   struct {
		USD *float64 `json:"usd"`
	} `json:"liquidity"`
	Volume struct {
		H24 *float64 `json:"h24"`
	} `json:"volume"`
	PriceChange struct {
		H24 *float64 `json:"h24"`
	} `json:"priceChange"`
	Txns struct {
		H24 struct {
			Buys  *int `json:"buys"`
			Sells *int `json:"sells"`
		} `json:"h24"`
	} `json:"txns"`
	PairCreatedAt int64 `json:"pairCreatedAt"`
}

// FetchMarketData fetches all pairs for the mint and normalizes the most
// liquid one. Returns an error when the token has no trading pairs.
func (p *DexScreenerProvider) FetchMarketData(ctx context.Context, mint string) (*MarketReport, error) {
	_, span := p.tracer.Start(ctx, "dexscreener.fetch-market-data")
	defer span.End()

	url := fmt.Sprintf("%s/latest/dex/tokens/%s", p.baseURL, mint)

	body, err := p.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch market data for %s: %w", mint, err)
	}

	var raw struct {
		Pairs []dexPair `json:"pairs"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse market data for %s: %w", mint, err)
	}
	if len(raw.Pairs) == 0 {
		return nil, fmt.Errorf("no trading pairs found for %s", mint)
	}

	best := bestPair(raw.Pairs)
	return normalizePair(mint, best, time.Now()), nil
}

// bestPair picks the pair with the highest USD liquidity. Pairs without
// liquidity data sort last.
func bestPair(pairs []dexPair) dexPair {
	best := pairs[0]
	bestLiq := -1.0
	for _, pair := range pairs {
		if pair.Liquidity.USD == nil {
			continue
		}
		if *pair.Liquidity.USD > bestLiq {
			bestLiq = *pair.Liquidity.USD
			best = pair
		}
	}
	return best
}

func normalizePair(mint string, pair dexPair, now time.Time) *MarketReport {
	report := &MarketReport{
		Mint:              mint,
		PairAddress:       pair.PairAddress,
		Dex:               pair.DexID,
		MarketCapUSD:      pair.MarketCap,
		LiquidityUSD:      pair.Liquidity.USD,
		Volume24hUSD:      pair.Volume.H24,
		PriceChange24hPct: pair.PriceChange.H24,
		Buys24h:           pair.Txns.H24.Buys,
		Sells24h:          pair.Txns.H24.Sells,
	}

	if price, err := strconv.ParseFloat(pair.PriceUSD, 64); err == nil {
		report.PriceUSD = &price
	}

	// Fully diluted valuation stands in for market cap when the latter
	// is missing, which is common for fresh pairs.
	if report.MarketCapUSD == nil && pair.FDV != nil {
		report.MarketCapUSD = pair.FDV
	}

	if pair.PairCreatedAt > 0 {
		age := now.Sub(time.UnixMilli(pair.PairCreatedAt)).Hours()
		if age >= 0 {
			report.AgeHours = &age
		}
	}

	if report.MarketCapUSD != nil && *report.MarketCapUSD > 0 {
		if report.Volume24hUSD != nil {
			ratio := *report.Volume24hUSD / *report.MarketCapUSD
			report.VolumeMcapRatio = &ratio
		}
		if report.LiquidityUSD != nil {
			ratio := *report.LiquidityUSD / *report.MarketCapUSD
			report.LiquidityMcapRatio = &ratio
		}
	}

	if report.Buys24h != nil && report.Sells24h != nil {
		total := *report.Buys24h + *report.Sells24h
		if total > 0 {
			pressure := float64(*report.Buys24h) / float64(total)
			report.BuyPressure = &pressure
		}
	}

	return report
}

func (p *DexScreenerProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("dexscreener API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// WithBaseURL overrides the API base URL, used when routing through a
// self-hosted proxy.
func (p *DexScreenerProvider) WithBaseURL(url string) *DexScreenerProvider {
	if url != "" {
		p.baseURL = url
	}
	return p
}
