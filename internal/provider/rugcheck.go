package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const rugcheckBaseURL = "https://api.rugcheck.xyz/v1"

// RugcheckProvider fetches liquidity lock, holder distribution and
// security flag data for a Solana token.
type RugcheckProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewRugcheckProvider creates a new provider with built-in rate limiting.
// Rate limited to 10 requests per minute (one token every 6 seconds).
func NewRugcheckProvider(tracer trace.Tracer) *RugcheckProvider {
	return &RugcheckProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: rugcheckBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(10, 6*time.Second),
	}
}

type rugcheckResponse struct {
	Mint      string `json:"mint"`
	Liquidity struct {
		Locked           *bool    `json:"locked"`
		LockDurationDays *float64 `json:"lock_duration_days"`
	} `json:"liquidity"`
	HolderData struct {
		TopHolderPercent *float64 `json:"top_holder_percent"`
	} `json:"holder_data"`
	MarketData struct {
		AgeInfo string `json:"age_info"`
	} `json:"market_data"`
	SecurityFlags []string `json:"security_flags"`
}

// FetchReport fetches the token report for the given mint address.
func (p *RugcheckProvider) FetchReport(ctx context.Context, mint string) (*HolderReport, error) {
	_, span := p.tracer.Start(ctx, "rugcheck.fetch-report")
	defer span.End()

	url := fmt.Sprintf("%s/tokens/%s/report", p.baseURL, mint)

	body, err := p.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch report for %s: %w", mint, err)
	}

	var raw rugcheckResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse report for %s: %w", mint, err)
	}

	return &HolderReport{
		Mint:             mint,
		LiquidityLocked:  raw.Liquidity.Locked,
		LockDurationDays: raw.Liquidity.LockDurationDays,
		TopHolderPercent: raw.HolderData.TopHolderPercent,
		AgeInfo:          raw.MarketData.AgeInfo,
		SecurityFlags:    raw.SecurityFlags,
	}, nil
}

func (p *RugcheckProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
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
		return nil, fmt.Errorf("rugcheck API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// WithBaseURL overrides the API base URL, used when routing through a
// self-hosted proxy.
func (p *RugcheckProvider) WithBaseURL(url string) *RugcheckProvider {
	if url != "" {
		p.baseURL = url
	}
	return p
}
