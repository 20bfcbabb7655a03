package riskengine

import (
	"context"
	"fmt"
	"log"
	"time"

	"rug-radar/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// Engine runs the full analysis pipeline: gather a snapshot from both
// providers, score the five risk factors, aggregate and synthesize
// guidance. It is stateless and safe for concurrent use.
type Engine struct {
	holder  HolderFetcher
	market  MarketFetcher
	scoring Scoring
	tracer  trace.Tracer
}

func New(holder HolderFetcher, market MarketFetcher, scoring Scoring, tracer trace.Tracer) *Engine {
	return &Engine{
		holder:  holder,
		market:  market,
		scoring: scoring,
		tracer:  tracer,
	}
}

// Analyze gathers fresh provider data for the mint and evaluates it.
// Provider failures degrade confidence rather than failing the request;
// only an unexpected panic in the pipeline produces a failed result.
func (e *Engine) Analyze(ctx context.Context, mint string) (result *domain.AnalysisResult) {
	ctx, span := e.tracer.Start(ctx, "riskengine.analyze")
	defer span.End()

	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("analysis panicked for %s: %v", mint, r)
			result = &domain.AnalysisResult{
				ContractAddress: mint,
				Status:          domain.StatusFailed,
				Error:           fmt.Sprintf("internal error: %v", r),
				DataSources:     []string{domain.ProviderHolder, domain.ProviderMarket},
				StartedAt:       started,
				CompletedAt:     time.Now(),
				Duration:        time.Since(started).Seconds(),
			}
		}
	}()

	snap := gather(ctx, mint, e.holder, e.market)
	result = e.Evaluate(mint, snap)
	result.StartedAt = started
	result.CompletedAt = time.Now()
	result.Duration = result.CompletedAt.Sub(started).Seconds()
	return result
}

// Evaluate scores an already-gathered snapshot. It is a pure function of
// its inputs: identical snapshots produce identical results except for
// the timestamps, which Analyze fills in.
func (e *Engine) Evaluate(mint string, snap Snapshot) *domain.AnalysisResult {
	factors := map[string]domain.RiskFactor{
		FactorLiquidity:     liquidityFactor(e.scoring, snap),
		FactorConcentration: concentrationFactor(e.scoring, snap),
		FactorAge:           ageFactor(e.scoring, snap),
		FactorActivity:      activityFactor(e.scoring, snap),
		FactorVolatility:    volatilityFactor(e.scoring, snap),
	}

	score, confidence := aggregate(factors)

	return &domain.AnalysisResult{
		ContractAddress: mint,
		Status:          domain.StatusCompleted,
		RiskScore:       score,
		RiskLevel:       levelFor(score),
		Confidence:      confidence,
		DataSources:     []string{domain.ProviderHolder, domain.ProviderMarket},
		RiskFactors:     factors,
		Recommendations: recommendations(e.scoring, score, factors),
		Warnings:        warnings(factors),
		Guidance:        guidanceFor(e.scoring, score, factors),
	}
}
