package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"rug-radar/internal/domain"
	"rug-radar/internal/riskengine"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

// Analyzer is the slice of the risk engine the service consumes.
type Analyzer interface {
	Analyze(ctx context.Context, mint string) *domain.AnalysisResult
	Evaluate(mint string, snap riskengine.Snapshot) *domain.AnalysisResult
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// AnalysisService validates requests, caches completed analyses and
// delegates scoring to the engine.
type AnalysisService struct {
	tracer   trace.Tracer
	engine   Analyzer
	redis    RedisClient
	cacheTTL time.Duration
}

func NewAnalysisService(
	tracer trace.Tracer,
	engine Analyzer,
	redisClient RedisClient,
	cacheTTL time.Duration,
) *AnalysisService {
	return &AnalysisService{
		tracer:   tracer,
		engine:   engine,
		redis:    redisClient,
		cacheTTL: cacheTTL,
	}
}

// AnalyzeToken runs a full risk analysis for the mint address, serving
// from cache when a recent completed result exists.
func (s *AnalysisService) AnalyzeToken(ctx context.Context, mint string) (*domain.AnalysisResult, error) {
	ctx, span := s.tracer.Start(ctx, "analysis-service.analyze-token")
	defer span.End()

	if !domain.ValidMintAddress(mint) {
		return nil, fmt.Errorf("invalid mint address: %s", mint)
	}

	if s.redis != nil {
		cached, err := s.getCache(ctx, mint)
		if err != nil {
			log.Printf("redis cache read error: %v", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	result := s.engine.Analyze(ctx, mint)

	// Failed analyses are not cached so a transient fault does not get
	// pinned for the TTL.
	if s.redis != nil && result.Status == domain.StatusCompleted {
		if err := s.setCache(ctx, result); err != nil {
			log.Printf("redis cache write error for %s: %v", mint, err)
		}
	}

	return result, nil
}

// DemoAnalysis evaluates a fixed reference snapshot. Useful for a quick
// look at the output shape without touching the live providers.
func (s *AnalysisService) DemoAnalysis(ctx context.Context) *domain.AnalysisResult {
	_, span := s.tracer.Start(ctx, "analysis-service.demo-analysis")
	defer span.End()

	mint, snap := riskengine.DemoSnapshot()
	return s.engine.Evaluate(mint, snap)
}

func (s *AnalysisService) setCache(ctx context.Context, result *domain.AnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, "analysis:"+result.ContractAddress, data, s.cacheTTL).Err()
}

func (s *AnalysisService) getCache(ctx context.Context, mint string) (*domain.AnalysisResult, error) {
	data, err := s.redis.Get(ctx, "analysis:"+mint).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result domain.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
