package service

import (
	"context"
	"testing"
	"time"

	"rug-radar/internal/domain"
	"rug-radar/internal/riskengine"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const testMint = "So11111111111111111111111111111111111111112"

type fakeRedis struct {
	store  map[string]string
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.store[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := f.store[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

type fakeEngine struct {
	calls  int
	result *domain.AnalysisResult
}

func (f *fakeEngine) Analyze(ctx context.Context, mint string) *domain.AnalysisResult {
	f.calls++
	return f.result
}

func (f *fakeEngine) Evaluate(mint string, snap riskengine.Snapshot) *domain.AnalysisResult {
	return f.result
}

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

func completedResult(mint string) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ContractAddress: mint,
		Status:          domain.StatusCompleted,
		RiskScore:       42,
		RiskLevel:       domain.RiskMedium,
		Confidence:      0.8,
		DataSources:     []string{domain.ProviderHolder, domain.ProviderMarket},
	}
}

func TestAnalyzeTokenRejectsInvalidMint(t *testing.T) {
	engine := &fakeEngine{result: completedResult(testMint)}
	svc := NewAnalysisService(testTracer(), engine, newFakeRedis(), time.Minute)

	if _, err := svc.AnalyzeToken(context.Background(), "not-a-mint"); err == nil {
		t.Fatal("expected error for invalid mint address")
	}
	if engine.calls != 0 {
		t.Errorf("engine must not run for invalid input, got %d calls", engine.calls)
	}
}

func TestAnalyzeTokenCachesCompletedResults(t *testing.T) {
	engine := &fakeEngine{result: completedResult(testMint)}
	svc := NewAnalysisService(testTracer(), engine, newFakeRedis(), time.Minute)

	first, err := svc.AnalyzeToken(context.Background(), testMint)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := svc.AnalyzeToken(context.Background(), testMint)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if engine.calls != 1 {
		t.Errorf("expected 1 engine call (second served from cache), got %d", engine.calls)
	}
	if first.RiskScore != second.RiskScore || first.RiskLevel != second.RiskLevel {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestAnalyzeTokenSkipsCachingFailures(t *testing.T) {
	engine := &fakeEngine{result: &domain.AnalysisResult{
		ContractAddress: testMint,
		Status:          domain.StatusFailed,
		Error:           "internal error",
	}}
	redisClient := newFakeRedis()
	svc := NewAnalysisService(testTracer(), engine, redisClient, time.Minute)

	if _, err := svc.AnalyzeToken(context.Background(), testMint); err != nil {
		t.Fatalf("AnalyzeToken failed: %v", err)
	}
	if _, err := svc.AnalyzeToken(context.Background(), testMint); err != nil {
		t.Fatalf("AnalyzeToken failed: %v", err)
	}

	if len(redisClient.store) != 0 {
		t.Errorf("failed results must not be cached, store: %v", redisClient.store)
	}
	if engine.calls != 2 {
		t.Errorf("expected 2 engine calls with no caching, got %d", engine.calls)
	}
}

func TestAnalyzeTokenWorksWithoutRedis(t *testing.T) {
	engine := &fakeEngine{result: completedResult(testMint)}
	svc := NewAnalysisService(testTracer(), engine, nil, time.Minute)

	result, err := svc.AnalyzeToken(context.Background(), testMint)
	if err != nil {
		t.Fatalf("AnalyzeToken failed: %v", err)
	}
	if result.RiskScore != 42 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestDemoAnalysisUsesRealEngine(t *testing.T) {
	scoring := riskengine.DefaultScoring()
	tracer := testTracer()
	engine := riskengine.New(nil, nil, scoring, tracer)
	svc := NewAnalysisService(tracer, engine, nil, time.Minute)

	first := svc.DemoAnalysis(context.Background())
	second := svc.DemoAnalysis(context.Background())

	if first.Status != domain.StatusCompleted {
		t.Fatalf("expected completed demo analysis, got %s", first.Status)
	}
	if first.RiskScore != second.RiskScore || first.Confidence != second.Confidence {
		t.Error("demo analysis must be deterministic")
	}
	if len(first.RiskFactors) != 5 {
		t.Errorf("expected 5 factors, got %d", len(first.RiskFactors))
	}
}
