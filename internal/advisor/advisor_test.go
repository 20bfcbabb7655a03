package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rug-radar/internal/domain"

	"github.com/openai/openai-go"
	"go.opentelemetry.io/otel/trace"
)

const testMint = "So11111111111111111111111111111111111111112"

type stubLLMClient struct {
	response   *openai.ChatCompletion
	err        error
	lastParams openai.ChatCompletionNewParams
}

func (s *stubLLMClient) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	s.lastParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

type stubAnalyzer struct {
	result *domain.AnalysisResult
	err    error
	calls  []string
}

func (s *stubAnalyzer) AnalyzeToken(ctx context.Context, mint string) (*domain.AnalysisResult, error) {
	s.calls = append(s.calls, mint)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func llmReply(text string) *openai.ChatCompletion {
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: text}},
		},
	}
}

func TestAskHappyPath(t *testing.T) {
	llm := &stubLLMClient{response: llmReply("Looks risky, keep it small")}
	analyzer := &stubAnalyzer{result: &domain.AnalysisResult{
		ContractAddress: testMint,
		Status:          domain.StatusCompleted,
		RiskScore:       68,
		RiskLevel:       domain.RiskHigh,
		Confidence:      0.85,
		Warnings:        []string{"Liquidity is NOT locked, funds can be pulled at any time"},
		Guidance: domain.InvestmentGuidance{
			PositionSizing:  "0.5% of portfolio",
			MonitoringFocus: "Focus monitoring on: liquidity_risk",
		},
	}}

	svc := NewAdvisorService(
		trace.NewNoopTracerProvider().Tracer("test"),
		llm, analyzer, "gpt-4o-mini",
	)

	reply, err := svc.Ask(context.Background(), "Is "+testMint+" safe to buy?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Looks risky, keep it small" {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if len(analyzer.calls) != 1 || analyzer.calls[0] != testMint {
		t.Fatalf("expected one analysis for the mentioned mint, got %v", analyzer.calls)
	}
}

func TestAskNoMintsMentioned(t *testing.T) {
	llm := &stubLLMClient{response: llmReply("Paste a mint address and I'll check it")}
	analyzer := &stubAnalyzer{}

	svc := NewAdvisorService(
		trace.NewNoopTracerProvider().Tracer("test"),
		llm, analyzer, "gpt-4o-mini",
	)

	if _, err := svc.Ask(context.Background(), "what is a rug pull?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(analyzer.calls) != 0 {
		t.Errorf("expected no analyses without a mint mention, got %v", analyzer.calls)
	}
}

func TestAskLLMError(t *testing.T) {
	llm := &stubLLMClient{err: errors.New("api down")}
	analyzer := &stubAnalyzer{}

	svc := NewAdvisorService(
		trace.NewNoopTracerProvider().Tracer("test"),
		llm, analyzer, "gpt-4o-mini",
	)

	if _, err := svc.Ask(context.Background(), "anything"); err == nil {
		t.Fatal("expected error from LLM failure")
	}
}

func TestAskAnalysisFailureNonFatal(t *testing.T) {
	llm := &stubLLMClient{response: llmReply("No analysis data for that token")}
	analyzer := &stubAnalyzer{err: errors.New("providers down")}

	svc := NewAdvisorService(
		trace.NewNoopTracerProvider().Tracer("test"),
		llm, analyzer, "gpt-4o-mini",
	)

	reply, err := svc.Ask(context.Background(), "Check "+testMint)
	if err != nil {
		t.Fatalf("analysis failure should be non-fatal, got: %v", err)
	}
	if reply == "" {
		t.Fatal("expected a reply")
	}
}

func TestExtractMints(t *testing.T) {
	text := "compare " + testMint + " against " + testMint + " and EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v please"
	mints := ExtractMints(text)
	if len(mints) != 2 {
		t.Fatalf("expected 2 unique mints, got %v", mints)
	}
	if mints[0] != testMint {
		t.Errorf("expected first-appearance order, got %v", mints)
	}
}

func TestExtractMintsIgnoresNoise(t *testing.T) {
	if mints := ExtractMints("nothing here, just words"); len(mints) != 0 {
		t.Errorf("expected no mints, got %v", mints)
	}
}

func TestFormatAnalysisContextEmpty(t *testing.T) {
	got := FormatAnalysisContext(nil)
	if !strings.Contains(got, "No token analyses") {
		t.Errorf("unexpected empty context: %q", got)
	}
}

func TestBuildSystemPromptIncludesContext(t *testing.T) {
	prompt := BuildSystemPrompt("Token XYZ: Risk: 90/100")
	if !strings.Contains(prompt, "Token XYZ") {
		t.Error("expected analysis context embedded in prompt")
	}
	if !strings.Contains(prompt, "EXTREME") {
		t.Error("expected risk level rubric in prompt")
	}
}
