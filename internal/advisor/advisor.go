package advisor

import (
	"context"
	"fmt"
	"log"

	"rug-radar/internal/domain"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// LLMClient abstracts the OpenAI chat completions API for testability.
type LLMClient interface {
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// TokenAnalyzer provides risk analyses for the advisor's context.
type TokenAnalyzer interface {
	AnalyzeToken(ctx context.Context, mint string) (*domain.AnalysisResult, error)
}

// maxContextTokens caps how many mentioned mints get analyzed per
// question; each analysis costs two provider calls.
const maxContextTokens = 3

// AdvisorService answers free-form questions about token risk. It is
// stateless: each question stands alone with a fresh analysis context.
type AdvisorService struct {
	tracer   trace.Tracer
	llm      LLMClient
	analyses TokenAnalyzer
	model    string
}

func NewAdvisorService(
	tracer trace.Tracer,
	llm LLMClient,
	analyses TokenAnalyzer,
	model string,
) *AdvisorService {
	return &AdvisorService{
		tracer:   tracer,
		llm:      llm,
		analyses: analyses,
		model:    model,
	}
}

func (s *AdvisorService) Ask(ctx context.Context, question string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "advisor.ask")
	defer span.End()

	mints := ExtractMints(question)
	span.SetAttributes(attribute.Int("advisor.mints_mentioned", len(mints)))

	analysisContext := s.gatherContext(ctx, mints)
	systemPrompt := BuildSystemPrompt(analysisContext)

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(question),
	}

	reply, err := s.callLLM(ctx, messages)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("advisor unavailable: %w", err)
	}
	return reply, nil
}

func (s *AdvisorService) gatherContext(ctx context.Context, mints []string) string {
	ctx, span := s.tracer.Start(ctx, "advisor.gather-context")
	defer span.End()

	if len(mints) > maxContextTokens {
		mints = mints[:maxContextTokens]
	}

	var results []*domain.AnalysisResult
	for _, mint := range mints {
		result, err := s.analyses.AnalyzeToken(ctx, mint)
		if err != nil {
			log.Printf("advisor analysis failed for %s: %v", mint, err)
			continue
		}
		results = append(results, result)
	}

	return FormatAnalysisContext(results)
}

func (s *AdvisorService) callLLM(
	ctx context.Context,
	messages []openai.ChatCompletionMessageParamUnion,
) (string, error) {
	ctx, span := s.tracer.Start(ctx, "advisor.llm-call")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", s.model),
		attribute.Int("llm.message_count", len(messages)),
	)

	completion, err := s.llm.CreateChatCompletion(ctx, openai.ChatCompletionNewParams{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in LLM response")
	}

	reply := completion.Choices[0].Message.Content
	span.SetAttributes(attribute.Int("llm.reply_length", len(reply)))
	return reply, nil
}

// openaiClient wraps the official SDK's chat completions service.
type openaiClient struct {
	client openai.Client
}

func NewOpenAIClient(apiKey string) LLMClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &openaiClient{client: client}
}

func (c *openaiClient) CreateChatCompletion(
	ctx context.Context,
	params openai.ChatCompletionNewParams,
) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}
