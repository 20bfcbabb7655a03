package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"rug-radar/internal/advisor"
	"rug-radar/internal/domain"
	"rug-radar/internal/service"

	tele "gopkg.in/telebot.v3"
)

func StartTelegramBot(analysisService *service.AnalysisService, advisorService *advisor.AdvisorService) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/analyze", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send("Usage: /analyze <mint address>")
		}
		mint := strings.TrimSpace(args[0])
		if !domain.ValidMintAddress(mint) {
			return c.Send("That does not look like a Solana mint address")
		}
		result, err := analysisService.AnalyzeToken(context.Background(), mint)
		if err != nil {
			return c.Send(fmt.Sprintf("Error analyzing %s: %v", mint, err))
		}
		return c.Send(formatAnalysis(result))
	})

	b.Handle("/ask", func(c tele.Context) error {
		if advisorService == nil {
			return c.Send("Advisor is not configured")
		}
		question := strings.TrimSpace(strings.Join(c.Args(), " "))
		if question == "" {
			return c.Send("Usage: /ask <question, optionally with a mint address>")
		}
		reply, err := advisorService.Ask(context.Background(), question)
		if err != nil {
			return c.Send(fmt.Sprintf("Advisor error: %v", err))
		}
		return c.Send(reply)
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func formatAnalysis(r *domain.AnalysisResult) string {
	if r.Status == domain.StatusFailed {
		return fmt.Sprintf("Analysis failed for %s: %s", r.ContractAddress, r.Error)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\nRisk: %d/100 (%s)\nConfidence: %.0f%%\n",
		r.ContractAddress, r.RiskScore, r.RiskLevel, r.Confidence*100))

	if len(r.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range r.Warnings {
			sb.WriteString("  - " + w + "\n")
		}
	}

	sb.WriteString("\nPosition sizing: " + r.Guidance.PositionSizing)
	sb.WriteString("\nTime horizon: " + r.Guidance.TimeHorizon)
	return sb.String()
}
