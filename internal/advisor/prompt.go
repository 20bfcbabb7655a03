package advisor

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"rug-radar/internal/domain"
)

const riskPhilosophy = `You are a Solana token risk advisor bot. Your role is to interpret rug pull risk analyses, NOT to invent data about tokens.

Risk Levels:
- LOW (0-25): Standard due diligence applies. Larger positions defensible.
- MEDIUM (26-50): Several caution factors. Small positions only.
- HIGH (51-75): Speculative at best. Risk capital only.
- EXTREME (76-100): Strong rug pull indicators. Recommend avoiding.

Rules:
- Always reference the specific risk factors and scores from the analysis context.
- Never fabricate data. If an analysis is missing or low-confidence, say so.
- Low confidence means the data was unavailable, not that the token is safe.
- Keep responses concise and actionable. You are talking via Telegram.
- Do not add financial advice disclaimers on every message. The user understands this is informational.
- When asked about a token, summarize: overall score, risk level, the worst factors, and the position sizing guidance.`

func BuildSystemPrompt(analysisContext string) string {
	var sb strings.Builder
	sb.WriteString(riskPhilosophy)
	sb.WriteString("\n\n--- RISK ANALYSES (as of ")
	sb.WriteString(time.Now().UTC().Format(time.RFC822))
	sb.WriteString(") ---\n")
	sb.WriteString(analysisContext)
	return sb.String()
}

var mintPattern = regexp.MustCompile(`[1-9A-HJ-NP-Za-km-z]{32,44}`)

// ExtractMints pulls plausible mint addresses out of free text, in
// order of first appearance, de-duplicated.
func ExtractMints(text string) []string {
	var mints []string
	seen := make(map[string]bool)
	for _, candidate := range mintPattern.FindAllString(text, -1) {
		if !domain.ValidMintAddress(candidate) || seen[candidate] {
			continue
		}
		seen[candidate] = true
		mints = append(mints, candidate)
	}
	return mints
}

func FormatAnalysisContext(results []*domain.AnalysisResult) string {
	if len(results) == 0 {
		return "No token analyses available for this question."
	}

	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("\nToken %s:\n", r.ContractAddress))
		sb.WriteString(fmt.Sprintf("  Risk: %d/100 (%s), confidence %.2f\n",
			r.RiskScore, r.RiskLevel, r.Confidence))
		for _, w := range r.Warnings {
			sb.WriteString("  Warning: " + w + "\n")
		}
		sb.WriteString("  Position sizing: " + r.Guidance.PositionSizing + "\n")
		sb.WriteString("  " + r.Guidance.MonitoringFocus + "\n")
	}
	return sb.String()
}
