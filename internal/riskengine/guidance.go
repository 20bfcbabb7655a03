package riskengine

import (
	"strings"

	"rug-radar/internal/domain"
)

// factorAdvice maps a factor that crossed the attention threshold to one
// concrete recommendation.
var factorAdvice = map[string]string{
	FactorLiquidity:     "Verify the liquidity lock on-chain before entering",
	FactorConcentration: "Watch the top holder wallets for large transfers",
	FactorAge:           "Wait for more trading history before committing size",
	FactorActivity:      "Use limit orders, thin order books amplify slippage",
	FactorVolatility:    "Expect violent swings and set stops wider than usual",
}

// recommendations builds the level-appropriate headline pair plus one
// extra recommendation per factor above the attention threshold.
func recommendations(s Scoring, score int, factors map[string]domain.RiskFactor) []string {
	var recs []string
	switch {
	case score <= 25:
		recs = append(recs,
			"Relatively low risk profile, standard due diligence still applies",
			"Position sizing: 3-5% of portfolio is defensible")
	case score <= 50:
		recs = append(recs,
			"Moderate risk, several factors warrant caution",
			"Position sizing: limit to 1-2% of portfolio")
	case score <= 75:
		recs = append(recs,
			"High risk, treat any entry as speculative",
			"Position sizing: no more than 0.5% of portfolio")
	default:
		recs = append(recs,
			"Extreme risk, multiple rug pull indicators present",
			"Position sizing: 0.1% of portfolio at most, or avoid entirely")
	}

	for _, name := range factorOrder {
		f, ok := factors[name]
		if !ok || f.Score <= s.AttentionPoints {
			continue
		}
		if advice, ok := factorAdvice[name]; ok {
			recs = append(recs, advice)
		}
	}
	return recs
}

// warnings surfaces critical and warning details, but only from factors
// scoring at least 70% of their own weight. De-duplicated by text.
func warnings(factors map[string]domain.RiskFactor) []string {
	var out []string
	seen := make(map[string]bool)
	for _, name := range factorOrder {
		f, ok := factors[name]
		if !ok || f.Score < 0.7*f.MaxScore {
			continue
		}
		for _, d := range f.Details {
			if d.Severity != domain.SeverityCritical && d.Severity != domain.SeverityWarning {
				continue
			}
			if seen[d.Text] {
				continue
			}
			seen[d.Text] = true
			out = append(out, d.Text)
		}
	}
	return out
}

// guidanceFor assembles the structured advice bundle. Every field is an
// independent lookup on the overall score except the monitoring focus,
// which lists the factors above the attention threshold.
func guidanceFor(s Scoring, score int, factors map[string]domain.RiskFactor) domain.InvestmentGuidance {
	g := domain.InvestmentGuidance{}

	switch {
	case score <= 25:
		g.PositionSizing = "3-5% of portfolio"
	case score <= 50:
		g.PositionSizing = "1-2% of portfolio"
	case score <= 75:
		g.PositionSizing = "0.5% of portfolio"
	default:
		g.PositionSizing = "0.1% of portfolio, or skip"
	}

	switch {
	case score <= 25:
		g.EntryStrategy = "Scale in over several entries at support levels"
		g.ExitStrategy = "Take partial profits into strength, trail the rest"
		g.TimeHorizon = "Weeks to months"
	case score <= 60:
		g.EntryStrategy = "Small initial entry, add only if risk factors improve"
		g.ExitStrategy = "Tight stop loss, take profits quickly"
		g.TimeHorizon = "Days to weeks"
	default:
		g.EntryStrategy = "Minimal probe entry if entering at all"
		g.ExitStrategy = "Exit at the first sign of liquidity or holder movement"
		g.TimeHorizon = "Hours to days, do not hold overnight without monitoring"
	}

	var hot []string
	for _, name := range factorOrder {
		if f, ok := factors[name]; ok && f.Score > s.AttentionPoints {
			hot = append(hot, f.Category)
		}
	}
	if len(hot) > 0 {
		g.MonitoringFocus = "Focus monitoring on: " + strings.Join(hot, ", ")
	} else {
		g.MonitoringFocus = "No single dominant risk factor, monitor overall market conditions"
	}

	return g
}
