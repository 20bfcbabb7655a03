package riskengine

import (
	"fmt"
	"math"

	"rug-radar/internal/domain"
)

// The calculators below are pure functions of the snapshot. Missing data
// never yields a zero-risk result: every calculator has an explicit
// unavailable branch with a moderate default contribution and reduced
// confidence, so absence of evidence is not treated as evidence of
// safety.

func liquidityFactor(s Scoring, snap Snapshot) domain.RiskFactor {
	max := s.LiquidityWeight
	f := domain.RiskFactor{MaxScore: max, Category: FactorLiquidity}

	// Primary signal: lock status from the holder provider.
	if snap.Holder.OK && snap.Holder.Data.LiquidityLocked != nil {
		f.Confidence += 0.6
		if *snap.Holder.Data.LiquidityLocked {
			text := "Liquidity is locked"
			if d := snap.Holder.Data.LockDurationDays; d != nil {
				text = fmt.Sprintf("Liquidity is locked for %.0f days", *d)
			}
			f.Details = append(f.Details, detail(domain.SeverityPositive, text))
		} else {
			f.Score += max
			f.Details = append(f.Details, detail(domain.SeverityCritical,
				"Liquidity is NOT locked, funds can be pulled at any time"))
		}
	} else {
		f.Score += 0.7 * max
		f.Details = append(f.Details, detail(domain.SeverityWarning,
			"Liquidity lock status could not be determined"))
	}

	// Secondary signal: liquidity depth relative to market cap.
	if snap.Market.OK && snap.Market.Data.LiquidityMcapRatio != nil {
		f.Confidence += 0.4
		ratio := *snap.Market.Data.LiquidityMcapRatio
		switch {
		case ratio < s.LiquidityRatioLow:
			f.Score += 0.3 * max
			f.Details = append(f.Details, detail(domain.SeverityWarning,
				fmt.Sprintf("Thin liquidity: %.1f%% of market cap", ratio*100)))
		case ratio > s.LiquidityRatioHealthy:
			f.Details = append(f.Details, detail(domain.SeverityPositive,
				fmt.Sprintf("Healthy liquidity depth: %.1f%% of market cap", ratio*100)))
		default:
			f.Score += 0.1 * max
			f.Details = append(f.Details, detail(domain.SeverityInfo,
				fmt.Sprintf("Moderate liquidity depth: %.1f%% of market cap", ratio*100)))
		}
	} else {
		f.Score += 0.3 * max
		f.Details = append(f.Details, detail(domain.SeverityWarning,
			"Liquidity to market cap ratio unavailable"))
	}

	f.Score = math.Min(f.Score, max)
	return f
}

func concentrationFactor(s Scoring, snap Snapshot) domain.RiskFactor {
	max := s.ConcentrationWeight
	f := domain.RiskFactor{MaxScore: max, Category: FactorConcentration}

	switch {
	case snap.Holder.OK && snap.Holder.Data.TopHolderPercent != nil:
		f.Confidence = 0.9
		pct := *snap.Holder.Data.TopHolderPercent
		switch {
		case pct > s.HolderExtremePct:
			f.Score = max
			f.Details = append(f.Details, detail(domain.SeverityCritical,
				fmt.Sprintf("Top holder controls %.1f%% of supply", pct)))
		case pct > s.HolderHighPct:
			f.Score = 0.6 * max
			f.Details = append(f.Details, detail(domain.SeverityWarning,
				fmt.Sprintf("Top holder holds a large share: %.1f%% of supply", pct)))
		default:
			f.Score = 0.1 * max
			f.Details = append(f.Details, detail(domain.SeverityPositive,
				fmt.Sprintf("Reasonable distribution, top holder at %.1f%%", pct)))
		}
	case snap.Holder.OK:
		f.Score = 0.5 * max
		f.Confidence = 0.3
		f.Details = append(f.Details, detail(domain.SeverityWarning,
			"Top holder percentage missing from holder data"))
	default:
		f.Score = 0.5 * max
		f.Details = append(f.Details, detail(domain.SeverityWarning,
			"Holder distribution data unavailable"))
	}

	return f
}

func ageFactor(s Scoring, snap Snapshot) domain.RiskFactor {
	max := s.AgeWeight
	f := domain.RiskFactor{MaxScore: max, Category: FactorAge}

	switch {
	case snap.Market.OK && snap.Market.Data.AgeHours != nil:
		f.Confidence = 0.9
		age := *snap.Market.Data.AgeHours
		switch {
		case age < s.AgeNewHours:
			f.Score = max
			f.Details = append(f.Details, detail(domain.SeverityCritical,
				fmt.Sprintf("Token is brand new: %.0f hours of trading history", age)))
		case age < s.AgeYoungHours:
			f.Score = 0.6 * max
			f.Details = append(f.Details, detail(domain.SeverityWarning,
				fmt.Sprintf("Token is less than a week old: %.0f hours", age)))
		default:
			f.Score = 0.1 * max
			f.Details = append(f.Details, detail(domain.SeverityPositive,
				fmt.Sprintf("Established trading history: %.0f hours", age)))
		}
	case snap.Holder.OK && snap.Holder.Data.AgeInfo != "":
		// Free-text age descriptor, no numeric parsing guarantee.
		f.Score = 0.4 * max
		f.Confidence = 0.5
		f.Details = append(f.Details, detail(domain.SeverityInfo,
			fmt.Sprintf("Age reported as %q", snap.Holder.Data.AgeInfo)))
	default:
		f.Score = 0.4 * max
		f.Details = append(f.Details, detail(domain.SeverityWarning,
			"Token age unavailable"))
	}

	return f
}

func activityFactor(s Scoring, snap Snapshot) domain.RiskFactor {
	max := s.ActivityWeight
	f := domain.RiskFactor{MaxScore: max, Category: FactorActivity}

	if !snap.Market.OK {
		f.Score = 0.5 * max
		f.Details = append(f.Details, detail(domain.SeverityWarning,
			"Market activity data unavailable"))
		return f
	}

	f.Confidence = 0.85

	if ratio := snap.Market.Data.VolumeMcapRatio; ratio != nil {
		switch {
		case *ratio < s.VolumeRatioLow:
			f.Score += 0.7 * max
			f.Details = append(f.Details, detail(domain.SeverityWarning,
				fmt.Sprintf("Very low trading volume: %.2f%% of market cap", *ratio*100)))
		case *ratio > s.VolumeRatioHigh:
			f.Score += 0.4 * max
			f.Details = append(f.Details, detail(domain.SeverityWarning,
				fmt.Sprintf("Unusually high turnover: %.0f%% of market cap in 24h", *ratio*100)))
		default:
			f.Score += 0.1 * max
			f.Details = append(f.Details, detail(domain.SeverityInfo,
				fmt.Sprintf("Normal trading volume: %.1f%% of market cap", *ratio*100)))
		}
	} else {
		f.Score += 0.5 * max
		f.Confidence = 0.4
		f.Details = append(f.Details, detail(domain.SeverityWarning,
			"Volume to market cap ratio unavailable"))
	}

	pressure := 0.5
	if snap.Market.Data.BuyPressure != nil {
		pressure = *snap.Market.Data.BuyPressure
	}
	switch {
	case pressure < 0.3:
		f.Score += 0.3 * max
		f.Details = append(f.Details, detail(domain.SeverityWarning,
			fmt.Sprintf("Heavy sell pressure: only %.0f%% of trades are buys", pressure*100)))
	case pressure > 0.7:
		f.Details = append(f.Details, detail(domain.SeverityPositive,
			fmt.Sprintf("Strong buy pressure: %.0f%% of trades are buys", pressure*100)))
	default:
		f.Details = append(f.Details, detail(domain.SeverityInfo,
			fmt.Sprintf("Balanced order flow: %.0f%% of trades are buys", pressure*100)))
	}

	f.Score = math.Min(f.Score, max)
	return f
}

func volatilityFactor(s Scoring, snap Snapshot) domain.RiskFactor {
	max := s.VolatilityWeight
	f := domain.RiskFactor{MaxScore: max, Category: FactorVolatility}

	if !snap.Market.OK || snap.Market.Data.PriceChange24hPct == nil {
		f.Score = 0.3 * max
		f.Details = append(f.Details, detail(domain.SeverityWarning,
			"24h price change unavailable"))
		return f
	}

	f.Confidence = 0.8
	change := *snap.Market.Data.PriceChange24hPct
	abs := math.Abs(change)
	switch {
	case abs > 50:
		f.Score = max
		f.Details = append(f.Details, detail(domain.SeverityCritical,
			fmt.Sprintf("Extreme 24h price movement: %+.1f%%", change)))
	case abs > 25:
		f.Score = 0.6 * max
		f.Details = append(f.Details, detail(domain.SeverityWarning,
			fmt.Sprintf("High 24h volatility: %+.1f%%", change)))
	case abs > 10:
		f.Score = 0.3 * max
		f.Details = append(f.Details, detail(domain.SeverityInfo,
			fmt.Sprintf("Moderate 24h movement: %+.1f%%", change)))
	default:
		f.Score = 0.1 * max
		f.Details = append(f.Details, detail(domain.SeverityPositive,
			fmt.Sprintf("Stable price over 24h: %+.1f%%", change)))
	}

	return f
}

func detail(sev domain.Severity, text string) domain.FactorDetail {
	return domain.FactorDetail{Severity: sev, Text: text}
}
