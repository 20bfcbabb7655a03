package riskengine

import "rug-radar/internal/provider"

// DemoSnapshot returns a fixed mid-risk snapshot used by the demo
// endpoint. Deterministic on purpose: the same response every time.
func DemoSnapshot() (string, Snapshot) {
	const mint = "DemoTokenMint1111111111111111111111111111111"

	locked := false
	topHolder := 38.0
	ageHours := 96.0
	volRatio := 0.04
	liqRatio := 0.08
	buyPressure := 0.42
	change24h := -18.5

	return mint, Snapshot{
		Holder: HolderResult{OK: true, Data: &provider.HolderReport{
			Mint:             mint,
			LiquidityLocked:  &locked,
			TopHolderPercent: &topHolder,
			SecurityFlags:    []string{"mint_authority_disabled"},
		}},
		Market: MarketResult{OK: true, Data: &provider.MarketReport{
			Mint:               mint,
			AgeHours:           &ageHours,
			VolumeMcapRatio:    &volRatio,
			LiquidityMcapRatio: &liqRatio,
			BuyPressure:        &buyPressure,
			PriceChange24hPct:  &change24h,
		}},
	}
}
