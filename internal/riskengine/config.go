package riskengine

// Factor names, also used as keys in AnalysisResult.RiskFactors.
const (
	FactorLiquidity     = "liquidity_risk"
	FactorConcentration = "holder_concentration"
	FactorAge           = "age_risk"
	FactorActivity      = "market_activity"
	FactorVolatility    = "price_volatility"
)

// factorOrder fixes the iteration order wherever output determinism
// matters (warnings, extra recommendations, monitoring focus).
var factorOrder = []string{
	FactorLiquidity,
	FactorConcentration,
	FactorAge,
	FactorActivity,
	FactorVolatility,
}

// Scoring holds the factor weights and bucket thresholds. Built once at
// startup and passed into the engine, never mutated afterwards. Branch
// contributions inside the calculators are fractions of the weight, so
// retuning a weight is a single edit here.
type Scoring struct {
	LiquidityWeight     float64
	ConcentrationWeight float64
	AgeWeight           float64
	ActivityWeight      float64
	VolatilityWeight    float64

	// Token age buckets in hours.
	AgeNewHours   float64
	AgeYoungHours float64

	// Top single holder percentage buckets.
	HolderHighPct    float64
	HolderExtremePct float64

	// Liquidity to market cap ratio buckets.
	LiquidityRatioLow     float64
	LiquidityRatioHealthy float64

	// 24h volume to market cap ratio buckets.
	VolumeRatioLow  float64
	VolumeRatioHigh float64

	// Factors scoring above this many absolute points get a dedicated
	// recommendation and a mention in the monitoring focus.
	AttentionPoints float64
}

// DefaultScoring returns the production weight and threshold table.
// Weights sum to 100 so the theoretical maximum overall score is 100.
func DefaultScoring() Scoring {
	return Scoring{
		LiquidityWeight:     30,
		ConcentrationWeight: 25,
		AgeWeight:           20,
		ActivityWeight:      15,
		VolatilityWeight:    10,

		AgeNewHours:   24,
		AgeYoungHours: 168,

		HolderHighPct:    30,
		HolderExtremePct: 50,

		LiquidityRatioLow:     0.05,
		LiquidityRatioHealthy: 0.15,

		VolumeRatioLow:  0.01,
		VolumeRatioHigh: 0.5,

		AttentionPoints: 15,
	}
}
