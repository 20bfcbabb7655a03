package provider

// HolderReport is the normalized output of the holder and security
// provider. Pointer fields are nil when the upstream payload omitted
// the value, which the scoring layer treats differently from zero.
type HolderReport struct {
	Mint             string
	LiquidityLocked  *bool
	LockDurationDays *float64
	TopHolderPercent *float64
	AgeInfo          string
	SecurityFlags    []string
}

// MarketReport is the normalized output of the market data provider,
// built from the most liquid trading pair for the token.
type MarketReport struct {
	Mint               string
	PairAddress        string
	Dex                string
	PriceUSD           *float64
	MarketCapUSD       *float64
	LiquidityUSD       *float64
	Volume24hUSD       *float64
	PriceChange24hPct  *float64
	Buys24h            *int
	Sells24h           *int
	AgeHours           *float64
	VolumeMcapRatio    *float64
	LiquidityMcapRatio *float64
	BuyPressure        *float64
}
