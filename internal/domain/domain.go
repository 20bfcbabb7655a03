package domain

import "time"

// Provider keys as they appear in AnalysisResult.DataSources. The holder
// provider covers liquidity locks and holder distribution, the market
// provider covers price, volume and derived trading metrics.
const (
	ProviderHolder = "rugcheck.xyz"
	ProviderMarket = "dexscreener.com"
)

type AnalysisStatus string

const (
	StatusInProgress AnalysisStatus = "in_progress"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

type RiskLevel string

const (
	RiskLow     RiskLevel = "LOW"
	RiskMedium  RiskLevel = "MEDIUM"
	RiskHigh    RiskLevel = "HIGH"
	RiskExtreme RiskLevel = "EXTREME"
)

// Severity classifies a single factor observation.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeverityPositive Severity = "positive"
)

// FactorDetail is one annotated observation inside a risk factor.
type FactorDetail struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// RiskFactor is one scored risk dimension. Score is expressed in absolute
// points out of MaxScore, Confidence reflects how much of the relevant
// input data was actually present (independent of the score itself).
type RiskFactor struct {
	Score      float64        `json:"score"`
	MaxScore   float64        `json:"max_score"`
	Confidence float64        `json:"confidence"`
	Details    []FactorDetail `json:"details"`
	Category   string         `json:"category"`
}

// InvestmentGuidance is the structured advice bundle derived from the
// overall score and the per-factor scores.
type InvestmentGuidance struct {
	PositionSizing  string `json:"position_sizing"`
	EntryStrategy   string `json:"entry_strategy"`
	ExitStrategy    string `json:"exit_strategy"`
	TimeHorizon     string `json:"time_horizon"`
	MonitoringFocus string `json:"monitoring_focus"`
}

// AnalysisResult is the terminal artifact of one analysis request.
type AnalysisResult struct {
	ContractAddress string                `json:"contract_address"`
	Status          AnalysisStatus        `json:"analysis_status"`
	RiskScore       int                   `json:"risk_score"`
	RiskLevel       RiskLevel             `json:"risk_level"`
	Confidence      float64               `json:"confidence_score"`
	DataSources     []string              `json:"data_sources"`
	RiskFactors     map[string]RiskFactor `json:"risk_factors"`
	Recommendations []string              `json:"recommendations"`
	Warnings        []string              `json:"warnings"`
	Guidance        InvestmentGuidance    `json:"investment_guidance"`
	Error           string                `json:"error,omitempty"`
	StartedAt       time.Time             `json:"started_at"`
	CompletedAt     time.Time             `json:"completed_at"`
	Duration        float64               `json:"analysis_duration_secs"`
}

func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh, RiskExtreme:
		return true
	}
	return false
}
