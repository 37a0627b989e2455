package model

// Holding is one position as reported by a broker, read-only to the analyzer.
// Volatility and Beta are optional per-instrument estimates; zero means
// "unknown" and the analyzer substitutes its documented defaults.
type Holding struct {
	Symbol        string  `json:"symbol"`
	Quantity      float64 `json:"quantity"`
	AveragePrice  float64 `json:"average_price"`
	CurrentPrice  float64 `json:"current_price"`
	CurrentValue  float64 `json:"current_value"`
	InvestedValue float64 `json:"invested_value"`
	Pnl           float64 `json:"pnl"`
	PnlPercentage float64 `json:"pnl_percentage"`
	DayPnl        float64 `json:"day_pnl"`
	AssetType     string  `json:"asset_type"`
	Volatility    float64 `json:"volatility,omitempty"`
	Beta          float64 `json:"beta,omitempty"`
}

// HistoricalReturns carries optional per-period return series for the
// portfolio and a market benchmark. Either slice may be empty.
type HistoricalReturns struct {
	Portfolio []float64 `json:"portfolio_returns"`
	Market    []float64 `json:"market_returns"`
}

// PortfolioMetrics is recomputed from scratch on every analysis call.
type PortfolioMetrics struct {
	TotalValue           float64   `json:"total_value" bson:"totalValue"`
	TotalInvestment      float64   `json:"total_investment" bson:"totalInvestment"`
	TotalPnl             float64   `json:"total_pnl" bson:"totalPnl"`
	TotalPnlPercentage   float64   `json:"total_pnl_percentage" bson:"totalPnlPercentage"`
	DayPnl               float64   `json:"day_pnl" bson:"dayPnl"`
	DayPnlPercentage     float64   `json:"day_pnl_percentage" bson:"dayPnlPercentage"`
	SharpeRatio          float64   `json:"sharpe_ratio" bson:"sharpeRatio"`
	MaxDrawdown          float64   `json:"max_drawdown" bson:"maxDrawdown"`
	Volatility           float64   `json:"volatility" bson:"volatility"`
	Beta                 float64   `json:"beta" bson:"beta"`
	Alpha                float64   `json:"alpha" bson:"alpha"`
	RiskLevel            RiskLevel `json:"risk_level" bson:"riskLevel"`
	DiversificationRatio float64   `json:"diversification_ratio" bson:"diversificationRatio"`
	ConcentrationRisk    float64   `json:"concentration_risk" bson:"concentrationRisk"`
}

// AssetAllocation is the value-weight breakdown in percent (0-100).
type AssetAllocation struct {
	Equity      float64 `json:"equity" bson:"equity"`
	Debt        float64 `json:"debt" bson:"debt"`
	Commodities float64 `json:"commodities" bson:"commodities"`
	Forex       float64 `json:"forex" bson:"forex"`
	Crypto      float64 `json:"crypto" bson:"crypto"`
	Others      float64 `json:"others" bson:"others"`
}

// PortfolioResponse is the REST payload for holdings listings.
type PortfolioResponse struct {
	Broker             BrokerType `json:"broker"`
	TotalValue         float64    `json:"total_value"`
	TotalInvestment    float64    `json:"total_investment"`
	TotalPnl           float64    `json:"total_pnl"`
	TotalPnlPercentage float64    `json:"total_pnl_percentage"`
	Holdings           []Holding  `json:"holdings"`
	LastUpdated        string     `json:"last_updated"`
}

// AnalysisResponse is the REST payload for portfolio risk analysis.
type AnalysisResponse struct {
	Broker          BrokerType       `json:"broker"`
	Metrics         PortfolioMetrics `json:"metrics"`
	AssetAllocation AssetAllocation  `json:"asset_allocation"`
	Recommendations []string         `json:"recommendations"`
	AnalysisDate    string           `json:"analysis_date"`
}

// PortfolioContext is the optional holding context passed into instrument analysis.
type PortfolioContext struct {
	Quantity      float64 `json:"quantity"`
	AveragePrice  float64 `json:"average_price"`
	PnlPercentage float64 `json:"pnl_percentage"`
}
