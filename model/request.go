package model

// AnalyzeStockRequest asks for a fused recommendation for one instrument.
type AnalyzeStockRequest struct {
	Symbol           string            `json:"symbol"`
	Exchange         string            `json:"exchange"`
	Range            YahooTimeRange    `json:"range"`
	PortfolioContext *PortfolioContext `json:"portfolio_context,omitempty"`
}

// AnalyzePortfolioRequest asks for a portfolio risk profile.
type AnalyzePortfolioRequest struct {
	Broker            BrokerType         `json:"broker"`
	HistoricalReturns *HistoricalReturns `json:"historical_returns,omitempty"`
}

// LoginRequest authenticates the dashboard user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
