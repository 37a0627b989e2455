package service

import (
	"backend/customerrors"
	"backend/model"
	"backend/repository"
	"backend/util"
	"context"
	"math"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

const (
	riskFreeRate      = 0.05
	marketReturnRate  = 0.12
	tradingDaysPerYr  = 252
	defaultVolatility = 0.20
	defaultBeta       = 1.0
	drawdownProxyMult = 1.5
)

type PortfolioService interface {
	GetPortfolio(ctx context.Context, broker model.BrokerType) (model.PortfolioResponse, error)
	AnalyzePortfolio(ctx context.Context, request model.AnalyzePortfolioRequest) (model.AnalysisResponse, error)
	GetLatestAnalysis(ctx context.Context, broker model.BrokerType) (*model.AnalysisResponse, error)
}

// HoldingsProvider is the broker-side contract, satisfied by client.Trading212Client.
type HoldingsProvider interface {
	GetPortfolio(ctx context.Context) ([]model.Holding, error)
	IsConfigured() bool
}

type PortfolioServiceImpl struct {
	trading212   HoldingsProvider
	analysisRepo *repository.AnalysisRepository
}

func NewPortfolioService(trading212 HoldingsProvider, analysisRepo *repository.AnalysisRepository) PortfolioService {
	return &PortfolioServiceImpl{
		trading212:   trading212,
		analysisRepo: analysisRepo,
	}
}

func (s *PortfolioServiceImpl) GetPortfolio(ctx context.Context, broker model.BrokerType) (model.PortfolioResponse, error) {
	holdings, err := s.fetchHoldings(ctx, broker)
	if err != nil {
		return model.PortfolioResponse{}, err
	}

	var totalValue, totalInvestment float64
	for _, h := range holdings {
		totalValue += h.CurrentValue
		totalInvestment += h.InvestedValue
	}

	response := model.PortfolioResponse{
		Broker:          broker,
		TotalValue:      util.RoundTwo(totalValue),
		TotalInvestment: util.RoundTwo(totalInvestment),
		TotalPnl:        util.RoundTwo(totalValue - totalInvestment),
		Holdings:        holdings,
		LastUpdated:     time.Now().UTC().Format(time.RFC3339),
	}
	if totalInvestment != 0 {
		response.TotalPnlPercentage = util.RoundTwo((totalValue - totalInvestment) / totalInvestment * 100)
	}

	return response, nil
}

// AnalyzePortfolio recomputes the full risk profile from scratch. Nothing is
// carried over between calls, so the same holdings always produce the same
// metrics.
func (s *PortfolioServiceImpl) AnalyzePortfolio(ctx context.Context, request model.AnalyzePortfolioRequest) (model.AnalysisResponse, error) {
	holdings, err := s.fetchHoldings(ctx, request.Broker)
	if err != nil {
		return model.AnalysisResponse{}, err
	}

	metrics := ComputeMetrics(holdings, request.HistoricalReturns)
	allocation := ComputeAssetAllocation(holdings)
	advisories := GenerateAdvisories(metrics)

	response := model.AnalysisResponse{
		Broker:          request.Broker,
		Metrics:         metrics,
		AssetAllocation: allocation,
		Recommendations: advisories,
		AnalysisDate:    time.Now().UTC().Format(time.RFC3339),
	}

	if s.analysisRepo != nil {
		var doc repository.PortfolioAnalysisDoc
		copier.Copy(&doc, &response)
		doc.CreatedAt = time.Now().UTC()
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.analysisRepo.Save(ctx, doc); err != nil {
				log.Error().Err(err).Str("broker", string(doc.Broker)).Msg("Failed to persist portfolio analysis")
			}
		}()
	}

	return response, nil
}

// GetLatestAnalysis returns the most recent persisted analysis for a broker,
// or nil when none has been stored yet.
func (s *PortfolioServiceImpl) GetLatestAnalysis(ctx context.Context, broker model.BrokerType) (*model.AnalysisResponse, error) {
	switch broker {
	case model.BrokerTrading212, model.BrokerCombined:
	default:
		return nil, customerrors.ErrUnknownBroker
	}

	if s.analysisRepo == nil {
		return nil, nil
	}

	doc, err := s.analysisRepo.FindLatest(ctx, broker)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	response := analysisResponseFromDoc(*doc)
	return &response, nil
}

func analysisResponseFromDoc(doc repository.PortfolioAnalysisDoc) model.AnalysisResponse {
	return model.AnalysisResponse{
		Broker:          doc.Broker,
		Metrics:         doc.Metrics,
		AssetAllocation: doc.AssetAllocation,
		Recommendations: doc.Recommendations,
		AnalysisDate:    doc.CreatedAt.Format(time.RFC3339),
	}
}

func (s *PortfolioServiceImpl) fetchHoldings(ctx context.Context, broker model.BrokerType) ([]model.Holding, error) {
	switch broker {
	case model.BrokerTrading212, model.BrokerCombined:
		return s.trading212.GetPortfolio(ctx)
	default:
		return nil, customerrors.ErrUnknownBroker
	}
}

// ComputeMetrics derives the risk profile of a holdings set, optionally
// refined by historical return series.
func ComputeMetrics(holdings []model.Holding, returns *model.HistoricalReturns) model.PortfolioMetrics {
	var metrics model.PortfolioMetrics

	var totalValue, totalInvestment, dayPnl float64
	for _, h := range holdings {
		totalValue += h.CurrentValue
		totalInvestment += h.InvestedValue
		dayPnl += h.DayPnl
	}

	metrics.TotalValue = util.RoundTwo(totalValue)
	metrics.TotalInvestment = util.RoundTwo(totalInvestment)
	metrics.TotalPnl = util.RoundTwo(totalValue - totalInvestment)
	metrics.DayPnl = util.RoundTwo(dayPnl)

	var pnlPercentage float64
	if totalInvestment != 0 {
		pnlPercentage = (totalValue - totalInvestment) / totalInvestment * 100
		metrics.TotalPnlPercentage = util.RoundTwo(pnlPercentage)
	}
	if totalValue != 0 {
		metrics.DayPnlPercentage = util.RoundTwo(dayPnl / totalValue * 100)
	}

	weights := valueWeights(holdings, totalValue)

	metrics.Volatility = portfolioVolatility(holdings, weights, returns)
	metrics.Beta = portfolioBeta(holdings, weights, returns)
	metrics.MaxDrawdown = maxDrawdown(holdings, returns)

	// Sharpe and alpha take the return in percent units against fractional
	// rates. The mixed units are intentional.
	if metrics.Volatility != 0 {
		metrics.SharpeRatio = util.RoundTwo((pnlPercentage - riskFreeRate) / metrics.Volatility)
	}
	metrics.Alpha = util.RoundTwo(pnlPercentage - (riskFreeRate + metrics.Beta*(marketReturnRate-riskFreeRate)))

	if len(holdings) > 1 && totalValue > 0 {
		var herfindahl float64
		for _, w := range weights {
			herfindahl += w * w
		}
		metrics.DiversificationRatio = roundFour(1 - herfindahl)
	}

	for _, w := range weights {
		if w > metrics.ConcentrationRisk {
			metrics.ConcentrationRisk = w
		}
	}
	metrics.ConcentrationRisk = roundFour(metrics.ConcentrationRisk)

	metrics.RiskLevel = classifyRisk(metrics.Volatility, metrics.ConcentrationRisk, metrics.MaxDrawdown)

	return metrics
}

func valueWeights(holdings []model.Holding, totalValue float64) []float64 {
	weights := make([]float64, len(holdings))
	if totalValue <= 0 {
		return weights
	}
	for i, h := range holdings {
		weights[i] = h.CurrentValue / totalValue
	}
	return weights
}

func portfolioVolatility(holdings []model.Holding, weights []float64, returns *model.HistoricalReturns) float64 {
	if returns != nil && len(returns.Portfolio) > 1 {
		sd := stat.StdDev(returns.Portfolio, nil)
		return roundFour(sd * math.Sqrt(tradingDaysPerYr))
	}

	var weighted float64
	for i, h := range holdings {
		vol := h.Volatility
		if vol == 0 {
			vol = defaultVolatility
		}
		weighted += weights[i] * vol
	}
	if weighted == 0 && len(holdings) > 0 {
		weighted = defaultVolatility
	}
	return roundFour(weighted)
}

func portfolioBeta(holdings []model.Holding, weights []float64, returns *model.HistoricalReturns) float64 {
	if returns != nil && len(returns.Portfolio) > 1 {
		if len(returns.Portfolio) != len(returns.Market) {
			return defaultBeta
		}
		marketVar := stat.Variance(returns.Market, nil)
		if marketVar == 0 {
			return defaultBeta
		}
		cov := stat.Covariance(returns.Portfolio, returns.Market, nil)
		return roundFour(cov / marketVar)
	}

	var weighted float64
	for i, h := range holdings {
		beta := h.Beta
		if beta == 0 {
			beta = defaultBeta
		}
		weighted += weights[i] * beta
	}
	if weighted == 0 {
		weighted = defaultBeta
	}
	return roundFour(weighted)
}

// maxDrawdown walks the cumulative return curve when history is available,
// otherwise falls back on a volatility proxy per holding.
func maxDrawdown(holdings []model.Holding, returns *model.HistoricalReturns) float64 {
	if returns != nil && len(returns.Portfolio) > 0 {
		cumulative := 1.0
		peak := 1.0
		var worst float64
		for _, r := range returns.Portfolio {
			cumulative *= 1 + r
			if cumulative > peak {
				peak = cumulative
			}
			if dd := (peak - cumulative) / peak; dd > worst {
				worst = dd
			}
		}
		return roundFour(worst)
	}

	var worst float64
	for _, h := range holdings {
		vol := h.Volatility
		if vol == 0 {
			vol = defaultVolatility
		}
		if proxy := vol * drawdownProxyMult; proxy > worst {
			worst = proxy
		}
	}
	return roundFour(worst)
}

// classifyRisk scores volatility, concentration and drawdown on 1-4 bands
// and buckets the sum.
func classifyRisk(volatility, concentration, drawdown float64) model.RiskLevel {
	score := bandScore(volatility, 0.15, 0.25, 0.35) +
		bandScore(concentration, 0.20, 0.40, 0.60) +
		bandScore(drawdown, 0.10, 0.20, 0.30)

	switch {
	case score <= 3:
		return model.RiskLow
	case score <= 6:
		return model.RiskMedium
	case score <= 9:
		return model.RiskHigh
	default:
		return model.RiskVeryHigh
	}
}

func bandScore(value, low, mid, high float64) int {
	switch {
	case value < low:
		return 1
	case value < mid:
		return 2
	case value < high:
		return 3
	default:
		return 4
	}
}

// ComputeAssetAllocation buckets the value weights by asset-type keywords
// and expresses them in percent.
func ComputeAssetAllocation(holdings []model.Holding) model.AssetAllocation {
	var allocation model.AssetAllocation

	var totalValue float64
	for _, h := range holdings {
		totalValue += h.CurrentValue
	}
	if totalValue <= 0 {
		return allocation
	}

	for _, h := range holdings {
		pct := h.CurrentValue / totalValue * 100
		switch assetBucket(h.AssetType) {
		case "equity":
			allocation.Equity += pct
		case "debt":
			allocation.Debt += pct
		case "commodities":
			allocation.Commodities += pct
		case "forex":
			allocation.Forex += pct
		case "crypto":
			allocation.Crypto += pct
		default:
			allocation.Others += pct
		}
	}

	allocation.Equity = util.RoundTwo(allocation.Equity)
	allocation.Debt = util.RoundTwo(allocation.Debt)
	allocation.Commodities = util.RoundTwo(allocation.Commodities)
	allocation.Forex = util.RoundTwo(allocation.Forex)
	allocation.Crypto = util.RoundTwo(allocation.Crypto)
	allocation.Others = util.RoundTwo(allocation.Others)

	return allocation
}

func assetBucket(assetType string) string {
	t := strings.ToLower(strings.TrimSpace(assetType))
	switch {
	case strings.Contains(t, "equity"), strings.Contains(t, "stock"), strings.Contains(t, "share"):
		return "equity"
	case strings.Contains(t, "debt"), strings.Contains(t, "bond"), strings.Contains(t, "fixed_income"):
		return "debt"
	case strings.Contains(t, "commodity"), strings.Contains(t, "gold"), strings.Contains(t, "silver"), strings.Contains(t, "oil"):
		return "commodities"
	case strings.Contains(t, "forex"), strings.Contains(t, "currency"):
		return "forex"
	case strings.Contains(t, "crypto"), strings.Contains(t, "bitcoin"):
		return "crypto"
	default:
		return "others"
	}
}

// GenerateAdvisories evaluates the fixed rule list against the metrics.
// Rules fire independently and keep their listed order.
func GenerateAdvisories(metrics model.PortfolioMetrics) []string {
	advisories := make([]string, 0, 6)

	switch metrics.RiskLevel {
	case model.RiskVeryHigh:
		advisories = append(advisories, "Portfolio risk is very high. Consider reducing position sizes and diversifying across asset classes.")
	case model.RiskHigh:
		advisories = append(advisories, "Portfolio risk is elevated. Consider diversifying to reduce exposure.")
	}
	if metrics.ConcentrationRisk > 0.4 {
		advisories = append(advisories, "A single holding dominates the portfolio. Consider trimming the largest position.")
	}
	if metrics.DiversificationRatio < 0.3 {
		advisories = append(advisories, "Diversification is low. Consider adding holdings across different sectors or asset classes.")
	}
	if metrics.SharpeRatio < 0.5 {
		advisories = append(advisories, "Risk-adjusted returns are weak. Consider rebalancing toward better performing assets.")
	}
	if metrics.Alpha < -0.05 {
		advisories = append(advisories, "Portfolio is underperforming its risk-adjusted benchmark. Review the overall strategy.")
	}
	if metrics.Volatility > 0.3 {
		advisories = append(advisories, "Volatility is high. Consider adding defensive assets to stabilize returns.")
	}

	return advisories
}

func roundFour(n float64) float64 {
	return math.Round(n*10000) / 10000
}
