package controller

import (
	"net/http"
	"strings"

	"backend/model"
	"backend/service"

	"github.com/gin-gonic/gin"
)

type MarketController struct {
	marketData service.MarketDataService
}

func NewMarketController(mds service.MarketDataService) *MarketController {
	return &MarketController{
		marketData: mds,
	}
}

// RegisterRoutes maps endpoints to the /api/market group
func (ctrl *MarketController) RegisterRoutes(router *gin.RouterGroup) {
	marketGroup := router.Group("/market")
	{
		marketGroup.GET("/quote/:symbol", ctrl.getQuote)
		marketGroup.GET("/history/:symbol", ctrl.getHistory)
		marketGroup.GET("/news/:symbol", ctrl.getNews)
	}
}

// getQuote godoc
// @Summary      Live Quote
// @Description  Returns the normalized quote for one instrument
// @Tags         Market
// @Produce      json
// @Param        symbol    path   string  true   "Ticker symbol"
// @Param        exchange  query  string  false  "Exchange hint (NSE, BSE)"
// @Success      200  {object}  model.Response{data=model.MarketInfo}
// @Router       /market/quote/{symbol} [get]
func (ctrl *MarketController) getQuote(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	exchange := c.Query("exchange")

	info, err := ctrl.marketData.GetMarketInfo(c.Request.Context(), symbol, exchange)
	if err != nil {
		c.JSON(http.StatusBadGateway, Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, Ok(info, "Quote fetched"))
}

// getHistory godoc
// @Summary      Historical Candles
// @Description  Returns daily OHLCV bars, oldest first
// @Tags         Market
// @Produce      json
// @Param        symbol    path   string  true   "Ticker symbol"
// @Param        exchange  query  string  false  "Exchange hint (NSE, BSE)"
// @Param        range     query  string  false  "Lookback range (1mo, 1y, ...)"
// @Success      200  {object}  model.Response{data=[]model.PriceBar}
// @Router       /market/history/{symbol} [get]
func (ctrl *MarketController) getHistory(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	exchange := c.Query("exchange")
	timeRange := model.YahooTimeRange(c.DefaultQuery("range", string(model.Range1y)))

	bars, err := ctrl.marketData.GetHistoricalBars(c.Request.Context(), symbol, exchange, timeRange)
	if err != nil {
		c.JSON(http.StatusBadGateway, Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, Ok(bars, "History fetched"))
}

// getNews godoc
// @Summary      Recent Headlines
// @Description  Returns recent news headlines for one instrument
// @Tags         Market
// @Produce      json
// @Param        symbol  path  string  true  "Ticker symbol"
// @Success      200  {object}  model.Response{data=[]model.NewsArticle}
// @Router       /market/news/{symbol} [get]
func (ctrl *MarketController) getNews(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))

	news, err := ctrl.marketData.GetNews(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusBadGateway, Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, Ok(news, "News fetched"))
}
