package controller

import (
	"errors"
	"net/http"

	"backend/customerrors"
	"backend/model"
	"backend/service"

	"github.com/gin-gonic/gin"
)

type PortfolioController struct {
	portfolio service.PortfolioService
}

func NewPortfolioController(ps service.PortfolioService) *PortfolioController {
	return &PortfolioController{
		portfolio: ps,
	}
}

// RegisterRoutes maps endpoints to the /api/portfolio group
func (ctrl *PortfolioController) RegisterRoutes(router *gin.RouterGroup) {
	portfolioGroup := router.Group("/portfolio")
	{
		portfolioGroup.GET("/:broker", ctrl.getPortfolio)
		portfolioGroup.POST("/analyze", ctrl.analyzePortfolio)
		portfolioGroup.GET("/analysis/latest", ctrl.getLatestAnalysis)
	}
}

// getPortfolio godoc
// @Summary      Broker Holdings
// @Description  Returns the normalized holdings for one broker
// @Tags         Portfolio
// @Produce      json
// @Param        broker  path  string  true  "Broker (trading212, combined)"
// @Success      200  {object}  model.Response{data=model.PortfolioResponse}
// @Router       /portfolio/{broker} [get]
func (ctrl *PortfolioController) getPortfolio(c *gin.Context) {
	broker := model.BrokerType(c.Param("broker"))

	response, err := ctrl.portfolio.GetPortfolio(c.Request.Context(), broker)
	if err != nil {
		if errors.Is(err, customerrors.ErrUnknownBroker) {
			c.JSON(http.StatusBadRequest, Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, Ok(response, "Portfolio fetched"))
}

// analyzePortfolio godoc
// @Summary      Portfolio Risk Analysis
// @Description  Computes risk metrics, allocation breakdown and advisories
// @Tags         Portfolio
// @Accept       json
// @Produce      json
// @Param        request  body  model.AnalyzePortfolioRequest  true  "Broker and optional return series"
// @Success      200  {object}  model.Response{data=model.AnalysisResponse}
// @Router       /portfolio/analyze [post]
func (ctrl *PortfolioController) analyzePortfolio(c *gin.Context) {
	var request model.AnalyzePortfolioRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, Fail("Invalid request payload"))
		return
	}

	response, err := ctrl.portfolio.AnalyzePortfolio(c.Request.Context(), request)
	if err != nil {
		if errors.Is(err, customerrors.ErrUnknownBroker) {
			c.JSON(http.StatusBadRequest, Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, Ok(response, "Analysis complete"))
}

// getLatestAnalysis godoc
// @Summary      Latest Stored Analysis
// @Description  Returns the most recently persisted risk analysis for a broker
// @Tags         Portfolio
// @Produce      json
// @Param        broker  query  string  true  "Broker (trading212, combined)"
// @Success      200  {object}  model.Response{data=model.AnalysisResponse}
// @Router       /portfolio/analysis/latest [get]
func (ctrl *PortfolioController) getLatestAnalysis(c *gin.Context) {
	broker := model.BrokerType(c.Query("broker"))

	response, err := ctrl.portfolio.GetLatestAnalysis(c.Request.Context(), broker)
	if err != nil {
		if errors.Is(err, customerrors.ErrUnknownBroker) {
			c.JSON(http.StatusBadRequest, Fail(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, Fail(err.Error()))
		return
	}
	if response == nil {
		c.JSON(http.StatusNotFound, Fail("No stored analysis for this broker"))
		return
	}

	c.JSON(http.StatusOK, Ok(response, "Latest analysis fetched"))
}
