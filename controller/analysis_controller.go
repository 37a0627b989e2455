package controller

import (
	"net/http"
	"strconv"
	"strings"

	"backend/model"
	"backend/service"
	"backend/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	recommendations service.RecommendationService
}

func NewAnalysisController(rs service.RecommendationService) *AnalysisController {
	return &AnalysisController{
		recommendations: rs,
	}
}

// RegisterRoutes maps endpoints to the /api/analysis group
func (ctrl *AnalysisController) RegisterRoutes(router *gin.RouterGroup) {
	analysisGroup := router.Group("/analysis")
	{
		analysisGroup.POST("/stock", ctrl.analyzeStock)
		analysisGroup.GET("/history/:symbol", ctrl.getHistory)
	}
}

// analyzeStock godoc
// @Summary      Analyze Instrument
// @Description  Runs the full pipeline and returns a fused recommendation
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body  model.AnalyzeStockRequest  true  "Instrument to analyze"
// @Success      200  {object}  model.Response{data=model.Recommendation}
// @Router       /analysis/stock [post]
func (ctrl *AnalysisController) analyzeStock(c *gin.Context) {
	var request model.AnalyzeStockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, Fail("Invalid request payload"))
		return
	}

	if err := zog.Struct(validator.AnalyzeStockShape).Validate(&request); err != nil {
		c.JSON(http.StatusBadRequest, Fail("Invalid request payload"))
		return
	}

	rec, err := ctrl.recommendations.AnalyzeStock(c.Request.Context(), request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, Ok(rec, "Analysis complete"))
}

// getHistory godoc
// @Summary      Recommendation History
// @Description  Returns the latest stored recommendations for a symbol
// @Tags         Analysis
// @Produce      json
// @Param        symbol  path   string  true   "Ticker symbol"
// @Param        limit   query  int     false  "Max results (default 10)"
// @Success      200  {object}  model.Response{data=[]model.Recommendation}
// @Router       /analysis/history/{symbol} [get]
func (ctrl *AnalysisController) getHistory(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	recs, err := ctrl.recommendations.GetHistory(c.Request.Context(), symbol, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, Ok(recs, "History fetched"))
}
