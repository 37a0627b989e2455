package controller

import (
	"errors"
	"net/http"
	"strconv"

	"backend/customerrors"
	"backend/model"
	"backend/service"
	"backend/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
)

type AlertController struct {
	alerts service.AlertService
}

func NewAlertController(as service.AlertService) *AlertController {
	return &AlertController{
		alerts: as,
	}
}

// RegisterRoutes maps endpoints to the /api/alerts group
func (ctrl *AlertController) RegisterRoutes(router *gin.RouterGroup) {
	alertGroup := router.Group("/alerts")
	{
		alertGroup.GET("", ctrl.getAlerts)
		alertGroup.POST("", ctrl.saveAlert)
		alertGroup.PATCH("/:id/active/:state", ctrl.setActive)
		alertGroup.DELETE("/:id", ctrl.deleteAlert)
		alertGroup.GET("/check", ctrl.checkAlerts)
	}
}

func (ctrl *AlertController) getAlerts(c *gin.Context) {
	alerts, err := ctrl.alerts.GetAlerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, Ok(alerts, "Alerts fetched"))
}

func (ctrl *AlertController) saveAlert(c *gin.Context) {
	var request model.AlertDto
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, Fail("Invalid request payload"))
		return
	}

	if err := zog.Struct(validator.AlertShape).Validate(&request); err != nil {
		c.JSON(http.StatusBadRequest, Fail("Invalid request payload"))
		return
	}
	if request.Condition != model.AlertPriceAbove && request.Condition != model.AlertPriceBelow {
		c.JSON(http.StatusBadRequest, Fail("Unknown alert condition"))
		return
	}

	alert, err := ctrl.alerts.SaveAlert(c.Request.Context(), request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, Ok(alert, "Alert saved"))
}

func (ctrl *AlertController) setActive(c *gin.Context) {
	id := c.Param("id")
	active, err := strconv.ParseBool(c.Param("state"))
	if err != nil {
		c.JSON(http.StatusBadRequest, Fail("State must be true or false"))
		return
	}

	alert, err := ctrl.alerts.SetActive(c.Request.Context(), id, active)
	if err != nil {
		if errors.Is(err, customerrors.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, Fail(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, Ok(alert, "Alert updated"))
}

func (ctrl *AlertController) deleteAlert(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, Fail("ID is required"))
		return
	}

	if err := ctrl.alerts.DeleteAlert(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, Ok(nil, "Alert deleted"))
}

func (ctrl *AlertController) checkAlerts(c *gin.Context) {
	triggered, err := ctrl.alerts.CheckAlerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, Ok(triggered, "Alerts checked"))
}
