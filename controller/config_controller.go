package controller

import (
	"net/http"

	"backend/config"
	"backend/middleware"
	"backend/model"

	"github.com/gin-gonic/gin"
)

type ConfigController struct {
	cfgManager *config.ConfigManager
}

func NewConfigController(cfgManager *config.ConfigManager) *ConfigController {
	return &ConfigController{
		cfgManager: cfgManager,
	}
}

// RegisterRoutes maps endpoints to the /api/config group, admin only.
func (ctrl *ConfigController) RegisterRoutes(router *gin.RouterGroup) {
	configGroup := router.Group("/config")
	configGroup.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		configGroup.GET("/active", ctrl.getActiveConfig)
		configGroup.PATCH("/update", ctrl.updateConfig)
	}
}

func (ctrl *ConfigController) getActiveConfig(c *gin.Context) {
	c.JSON(http.StatusOK, Ok(ctrl.cfgManager.GetConfig(), "Active config fetched"))
}

func (ctrl *ConfigController) updateConfig(c *gin.Context) {
	var request model.RuntimeConfig
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, Fail("Invalid request payload"))
		return
	}

	ctrl.cfgManager.UpdateConfig(&request)
	c.JSON(http.StatusOK, Ok(nil, "Config updated successfully"))
}
