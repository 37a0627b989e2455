package main

import (
	"backend/auth"
	"backend/config"
	"backend/database"
	_ "backend/docs"
	"backend/model"
	"backend/routes"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title        Portfolio Intelligence API
// @version      1.0
// @description  Signal, sentiment and portfolio risk engine
// @BasePath     /api
func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().AnErr("Error loading configuration: ", err)
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	auth.SecretKey = []byte(sysConfigs.Config.JwtSecret)

	_, db := database.InitMongoClient(sysConfigs)
	database.InitRedis(sysConfigs.Config.RedisURL)

	cfgManager := config.NewConfigManager(&model.RuntimeConfig{RateLimiter: true})

	router := routes.SetupRouter(db, sysConfigs, cfgManager)

	port := sysConfigs.Config.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().AnErr("Server failed to start: ", err)
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
