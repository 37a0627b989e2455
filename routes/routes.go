package routes

import (
	"backend/client"
	"backend/config"
	"backend/controller"
	"backend/middleware"
	"backend/repository"
	"backend/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRouter(db *mongo.Database, cfg *config.SystemConfigs, cfgManager *config.ConfigManager) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ZerologMiddleware(), middleware.RecoveryMiddleware)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// --- 1. Clients ---
	yahooClient := client.NewYahooClient()
	geminiClient := client.NewGeminiClient(cfg.Config.GeminiApiKey, cfg.Config.GeminiModel)
	trading212Client := client.NewTrading212Client(cfg.Config.Trading212ApiKey)

	// --- 2. Repositories ---
	alertRepo := repository.NewAlertRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	// --- 3. Services (Dependency Injection) ---
	marketDataSvc := service.NewMarketDataService(yahooClient)
	indicatorSvc := service.NewIndicatorService()
	sentimentSvc := service.NewSentimentService()
	advisorSvc := service.NewAdvisorService(geminiClient)
	recommendationSvc := service.NewRecommendationService(marketDataSvc, indicatorSvc, sentimentSvc, advisorSvc, recommendationRepo)
	portfolioSvc := service.NewPortfolioService(trading212Client, analysisRepo)
	alertSvc := service.NewAlertService(alertRepo, marketDataSvc)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- 4. Routes & Controllers ---
	api := r.Group("/api")
	api.Use(middleware.RateLimiter(cfgManager))
	{
		// Health Check
		controller.NewHealthController().RegisterRoutes(api)

		// Auth Endpoints
		controller.NewAuthController(cfg.Config).RegisterRoutes(api)

		// Market Data Endpoints
		controller.NewMarketController(marketDataSvc).RegisterRoutes(api)

		// Analysis Endpoints
		controller.NewAnalysisController(recommendationSvc).RegisterRoutes(api)

		// Portfolio Endpoints
		controller.NewPortfolioController(portfolioSvc).RegisterRoutes(api)

		// Alert Endpoints
		controller.NewAlertController(alertSvc).RegisterRoutes(api)

		// Runtime Config Endpoints
		controller.NewConfigController(cfgManager).RegisterRoutes(api)
	}

	return r
}
