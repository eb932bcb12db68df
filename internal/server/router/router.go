package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/server/handlers"
)

// Handlers groups the endpoint adapters the router wires up.
type Handlers struct {
	Finance  *handlers.FinanceHandler
	Profit   *handlers.ProfitHandler
	Advisory *handlers.AdvisoryHandler
	Farmer   *handlers.FarmerHandler
	Market   *handlers.MarketHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          10 * time.Minute,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/finance/record", h.Finance.Record)
	r.GET("/finance/:farmerId", h.Finance.Summary)

	r.POST("/calculate-profit-path", h.Profit.Calculate)
	r.GET("/farmer-income-history/:farmerId", h.Profit.History)

	r.POST("/predict-yield", h.Advisory.PredictYield)
	r.POST("/satellite-analysis", h.Advisory.SatelliteAnalysis)
	r.POST("/predict-price", h.Advisory.PredictPrice)
	r.POST("/climate-risk", h.Advisory.ClimateRisk)
	r.POST("/check-subsidy", h.Advisory.CheckSubsidy)
	r.POST("/generate-farming-plan", h.Advisory.GenerateFarmingPlan)
	r.POST("/insurance-risk", h.Advisory.InsuranceRisk)
	r.POST("/disease-alert", h.Advisory.DiseaseAlert)
	r.POST("/crop-rotation", h.Advisory.CropRotation)
	r.POST("/detect-pest", h.Advisory.DetectPest)
	r.POST("/soil-analysis", h.Advisory.SoilAnalysis)
	r.POST("/irrigation-plan", h.Advisory.IrrigationPlan)
	r.GET("/weather/:location", h.Advisory.Weather)

	r.GET("/government-schemes", h.Farmer.Schemes)
	r.POST("/farmer-awareness/complete", h.Farmer.CompleteAwareness)
	r.POST("/farmer/profile", h.Farmer.SaveProfile)

	r.POST("/marketplace/create-listing", h.Market.CreateListing)
	r.GET("/marketplace/listings", h.Market.Listings)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
