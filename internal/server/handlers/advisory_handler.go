package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/service/advisory"
)

// AdvisoryHandler exposes the mock advisory panels. Every endpoint binds a
// typed request and forwards it to the provider.
type AdvisoryHandler struct {
	svc    advisory.Provider
	logger *zap.Logger
}

// NewAdvisoryHandler constructs the HTTP handler adapter.
func NewAdvisoryHandler(svc advisory.Provider, logger *zap.Logger) *AdvisoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisoryHandler{svc: svc, logger: logger}
}

// serve binds the JSON body into Req and renders the provider's response.
func serve[Req any, Resp any](h *AdvisoryHandler, c *gin.Context, fallback string, fn func(context.Context, Req) (Resp, error)) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid advisory payload", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := fn(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, fallback)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdvisoryHandler) PredictYield(c *gin.Context) {
	serve(h, c, "Yield prediction failed", h.svc.PredictYield)
}

func (h *AdvisoryHandler) SatelliteAnalysis(c *gin.Context) {
	serve(h, c, "Satellite analysis failed", h.svc.AnalyzeSatellite)
}

func (h *AdvisoryHandler) PredictPrice(c *gin.Context) {
	serve(h, c, "Price prediction failed", h.svc.PredictPrice)
}

func (h *AdvisoryHandler) ClimateRisk(c *gin.Context) {
	serve(h, c, "Climate risk analysis failed", h.svc.ClimateRisk)
}

func (h *AdvisoryHandler) CheckSubsidy(c *gin.Context) {
	serve(h, c, "Subsidy check failed", h.svc.CheckSubsidy)
}

func (h *AdvisoryHandler) GenerateFarmingPlan(c *gin.Context) {
	serve(h, c, "Failed to generate farming plan", h.svc.GenerateFarmingPlan)
}

func (h *AdvisoryHandler) InsuranceRisk(c *gin.Context) {
	serve(h, c, "Insurance risk prediction failed", h.svc.InsuranceRisk)
}

func (h *AdvisoryHandler) DiseaseAlert(c *gin.Context) {
	serve(h, c, "Disease alert failed", h.svc.DiseaseAlert)
}

func (h *AdvisoryHandler) CropRotation(c *gin.Context) {
	serve(h, c, "Crop rotation recommendation failed", h.svc.CropRotation)
}

func (h *AdvisoryHandler) DetectPest(c *gin.Context) {
	serve(h, c, "Pest detection failed", h.svc.DetectPest)
}

func (h *AdvisoryHandler) SoilAnalysis(c *gin.Context) {
	serve(h, c, "Soil analysis failed", h.svc.SoilAnalysis)
}

func (h *AdvisoryHandler) IrrigationPlan(c *gin.Context) {
	serve(h, c, "Irrigation planning failed", h.svc.IrrigationPlan)
}

// Weather handles GET /weather/:location.
func (h *AdvisoryHandler) Weather(c *gin.Context) {
	forecast, err := h.svc.WeatherForecast(c.Request.Context(), c.Param("location"))
	if err != nil {
		respondError(c, h.logger, err, "Weather fetch failed")
		return
	}

	c.JSON(http.StatusOK, forecast)
}
