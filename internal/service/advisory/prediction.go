package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/krishimitra/server/internal/domain/errs"
	"github.com/krishimitra/server/internal/domain/models"
)

// PredictYield synthesizes a per-acre yield estimate from the crop and soil
// base tables with seasonal jitter, then stores the result.
func (s *Service) PredictYield(ctx context.Context, req models.YieldRequest) (models.YieldPrediction, error) {
	if strings.TrimSpace(req.CropType) == "" {
		return models.YieldPrediction{}, errs.Validation("cropType is required")
	}
	if req.LandSize <= 0 {
		return models.YieldPrediction{}, errs.Validation("landSize must be positive")
	}

	base, ok := baseYield[strings.ToLower(req.CropType)]
	if !ok {
		base = defaultBaseYield
	}
	multiplier, ok := soilMultiplier[strings.ToLower(req.SoilType)]
	if !ok {
		multiplier = 1.0
	}

	historicalScore := 1.0
	if req.HistoricalYield > 0 {
		historicalScore = req.HistoricalYield / base
	}
	seasonalFactor := 0.95 + s.float64()*0.15

	predicted := base * multiplier * historicalScore * seasonalFactor
	marketPrice := s.intBetween(1500, 2500)
	profitEstimation := predicted * req.LandSize * float64(marketPrice)

	rainfall := 800.0
	if req.Rainfall != nil {
		rainfall = *req.Rainfall
	}

	prediction := models.YieldPrediction{
		SchemaVersion:        models.SchemaVersion,
		ExpectedYieldPerAcre: int(predicted),
		TotalYield:           int(predicted * req.LandSize),
		ProfitEstimation:     int(profitEstimation),
		RiskPercentage:       s.intBetween(15, 35),
		Confidence:           s.intBetween(75, 95),
		Recommendations: []string{
			fmt.Sprintf("Based on %s soil, consider adding organic matter", req.SoilType),
			fmt.Sprintf("Expected rainfall is %.0fmm - plan irrigation accordingly", rainfall),
			fmt.Sprintf("Market price trending at ₹%d/quintal", marketPrice),
		},
	}

	key := fmt.Sprintf("yield_prediction:%d", s.now().UnixMilli())
	if err := s.persist(ctx, key, prediction); err != nil {
		return models.YieldPrediction{}, err
	}

	return prediction, nil
}

// AnalyzeSatellite fabricates an NDVI health report for a field and stores
// it under the field's coordinates.
func (s *Service) AnalyzeSatellite(ctx context.Context, req models.SatelliteRequest) (models.SatelliteAnalysis, error) {
	ndvi := 0.5 + s.float64()*0.4

	var healthStatus string
	switch {
	case ndvi > 0.75:
		healthStatus = "Excellent"
	case ndvi > 0.6:
		healthStatus = "Good"
	case ndvi > 0.45:
		healthStatus = "Moderate"
	default:
		healthStatus = "Poor"
	}

	var dryPatches int
	if s.float64() > 0.7 {
		dryPatches = s.intn(5)
	}
	var stressAreas []string
	if s.float64() > 0.6 {
		stressAreas = []string{"Northeast sector", "Central area"}
	}

	diseaseRisk := "Low"
	if ndvi < 0.55 {
		diseaseRisk = "High"
	}

	irrigationAdvice := "Maintain current irrigation"
	if ndvi < 0.6 {
		irrigationAdvice = "Increase irrigation in stressed areas"
	}
	coverageAdvice := "Uniform crop health detected"
	if len(stressAreas) > 0 {
		coverageAdvice = "Focus on: " + strings.Join(stressAreas, ", ")
	}

	analysis := models.SatelliteAnalysis{
		SchemaVersion: models.SchemaVersion,
		NDVI:          math.Round(ndvi*1000) / 1000,
		HealthStatus:  healthStatus,
		CropStress:    ndvi < 0.6,
		DryPatches:    dryPatches,
		StressAreas:   stressAreas,
		DiseaseRisk:   diseaseRisk,
		Recommendations: []string{
			irrigationAdvice,
			coverageAdvice,
			"Next satellite scan recommended in 7 days",
		},
		LastUpdated: s.now().UTC(),
	}

	key := fmt.Sprintf("satellite:%g_%g", req.Latitude, req.Longitude)
	if err := s.persist(ctx, key, analysis); err != nil {
		return models.SatelliteAnalysis{}, err
	}

	return analysis, nil
}

// PredictPrice synthesizes a market price trend and nearby market quotes,
// best price first.
func (s *Service) PredictPrice(_ context.Context, req models.PriceRequest) (models.PricePrediction, error) {
	if strings.TrimSpace(req.CropType) == "" {
		return models.PricePrediction{}, errs.Validation("cropType is required")
	}

	base, ok := basePrice[strings.ToLower(req.CropType)]
	if !ok {
		base = defaultBasePrice
	}

	trend := "decreasing"
	if s.float64() > 0.5 {
		trend = "increasing"
	}
	trendPercent := s.intBetween(5, 20)

	future := float64(base) * (1 - float64(trendPercent)/100)
	bestTime := "Sell now"
	if trend == "increasing" {
		future = float64(base) * (1 + float64(trendPercent)/100)
		bestTime = "2-3 weeks"
	}

	markets := []models.MarketQuote{
		{Name: "Local Mandi", Distance: "5 km", Price: base + s.intn(200) - 100},
		{Name: "District Market", Distance: "25 km", Price: base + s.intn(300) - 50},
		{Name: "Regional Hub", Distance: "60 km", Price: base + s.intn(400)},
	}
	sort.Slice(markets, func(i, j int) bool { return markets[i].Price > markets[j].Price })

	return models.PricePrediction{
		CurrentPrice:   base,
		PredictedPrice: int(future),
		Trend:          trend,
		TrendPercent:   trendPercent,
		BestTimeToSell: bestTime,
		NearbyMarkets:  markets,
		Confidence:     s.intBetween(70, 95),
	}, nil
}

func (s *Service) persist(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.store.Put(ctx, key, payload); err != nil {
		return errs.Store("put "+key, err)
	}
	return nil
}
