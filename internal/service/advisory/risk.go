package advisory

import (
	"context"

	"github.com/krishimitra/server/internal/domain/errs"
	"github.com/krishimitra/server/internal/domain/models"
)

// ClimateRisk fabricates drought/flood/heatwave tiers and raises an alert
// for each high tier.
func (s *Service) ClimateRisk(_ context.Context, req models.ClimateRequest) (models.ClimateRiskAssessment, error) {
	droughtRisk := s.tier(0.7, 0.4)
	floodRisk := s.tier(0.8, 0.5)
	heatwaveRisk := s.tier(0.6, 0.3)

	var alerts []models.ClimateAlert
	if droughtRisk == "High" {
		alerts = append(alerts, models.ClimateAlert{Type: "drought", Severity: "high", Message: "Severe drought expected in next 2 weeks"})
	}
	if floodRisk == "High" {
		alerts = append(alerts, models.ClimateAlert{Type: "flood", Severity: "high", Message: "Heavy rainfall warning - prepare drainage"})
	}
	if heatwaveRisk == "High" {
		alerts = append(alerts, models.ClimateAlert{Type: "heatwave", Severity: "high", Message: "Extreme temperatures expected - increase irrigation"})
	}

	droughtAdvice := "Normal irrigation schedule"
	if droughtRisk == "High" {
		droughtAdvice = "Store water, plan drip irrigation"
	}
	floodAdvice := "Monitor weather daily"
	if floodRisk == "High" {
		floodAdvice = "Clear drainage channels, protect crops"
	}

	return models.ClimateRiskAssessment{
		DroughtRisk:  droughtRisk,
		FloodRisk:    floodRisk,
		HeatwaveRisk: heatwaveRisk,
		Alerts:       alerts,
		Recommendations: []string{
			droughtAdvice,
			floodAdvice,
			"Check crop insurance coverage",
		},
	}, nil
}

// InsuranceRisk estimates crop failure probability and sizes two PMFBY
// plans to the farm.
func (s *Service) InsuranceRisk(_ context.Context, req models.InsuranceRequest) (models.InsuranceRiskAssessment, error) {
	if req.LandSize <= 0 {
		return models.InsuranceRiskAssessment{}, errs.Validation("landSize must be positive")
	}

	failureRisk := s.intBetween(10, 40)
	riskCategory := "Low"
	switch {
	case failureRisk > 30:
		riskCategory = "High"
	case failureRisk > 20:
		riskCategory = "Medium"
	}

	plans := []models.InsurancePlan{
		{
			Name:        "PMFBY Basic",
			Premium:     int(req.LandSize * 500),
			Coverage:    int(req.LandSize * 40000),
			Recommended: riskCategory == "Low",
		},
		{
			Name:        "PMFBY Comprehensive",
			Premium:     int(req.LandSize * 800),
			Coverage:    int(req.LandSize * 65000),
			Recommended: riskCategory != "Low",
		},
	}

	recommendation := "Basic insurance should suffice"
	if riskCategory == "High" {
		recommendation = "Highly recommended to get comprehensive insurance"
	}

	return models.InsuranceRiskAssessment{
		FailureProbability: failureRisk,
		RiskCategory:       riskCategory,
		InsurancePlans:     plans,
		ClaimProcess: []string{
			"1. Report crop loss within 72 hours",
			"2. Submit loss assessment form",
			"3. Insurance company survey",
			"4. Claim settlement in 2-4 weeks",
		},
		Recommendation: recommendation,
	}, nil
}

// DiseaseAlert fabricates community disease reports around a farm.
func (s *Service) DiseaseAlert(_ context.Context, req models.DiseaseRequest) (models.DiseaseSpreadAlert, error) {
	nearbyReports := s.intn(10)

	spreadRisk := "Low"
	switch {
	case nearbyReports > 5:
		spreadRisk = "High"
	case nearbyReports > 2:
		spreadRisk = "Medium"
	}

	villages := []string{"Village A", "Village B", "Village C"}
	affected := nearbyReports
	if affected > 3 {
		affected = 3
	}

	alert := "Monitor your crops daily"
	if spreadRisk == "High" {
		alert = "OUTBREAK WARNING: Take immediate preventive action"
	}

	return models.DiseaseSpreadAlert{
		DiseaseType:      req.DiseaseType,
		NearbyReports:    nearbyReports,
		SpreadRisk:       spreadRisk,
		AffectedVillages: villages[:affected],
		Alert:            alert,
		PreventiveMeasures: []string{
			"Apply recommended fungicide/pesticide",
			"Remove infected plants immediately",
			"Increase field monitoring frequency",
			"Ensure proper drainage",
		},
		CommunityAlertSent: true,
	}, nil
}

// tier maps a uniform draw to Low/Medium/High with the given thresholds.
func (s *Service) tier(highAbove, mediumAbove float64) string {
	if s.float64() > highAbove {
		return "High"
	}
	if s.float64() > mediumAbove {
		return "Medium"
	}
	return "Low"
}
