package advisory

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/krishimitra/server/internal/domain/errs"
	"github.com/krishimitra/server/internal/domain/models"
)

var rupeeAmount = regexp.MustCompile(`₹([\d,]+)`)

// CheckSubsidy applies the rule-based eligibility table. This provider is
// fully deterministic; only the scheme rules decide the outcome.
func (s *Service) CheckSubsidy(_ context.Context, req models.SubsidyRequest) (models.SubsidyCheck, error) {
	var schemes []models.SchemeEligibility

	if req.LandSize <= 2 {
		schemes = append(schemes, models.SchemeEligibility{
			Name:       "PM-KISAN",
			Benefit:    "₹6,000/year in 3 installments",
			Eligible:   true,
			HowToApply: "Visit pmkisan.gov.in or nearest CSC",
		})
	}
	if req.LandSize > 0 {
		schemes = append(schemes, models.SchemeEligibility{
			Name:       "Pradhan Mantri Fasal Bima Yojana (PMFBY)",
			Benefit:    "Crop insurance at 2% premium for Kharif, 1.5% for Rabi",
			Eligible:   true,
			HowToApply: "Through bank or agriculture office",
		})
	}
	schemes = append(schemes, models.SchemeEligibility{
		Name:       "Soil Health Card Scheme",
		Benefit:    "Free soil testing and recommendations",
		Eligible:   true,
		HowToApply: "Agriculture department or Krishi Vigyan Kendra",
	})
	if req.LandSize <= 5 {
		schemes = append(schemes, models.SchemeEligibility{
			Name:       "National Agriculture Market (e-NAM)",
			Benefit:    "Better market access and prices",
			Eligible:   true,
			HowToApply: "Register at enam.gov.in",
		})
	}
	if req.FarmerType == "organic" {
		schemes = append(schemes, models.SchemeEligibility{
			Name:       "Paramparagat Krishi Vikas Yojana (PKVY)",
			Benefit:    "₹50,000/hectare for 3 years",
			Eligible:   true,
			HowToApply: "State agriculture department",
		})
	}

	var totalBenefit int
	for _, scheme := range schemes {
		if match := rupeeAmount.FindStringSubmatch(scheme.Benefit); match != nil {
			if amount, err := strconv.Atoi(strings.ReplaceAll(match[1], ",", "")); err == nil {
				totalBenefit += amount
			}
		}
	}

	return models.SubsidyCheck{
		Eligible:              len(schemes) > 0,
		EligibleSchemes:       schemes,
		TotalEstimatedBenefit: totalBenefit,
		NextSteps: []string{
			"Gather required documents (Aadhaar, land records)",
			"Visit nearest CSC or agriculture office",
			"Apply online through respective portals",
		},
	}, nil
}

// GenerateFarmingPlan lays out the season schedule for the soil's
// recommended crops. Costs are fixed estimates.
func (s *Service) GenerateFarmingPlan(_ context.Context, req models.FarmingPlanRequest) (models.FarmingPlan, error) {
	var crops []string
	switch req.SoilType {
	case "alluvial":
		crops = []string{"Rice", "Wheat", "Sugarcane"}
	case "black":
		crops = []string{"Cotton", "Soybean", "Wheat"}
	case "red":
		crops = []string{"Pulses", "Groundnut", "Millets"}
	default:
		crops = []string{"Maize", "Rice", "Vegetables"}
	}

	tasks := []models.PlanTask{
		{Week: 1, Task: "Land preparation and plowing", Cost: 2000},
		{Week: 2, Task: "Soil testing and amendment", Cost: 1500},
		{Week: 3, Task: "Seed selection and treatment", Cost: 3000},
		{Week: 4, Task: "Sowing and initial irrigation", Cost: 2500},
		{Week: 6, Task: "First fertilizer application", Cost: 4000},
		{Week: 8, Task: "Weed control and pest monitoring", Cost: 2000},
		{Week: 12, Task: "Second fertilizer dose", Cost: 4000},
		{Week: 16, Task: "Disease management check", Cost: 1500},
		{Week: 20, Task: "Pre-harvest preparations", Cost: 1000},
		{Week: 24, Task: "Harvesting", Cost: 5000},
	}

	var totalCost int
	for _, task := range tasks {
		totalCost += task.Cost
	}

	return models.FarmingPlan{
		RecommendedCrops:     crops,
		SelectedCrop:         crops[0],
		Duration:             "6 months",
		WeeklyTasks:          tasks,
		TotalEstimatedCost:   totalCost,
		ExpectedRevenue:      float64(totalCost) * 1.8,
		ProfitMargin:         "80%",
		RiskFactors:          []string{"Weather dependency", "Market price fluctuation"},
		MitigationStrategies: []string{"Crop insurance", "Drip irrigation", "Organic methods"},
	}, nil
}

// CropRotation recommends next-season crops after the current one, most
// profitable first.
func (s *Service) CropRotation(_ context.Context, req models.RotationRequest) (models.CropRotationAdvice, error) {
	if strings.TrimSpace(req.CurrentCrop) == "" {
		return models.CropRotationAdvice{}, errs.Validation("currentCrop is required")
	}

	crops, ok := rotationMap[strings.ToLower(req.CurrentCrop)]
	if !ok {
		crops = []string{"Pulses", "Wheat"}
	}

	soilBenefits := []string{"High", "Medium", "Medium"}
	marketDemands := []string{"High", "Medium", "High"}

	options := make([]models.RotationOption, 0, len(crops))
	for _, crop := range crops {
		options = append(options, models.RotationOption{
			Crop:           crop,
			ExpectedProfit: s.intBetween(20000, 50000),
			SoilBenefit:    s.pick(soilBenefits),
			MarketDemand:   s.pick(marketDemands),
		})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].ExpectedProfit > options[j].ExpectedProfit })

	return models.CropRotationAdvice{
		CurrentCrop:           req.CurrentCrop,
		RecommendedNextCrops:  options,
		NitrogenDepletion:     fmt.Sprintf("%d%%", s.intBetween(30, 70)),
		PhosphorusLevel:       fmt.Sprintf("%d%%", s.intBetween(40, 70)),
		OrganicMatter:         fmt.Sprintf("%d%%", s.intBetween(1, 4)),
		SoilHealthImprovement: "Growing legumes recommended to restore nitrogen",
		LongTermBenefits: []string{
			"Improved soil fertility",
			"Pest and disease reduction",
			"Better water retention",
			"Increased biodiversity",
		},
	}, nil
}

// DetectPest labels the submitted image with a pest from the fixed list.
func (s *Service) DetectPest(_ context.Context, req models.PestRequest) (models.PestDetection, error) {
	pest := s.pick(knownPests)
	confidence := s.intBetween(75, 95)

	severity := "Medium"
	if confidence > 85 {
		severity = "High"
	}

	return models.PestDetection{
		Detected:         true,
		PestName:         pest,
		Confidence:       confidence,
		Severity:         severity,
		OrganicTreatment: pestTreatments[pest],
		ChemicalOption:   "Consult local agriculture officer for approved pesticides",
		PreventiveMeasures: []string{
			"Regular field monitoring",
			"Crop rotation",
			"Maintain field hygiene",
			"Use resistant varieties",
		},
	}, nil
}

// SoilAnalysis fabricates an N/P/K panel for a location and stores it.
func (s *Service) SoilAnalysis(ctx context.Context, req models.SoilRequest) (models.SoilAnalysis, error) {
	if strings.TrimSpace(req.Location) == "" {
		return models.SoilAnalysis{}, errs.Validation("location is required")
	}

	analysis := models.SoilAnalysis{
		SchemaVersion: models.SchemaVersion,
		PH:            strconv.FormatFloat(6.0+s.float64()*2, 'f', 1, 64),
		Nitrogen:      s.intBetween(200, 300),
		Phosphorus:    s.intBetween(20, 50),
		Potassium:     s.intBetween(150, 250),
		OrganicCarbon: strconv.FormatFloat(0.5+s.float64(), 'f', 2, 64),
		SoilType:      s.pick([]string{"Loamy", "Clay Loam", "Sandy Loam", "Clay"}),
		Recommendations: []string{
			"Add organic manure to improve soil structure",
			"Apply balanced NPK fertilizer",
			"Consider lime application if pH is below 6.5",
			"Increase organic matter through green manure",
		},
		FertilizerPlan: models.FertilizerPlan{
			Urea:    "150 kg/acre",
			DAP:     "100 kg/acre",
			Potash:  "50 kg/acre",
			Organic: "2 tons farmyard manure/acre",
		},
	}

	if err := s.persist(ctx, "soil_test:"+req.Location, analysis); err != nil {
		return models.SoilAnalysis{}, err
	}

	return analysis, nil
}

// IrrigationPlan returns the per-crop watering schedule.
func (s *Service) IrrigationPlan(_ context.Context, req models.IrrigationRequest) (models.IrrigationPlan, error) {
	requirement, ok := waterRequirement[strings.ToLower(req.CropType)]
	if !ok {
		requirement = defaultWaterRequirement
	}

	return models.IrrigationPlan{
		TotalWaterRequirement: fmt.Sprintf("%dmm per season", requirement),
		IrrigationSchedule: []models.IrrigationStage{
			{Stage: "Germination", Frequency: "Daily", Amount: "20mm", Duration: "2 weeks"},
			{Stage: "Vegetative", Frequency: "Every 3 days", Amount: "25mm", Duration: "4 weeks"},
			{Stage: "Flowering", Frequency: "Every 2 days", Amount: "30mm", Duration: "3 weeks"},
			{Stage: "Maturity", Frequency: "Every 5 days", Amount: "15mm", Duration: "3 weeks"},
		},
		Method:         "Drip irrigation recommended for 40% water saving",
		SoilMoisture:   fmt.Sprintf("%d%%", s.intBetween(30, 70)),
		NextIrrigation: "In 2 days",
		Tips: []string{
			"Irrigate early morning or evening",
			"Check soil moisture before watering",
			"Avoid over-irrigation to prevent diseases",
			"Use mulching to retain moisture",
		},
	}, nil
}
