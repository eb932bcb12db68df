package models

import "time"

// The advisory types below mirror the dashboard panels. Their producers are
// presentational stand-ins (see service/advisory), not genuine models.

// YieldPrediction estimates harvest volume and profit for a crop and field.
type YieldPrediction struct {
	SchemaVersion        int      `json:"schemaVersion"`
	ExpectedYieldPerAcre int      `json:"expectedYieldPerAcre"`
	TotalYield           int      `json:"totalYield"`
	ProfitEstimation     int      `json:"profitEstimation"`
	RiskPercentage       int      `json:"riskPercentage"`
	Confidence           int      `json:"confidence"`
	Recommendations      []string `json:"recommendations"`
}

// YieldRequest is the payload accepted by POST /predict-yield.
type YieldRequest struct {
	CropType        string   `json:"cropType"`
	LandSize        float64  `json:"landSize"`
	SoilType        string   `json:"soilType"`
	Location        string   `json:"location"`
	Rainfall        *float64 `json:"rainfall"`
	HistoricalYield float64  `json:"historicalYield"`
}

// SatelliteAnalysis is a synthetic NDVI crop-health report.
type SatelliteAnalysis struct {
	SchemaVersion   int       `json:"schemaVersion"`
	NDVI            float64   `json:"ndvi"`
	HealthStatus    string    `json:"healthStatus"`
	CropStress      bool      `json:"cropStress"`
	DryPatches      int       `json:"dryPatches"`
	StressAreas     []string  `json:"stressAreas"`
	DiseaseRisk     string    `json:"diseaseRisk"`
	Recommendations []string  `json:"recommendations"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// SatelliteRequest is the payload accepted by POST /satellite-analysis.
type SatelliteRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CropType  string  `json:"cropType"`
	FieldArea float64 `json:"fieldArea"`
}

// MarketQuote is one nearby market price point.
type MarketQuote struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
	Price    int    `json:"price"`
}

// PricePrediction carries a synthetic market price trend.
type PricePrediction struct {
	CurrentPrice   int           `json:"currentPrice"`
	PredictedPrice int           `json:"predictedPrice"`
	Trend          string        `json:"trend"`
	TrendPercent   int           `json:"trendPercent"`
	BestTimeToSell string        `json:"bestTimeToSell"`
	NearbyMarkets  []MarketQuote `json:"nearbyMarkets"`
	Confidence     int           `json:"confidence"`
}

// PriceRequest is the payload accepted by POST /predict-price.
type PriceRequest struct {
	CropType        string `json:"cropType"`
	CurrentLocation string `json:"currentLocation"`
}

// ClimateAlert is a single high-severity climate warning.
type ClimateAlert struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// ClimateRiskAssessment groups drought/flood/heatwave tiers with alerts.
type ClimateRiskAssessment struct {
	DroughtRisk     string         `json:"droughtRisk"`
	FloodRisk       string         `json:"floodRisk"`
	HeatwaveRisk    string         `json:"heatwaveRisk"`
	Alerts          []ClimateAlert `json:"alerts"`
	Recommendations []string       `json:"recommendations"`
}

// ClimateRequest is the payload accepted by POST /climate-risk.
type ClimateRequest struct {
	Location string `json:"location"`
	CropType string `json:"cropType"`
	Season   string `json:"season"`
}

// SchemeEligibility is one subsidy scheme a farmer qualifies for.
type SchemeEligibility struct {
	Name       string `json:"name"`
	Benefit    string `json:"benefit"`
	Eligible   bool   `json:"eligible"`
	HowToApply string `json:"howToApply"`
}

// SubsidyCheck is the result of the rule-based eligibility checker.
type SubsidyCheck struct {
	Eligible              bool                `json:"eligible"`
	EligibleSchemes       []SchemeEligibility `json:"eligibleSchemes"`
	TotalEstimatedBenefit int                 `json:"totalEstimatedBenefit"`
	NextSteps             []string            `json:"nextSteps"`
}

// SubsidyRequest is the payload accepted by POST /check-subsidy.
type SubsidyRequest struct {
	LandSize       float64 `json:"landSize"`
	CropType       string  `json:"cropType"`
	IncomeCategory string  `json:"incomeCategory"`
	FarmerType     string  `json:"farmerType"`
}

// PlanTask is one scheduled activity inside a farming plan.
type PlanTask struct {
	Week int    `json:"week"`
	Task string `json:"task"`
	Cost int    `json:"cost"`
}

// FarmingPlan is a season-long activity and cost schedule.
type FarmingPlan struct {
	RecommendedCrops     []string   `json:"recommendedCrops"`
	SelectedCrop         string     `json:"selectedCrop"`
	Duration             string     `json:"duration"`
	WeeklyTasks          []PlanTask `json:"weeklyTasks"`
	TotalEstimatedCost   int        `json:"totalEstimatedCost"`
	ExpectedRevenue      float64    `json:"expectedRevenue"`
	ProfitMargin         string     `json:"profitMargin"`
	RiskFactors          []string   `json:"riskFactors"`
	MitigationStrategies []string   `json:"mitigationStrategies"`
}

// FarmingPlanRequest is the payload accepted by POST /generate-farming-plan.
type FarmingPlanRequest struct {
	Location string  `json:"location"`
	SoilType string  `json:"soilType"`
	Budget   float64 `json:"budget"`
	Season   string  `json:"season"`
}

// InsurancePlan is one crop insurance product sized to the farm.
type InsurancePlan struct {
	Name        string `json:"name"`
	Premium     int    `json:"premium"`
	Coverage    int    `json:"coverage"`
	Recommended bool   `json:"recommended"`
}

// InsuranceRiskAssessment estimates crop failure risk and matching plans.
type InsuranceRiskAssessment struct {
	FailureProbability int             `json:"failureProbability"`
	RiskCategory       string          `json:"riskCategory"`
	InsurancePlans     []InsurancePlan `json:"insurancePlans"`
	ClaimProcess       []string        `json:"claimProcess"`
	Recommendation     string          `json:"recommendation"`
}

// InsuranceRequest is the payload accepted by POST /insurance-risk.
type InsuranceRequest struct {
	CropType string  `json:"cropType"`
	Location string  `json:"location"`
	LandSize float64 `json:"landSize"`
	SoilType string  `json:"soilType"`
	Season   string  `json:"season"`
}

// DiseaseSpreadAlert summarizes community disease reports near a farm.
type DiseaseSpreadAlert struct {
	DiseaseType        string   `json:"diseaseType"`
	NearbyReports      int      `json:"nearbyReports"`
	SpreadRisk         string   `json:"spreadRisk"`
	AffectedVillages   []string `json:"affectedVillages"`
	Alert              string   `json:"alert"`
	PreventiveMeasures []string `json:"preventiveMeasures"`
	CommunityAlertSent bool     `json:"communityAlertSent"`
}

// DiseaseRequest is the payload accepted by POST /disease-alert.
type DiseaseRequest struct {
	DiseaseType string `json:"diseaseType"`
	Location    string `json:"location"`
	CropType    string `json:"cropType"`
}

// RotationOption scores one candidate crop for the next season.
type RotationOption struct {
	Crop           string `json:"crop"`
	ExpectedProfit int    `json:"expectedProfit"`
	SoilBenefit    string `json:"soilBenefit"`
	MarketDemand   string `json:"marketDemand"`
}

// CropRotationAdvice recommends next-season crops after the current one.
type CropRotationAdvice struct {
	CurrentCrop           string           `json:"currentCrop"`
	RecommendedNextCrops  []RotationOption `json:"recommendedNextCrops"`
	NitrogenDepletion     string           `json:"nitrogenDepletion"`
	PhosphorusLevel       string           `json:"phosphorusLevel"`
	OrganicMatter         string           `json:"organicMatter"`
	SoilHealthImprovement string           `json:"soilHealthImprovement"`
	LongTermBenefits      []string         `json:"longTermBenefits"`
}

// RotationRequest is the payload accepted by POST /crop-rotation.
type RotationRequest struct {
	CurrentCrop string `json:"currentCrop"`
	SoilType    string `json:"soilType"`
}

// PestDetection labels an uploaded field image with a pest and treatments.
type PestDetection struct {
	Detected           bool     `json:"detected"`
	PestName           string   `json:"pestName"`
	Confidence         int      `json:"confidence"`
	Severity           string   `json:"severity"`
	OrganicTreatment   []string `json:"organicTreatment"`
	ChemicalOption     string   `json:"chemicalOption"`
	PreventiveMeasures []string `json:"preventiveMeasures"`
}

// PestRequest is the payload accepted by POST /detect-pest.
type PestRequest struct {
	ImageData string `json:"imageData"`
	CropType  string `json:"cropType"`
}

// FertilizerPlan lists per-acre fertilizer doses.
type FertilizerPlan struct {
	Urea    string `json:"urea"`
	DAP     string `json:"dap"`
	Potash  string `json:"potash"`
	Organic string `json:"organic"`
}

// SoilAnalysis is a synthetic soil test panel.
type SoilAnalysis struct {
	SchemaVersion   int            `json:"schemaVersion"`
	PH              string         `json:"ph"`
	Nitrogen        int            `json:"nitrogen"`
	Phosphorus      int            `json:"phosphorus"`
	Potassium       int            `json:"potassium"`
	OrganicCarbon   string         `json:"organicCarbon"`
	SoilType        string         `json:"soilType"`
	Recommendations []string       `json:"recommendations"`
	FertilizerPlan  FertilizerPlan `json:"fertilizerPlan"`
}

// SoilRequest is the payload accepted by POST /soil-analysis.
type SoilRequest struct {
	Location string `json:"location"`
	CropType string `json:"cropType"`
}

// IrrigationStage is one growth-stage watering instruction.
type IrrigationStage struct {
	Stage     string `json:"stage"`
	Frequency string `json:"frequency"`
	Amount    string `json:"amount"`
	Duration  string `json:"duration"`
}

// IrrigationPlan is a per-crop watering schedule.
type IrrigationPlan struct {
	TotalWaterRequirement string            `json:"totalWaterRequirement"`
	IrrigationSchedule    []IrrigationStage `json:"irrigationSchedule"`
	Method                string            `json:"method"`
	SoilMoisture          string            `json:"soilMoisture"`
	NextIrrigation        string            `json:"nextIrrigation"`
	Tips                  []string          `json:"tips"`
}

// IrrigationRequest is the payload accepted by POST /irrigation-plan.
type IrrigationRequest struct {
	CropType string `json:"cropType"`
	SoilType string `json:"soilType"`
	Season   string `json:"season"`
}

// DayForecast is a single day of weather.
type DayForecast struct {
	Day       string `json:"day"`
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
	Rainfall  int    `json:"rainfall"`
	Humidity  int    `json:"humidity"`
	WindSpeed int    `json:"windSpeed"`
}

// WeatherForecast is a 7-day outlook for a location.
type WeatherForecast struct {
	Location string        `json:"location"`
	Forecast []DayForecast `json:"forecast"`
	Alerts   []string      `json:"alerts"`
}
