package models

import "time"

// Difficulty tiers a strategy by how hard it is to adopt.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Strategy is one income-improvement intervention from the fixed catalog.
// ExpectedGain is already scaled by the farmer's land size.
type Strategy struct {
	Name         string     `json:"name"`
	ExpectedGain float64    `json:"expectedGain"`
	Timeframe    string     `json:"timeframe"`
	Difficulty   Difficulty `json:"difficulty"`
	Category     string     `json:"category"`
}

// ProfitPathProjection is the deterministic income-doubling trajectory
// computed from current income, land size and the strategy catalog.
type ProfitPathProjection struct {
	CurrentIncome      float64    `json:"currentIncome"`
	TargetIncome       float64    `json:"targetIncome"`
	ProjectedIncome    float64    `json:"projectedIncome"`
	PotentialGain      float64    `json:"potentialGain"`
	AchievementPercent float64    `json:"achievementPercent"` // capped at 150
	Strategies         []Strategy `json:"strategies"`
	Timeline           string     `json:"timeline"`
	QuickWins          []Strategy `json:"quickWins"`
	MediumTerm         []Strategy `json:"mediumTerm"`
	LongTerm           []Strategy `json:"longTerm"`
}

// ProfitCalculation is the append-only audit entry persisted for each
// projection. It is listed for history, never read back into a calculation.
type ProfitCalculation struct {
	ProfitPathProjection

	SchemaVersion int       `json:"schemaVersion"`
	LandSize      float64   `json:"landSize"`
	CropType      string    `json:"cropType,omitempty"`
	CalculatedAt  time.Time `json:"calculatedAt"`
}

// ProfitPathRequest is the payload accepted by POST /calculate-profit-path.
// CropType and Language are display metadata and never affect arithmetic.
type ProfitPathRequest struct {
	CurrentIncome *float64 `json:"currentIncome"`
	LandSize      *float64 `json:"landSize"`
	CropType      string   `json:"cropType"`
	Language      string   `json:"language"`
}
