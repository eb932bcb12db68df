package advisory

// Base tables for the synthetic providers. Values reproduce the dashboard's
// published figures; they are display constants, not calibrated data.

// Quintals per acre by crop.
var baseYield = map[string]float64{
	"rice":       2500,
	"wheat":      3000,
	"cotton":     1800,
	"sugarcane":  7000,
	"maize":      2200,
	"pulses":     1000,
	"vegetables": 3500,
	"soybean":    1200,
	"groundnut":  1500,
}

const defaultBaseYield = 2000

var soilMultiplier = map[string]float64{
	"alluvial": 1.2,
	"black":    1.15,
	"red":      0.95,
	"laterite": 0.85,
	"sandy":    0.75,
	"loamy":    1.1,
	"clay":     1.0,
}

// Rupees per quintal by crop.
var basePrice = map[string]int{
	"rice":      2100,
	"wheat":     2000,
	"cotton":    5500,
	"sugarcane": 275,
	"maize":     1700,
	"pulses":    5000,
}

const defaultBasePrice = 2000

// mm per season by crop.
var waterRequirement = map[string]int{
	"rice":      1500,
	"wheat":     450,
	"cotton":    700,
	"sugarcane": 2500,
	"maize":     500,
}

const defaultWaterRequirement = 600

var rotationMap = map[string][]string{
	"rice":      {"Pulses", "Wheat", "Vegetables"},
	"wheat":     {"Cotton", "Sugarcane", "Pulses"},
	"cotton":    {"Wheat", "Soybean", "Sorghum"},
	"sugarcane": {"Pulses", "Wheat", "Vegetables"},
	"maize":     {"Pulses", "Wheat", "Oilseeds"},
}

var pestTreatments = map[string][]string{
	"Aphids":     {"Neem oil spray", "Introduce ladybugs", "Soap water solution"},
	"Whitefly":   {"Yellow sticky traps", "Neem-based pesticide", "Remove infected leaves"},
	"Leaf Miner": {"Remove affected leaves", "Neem oil", "Biological control with parasitic wasps"},
	"Bollworm":   {"Bt spray", "Pheromone traps", "Early detection and removal"},
	"Stem Borer": {"Pheromone traps", "Remove and destroy stubble", "Timely planting"},
}

var knownPests = []string{"Aphids", "Whitefly", "Leaf Miner", "Bollworm", "Stem Borer"}
