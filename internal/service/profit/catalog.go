package profit

import "github.com/krishimitra/server/internal/domain/models"

// catalogEntry is one intervention in the fixed strategy catalog. The gain
// coefficients are constants: the projection feeds an auditable financial
// number, so nothing here is randomized.
type catalogEntry struct {
	name        string
	nameHindi   string
	gainPerArea float64
	timeframe   string
	difficulty  models.Difficulty
	category    string
}

var catalog = []catalogEntry{
	{
		name:        "Precision Agriculture with AI",
		nameHindi:   "एआई के साथ सटीक खेती",
		gainPerArea: 30000,
		timeframe:   "6-12 months",
		difficulty:  models.DifficultyMedium,
		category:    "technology",
	},
	{
		name:        "Crop Diversification",
		nameHindi:   "फसल विविधीकरण",
		gainPerArea: 20000,
		timeframe:   "1 season",
		difficulty:  models.DifficultyEasy,
		category:    "farming",
	},
	{
		name:        "Direct Market Access (e-NAM)",
		nameHindi:   "सीधी बाजार पहुंच",
		gainPerArea: 15000,
		timeframe:   "1-2 months",
		difficulty:  models.DifficultyEasy,
		category:    "marketing",
	},
	{
		name:        "Value Addition & Processing",
		nameHindi:   "मूल्य संवर्धन",
		gainPerArea: 75000,
		timeframe:   "6-18 months",
		difficulty:  models.DifficultyHard,
		category:    "value-add",
	},
	{
		name:        "Organic Farming Premium",
		nameHindi:   "जैविक खेती",
		gainPerArea: 45000,
		timeframe:   "3 years",
		difficulty:  models.DifficultyMedium,
		category:    "farming",
	},
}

// CatalogGainPerArea returns the summed gain coefficient of the catalog,
// i.e. the potential gain for one unit of land.
func CatalogGainPerArea() float64 {
	var total float64
	for _, entry := range catalog {
		total += entry.gainPerArea
	}
	return total
}

func (e catalogEntry) strategy(landSize float64, language string) models.Strategy {
	name := e.name
	if language == "hi" {
		name = e.nameHindi
	}
	return models.Strategy{
		Name:         name,
		ExpectedGain: e.gainPerArea * landSize,
		Timeframe:    e.timeframe,
		Difficulty:   e.difficulty,
		Category:     e.category,
	}
}
