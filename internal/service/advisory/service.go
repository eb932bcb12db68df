// Package advisory serves the dashboard panels whose numbers are
// presentational stand-ins. Every provider here synthesizes plausible output
// from fixed base tables plus seeded jitter; none of it is genuine
// inference, and none of it should be mistaken for the deterministic ledger
// and profit-path core.
package advisory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/domain/models"
	"github.com/krishimitra/server/internal/repository/kv"
	"github.com/krishimitra/server/pkg/clients/weather"
)

// Provider describes the mock advisory operations the HTTP layer exposes.
type Provider interface {
	PredictYield(ctx context.Context, req models.YieldRequest) (models.YieldPrediction, error)
	AnalyzeSatellite(ctx context.Context, req models.SatelliteRequest) (models.SatelliteAnalysis, error)
	PredictPrice(ctx context.Context, req models.PriceRequest) (models.PricePrediction, error)
	ClimateRisk(ctx context.Context, req models.ClimateRequest) (models.ClimateRiskAssessment, error)
	CheckSubsidy(ctx context.Context, req models.SubsidyRequest) (models.SubsidyCheck, error)
	GenerateFarmingPlan(ctx context.Context, req models.FarmingPlanRequest) (models.FarmingPlan, error)
	InsuranceRisk(ctx context.Context, req models.InsuranceRequest) (models.InsuranceRiskAssessment, error)
	DiseaseAlert(ctx context.Context, req models.DiseaseRequest) (models.DiseaseSpreadAlert, error)
	CropRotation(ctx context.Context, req models.RotationRequest) (models.CropRotationAdvice, error)
	DetectPest(ctx context.Context, req models.PestRequest) (models.PestDetection, error)
	SoilAnalysis(ctx context.Context, req models.SoilRequest) (models.SoilAnalysis, error)
	IrrigationPlan(ctx context.Context, req models.IrrigationRequest) (models.IrrigationPlan, error)
	WeatherForecast(ctx context.Context, location string) (models.WeatherForecast, error)
}

// Service implements Provider. The random source is injected so tests can
// seed it; a mutex guards it because rand.Rand is not safe for concurrent
// handlers.
type Service struct {
	store   kv.Store
	weather weather.Client // optional upstream forecast provider
	logger  *zap.Logger
	now     func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService wires a new advisory service. weatherClient and rng may be nil;
// a nil rng falls back to a time-seeded source.
func NewService(store kv.Store, weatherClient weather.Client, rng *rand.Rand, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		store:   store,
		weather: weatherClient,
		logger:  logger,
		now:     time.Now,
		rng:     rng,
	}
}

func (s *Service) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *Service) float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// intBetween returns a uniform value in [low, high).
func (s *Service) intBetween(low, high int) int {
	return low + s.intn(high-low)
}

func (s *Service) pick(options []string) string {
	return options[s.intn(len(options))]
}
