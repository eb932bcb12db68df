// Package profit implements the income-doubling projector. Given a farmer's
// current income and land size it computes a deterministic trajectory from a
// fixed strategy catalog and appends each projection to an audit log.
package profit

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/domain/errs"
	"github.com/krishimitra/server/internal/domain/models"
	"github.com/krishimitra/server/internal/repository/kv"
)

// AuditPrefix keys the append-only projection log. Entries are written once
// and only ever read back for historical listing.
const AuditPrefix = "profit_calc:"

const (
	timeline       = "12-24 months"
	achievementCap = 150
	historyLimit   = 10
)

// Projector describes the operations the HTTP layer can perform.
type Projector interface {
	CalculateProfitPath(ctx context.Context, req models.ProfitPathRequest) (models.ProfitPathProjection, error)
	IncomeHistory(ctx context.Context, farmerID string) ([]models.ProfitCalculation, error)
}

// Service is the Projector implementation backed by the key-value store.
type Service struct {
	store  kv.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new projector instance.
func NewService(store kv.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CalculateProfitPath computes the income-doubling projection. Identical
// inputs always produce identical numbers; language only swaps display
// labels. Each successful computation appends one audit entry.
func (s *Service) CalculateProfitPath(ctx context.Context, req models.ProfitPathRequest) (models.ProfitPathProjection, error) {
	if req.CurrentIncome == nil || *req.CurrentIncome <= 0 || req.LandSize == nil || *req.LandSize <= 0 {
		return models.ProfitPathProjection{}, errs.Validation("current income and land size are required")
	}

	income := *req.CurrentIncome
	land := *req.LandSize

	strategies := make([]models.Strategy, 0, len(catalog))
	var quickWins, mediumTerm, longTerm []models.Strategy
	var potentialGain float64

	for _, entry := range catalog {
		strategy := entry.strategy(land, req.Language)
		potentialGain += strategy.ExpectedGain
		strategies = append(strategies, strategy)

		switch strategy.Difficulty {
		case models.DifficultyEasy:
			quickWins = append(quickWins, strategy)
		case models.DifficultyMedium:
			mediumTerm = append(mediumTerm, strategy)
		case models.DifficultyHard:
			longTerm = append(longTerm, strategy)
		}
	}

	targetIncome := income * 2
	projectedIncome := income + potentialGain
	achievement := projectedIncome / targetIncome * 100
	if achievement > achievementCap {
		achievement = achievementCap
	}

	projection := models.ProfitPathProjection{
		CurrentIncome:      income,
		TargetIncome:       targetIncome,
		ProjectedIncome:    projectedIncome,
		PotentialGain:      potentialGain,
		AchievementPercent: achievement,
		Strategies:         strategies,
		Timeline:           timeline,
		QuickWins:          quickWins,
		MediumTerm:         mediumTerm,
		LongTerm:           longTerm,
	}

	if err := s.appendAudit(ctx, projection, land, req.CropType); err != nil {
		return models.ProfitPathProjection{}, err
	}

	return projection, nil
}

// IncomeHistory lists recent projections, newest first, capped at ten. The
// audit log is global; farmerID is accepted for interface stability but the
// stored entries carry no owner yet.
func (s *Service) IncomeHistory(ctx context.Context, farmerID string) ([]models.ProfitCalculation, error) {
	raw, err := s.store.ScanPrefix(ctx, AuditPrefix)
	if err != nil {
		return nil, errs.Store("scan "+AuditPrefix, err)
	}

	history := make([]models.ProfitCalculation, 0, len(raw))
	for _, payload := range raw {
		var calc models.ProfitCalculation
		if err := json.Unmarshal(payload, &calc); err != nil {
			return nil, errs.Store("decode calculation", err)
		}
		history = append(history, calc)
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].CalculatedAt.After(history[j].CalculatedAt)
	})
	if len(history) > historyLimit {
		history = history[:historyLimit]
	}

	s.logger.Debug("income history listed", zap.String("farmer_id", farmerID), zap.Int("entries", len(history)))
	return history, nil
}

func (s *Service) appendAudit(ctx context.Context, projection models.ProfitPathProjection, land float64, cropType string) error {
	now := s.now().UTC()
	entry := models.ProfitCalculation{
		ProfitPathProjection: projection,
		SchemaVersion:        models.SchemaVersion,
		LandSize:             land,
		CropType:             cropType,
		CalculatedAt:         now,
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal profit calculation: %w", err)
	}

	key := AuditPrefix + strconv.FormatInt(now.UnixMilli(), 10)
	if err := s.store.Put(ctx, key, payload); err != nil {
		return errs.Store("put "+key, err)
	}
	return nil
}
