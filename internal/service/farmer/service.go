// Package farmer stores farmer profiles, learning-topic completions and the
// government scheme directory.
package farmer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/domain/errs"
	"github.com/krishimitra/server/internal/domain/models"
	"github.com/krishimitra/server/internal/repository/kv"
)

const (
	profilePrefix   = "farmer:"
	schemePrefix    = "govt_scheme:"
	awarenessPrefix = "awareness:"
)

// Directory describes the operations the HTTP layer can perform.
type Directory interface {
	SaveProfile(ctx context.Context, profile models.FarmerProfile) (models.FarmerProfile, error)
	CompleteAwareness(ctx context.Context, req models.AwarenessRequest) (models.AwarenessCompletion, error)
	GovernmentSchemes(ctx context.Context) ([]models.GovernmentScheme, error)
}

// Service is the Directory implementation backed by the key-value store.
type Service struct {
	store  kv.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new directory instance.
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

// SaveProfile stores the profile under a freshly generated farmer id.
func (s *Service) SaveProfile(ctx context.Context, profile models.FarmerProfile) (models.FarmerProfile, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return models.FarmerProfile{}, errs.Validation("name is required")
	}

	profile.SchemaVersion = models.SchemaVersion
	profile.ID = "farmer_" + uuid.NewString()
	profile.CreatedAt = s.now().UTC()

	if err := s.put(ctx, profilePrefix+profile.ID, profile); err != nil {
		return models.FarmerProfile{}, err
	}

	s.logger.Debug("farmer profile saved", zap.String("farmer_id", profile.ID))
	return profile, nil
}

// CompleteAwareness records that the farmer finished a learning topic.
// Re-completing a topic overwrites the previous completion timestamp.
func (s *Service) CompleteAwareness(ctx context.Context, req models.AwarenessRequest) (models.AwarenessCompletion, error) {
	if strings.TrimSpace(req.FarmerID) == "" || strings.TrimSpace(req.TopicID) == "" {
		return models.AwarenessCompletion{}, errs.Validation("farmerId and topicId are required")
	}

	completion := models.AwarenessCompletion{
		SchemaVersion: models.SchemaVersion,
		FarmerID:      req.FarmerID,
		TopicID:       req.TopicID,
		Language:      req.Language,
		CompletedAt:   s.now().UTC(),
	}

	key := awarenessPrefix + req.FarmerID + ":" + req.TopicID
	if err := s.put(ctx, key, completion); err != nil {
		return models.AwarenessCompletion{}, err
	}

	return completion, nil
}

// GovernmentSchemes lists the scheme directory, seeding the defaults on
// first read so a fresh deployment is never empty.
func (s *Service) GovernmentSchemes(ctx context.Context) ([]models.GovernmentScheme, error) {
	raw, err := s.store.ScanPrefix(ctx, schemePrefix)
	if err != nil {
		return nil, errs.Store("scan "+schemePrefix, err)
	}

	if len(raw) == 0 {
		return s.seedDefaultSchemes(ctx)
	}

	schemes := make([]models.GovernmentScheme, 0, len(raw))
	for _, payload := range raw {
		var scheme models.GovernmentScheme
		if err := json.Unmarshal(payload, &scheme); err != nil {
			return nil, errs.Store("decode scheme", err)
		}
		schemes = append(schemes, scheme)
	}

	return schemes, nil
}

func (s *Service) seedDefaultSchemes(ctx context.Context) ([]models.GovernmentScheme, error) {
	defaults := []models.GovernmentScheme{
		{
			SchemaVersion:  models.SchemaVersion,
			ID:             "pm-kisan",
			Name:           "PM-KISAN",
			Amount:         "₹6,000/year",
			Category:       "income",
			Description:    "Direct income support to farmers",
			Eligibility:    "All landholding farmers",
			ApplicationURL: "https://pmkisan.gov.in",
		},
		{
			SchemaVersion:  models.SchemaVersion,
			ID:             "pmfby",
			Name:           "PMFBY",
			Amount:         "2% premium for Kharif",
			Category:       "insurance",
			Description:    "Crop insurance scheme",
			Eligibility:    "All farmers",
			ApplicationURL: "https://pmfby.gov.in",
		},
		{
			SchemaVersion:  models.SchemaVersion,
			ID:             "pmksy",
			Name:           "PMKSY",
			Amount:         "Up to 90% subsidy",
			Category:       "infrastructure",
			Description:    "Irrigation subsidy scheme",
			Eligibility:    "All farmers with land",
			ApplicationURL: "https://pmksy.gov.in",
		},
	}

	for _, scheme := range defaults {
		if err := s.put(ctx, schemePrefix+scheme.ID, scheme); err != nil {
			return nil, err
		}
	}

	s.logger.Info("seeded default government schemes", zap.Int("count", len(defaults)))
	return defaults, nil
}

func (s *Service) put(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.store.Put(ctx, key, payload); err != nil {
		return errs.Store("put "+key, err)
	}
	return nil
}
