// Package market implements the farmer-to-buyer produce marketplace.
package market

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

const listingPrefix = "marketplace:"

// Marketplace describes the operations the HTTP layer can perform.
type Marketplace interface {
	CreateListing(ctx context.Context, req models.CreateListingRequest) (models.Listing, error)
	Listings(ctx context.Context) ([]models.Listing, error)
}

// Service is the Marketplace implementation backed by the key-value store.
type Service struct {
	store  kv.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new marketplace instance.
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

// CreateListing validates and stores one produce offer.
func (s *Service) CreateListing(ctx context.Context, req models.CreateListingRequest) (models.Listing, error) {
	if strings.TrimSpace(req.FarmerID) == "" {
		return models.Listing{}, errs.Validation("farmerId is required")
	}
	if strings.TrimSpace(req.CropType) == "" {
		return models.Listing{}, errs.Validation("cropType is required")
	}
	if req.Quantity <= 0 {
		return models.Listing{}, errs.Validation("quantity must be positive")
	}
	if req.PricePerUnit <= 0 {
		return models.Listing{}, errs.Validation("pricePerUnit must be positive")
	}

	now := s.now()
	listing := models.Listing{
		SchemaVersion: models.SchemaVersion,
		ID:            fmt.Sprintf("listing_%d_%s", now.UnixMilli(), shortID()),
		FarmerID:      req.FarmerID,
		CropType:      req.CropType,
		Quantity:      req.Quantity,
		PricePerUnit:  req.PricePerUnit,
		Location:      req.Location,
		HarvestDate:   req.HarvestDate,
		Status:        "active",
		CreatedAt:     now.UTC(),
	}

	payload, err := json.Marshal(listing)
	if err != nil {
		return models.Listing{}, fmt.Errorf("marshal listing: %w", err)
	}

	key := listingPrefix + listing.ID
	if err := s.store.Put(ctx, key, payload); err != nil {
		return models.Listing{}, errs.Store("put "+key, err)
	}

	s.logger.Debug("listing created", zap.String("listing_id", listing.ID), zap.String("farmer_id", listing.FarmerID))
	return listing, nil
}

// Listings returns every stored offer, in store order.
func (s *Service) Listings(ctx context.Context) ([]models.Listing, error) {
	raw, err := s.store.ScanPrefix(ctx, listingPrefix)
	if err != nil {
		return nil, errs.Store("scan "+listingPrefix, err)
	}

	listings := make([]models.Listing, 0, len(raw))
	for _, payload := range raw {
		var listing models.Listing
		if err := json.Unmarshal(payload, &listing); err != nil {
			return nil, errs.Store("decode listing", err)
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
