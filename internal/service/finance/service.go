// Package finance implements the ledger aggregator: an append-only ledger of
// income and expense records per farmer with a read-time summary fold.
package finance

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/domain/errs"
	"github.com/krishimitra/server/internal/domain/models"
	"github.com/krishimitra/server/internal/repository/kv"
	"github.com/krishimitra/server/internal/repository/sheets"
)

const keyPrefix = "finance:"

// Ledger describes the operations the HTTP layer can perform.
type Ledger interface {
	RecordTransaction(ctx context.Context, req models.RecordTransactionRequest) (models.FinancialRecord, error)
	GetSummary(ctx context.Context, farmerID string) (models.LedgerView, error)
}

// Service is the Ledger implementation backed by the key-value store.
type Service struct {
	store    kv.Store
	exporter sheets.Exporter // optional, nil disables spreadsheet export
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new ledger service instance. exporter may be nil.
func NewService(store kv.Store, exporter sheets.Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		exporter: exporter,
		logger:   logger,
		now:      time.Now,
	}
}

// RecordTransaction validates and appends one ledger record. Existing
// records are never altered.
func (s *Service) RecordTransaction(ctx context.Context, req models.RecordTransactionRequest) (models.FinancialRecord, error) {
	if strings.TrimSpace(req.FarmerID) == "" {
		return models.FinancialRecord{}, errs.Validation("farmerId is required")
	}

	txType := models.TransactionType(req.Type)
	if !txType.Valid() {
		return models.FinancialRecord{}, errs.Validation("type must be income or expense")
	}

	if strings.TrimSpace(req.Category) == "" {
		return models.FinancialRecord{}, errs.Validation("category is required")
	}

	if req.Amount == nil {
		return models.FinancialRecord{}, errs.Validation("amount is required")
	}
	amount := *req.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.FinancialRecord{}, errs.Validation("amount must be a finite number")
	}
	if amount < 0 {
		return models.FinancialRecord{}, errs.Validation("amount must not be negative")
	}

	record := models.FinancialRecord{
		SchemaVersion: models.SchemaVersion,
		ID:            uuid.NewString(),
		FarmerID:      req.FarmerID,
		Type:          txType,
		Category:      req.Category,
		Amount:        amount,
		Description:   req.Description,
		Date:          req.Date,
		CreatedAt:     s.now().UTC(),
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return models.FinancialRecord{}, fmt.Errorf("marshal financial record: %w", err)
	}

	key := recordKey(record.FarmerID, record.ID)
	if err := s.store.Put(ctx, key, payload); err != nil {
		return models.FinancialRecord{}, errs.Store("put "+key, err)
	}

	s.export(ctx, record)

	s.logger.Debug("transaction recorded",
		zap.String("farmer_id", record.FarmerID),
		zap.String("record_id", record.ID),
		zap.String("type", string(record.Type)))

	return record, nil
}

// GetSummary loads every record belonging to farmerID and folds the summary.
// An empty record set yields an all-zero summary, not an error.
func (s *Service) GetSummary(ctx context.Context, farmerID string) (models.LedgerView, error) {
	if strings.TrimSpace(farmerID) == "" {
		return models.LedgerView{}, errs.Validation("farmerId is required")
	}

	prefix := keyPrefix + farmerID + ":"
	raw, err := s.store.ScanPrefix(ctx, prefix)
	if err != nil {
		return models.LedgerView{}, errs.Store("scan "+prefix, err)
	}

	records := make([]models.FinancialRecord, 0, len(raw))
	for _, payload := range raw {
		var record models.FinancialRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return models.LedgerView{}, errs.Store("decode record", err)
		}
		records = append(records, record)
	}

	return models.LedgerView{
		Records: records,
		Summary: Summarize(records),
	}, nil
}

// Summarize folds a record set into its derived summary. The profit margin
// is reported as 0 when there is no income, never dividing by zero.
func Summarize(records []models.FinancialRecord) models.FinancialSummary {
	var summary models.FinancialSummary
	for _, record := range records {
		switch record.Type {
		case models.TransactionIncome:
			summary.TotalIncome += record.Amount
		case models.TransactionExpense:
			summary.TotalExpense += record.Amount
		}
	}

	summary.Profit = summary.TotalIncome - summary.TotalExpense
	if summary.TotalIncome > 0 {
		margin := summary.Profit / summary.TotalIncome * 100
		summary.ProfitMargin = math.Round(margin*10) / 10
	}

	return summary
}

func (s *Service) export(ctx context.Context, record models.FinancialRecord) {
	if s.exporter == nil {
		return
	}
	// The KV write is the source of truth; a failed export is only logged.
	if err := s.exporter.AppendRecord(ctx, record); err != nil {
		s.logger.Warn("ledger export failed", zap.String("record_id", record.ID), zap.Error(err))
	}
}

func recordKey(farmerID, recordID string) string {
	return keyPrefix + farmerID + ":" + recordID
}
