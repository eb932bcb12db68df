package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/krishimitra/server/internal/config"
	"github.com/krishimitra/server/internal/domain/models"
)

const ledgerRange = "Ledger!A:G"

// Exporter mirrors recorded transactions into an external spreadsheet so
// field officers can review a farmer's ledger without API access.
type Exporter interface {
	AppendRecord(ctx context.Context, record models.FinancialRecord) error
}

// GoogleSheetExporter implements Exporter using the official Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Sheets-backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetExporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendRecord appends one ledger row to the configured spreadsheet.
func (e *GoogleSheetExporter) AppendRecord(ctx context.Context, record models.FinancialRecord) error {
	row := []interface{}{
		record.Date,
		record.FarmerID,
		string(record.Type),
		record.Category,
		record.Amount,
		record.Description,
		record.ID,
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, ledgerRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append ledger row: %w", err)
	}

	e.logger.Debug("ledger row exported", zap.String("record_id", record.ID))
	return nil
}
