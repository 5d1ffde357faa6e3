package feedtable

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/config"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"
)

// GoogleSheetSource reads the feed-composition table from a spreadsheet with
// columns Ingredient, CP (%), ME (Mcal/kg).
type GoogleSheetSource struct {
	service       *sheetsapi.Service
	spreadsheetID string
	readRange     string
	logger        *zap.Logger
}

// NewGoogleSheetSource builds a Sheets-backed feed table source.
func NewGoogleSheetSource(ctx context.Context, cfg config.FeedTableConfig, logger *zap.Logger) (*GoogleSheetSource, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetSource{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     cfg.SheetRange,
		logger:        logger,
	}, nil
}

// Load fetches the configured range and parses it into ingredient rows.
// Rows with a missing name or unparseable numbers are skipped and logged.
func (s *GoogleSheetSource) Load(ctx context.Context) ([]models.FeedIngredient, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", s.readRange, err)
	}

	ingredients := make([]models.FeedIngredient, 0, len(resp.Values))
	for _, row := range resp.Values {
		ingredient, err := parseSheetRow(row)
		if err != nil {
			s.logger.Debug("skip feed row", zap.Any("row", row), zap.Error(err))
			continue
		}
		ingredients = append(ingredients, ingredient)
	}

	if len(ingredients) == 0 {
		return nil, fmt.Errorf("range %s yielded no ingredient rows", s.readRange)
	}

	return ingredients, nil
}

func parseSheetRow(row []interface{}) (models.FeedIngredient, error) {
	if len(row) < 3 {
		return models.FeedIngredient{}, fmt.Errorf("expected 3 columns, got %d", len(row))
	}

	name := fmt.Sprint(row[0])
	if name == "" {
		return models.FeedIngredient{}, fmt.Errorf("empty ingredient name")
	}

	cp, err := strconv.ParseFloat(fmt.Sprint(row[1]), 64)
	if err != nil {
		return models.FeedIngredient{}, fmt.Errorf("invalid CP value %v: %w", row[1], err)
	}

	me, err := strconv.ParseFloat(fmt.Sprint(row[2]), 64)
	if err != nil {
		return models.FeedIngredient{}, fmt.Errorf("invalid ME value %v: %w", row[2], err)
	}

	return models.FeedIngredient{Name: name, CPPercent: cp, MEMcalPerKg: me}, nil
}
