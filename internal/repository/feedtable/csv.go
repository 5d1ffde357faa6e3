package feedtable

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"
)

// CSVSource reads the feed-composition table from a local CSV file with a
// header row: Ingredient,CP,ME. Useful for development and offline setups.
type CSVSource struct {
	path string
}

// NewCSVSource builds a CSV-backed feed table source.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load parses the CSV file into ingredient rows.
func (s *CSVSource) Load(_ context.Context) ([]models.FeedIngredient, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open feed csv %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse feed csv %s: %w", s.path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("feed csv %s has no data rows", s.path)
	}

	// First line is the header.
	ingredients := make([]models.FeedIngredient, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < 3 {
			return nil, fmt.Errorf("feed csv line %d: expected 3 columns, got %d", i+2, len(record))
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("feed csv line %d: empty ingredient name", i+2)
		}

		cp, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("feed csv line %d: invalid CP: %w", i+2, err)
		}

		me, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("feed csv line %d: invalid ME: %w", i+2, err)
		}

		ingredients = append(ingredients, models.FeedIngredient{Name: name, CPPercent: cp, MEMcalPerKg: me})
	}

	return ingredients, nil
}
