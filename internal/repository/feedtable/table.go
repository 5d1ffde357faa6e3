// Package feedtable loads and serves the read-only feed-composition table.
// The table is loaded once at startup and may be refreshed periodically; reads
// always see a consistent snapshot.
package feedtable

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"
)

// Source produces the full set of feed ingredients from an external resource.
type Source interface {
	Load(ctx context.Context) ([]models.FeedIngredient, error)
}

// Table is the in-memory feed-composition table keyed by ingredient name.
type Table struct {
	source Source
	logger *zap.Logger

	mu   sync.RWMutex
	rows map[string]models.FeedIngredient
}

// New builds a table backed by the given source and performs the initial load.
func New(ctx context.Context, source Source, logger *zap.Logger) (*Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	t := &Table{source: source, logger: logger}
	if err := t.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("initial feed table load: %w", err)
	}
	return t, nil
}

// Refresh reloads the table from its source, replacing the snapshot on
// success and leaving the previous one intact on failure.
func (t *Table) Refresh(ctx context.Context) error {
	ingredients, err := t.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load feed table: %w", err)
	}

	rows := make(map[string]models.FeedIngredient, len(ingredients))
	for _, ingredient := range ingredients {
		rows[ingredient.Name] = ingredient
	}

	t.mu.Lock()
	t.rows = rows
	t.mu.Unlock()

	t.logger.Info("feed table refreshed", zap.Int("ingredients", len(rows)))
	return nil
}

// Lookup resolves an ingredient by its exact name.
func (t *Table) Lookup(name string) (models.FeedIngredient, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ingredient, ok := t.rows[name]
	return ingredient, ok
}

// Ingredients returns every row sorted by name.
func (t *Table) Ingredients() []models.FeedIngredient {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.FeedIngredient, 0, len(t.rows))
	for _, ingredient := range t.rows {
		out = append(out, ingredient)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
