package feedtable

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"
)

type staticSource struct {
	rows []models.FeedIngredient
	err  error
}

func (s *staticSource) Load(context.Context) ([]models.FeedIngredient, error) {
	return s.rows, s.err
}

func TestTable_LookupAndIngredientsSorted(t *testing.T) {
	source := &staticSource{rows: []models.FeedIngredient{
		{Name: "Wheat Straw", CPPercent: 3.5, MEMcalPerKg: 1.5},
		{Name: "Berseem", CPPercent: 17.0, MEMcalPerKg: 2.4},
	}}

	table, err := New(context.Background(), source, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ingredient, ok := table.Lookup("Berseem")
	if !ok || ingredient.CPPercent != 17.0 {
		t.Fatalf("Lookup(Berseem) = %+v, %v", ingredient, ok)
	}
	if _, ok := table.Lookup("berseem"); ok {
		t.Fatal("lookup must match on the exact table key")
	}

	all := table.Ingredients()
	if len(all) != 2 || all[0].Name != "Berseem" || all[1].Name != "Wheat Straw" {
		t.Fatalf("Ingredients() = %+v, want sorted by name", all)
	}
}

func TestTable_RefreshFailureKeepsSnapshot(t *testing.T) {
	source := &staticSource{rows: []models.FeedIngredient{{Name: "Berseem", CPPercent: 17, MEMcalPerKg: 2.4}}}

	table, err := New(context.Background(), source, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	source.err = errors.New("sheet unreachable")
	if err := table.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}

	if _, ok := table.Lookup("Berseem"); !ok {
		t.Fatal("previous snapshot lost after failed refresh")
	}
}

func TestParseSheetRow(t *testing.T) {
	ingredient, err := parseSheetRow([]interface{}{"Maize Silage", "8.0", "2.6"})
	if err != nil {
		t.Fatalf("parseSheetRow: %v", err)
	}
	if ingredient.Name != "Maize Silage" || ingredient.CPPercent != 8.0 || ingredient.MEMcalPerKg != 2.6 {
		t.Fatalf("parseSheetRow = %+v", ingredient)
	}

	if _, err := parseSheetRow([]interface{}{"Maize Silage", "eight", "2.6"}); err == nil {
		t.Fatal("expected error for non-numeric CP")
	}
	if _, err := parseSheetRow([]interface{}{"Maize Silage"}); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestCSVSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fodder.csv")
	contents := "Ingredient,CP,ME\nBerseem,17.0,2.4\nWheat Straw,3.5,1.5\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	rows, err := NewCSVSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Name != "Berseem" || rows[0].CPPercent != 17.0 || rows[0].MEMcalPerKg != 2.4 {
		t.Fatalf("rows[0] = %+v", rows[0])
	}
}

func TestCSVSource_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, []byte("Ingredient,CP,ME\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := NewCSVSource(empty).Load(context.Background()); err == nil {
		t.Fatal("expected error for csv without data rows")
	}

	bad := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(bad, []byte("Ingredient,CP,ME\nBerseem,abc,2.4\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := NewCSVSource(bad).Load(context.Background()); err == nil {
		t.Fatal("expected error for non-numeric CP")
	}

	if _, err := NewCSVSource(filepath.Join(dir, "missing.csv")).Load(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
