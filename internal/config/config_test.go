package config

import (
	"strings"
	"testing"
)

func setCSVEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FEED_TABLE_SOURCE", FeedSourceCSV)
	t.Setenv("FEED_CSV_PATH", "/tmp/fodder.csv")
}

func TestLoad_CSVSourceDefaults(t *testing.T) {
	setCSVEnv(t)

	cfg, err := Load("testdata/does-not-exist.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.MongoDB.DBName != "cattle_nutrition" {
		t.Errorf("DBName = %q", cfg.MongoDB.DBName)
	}
	if cfg.FeedTable.RefreshCron != "0 5 * * *" {
		t.Errorf("RefreshCron = %q", cfg.FeedTable.RefreshCron)
	}
	if cfg.Weather.Enabled {
		t.Error("weather must be disabled without farm coordinates")
	}
}

func TestLoad_SheetsSourceRequiresCredentials(t *testing.T) {
	t.Setenv("FEED_TABLE_SOURCE", FeedSourceSheets)
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "")
	t.Setenv("FEED_SPREADSHEET_ID", "")

	_, err := Load("testdata/does-not-exist.env")
	if err == nil || !strings.Contains(err.Error(), "GOOGLE_SHEETS_CREDENTIALS_PATH") {
		t.Fatalf("err = %v, want credentials path error", err)
	}
}

func TestLoad_UnknownFeedSource(t *testing.T) {
	t.Setenv("FEED_TABLE_SOURCE", "excel")

	_, err := Load("testdata/does-not-exist.env")
	if err == nil || !strings.Contains(err.Error(), "FEED_TABLE_SOURCE") {
		t.Fatalf("err = %v, want unknown source error", err)
	}
}

func TestLoad_WeatherEnabledByCoordinates(t *testing.T) {
	setCSVEnv(t)
	t.Setenv("FARM_LATITUDE", "13.0827")
	t.Setenv("FARM_LONGITUDE", "80.2707")

	cfg, err := Load("testdata/does-not-exist.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.Weather.Enabled {
		t.Fatal("weather must be enabled when both coordinates are set")
	}
	if cfg.Weather.Latitude != 13.0827 || cfg.Weather.Longitude != 80.2707 {
		t.Fatalf("coordinates = %v, %v", cfg.Weather.Latitude, cfg.Weather.Longitude)
	}
}

func TestLoad_InvalidLatitude(t *testing.T) {
	setCSVEnv(t)
	t.Setenv("FARM_LATITUDE", "north")
	t.Setenv("FARM_LONGITUDE", "80.2707")

	if _, err := Load("testdata/does-not-exist.env"); err == nil {
		t.Fatal("expected error for unparseable latitude")
	}
}
