package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Feed table source kinds.
const (
	FeedSourceSheets = "sheets"
	FeedSourceCSV    = "csv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	FeedTable FeedTableConfig
	Weather   WeatherConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the farmer record store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// FeedTableConfig describes where the feed-composition table is loaded from.
type FeedTableConfig struct {
	Source          string
	CredentialsPath string
	SpreadsheetID   string
	SheetRange      string
	CSVPath         string
	RefreshCron     string
}

// WeatherConfig holds settings for the ambient temperature lookup. The
// lookup is optional; it is enabled only when farm coordinates are provided.
type WeatherConfig struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
	Enabled   bool
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "cattle_nutrition"),
		},
		FeedTable: FeedTableConfig{
			Source:          getenvWithDefault("FEED_TABLE_SOURCE", FeedSourceSheets),
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("FEED_SPREADSHEET_ID"),
			SheetRange:      getenvWithDefault("FEED_SHEET_RANGE", "Fodder!A2:C"),
			CSVPath:         os.Getenv("FEED_CSV_PATH"),
			RefreshCron:     getenvWithDefault("FEED_REFRESH_CRON", "0 5 * * *"),
		},
		Weather: WeatherConfig{
			BaseURL: getenvWithDefault("WEATHER_BASE_URL", "https://api.open-meteo.com"),
		},
	}

	latStr := os.Getenv("FARM_LATITUDE")
	lonStr := os.Getenv("FARM_LONGITUDE")
	if latStr != "" && lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid FARM_LATITUDE %q: %w", latStr, err)
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid FARM_LONGITUDE %q: %w", lonStr, err)
		}
		cfg.Weather.Latitude = lat
		cfg.Weather.Longitude = lon
		cfg.Weather.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}
	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	switch c.FeedTable.Source {
	case FeedSourceSheets:
		if c.FeedTable.CredentialsPath == "" {
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided for the sheets feed source")
		}
		if c.FeedTable.SpreadsheetID == "" {
			return errors.New("FEED_SPREADSHEET_ID must be provided for the sheets feed source")
		}
		if c.FeedTable.SheetRange == "" {
			return errors.New("FEED_SHEET_RANGE must not be empty")
		}
	case FeedSourceCSV:
		if c.FeedTable.CSVPath == "" {
			return errors.New("FEED_CSV_PATH must be provided for the csv feed source")
		}
	default:
		return fmt.Errorf("unknown FEED_TABLE_SOURCE %q", c.FeedTable.Source)
	}

	if c.FeedTable.RefreshCron == "" {
		return errors.New("FEED_REFRESH_CRON must be provided")
	}

	if c.Weather.Enabled && c.Weather.BaseURL == "" {
		return errors.New("WEATHER_BASE_URL must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
