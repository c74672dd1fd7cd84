package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"agroadvisor/pkg/logging"
	"agroadvisor/pkg/validation"
)

type AppConfig struct {
	Port          string  `json:"port" validate:"required,numeric"`
	DBPath        string  `json:"db_path" validate:"required"`
	FarmerDataset string  `json:"farmer_dataset" validate:"required"`
	MarketDataset string  `json:"market_dataset" validate:"required"`
	MarketSchema  string  `json:"market_schema"`
	LogLevel      string  `json:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogFormat     string  `json:"log_format" validate:"oneof=json console"`
	FarmTrees     int     `json:"farm_trees" validate:"gte=1,lte=2000"`
	MarketTrees   int     `json:"market_trees" validate:"gte=1,lte=2000"`
	SplitSeed     int64   `json:"split_seed"`
	TestFraction  float64 `json:"test_fraction" validate:"gte=0,lt=1"`
}

func Load() AppConfig {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		logging.Debug().Err(err).Msg("[cfg] no .env file loaded")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function, falling back to
// defaults for unset or unparsable values.
func FromEnv(getenv func(string) string) AppConfig {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int64) int64 {
		if v, err := strconv.ParseInt(getenv(k), 10, 64); err == nil {
			return v
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		if v, err := strconv.ParseFloat(getenv(k), 64); err == nil {
			return v
		}
		return def
	}
	return AppConfig{
		Port:          get("PORT", "8080"),
		DBPath:        get("DB_PATH", "agroadvisor.db"),
		FarmerDataset: get("FARMER_DATASET", "farmer_advisor_dataset.csv"),
		MarketDataset: get("MARKET_DATASET", "market_researcher_dataset.csv"),
		MarketSchema:  get("MARKET_SCHEMA", ""),
		LogLevel:      get("LOG_LEVEL", "info"),
		LogFormat:     get("LOG_FORMAT", "json"),
		FarmTrees:     int(getInt("FARM_TREES", 100)),
		MarketTrees:   int(getInt("MARKET_TREES", 100)),
		SplitSeed:     getInt("SPLIT_SEED", 42),
		TestFraction:  getFloat("TEST_FRACTION", 0.2),
	}
}

func (c AppConfig) Validate() error {
	return validation.Struct(c)
}
