package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DataDir     string // record store directory (plots/reminders/expenses)
	ProfileDB   string // sqlite path for the mirrored profile
	Debug       bool
	MarketCSV   string
	MarketXLSX  string
	MarketURL   string
	RequireUser bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "Asia/Kolkata"),
		DataDir:     get("DATA_DIR", "data"),
		ProfileDB:   get("PROFILE_DB_PATH", "farmmate.db"),
		Debug:       get("DEBUG", "false") == "true",
		MarketCSV:   get("MARKET_CSV", ""),
		MarketXLSX:  get("MARKET_XLSX", ""),
		MarketURL:   get("MARKET_URL", ""),
		RequireUser: get("REQUIRE_USER", "false") == "true",
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
