package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	TSVPath   string
	OutputDir string
	DBPath    string
	JWTSecret string
	AdminKey  string
	// RunOnStart triggers a full pipeline run before the server starts
	// so a fresh deployment serves data without a manual trigger.
	RunOnStart bool
}

// Load reads configuration from the environment, with an optional .env
// file, falling back to development defaults.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if port[0] != ':' {
		port = ":" + port
	}

	tsvPath := os.Getenv("TSV_PATH")
	if tsvPath == "" {
		tsvPath = "./data/haunted_places_v2.tsv"
	}

	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "./output"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/haunted_places.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	adminKey := os.Getenv("ADMIN_KEY")
	if adminKey == "" {
		adminKey = "admin"
	}

	return &Config{
		Port:       port,
		TSVPath:    tsvPath,
		OutputDir:  outputDir,
		DBPath:     dbPath,
		JWTSecret:  jwtSecret,
		AdminKey:   adminKey,
		RunOnStart: os.Getenv("RUN_ON_START") != "false",
	}
}
