package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Composer ComposerConfig `json:"composer"`

	// Media server configuration
	Media MediaConfig `json:"media"`

	// MySQL configuration (draft autosave store)
	Database DatabaseConfig `json:"database"`

	// MongoDB configuration (GridFS media blobs)
	MongoDB MongoConfig `json:"mongodb"`
}

// ComposerConfig contains the tunables of the composition core.
type ComposerConfig struct {
	CharacterCeiling int           `json:"character_ceiling"` // max post length before submit is blocked
	MaxAttachments   int           `json:"max_attachments"`   // attachment list cap
	LinkDebounce     time.Duration `json:"link_debounce"`     // inactivity window before link resolution
	MintCost         float64       `json:"mint_cost"`         // fixed cost charged against the wallet balance
	PollDuration     time.Duration `json:"poll_duration"`     // fixed voting window
	JPEGQuality      int           `json:"jpeg_quality"`      // encode quality for saved image edits
}

// MediaConfig contains the HTTP media server configuration.
type MediaConfig struct {
	Port    string `json:"port"`
	BaseURL string `json:"base_url"` // prefix for served media references
}

type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Database string `json:"database"`
}

// LoadConfig reads .env (if present) and the process environment, falling
// back to defaults for anything unset.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	return &Config{
		Composer: ComposerConfig{
			CharacterCeiling: envInt("COMPOSER_CHAR_CEILING", 500),
			MaxAttachments:   envInt("COMPOSER_MAX_ATTACHMENTS", 6),
			LinkDebounce:     time.Duration(envInt("COMPOSER_LINK_DEBOUNCE_MS", 1000)) * time.Millisecond,
			MintCost:         envFloat("COMPOSER_MINT_COST", 50),
			PollDuration:     time.Duration(envInt("COMPOSER_POLL_DURATION_HOURS", 24)) * time.Hour,
			JPEGQuality:      envInt("COMPOSER_JPEG_QUALITY", 90),
		},
		Media: MediaConfig{
			Port:    envString("MEDIA_PORT", "8080"),
			BaseURL: envString("MEDIA_BASE_URL", "http://localhost:8080/media/"),
		},
		Database: DatabaseConfig{
			Host:         envString("DB_HOST", "localhost"),
			Port:         envString("DB_PORT", "3306"),
			Username:     envString("DB_USER", "feedcompose"),
			Password:     envString("DB_PASSWORD", ""),
			DatabaseName: envString("DB_NAME", "feedcompose"),
			MaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: envInt("DB_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoConfig{
			Host:     envString("MONGO_HOST", "localhost"),
			Port:     envString("MONGO_PORT", "27017"),
			Database: envString("MONGO_DB", "feedcompose"),
		},
	}
}

// DSN builds the MySQL connection string for the draft store.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// GetMongoURI builds the MongoDB connection string.
func (cfg *Config) GetMongoURI() string {
	return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDB.Host, cfg.MongoDB.Port)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}
