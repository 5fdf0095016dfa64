package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type Config struct {
	Port               string `mapstructure:"port"`
	GinMode            string `mapstructure:"gin_mode"`
	DBDriver           string `mapstructure:"db_driver"`
	DBDSN              string `mapstructure:"db_dsn"`
	DBLogLevel         string `mapstructure:"db_log_level"`
	CORSOrigins        string `mapstructure:"cors_origins"`
	PurgeSchedule      string `mapstructure:"purge_schedule"`
	PurgeRetentionDays int    `mapstructure:"purge_retention_days"`
}

// Load reads config/config.yaml when present, then lets environment
// variables override it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "futsim.db")
	v.SetDefault("db_log_level", "warn")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("purge_schedule", "0 0 3 * * *")
	v.SetDefault("purge_retention_days", 30)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.PurgeRetentionDays <= 0 {
		return nil, fmt.Errorf("purge_retention_days must be positive, got %d", cfg.PurgeRetentionDays)
	}

	return &cfg, nil
}

// Origins splits CORS_ORIGINS on commas.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.Origins() {
		if o == "*" {
			return true
		}
	}
	return false
}

func (c *Config) PurgeRetention() time.Duration {
	return time.Duration(c.PurgeRetentionDays) * 24 * time.Hour
}

// Open connects to the configured database.
func Open(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(cfg.DBLogLevel)),
	})
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	}
	return logger.Warn
}

// ConnectDatabase opens the database and stores it in DB. It exits the
// process when the connection cannot be made.
func ConnectDatabase(cfg *Config) {
	db, err := Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", cfg.DBDriver, err)
	}

	DB = db
	log.Printf("Database connected (%s)", cfg.DBDriver)
}
