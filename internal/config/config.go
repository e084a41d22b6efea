package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Events    EventsConfig    `yaml:"events"`
	Authority AuthorityConfig `yaml:"authority"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Sweeper   SweeperConfig   `yaml:"sweeper"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type AuthorityConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

type ScoringConfig struct {
	Weights ScoringWeights `yaml:"weights"`
}

// ScoringWeights is the configurable default weight distribution used when a
// ranking request carries no weights of its own.
type ScoringWeights struct {
	EthicalScore    float64 `yaml:"ethical_score"`
	TechnicalScore  float64 `yaml:"technical_score"`
	PopularityScore float64 `yaml:"popularity_score"`
	DataQuality     float64 `yaml:"data_quality"`
}

type SweeperConfig struct {
	Enabled     bool `yaml:"enabled"`
	IntervalMs  int  `yaml:"interval_ms"`
	MaxAgeHours int  `yaml:"max_age_hours"`
	BatchSize   int  `yaml:"batch_size"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Sweeper.IntervalMs) * time.Millisecond
}

func (c *Config) QualityMaxAge() time.Duration {
	return time.Duration(c.Sweeper.MaxAgeHours) * time.Hour
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				EthicalScore:    0.4,
				TechnicalScore:  0.4,
				PopularityScore: 0.2,
				DataQuality:     0.0,
			},
		},
		Sweeper: SweeperConfig{
			Enabled:     true,
			IntervalMs:  60000,
			MaxAgeHours: 24,
			BatchSize:   25,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("APPRAISE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("APPRAISE_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("APPRAISE_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("APPRAISE_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("APPRAISE_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("APPRAISE_AUTHORITY_URL"); v != "" {
		cfg.Authority.URL = v
	}
	if v := os.Getenv("APPRAISE_AUTHORITY_TOKEN"); v != "" {
		cfg.Authority.Token = v
	}
	if v := os.Getenv("APPRAISE_SWEEPER_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sweeper.Enabled = b
		}
	}
	if v := os.Getenv("APPRAISE_SWEEP_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sweeper.IntervalMs = n
		}
	}
	if v := os.Getenv("APPRAISE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
