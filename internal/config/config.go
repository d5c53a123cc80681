package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Sheets  SheetsConfig  `yaml:"sheets" envconfig:"SHEETS"`
	Quotes  QuotesConfig  `yaml:"quotes" envconfig:"QUOTES"`
	Board   BoardConfig   `yaml:"board" envconfig:"BOARD"`
	Store   StoreConfig   `yaml:"store" envconfig:"STORE"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// SheetsConfig configures the spreadsheet tab fetch client.
type SheetsConfig struct {
	BaseURL      string        `yaml:"base_url" envconfig:"BASE_URL" default:"https://docs.google.com"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" envconfig:"FETCH_TIMEOUT" default:"15s"`
	RateLimit    float64       `yaml:"rate_limit" envconfig:"RATE_LIMIT" default:"10"`
	RateBurst    int           `yaml:"rate_burst" envconfig:"RATE_BURST" default:"20"`
}

// QuotesConfig selects and configures the external price source. Mode
// "feed" reads an HTTP quote-snapshot endpoint; mode "sheet" reads a
// published price sheet through the Sheets API.
type QuotesConfig struct {
	Mode            string `yaml:"mode" envconfig:"MODE" default:"feed"`
	FeedURL         string `yaml:"feed_url" envconfig:"FEED_URL"`
	CredentialsFile string `yaml:"credentials_file" envconfig:"CREDENTIALS_FILE" default:"credentials.json"`
	SheetID         string `yaml:"sheet_id" envconfig:"SHEET_ID"`
	ReadRange       string `yaml:"read_range" envconfig:"READ_RANGE" default:"Board!A1:C200"`
}

// BoardConfig configures the market-board refresh poller.
type BoardConfig struct {
	PollInterval time.Duration `yaml:"poll_interval" envconfig:"POLL_INTERVAL" default:"5s"`
	IdleTTL      time.Duration `yaml:"idle_ttl" envconfig:"IDLE_TTL" default:"60s"`
}

// StoreConfig locates the persisted dashboard configuration blob.
type StoreConfig struct {
	Path string `yaml:"path" envconfig:"PATH" default:"data/dashboard.json"`
}

// Load reads configuration from environment variables and, when present, a
// YAML config file. Environment values take precedence.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("TEAMBOARD", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path := configFilePath(); path != "" {
		fileCfg, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = merge(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge fills zero-valued env fields from the file config.
func merge(fileCfg, envCfg Config) Config {
	if envCfg.Server.Port == 0 {
		envCfg.Server.Port = fileCfg.Server.Port
	}
	if envCfg.Server.ReadTimeout == 0 {
		envCfg.Server.ReadTimeout = fileCfg.Server.ReadTimeout
	}
	if envCfg.Server.WriteTimeout == 0 {
		envCfg.Server.WriteTimeout = fileCfg.Server.WriteTimeout
	}
	if envCfg.Sheets.BaseURL == "" {
		envCfg.Sheets.BaseURL = fileCfg.Sheets.BaseURL
	}
	if envCfg.Quotes.FeedURL == "" {
		envCfg.Quotes.FeedURL = fileCfg.Quotes.FeedURL
	}
	if envCfg.Quotes.SheetID == "" {
		envCfg.Quotes.SheetID = fileCfg.Quotes.SheetID
	}
	if envCfg.Board.PollInterval == 0 {
		envCfg.Board.PollInterval = fileCfg.Board.PollInterval
	}
	if envCfg.Store.Path == "" {
		envCfg.Store.Path = fileCfg.Store.Path
	}
	return envCfg
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Board.PollInterval <= 0 {
		return fmt.Errorf("board poll interval must be positive")
	}
	switch c.Quotes.Mode {
	case "feed", "sheet":
	default:
		return fmt.Errorf("invalid quotes mode: %q", c.Quotes.Mode)
	}
	if c.Sheets.RateLimit <= 0 {
		return fmt.Errorf("sheets rate limit must be positive")
	}
	return nil
}

func configFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "both",
			FilePath: "logs/app.log",
		},
		Sheets: SheetsConfig{
			BaseURL:      "https://docs.google.com",
			FetchTimeout: 15 * time.Second,
			RateLimit:    10,
			RateBurst:    20,
		},
		Quotes: QuotesConfig{
			Mode:            "feed",
			CredentialsFile: "credentials.json",
			ReadRange:       "Board!A1:C200",
		},
		Board: BoardConfig{
			PollInterval: 5 * time.Second,
			IdleTTL:      60 * time.Second,
		},
		Store: StoreConfig{
			Path: "data/dashboard.json",
		},
	}
}
