package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Vodeneev/oddsline/internal/pkg/resolve"
)

type Config struct {
	APISports APISportsConfig `yaml:"apisports"`
	Cache     CacheConfig     `yaml:"cache"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Server    ServerConfig    `yaml:"server"`
	Resolver  resolve.Config  `yaml:"resolver"`
	Markets   MarketsConfig   `yaml:"markets"`
	Logging   LoggingConfig   `yaml:"logging"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type APISportsConfig struct {
	Key                  string         `yaml:"key"`
	BaseFootball         string         `yaml:"base_football"`
	BaseAmericanFootball string         `yaml:"base_american_football"`
	BaseBasketball       string         `yaml:"base_basketball"`
	Timeout              time.Duration  `yaml:"timeout"`
	Retries              int            `yaml:"retries"`
	Backoff              time.Duration  `yaml:"backoff"`    // base delay, doubled per attempt
	MaxPages             int            `yaml:"max_pages"`  // pagination cap for list endpoints
	LeagueIDs            map[string]int `yaml:"league_ids"` // per-league override of the default provider league id
}

type CacheConfig struct {
	RedisAddr     string        `yaml:"redis_addr"` // empty: in-process cache
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	TTL           time.Duration `yaml:"ttl"`
	Prefix        string        `yaml:"prefix"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	MaxOddsLookups int           `yaml:"max_odds_lookups"` // history: cap on per-fixture odds calls
}

type MarketsConfig struct {
	File string `yaml:"file"` // YAML market table replacing the built-in one
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // optional extra sink
}

type SnapshotConfig struct {
	Leagues     []string `yaml:"leagues"`
	Concurrency int      `yaml:"concurrency"`
	BookmakerID int      `yaml:"bookmaker_id"` // 0: normalizer picks
}

type TelegramConfig struct {
	BotToken     string  `yaml:"bot_token"`
	OddslineURL  string  `yaml:"oddsline_url"`
	AllowedUsers []int64 `yaml:"allowed_users"` // empty: everyone
}

// Default returns the configuration used when a key is absent from the file.
func Default() *Config {
	return &Config{
		APISports: APISportsConfig{
			BaseFootball:         "https://v3.football.api-sports.io",
			BaseAmericanFootball: "https://v1.american-football.api-sports.io",
			BaseBasketball:       "https://v1.basketball.api-sports.io",
			Timeout:              20 * time.Second,
			Retries:              2,
			Backoff:              750 * time.Millisecond,
			MaxPages:             10,
		},
		Cache: CacheConfig{
			TTL:    5 * time.Minute,
			Prefix: "oddsline:",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   60 * time.Second,
			AllowedOrigins: []string{"*"},
			MaxOddsLookups: 200,
		},
		Resolver: resolve.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Snapshot: SnapshotConfig{
			Leagues:     []string{"nba", "nfl", "ncaaf", "ncaab", "soccer"},
			Concurrency: 4,
		},
		Telegram: TelegramConfig{
			OddslineURL: "http://localhost:8080",
		},
	}
}

// Load reads the YAML file over the defaults, then applies .env and environment
// overrides. An empty path skips the file.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() error {
	setString(&c.APISports.Key, "APISPORTS_KEY")
	setString(&c.APISports.BaseFootball, "APISPORTS_BASE_FOOTBALL")
	setString(&c.APISports.BaseAmericanFootball, "APISPORTS_BASE_AMERICAN_FOOTBALL")
	setString(&c.APISports.BaseBasketball, "APISPORTS_BASE_BASKETBALL")
	setString(&c.Cache.RedisAddr, "REDIS_ADDR")
	setString(&c.Postgres.DSN, "POSTGRES_DSN")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Server.Addr, "ODDSLINE_ADDR")
	setString(&c.Markets.File, "MARKETS_FILE")
	setString(&c.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setString(&c.Telegram.OddslineURL, "ODDSLINE_URL")

	if v := os.Getenv("TELEGRAM_ALLOWED_USERS"); v != "" {
		users, err := parseIDs(v)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_ALLOWED_USERS: %w", err)
		}
		c.Telegram.AllowedUsers = users
	}
	return nil
}

func setString(dst *string, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		*dst = v
	}
}

func parseIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
