package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env          string             `mapstructure:"env"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Availability AvailabilityConfig `mapstructure:"availability"`
	Venue        VenueConfig        `mapstructure:"venue"`
	Queue        QueueConfig        `mapstructure:"queue"`
	Message      MessageConfig      `mapstructure:"message"`
	Auth         AuthConfig         `mapstructure:"auth"`
}

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"`
}

type DatabaseConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Name          string `mapstructure:"name"`
	SSLMode       string `mapstructure:"ssl_mode"`
	AutoMigrate   bool   `mapstructure:"auto_migrate"`
	MaxOpenConns  int    `mapstructure:"max_open_conns"`
	MaxIdleConns  int    `mapstructure:"max_idle_conns"`
	ConnMaxMinute int    `mapstructure:"conn_max_lifetime_minutes"`
}

// DSN renders a lib/pq keyword DSN.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// URL renders the postgres:// form golang-migrate expects.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	CacheDB  int    `mapstructure:"cache_db"`
	QueueDB  int    `mapstructure:"queue_db"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type AvailabilityConfig struct {
	// weekly, dated or triple
	Representation  string `mapstructure:"representation"`
	ProjectionCount int    `mapstructure:"projection_count"`
	PreviewFallback bool   `mapstructure:"preview_fallback"`
}

type VenueConfig struct {
	// catalog or gemini
	Source          string        `mapstructure:"source"`
	MaxResults      int           `mapstructure:"max_results"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	GeminiAPIKey    string        `mapstructure:"gemini_api_key"`
	GeminiModel     string        `mapstructure:"gemini_model"`
	DefaultLocation string        `mapstructure:"default_location"`
}

// AuthConfig enables Google sign-in when all three Google fields are set.
type AuthConfig struct {
	GoogleClientID     string        `mapstructure:"google_client_id"`
	GoogleClientSecret string        `mapstructure:"google_client_secret"`
	GoogleRedirectURL  string        `mapstructure:"google_redirect_url"`
	TokenTTL           time.Duration `mapstructure:"token_ttl"`
}

func (a AuthConfig) GoogleEnabled() bool {
	return a.GoogleClientID != "" && a.GoogleClientSecret != "" && a.GoogleRedirectURL != ""
}

type MessageConfig struct {
	// BCP 47 tag for invitation templates; unknown tags fall back to English.
	Locale string `mapstructure:"locale"`
}

type QueueConfig struct {
	Concurrency int `mapstructure:"concurrency"`
	MaxRetry    int `mapstructure:"max_retry"`
}

var (
	cfg *Config
	mu  sync.RWMutex
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)
	v.SetDefault("server.base_url", "http://localhost:7070")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "meetup_planner")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.cache_db", 0)
	v.SetDefault("redis.queue_db", 1)

	v.SetDefault("jwt.secret", "")

	v.SetDefault("availability.representation", "weekly")
	v.SetDefault("availability.projection_count", 4)
	v.SetDefault("availability.preview_fallback", true)

	v.SetDefault("venue.source", "catalog")
	v.SetDefault("venue.max_results", 5)
	v.SetDefault("venue.cache_ttl", "30m")
	v.SetDefault("venue.gemini_api_key", "")
	v.SetDefault("venue.gemini_model", "gemini-1.5-flash")
	v.SetDefault("venue.default_location", "")

	v.SetDefault("queue.concurrency", 10)
	v.SetDefault("queue.max_retry", 5)

	v.SetDefault("message.locale", "en")

	v.SetDefault("auth.google_client_id", "")
	v.SetDefault("auth.google_client_secret", "")
	v.SetDefault("auth.google_redirect_url", "")
	v.SetDefault("auth.token_ttl", "24h")
}

// Load reads .env (if any), config.yaml (if any) and the environment.
// Environment keys use underscores for nesting, e.g. DATABASE_HOST.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Init loads the configuration once and stores it globally.
func Init() (*Config, error) {
	c, err := Load()
	if err != nil {
		return nil, err
	}
	Set(c)
	return c, nil
}

func Set(c *Config) {
	mu.Lock()
	defer mu.Unlock()
	cfg = c
}

// Get panics when Init has not run; use GetSafe where that can happen.
func Get() *Config {
	c, ok := GetSafe()
	if !ok {
		panic("config not initialized")
	}
	return c
}

func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return cfg, cfg != nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
