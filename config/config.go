package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Redis  RedisConfig  `mapstructure:"redis"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Auth   AuthConfig   `mapstructure:"auth"`
	SMTP   SMTPConfig   `mapstructure:"smtp"`
	Log    LogConfig    `mapstructure:"log"`
	Jobs   JobsConfig   `mapstructure:"jobs"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	// Transactions requires a replica set or sharded cluster.
	Transactions bool `mapstructure:"transactions"`
}

// RedisConfig holds cache configuration. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig describes how identity provider tokens are verified.
type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	PublicKeyFile string `mapstructure:"public_key_file"`
	Issuer        string `mapstructure:"issuer"`
	Audience      string `mapstructure:"audience"`
}

// SMTPConfig holds the outbound mail relay settings. An empty Host disables mail.
type SMTPConfig struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	From     string        `mapstructure:"from"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// JobsConfig holds job listing settings
type JobsConfig struct {
	DefaultLimit int           `mapstructure:"default_limit"`
	MaxLimit     int           `mapstructure:"max_limit"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "jobboard")
	v.SetDefault("mongo.connect_timeout", 15*time.Second)
	v.SetDefault("mongo.transactions", false)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	// Empty defaults so AutomaticEnv can see these keys during Unmarshal.
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.public_key_file", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.audience", "")
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("jobs.default_limit", 10)
	v.SetDefault("jobs.max_limit", 100)
	v.SetDefault("jobs.cache_ttl", 30*time.Second)
}

// Load configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app/config")
	v.AddConfigPath("/app")
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Config file not found, using defaults and environment variables.")
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Example: JOBBOARD_MONGO_DATABASE, JOBBOARD_AUTH_JWT_SECRET
	v.SetEnvPrefix("JOBBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides lets the conventional unprefixed variables win.
func applyEnvOverrides(cfg *Config) {
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Mongo.URI = uri
	}
	if db := os.Getenv("MONGO_DB"); db != "" {
		cfg.Mongo.Database = db
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if host := os.Getenv("SMTP_HOST"); host != "" {
		cfg.SMTP.Host = host
	}
	if user := os.Getenv("SMTP_USER"); user != "" {
		cfg.SMTP.Username = user
	}
	if pass := os.Getenv("SMTP_PASSWORD"); pass != "" {
		cfg.SMTP.Password = pass
	}
	if secret := os.Getenv("AUTH_JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}

	// Comma-separated string -> slice
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		origins := strings.Split(originsStr, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		cfg.CORS.AllowedOrigins = origins
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
}

// Validate reports configuration that would leave the service unusable.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" && c.Auth.PublicKeyFile == "" {
		return errors.New("auth: either jwt_secret or public_key_file must be set")
	}
	if c.Jobs.DefaultLimit <= 0 {
		return fmt.Errorf("jobs.default_limit must be positive, got %d", c.Jobs.DefaultLimit)
	}
	if c.Jobs.MaxLimit < c.Jobs.DefaultLimit {
		return fmt.Errorf("jobs.max_limit (%d) must be >= jobs.default_limit (%d)", c.Jobs.MaxLimit, c.Jobs.DefaultLimit)
	}
	if c.Mongo.Database == "" {
		return errors.New("mongo.database must be set")
	}
	return nil
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
