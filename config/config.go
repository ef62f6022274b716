package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Log      Log
}

type Server struct {
	Port            string
	GinMode         string
	AllowOrigins    []string
	ShutdownTimeout time.Duration
}

type Database struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowQuery       time.Duration
	ResetOnStart    bool
}

type Log struct {
	Level  string
	Format string
	File   string
}

// DSN returns DATABASE_URL when set, otherwise a URL assembled from the
// individual DATABASE_* settings.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_NAME", "questions")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME_SECONDS", 300)
	v.SetDefault("DB_SLOW_QUERY_MS", 200)
	v.SetDefault("DATABASE_RESET_ON_START", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}

// NewConfig loads settings from the process environment and an optional .env
// file in the working directory. Variables already present in the
// environment win over the file.
func NewConfig() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Server.AllowOrigins = splitList(v.GetString("CORS_ALLOW_ORIGINS"))
	config.Server.ShutdownTimeout = time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second

	config.Database.URL = v.GetString("DATABASE_URL")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.MaxOpenConns = v.GetInt("DB_MAX_OPEN_CONNS")
	config.Database.MaxIdleConns = v.GetInt("DB_MAX_IDLE_CONNS")
	config.Database.ConnMaxLifetime = time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_SECONDS")) * time.Second
	config.Database.SlowQuery = time.Duration(v.GetInt("DB_SLOW_QUERY_MS")) * time.Millisecond
	config.Database.ResetOnStart = v.GetBool("DATABASE_RESET_ON_START")

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Format = v.GetString("LOG_FORMAT")
	config.Log.File = v.GetString("LOG_FILE")

	if config.Server.Port == "" {
		return nil, fmt.Errorf("SERVER_PORT must not be empty")
	}

	return &config, nil
}

// LogSummary writes the non-secret settings through the global logger. Call it
// after logger.Init so the line honours LOG_LEVEL, LOG_FORMAT and LOG_FILE.
func (c *Config) LogSummary() {
	log.Info().
		Str("port", c.Server.Port).
		Str("gin_mode", c.Server.GinMode).
		Str("db_host", c.Database.Host).
		Str("db_name", c.Database.Name).
		Bool("db_url_set", c.Database.URL != "").
		Bool("reset_on_start", c.Database.ResetOnStart).
		Str("log_level", c.Log.Level).
		Msg("Config loaded")
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
