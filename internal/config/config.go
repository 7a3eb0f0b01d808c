// internal/config/config.go
package config

import (
	"errors"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"errpages_api/internal/domain"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	DefaultAppEnv          = EnvDevelopment
	DefaultPort            = "8080"
	DefaultAllowedOrigins  = "*"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 15 * time.Second

	// writeTimeoutMargin – запас сверх максимальной задержки /timeout,
	// чтобы сервер не обрывал ответ во время ожидания.
	writeTimeoutMargin = 5 * time.Second
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins []string
	SwaggerEnabled bool

	HTTP struct {
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
		ShutdownTimeout time.Duration
	}
}

func (c *Config) IsDevelopment() bool {
	return strings.ToLower(c.AppEnv) == EnvDevelopment
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// MinWriteTimeout is the smallest write timeout that still lets the longest
// delayed response complete.
func MinWriteTimeout() time.Duration {
	return time.Duration(domain.MaxDelaySeconds)*time.Second + writeTimeoutMargin
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARNING: Failed to read .env file: %v", err)
	}

	v := viper.New()
	v.SetDefault("APP_ENV", DefaultAppEnv)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("CORS_ALLOWED_ORIGINS", DefaultAllowedOrigins)
	v.SetDefault("SWAGGER_ENABLED", true)
	v.SetDefault("HTTP_READ_TIMEOUT", DefaultReadTimeout)
	v.SetDefault("HTTP_WRITE_TIMEOUT", DefaultWriteTimeout)
	v.SetDefault("HTTP_IDLE_TIMEOUT", DefaultIdleTimeout)
	v.SetDefault("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	cfg := Config{}

	cfg.AppEnv = v.GetString("APP_ENV")
	cfg.Port = v.GetString("PORT")
	cfg.AllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.SwaggerEnabled = v.GetBool("SWAGGER_ENABLED")

	cfg.HTTP.ReadTimeout = positiveOr(v.GetDuration("HTTP_READ_TIMEOUT"), DefaultReadTimeout, "HTTP_READ_TIMEOUT")
	cfg.HTTP.WriteTimeout = positiveOr(v.GetDuration("HTTP_WRITE_TIMEOUT"), DefaultWriteTimeout, "HTTP_WRITE_TIMEOUT")
	cfg.HTTP.IdleTimeout = positiveOr(v.GetDuration("HTTP_IDLE_TIMEOUT"), DefaultIdleTimeout, "HTTP_IDLE_TIMEOUT")
	cfg.HTTP.ShutdownTimeout = positiveOr(v.GetDuration("SHUTDOWN_TIMEOUT"), DefaultShutdownTimeout, "SHUTDOWN_TIMEOUT")

	if minWrite := MinWriteTimeout(); cfg.HTTP.WriteTimeout < minWrite {
		log.Printf("WARNING: HTTP_WRITE_TIMEOUT %v is shorter than the longest delayed response, using %v.", cfg.HTTP.WriteTimeout, minWrite)
		cfg.HTTP.WriteTimeout = minWrite
	}

	log.Printf("INFO: Configuration loaded. AppEnv: '%s', Port: '%s', AllowedOrigins: %v", cfg.AppEnv, cfg.Port, cfg.AllowedOrigins)
	log.Printf("INFO: HTTP timeouts: read %v, write %v, idle %v, shutdown %v",
		cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout, cfg.HTTP.IdleTimeout, cfg.HTTP.ShutdownTimeout)

	return &cfg
}

func positiveOr(value, fallback time.Duration, key string) time.Duration {
	if value <= 0 {
		log.Printf("WARNING: %s is invalid or zero, using default %v.", key, fallback)
		return fallback
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
