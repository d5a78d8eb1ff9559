package util

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	MigrationURL      string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	WikipediaAPIURL   string        `mapstructure:"WIKIPEDIA_API_URL"`
	WikiWhoAPIURL     string        `mapstructure:"WIKIWHO_API_URL"`
	EditorBatchSize   int           `mapstructure:"EDITOR_BATCH_SIZE"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	JobTimeout        time.Duration `mapstructure:"JOB_TIMEOUT"`
	CacheTTL          time.Duration `mapstructure:"CACHE_TTL"`
	PendingTTL        time.Duration `mapstructure:"PENDING_TTL"`
	FailureTTL        time.Duration `mapstructure:"FAILURE_TTL"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:3333")
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	// known keys only are picked up from the environment
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("MIGRATION_URL", "file://db/migration")
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("WIKIPEDIA_API_URL", "https://%s.wikipedia.org/w/api.php")
	v.SetDefault("WIKIWHO_API_URL", "https://wikiwho-api.wmcloud.org/%s/api/v1.0.0-beta")
	v.SetDefault("EDITOR_BATCH_SIZE", 50)
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("JOB_TIMEOUT", 5*time.Minute)
	v.SetDefault("CACHE_TTL", 24*time.Hour)
	v.SetDefault("PENDING_TTL", 10*time.Minute)
	v.SetDefault("FAILURE_TTL", time.Minute)
}

// LoadConfig reads app.env from path, environment variables take precedence.
// A missing app.env is fine, the defaults and the environment are used then.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The scheme is optional. If no port is specified, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	urlStr, err := url.Parse(addr)
	if err != nil {
		err = fmt.Errorf("error parsing http server url: %w", err)
		return
	}

	host = urlStr.Hostname()
	port = urlStr.Port()

	if host == "" {
		err = fmt.Errorf("http server address %q has no host", config.HTTPServerAddress)
	}

	return
}
