// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"liyu1981.xyz/trade-alerts/pkg/alerts"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

const (
	StoreTypePostgrest = "postgrest"
	StoreTypeFile      = "file"
	StoreTypeMemory    = "memory"
)

type SupabaseConfig struct {
	URL string `env:"SUPABASE_URL"`
	Key string `env:"SUPABASE_KEY"`
}

type QuoteConfig struct {
	Endpoint string        `env:"XYLEX_API_ENDPOINT,required"`
	APIKey   string        `env:"XYLEX_API_KEY"`
	Rate     float64       `env:"ALERTS_QUOTE_RATE,default=0"`
	Timeout  time.Duration `env:"ALERTS_QUOTE_TIMEOUT,default=10s"`
}

type EvaluatorConfig struct {
	Schedule         string        `env:"ALERTS_SCHEDULE,default=@every 30s"`
	PassTimeout      time.Duration `env:"ALERTS_PASS_TIMEOUT,default=25s"`
	Tolerance        float64       `env:"ALERTS_TOLERANCE,default=0.00001"`
	QuoteConcurrency int           `env:"ALERTS_QUOTE_CONCURRENCY,default=1"`
	ReapPolicy       string        `env:"ALERTS_REAP_POLICY,default=fail_fast"`
}

type RedisConfig struct {
	Addr    string `env:"ALERTS_REDIS_ADDR"`
	Channel string `env:"ALERTS_REDIS_CHANNEL,default=alerts:triggered"`
}

type ServerConfig struct {
	HttpHostPort string  `env:"ALERTS_HTTP_HOST_PORT,default=:1080"`
	GrpcHostPort string  `env:"ALERTS_GRPC_HOST_PORT"`
	DefaultRate  float64 `env:"ALERTS_DEFAULT_RATE,default=10"`
	DefaultBurst int     `env:"ALERTS_DEFAULT_BURST,default=20"`
}

type Config struct {
	StoreType       string `env:"ALERTS_STORE_TYPE,default=file"`
	DbPath          string `env:"ALERTS_DB_PATH,default=alerts.db"`
	TableConfigPath string `env:"ALERTS_TABLE_CONFIG"`

	Supabase  SupabaseConfig
	Quote     QuoteConfig
	Evaluator EvaluatorConfig
	Redis     RedisConfig
	Server    ServerConfig

	Table models.TableConfig
}

// Load decodes the environment, then loads the table config file if one is set.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	cfg.Table = models.DefaultTableConfig()
	if cfg.TableConfigPath != "" {
		table, err := models.LoadTableConfig(cfg.TableConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.Table = table
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreType {
	case StoreTypeFile, StoreTypeMemory:
	case StoreTypePostgrest:
		if c.Supabase.URL == "" || c.Supabase.Key == "" {
			return fmt.Errorf("%s and %s are required for store type %s",
				common.EnvKeySupabaseURL, common.EnvKeySupabaseKey, StoreTypePostgrest)
		}
	default:
		return fmt.Errorf("unknown %s: %q", common.EnvKeyStoreType, c.StoreType)
	}

	if _, err := c.ReapPolicy(); err != nil {
		return err
	}
	if c.Evaluator.Tolerance <= 0 {
		return fmt.Errorf("%s must be positive", common.EnvKeyTolerance)
	}
	if c.Evaluator.QuoteConcurrency < 1 {
		return fmt.Errorf("%s must be at least 1", common.EnvKeyQuoteConcurrency)
	}
	return nil
}

func (c *Config) ReapPolicy() (alerts.ReapPolicy, error) {
	switch strings.ToLower(c.Evaluator.ReapPolicy) {
	case "", "fail_fast":
		return alerts.ReapFailFast, nil
	case "continue":
		return alerts.ReapContinue, nil
	default:
		return 0, fmt.Errorf("unknown %s: %q", common.EnvKeyReapPolicy, c.Evaluator.ReapPolicy)
	}
}

// AlertsOptions maps the evaluator settings onto alerts.Options.
func (c *Config) AlertsOptions() alerts.Options {
	policy, _ := c.ReapPolicy()
	return alerts.Options{
		Tolerance:        c.Evaluator.Tolerance,
		QuoteConcurrency: c.Evaluator.QuoteConcurrency,
		ReapPolicy:       policy,
	}
}
