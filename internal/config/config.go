package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "GIGMATCH"

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel string        `mapstructure:"log-level"`
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	CacheTTL time.Duration `mapstructure:"cache-ttl"`
	Gateway  Gateway       `mapstructure:"gateway"`
}

// Gateway holds routing settings for the platform data canisters
type Gateway struct {
	BaseURL        string        `mapstructure:"base-url"`
	JobCanister    string        `mapstructure:"job-canister"`
	UserCanister   string        `mapstructure:"user-canister"`
	RatingCanister string        `mapstructure:"rating-canister"`
	FetchTimeout   time.Duration `mapstructure:"fetch-timeout"`
}

// Load populates config from GIGMATCH_* environment variables
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log-level", "info")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("cache-ttl", time.Minute)
	v.SetDefault("gateway.base-url", "http://127.0.0.1:4943")
	v.SetDefault("gateway.fetch-timeout", 15*time.Second)

	for _, key := range []string{
		"gateway.job-canister",
		"gateway.user-canister",
		"gateway.rating-canister",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	var missingVars []string

	if cfg.Gateway.JobCanister == "" {
		missingVars = append(missingVars, "GIGMATCH_GATEWAY_JOB_CANISTER")
	}

	if cfg.Gateway.UserCanister == "" {
		missingVars = append(missingVars, "GIGMATCH_GATEWAY_USER_CANISTER")
	}

	if cfg.Gateway.RatingCanister == "" {
		missingVars = append(missingVars, "GIGMATCH_GATEWAY_RATING_CANISTER")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
