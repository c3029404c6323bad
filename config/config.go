package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig
	Cache    CacheConfig
	Redis    RedisConfig

	// Routing
	Registry RegistryConfig
	Router   RouterConfig

	// External model delegate. Optional: no enabled provider disables it.
	LLM LLMConfig

	Audit     AuditConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
}

// Cache backends.
const (
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
)

type CacheConfig struct {
	Backend    string
	DefaultTTL time.Duration
	OpTimeout  time.Duration
	MemorySize int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RegistryConfig struct {
	Timeout time.Duration
}

// RouterConfig overrides the model of a complexity tier. Empty keeps the default.
type RouterConfig struct {
	SimpleModel   string
	ModerateModel string
	ComplexModel  string
	CreativeModel string
	CheapModel    string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // global timeout for the whole fallback chain
}

// Enabled reports whether at least one provider is switched on.
func (c LLMConfig) Enabled() bool {
	for _, p := range c.Providers {
		if p.Enabled {
			return true
		}
	}
	return false
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type AuditConfig struct {
	Capacity    int
	NATSURL     string
	NATSSubject string
}

type AuthConfig struct {
	JWTSecret string
	// OperatorTenants may read store-wide endpoints such as cache statistics.
	OperatorTenants []string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build()
}

func build() (*Config, error) {
	cfg := &Config{}
	var err error

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")

	cfg.Cache.Backend = strings.ToLower(viper.GetString("cache.backend"))
	cfg.Cache.MemorySize = viper.GetInt("cache.memory_size")
	if cfg.Cache.DefaultTTL, err = durationKey("cache.default_ttl"); err != nil {
		return nil, err
	}
	if cfg.Cache.OpTimeout, err = durationKey("cache.op_timeout"); err != nil {
		return nil, err
	}

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Routing
	if cfg.Registry.Timeout, err = durationKey("registry.timeout"); err != nil {
		return nil, err
	}
	cfg.Router.SimpleModel = viper.GetString("router.simple_model")
	cfg.Router.ModerateModel = viper.GetString("router.moderate_model")
	cfg.Router.ComplexModel = viper.GetString("router.complex_model")
	cfg.Router.CreativeModel = viper.GetString("router.creative_model")
	cfg.Router.CheapModel = viper.GetString("router.cheap_model")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Audit, auth, rate limit
	cfg.Audit.Capacity = viper.GetInt("audit.capacity")
	cfg.Audit.NATSURL = viper.GetString("audit.nats_url")
	cfg.Audit.NATSSubject = viper.GetString("audit.nats_subject")
	cfg.Auth.JWTSecret = expandEnvVar(viper.GetString("auth.jwt_secret"))
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.OperatorTenants = splitList(viper.GetStringSlice("auth.operator_tenants"))
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_conns", 20)

	viper.SetDefault("cache.backend", CacheBackendRedis)
	viper.SetDefault("cache.default_ttl", "5m")
	viper.SetDefault("cache.op_timeout", "200ms")
	viper.SetDefault("cache.memory_size", 10000)
	viper.SetDefault("redis.addr", "localhost:6379")

	viper.SetDefault("registry.timeout", "5s")

	viper.SetDefault("audit.capacity", 1000)
	viper.SetDefault("audit.nats_subject", "intent_router.operations")
	viper.SetDefault("rate_limit.per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

func (cfg *Config) validate() error {
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	for _, id := range cfg.Auth.OperatorTenants {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("auth.operator_tenants: %q is not a uuid", id)
		}
	}
	switch cfg.Cache.Backend {
	case CacheBackendRedis:
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis cache backend")
		}
	case CacheBackendMemory:
	default:
		return fmt.Errorf("cache.backend %q: want %s or %s", cfg.Cache.Backend, CacheBackendRedis, CacheBackendMemory)
	}
	if cfg.Cache.DefaultTTL < time.Second {
		return fmt.Errorf("cache.default_ttl must be at least 1s")
	}
	if cfg.Cache.OpTimeout <= 0 || cfg.Registry.Timeout <= 0 {
		return fmt.Errorf("cache.op_timeout and registry.timeout must be positive")
	}
	if cfg.LLM.Enabled() {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return err
		}
	}
	return nil
}

// splitList accepts both a YAML list and a comma separated env value.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func durationKey(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig checks the enabled providers. Disabled entries only need a name.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	for _, d := range []struct{ key, value string }{
		{"llm.retry_delay", cfg.RetryDelay},
		{"llm.max_total_timeout", cfg.MaxTotalTimeout},
	} {
		if d.value == "" {
			continue
		}
		if _, err := time.ParseDuration(d.value); err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
