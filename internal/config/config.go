// Package config loads the dashboard server configuration from defaults, an
// optional config file, environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gameforge/arcade-dashboard/internal/chat"
	"github.com/gameforge/arcade-dashboard/pkg/arcade"
	"github.com/gameforge/arcade-dashboard/pkg/cache"
)

// Configuration keys. Each one is also the environment variable name.
const (
	KeyListenAddr      = "LISTEN_ADDR"
	KeyLogLevel        = "LOG_LEVEL"
	KeyLogFormat       = "LOG_FORMAT"
	KeyStaticAssetsDir = "STATIC_ASSETS_DIR"
	KeyAllowedOrigins  = "ALLOWED_ORIGINS"

	KeyArcadeAPIKey        = "ARCADE_API_KEY"
	KeyArcadeBaseURL       = "ARCADE_API_BASE_URL"
	KeyArcadeTimeout       = "ARCADE_API_TIMEOUT"
	KeyArcadeRetryAttempts = "ARCADE_RETRY_ATTEMPTS"
	KeyArcadeRetryJitter   = "ARCADE_RETRY_JITTER"
	KeyArcadeToolsEndpoint = "ARCADE_ENDPOINT_TOOLS"
	KeyArcadeUseMockData   = "ARCADE_USE_MOCK_DATA"

	KeyCacheEnabled    = "CACHE_ENABLED"
	KeyCacheTTLSeconds = "CACHE_TTL_SECONDS"
	KeyCacheMaxSize    = "CACHE_MAX_SIZE"

	KeyChatAgentType      = "CHAT_AGENT_TYPE"
	KeyChatOpenAIAPIKey   = "CHAT_OPENAI_API_KEY"
	KeyChatOpenAIModel    = "CHAT_OPENAI_MODEL"
	KeyChatOpenAIBaseURL  = "CHAT_OPENAI_BASE_URL"
	KeyChatAPIEndpoint    = "CHAT_API_ENDPOINT"
	KeyChatAPIKey         = "CHAT_API_KEY"
	KeyChatMaxMessages    = "CHAT_MAX_MESSAGES"
	KeyChatDBPath         = "CHAT_DB_PATH"
	KeyChatRateIntervalMs = "CHAT_RATE_INTERVAL_MS"
	KeyChatRetentionHours = "CHAT_RETENTION_HOURS"
)

type ArcadeConfig struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	RetryJitter   float64
	ToolsEndpoint string
	UseMockData   bool
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	MaxSize int
}

type ChatConfig struct {
	AgentType     string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	APIEndpoint   string
	APIKey        string
	MaxMessages   int
	DBPath        string
	// RateInterval is the minimum gap between messages of one conversation;
	// zero disables rate limiting.
	RateInterval  time.Duration
	// Retention is how long messages are kept; zero keeps them forever.
	Retention     time.Duration
}

// EnvConfig is the resolved server configuration.
type EnvConfig struct {
	ListenAddr      string
	LogLevel        string
	LogFormat       string
	StaticAssetsDir string
	AllowedOrigins  []string

	Arcade ArcadeConfig
	Cache  CacheConfig
	Chat   ChatConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyListenAddr, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyStaticAssetsDir, "")
	v.SetDefault(KeyAllowedOrigins, "*")

	v.SetDefault(KeyArcadeAPIKey, "")
	v.SetDefault(KeyArcadeBaseURL, arcade.DefaultBaseURL)
	v.SetDefault(KeyArcadeTimeout, int(arcade.DefaultTimeout/time.Millisecond))
	v.SetDefault(KeyArcadeRetryAttempts, arcade.DefaultRetryAttempts)
	v.SetDefault(KeyArcadeRetryJitter, 0)
	v.SetDefault(KeyArcadeToolsEndpoint, arcade.DefaultToolsEndpoint)
	v.SetDefault(KeyArcadeUseMockData, false)

	v.SetDefault(KeyCacheEnabled, true)
	v.SetDefault(KeyCacheTTLSeconds, int(cache.DefaultTTL/time.Second))
	v.SetDefault(KeyCacheMaxSize, cache.DefaultMaxSize)

	v.SetDefault(KeyChatAgentType, "mock")
	v.SetDefault(KeyChatOpenAIAPIKey, "")
	v.SetDefault(KeyChatOpenAIModel, "gpt-4")
	v.SetDefault(KeyChatOpenAIBaseURL, "https://api.openai.com/v1")
	v.SetDefault(KeyChatAPIEndpoint, "")
	v.SetDefault(KeyChatAPIKey, "")
	v.SetDefault(KeyChatMaxMessages, 100)
	v.SetDefault(KeyChatDBPath, ":memory:")
	v.SetDefault(KeyChatRateIntervalMs, 1000)
	v.SetDefault(KeyChatRetentionHours, 168)
}

// RegisterFlags adds the server flags to fs. Flags that are set override
// environment variables and the config file.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a config file (yaml, json or toml)")
	fs.String("listen-addr", ":8080", "Address to listen on")
	fs.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	fs.String("log-format", "text", "Log format: text or json")
	fs.String("static-assets-dir", "", "Directory holding the prebuilt dashboard UI")
	fs.Bool("mock-data", false, "Serve every route from the built-in mock dataset")
}

var flagKeys = map[string]string{
	"listen-addr":       KeyListenAddr,
	"log-level":         KeyLogLevel,
	"log-format":        KeyLogFormat,
	"static-assets-dir": KeyStaticAssetsDir,
	"mock-data":         KeyArcadeUseMockData,
}

// Load resolves the configuration. fs may be nil; when it carries a
// "config" flag that file is read too.
func Load(fs *pflag.FlagSet) (EnvConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return EnvConfig{}, fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return EnvConfig{}, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (EnvConfig, error) {
	var errs []error
	intValue := func(key string) int {
		n, err := cast.ToIntE(v.Get(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: expected an integer, got %q", key, v.GetString(key)))
		}
		return n
	}
	floatValue := func(key string) float64 {
		f, err := cast.ToFloat64E(v.Get(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: expected a number, got %q", key, v.GetString(key)))
		}
		return f
	}
	boolValue := func(key string) bool {
		b, err := cast.ToBoolE(v.Get(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: expected a boolean, got %q", key, v.GetString(key)))
		}
		return b
	}

	cfg := EnvConfig{
		ListenAddr:      v.GetString(KeyListenAddr),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		StaticAssetsDir: v.GetString(KeyStaticAssetsDir),
		AllowedOrigins:  splitList(v.GetString(KeyAllowedOrigins)),
		Arcade: ArcadeConfig{
			APIKey:        strings.TrimSpace(v.GetString(KeyArcadeAPIKey)),
			BaseURL:       v.GetString(KeyArcadeBaseURL),
			Timeout:       time.Duration(intValue(KeyArcadeTimeout)) * time.Millisecond,
			RetryAttempts: intValue(KeyArcadeRetryAttempts),
			RetryJitter:   floatValue(KeyArcadeRetryJitter),
			ToolsEndpoint: v.GetString(KeyArcadeToolsEndpoint),
			UseMockData:   boolValue(KeyArcadeUseMockData),
		},
		Cache: CacheConfig{
			Enabled: boolValue(KeyCacheEnabled),
			TTL:     time.Duration(intValue(KeyCacheTTLSeconds)) * time.Second,
			MaxSize: intValue(KeyCacheMaxSize),
		},
		Chat: ChatConfig{
			AgentType:     strings.ToLower(v.GetString(KeyChatAgentType)),
			OpenAIAPIKey:  v.GetString(KeyChatOpenAIAPIKey),
			OpenAIModel:   v.GetString(KeyChatOpenAIModel),
			OpenAIBaseURL: v.GetString(KeyChatOpenAIBaseURL),
			APIEndpoint:   v.GetString(KeyChatAPIEndpoint),
			APIKey:        v.GetString(KeyChatAPIKey),
			MaxMessages:   intValue(KeyChatMaxMessages),
			DBPath:        v.GetString(KeyChatDBPath),
			RateInterval:  time.Duration(intValue(KeyChatRateIntervalMs)) * time.Millisecond,
			Retention:     time.Duration(intValue(KeyChatRetentionHours)) * time.Hour,
		},
	}

	if len(errs) > 0 {
		return EnvConfig{}, errors.Join(errs...)
	}
	if err := cfg.Validate(); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Validate checks ranges that the parsers cannot.
func (c EnvConfig) Validate() error {
	var errs []error
	if c.ListenAddr == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyListenAddr))
	}
	if c.Arcade.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyArcadeTimeout))
	}
	if c.Arcade.RetryAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1", KeyArcadeRetryAttempts))
	}
	if c.Arcade.RetryJitter < 0 || c.Arcade.RetryJitter > 1 {
		errs = append(errs, fmt.Errorf("%s must be within [0, 1]", KeyArcadeRetryJitter))
	}
	if c.Cache.Enabled && (c.Cache.TTL <= 0 || c.Cache.MaxSize < 1) {
		errs = append(errs, fmt.Errorf("%s and %s must be positive when caching is enabled", KeyCacheTTLSeconds, KeyCacheMaxSize))
	}
	if c.Chat.MaxMessages < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1", KeyChatMaxMessages))
	}
	if c.Chat.RateInterval < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyChatRateIntervalMs))
	}
	if c.Chat.Retention < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyChatRetentionHours))
	}
	return errors.Join(errs...)
}

// MockMode reports whether the dashboard should serve mock data: when forced,
// or when no usable API key is configured.
func (c EnvConfig) MockMode() bool {
	return c.Arcade.UseMockData || !arcade.HasAPIKey(c.Arcade.APIKey)
}

// Configured reports whether a usable Arcade API key is present.
func (c EnvConfig) Configured() bool {
	return arcade.HasAPIKey(c.Arcade.APIKey)
}

// ArcadeClientConfig converts to the client configuration.
func (c EnvConfig) ArcadeClientConfig() arcade.Config {
	return arcade.Config{
		APIKey:        c.Arcade.APIKey,
		BaseURL:       c.Arcade.BaseURL,
		Timeout:       c.Arcade.Timeout,
		RetryAttempts: c.Arcade.RetryAttempts,
		RetryJitter:   c.Arcade.RetryJitter,
		Endpoints:     arcade.Endpoints{Tools: c.Arcade.ToolsEndpoint},
	}
}

// CacheConfig converts to the response cache configuration. Account reads
// use a quarter of the catalog TTL.
func (c EnvConfig) CacheConfig() *cache.CacheConfig {
	accountTTL := c.Cache.TTL / 4
	if accountTTL < time.Second {
		accountTTL = time.Second
	}
	return &cache.CacheConfig{
		Enabled:    c.Cache.Enabled,
		CatalogTTL: c.Cache.TTL,
		AccountTTL: accountTTL,
		MaxSize:    c.Cache.MaxSize,
	}
}

// ChatAgentConfig converts to the chat agent configuration.
func (c EnvConfig) ChatAgentConfig() chat.AgentConfig {
	return chat.AgentConfig{
		Type:          c.Chat.AgentType,
		OpenAIAPIKey:  c.Chat.OpenAIAPIKey,
		OpenAIModel:   c.Chat.OpenAIModel,
		OpenAIBaseURL: c.Chat.OpenAIBaseURL,
		Endpoint:      c.Chat.APIEndpoint,
		APIKey:        c.Chat.APIKey,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
