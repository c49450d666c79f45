package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Site holds process configuration for the API server and CLIs.
type Site struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Model    ModelConfig    `mapstructure:"model"`
	Ticker   TickerConfig   `mapstructure:"ticker"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Env             string        `mapstructure:"env"`
	StaticDir       string        `mapstructure:"static_dir"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (s ServerConfig) Production() bool { return s.Env == "production" }

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type ModelConfig struct {
	// PresetsFile is an optional YAML preset file layered over the built-ins.
	PresetsFile   string        `mapstructure:"presets_file"`
	WatchPresets  bool          `mapstructure:"watch_presets"`
	DebounceDelay time.Duration `mapstructure:"debounce_delay"`
}

type TickerConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

type CheckoutConfig struct {
	StripeSecretKey string        `mapstructure:"stripe_secret_key"`
	SessionSecret   string        `mapstructure:"session_secret"`
	SuccessURL      string        `mapstructure:"success_url"`
	CancelURL       string        `mapstructure:"cancel_url"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
}

// Enabled reports whether checkout has the secrets it needs.
func (c CheckoutConfig) Enabled() bool {
	return c.StripeSecretKey != "" && c.SessionSecret != ""
}

// LoadSite reads configuration from defaults, an optional YAML file named by
// ALGOECON_CONFIG and the environment. Env var overrides use prefix ALGOECON_
// (server.port -> ALGOECON_SERVER_PORT). STRIPE_SECRET_KEY is also honoured.
func LoadSite() (Site, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.static_dir", "./web/dist")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("model.presets_file", "")
	v.SetDefault("model.watch_presets", true)
	v.SetDefault("model.debounce_delay", 50*time.Millisecond)
	v.SetDefault("ticker.enabled", true)
	v.SetDefault("ticker.interval", 5*time.Second)
	v.SetDefault("checkout.stripe_secret_key", "")
	v.SetDefault("checkout.session_secret", "")
	v.SetDefault("checkout.success_url", "https://algoeconomics.org/success")
	v.SetDefault("checkout.cancel_url", "https://algoeconomics.org/pricing")
	v.SetDefault("checkout.cache_ttl", 10*time.Minute)

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv("ALGOECON_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Site{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	v.SetEnvPrefix("ALGOECON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("checkout.stripe_secret_key", "ALGOECON_CHECKOUT_STRIPE_SECRET_KEY", "STRIPE_SECRET_KEY"); err != nil {
		return Site{}, err
	}

	var s Site
	if err := v.Unmarshal(&s); err != nil {
		return Site{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Site{}, err
	}
	return s, nil
}

func (s Site) Validate() error {
	if s.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if s.Model.DebounceDelay < 0 {
		return fmt.Errorf("model.debounce_delay must not be negative")
	}
	if s.Ticker.Enabled && s.Ticker.Interval <= 0 {
		return fmt.Errorf("ticker.interval must be positive")
	}
	return nil
}
