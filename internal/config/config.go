package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// Expiry returns the token lifetime as a duration.
func (c JWTConfig) Expiry() time.Duration {
	return time.Duration(c.ExpireHours) * time.Hour
}

type OAuthProviderConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

type OAuthConfig struct {
	Google   OAuthProviderConfig `mapstructure:"google"`
	Facebook OAuthProviderConfig `mapstructure:"facebook"`

	// CallbackBase is the externally reachable base URL of this API,
	// e.g. "http://localhost:5000/api/v1". The per-provider callback
	// paths are appended to it.
	CallbackBase string `mapstructure:"callback_base"`
}

type CORSConfig struct {
	// AllowOrigins supports glob patterns, e.g. "https://*.example.com"
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type Config struct {
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	JWT         JWTConfig      `mapstructure:"jwt"`
	OAuth       OAuthConfig    `mapstructure:"oauth"`
	CORS        CORSConfig     `mapstructure:"cors"`
	FrontendURL string         `mapstructure:"frontend_url"`
}

// Load reads the configuration from the given file and from the
// environment (prefix CHITIEU, e.g. CHITIEU_JWT_SECRET).
//
// The returned value is meant to be passed down explicitly. Nothing in
// this package keeps global state, so request handlers never depend on
// import-time singletons for the signing key or OAuth credentials.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetDefault("server.address", "")
	v.SetDefault("server.port", 5000)
	v.SetDefault("database.path", "data/chitieu.db")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire_hours", 168)
	v.SetDefault("oauth.google.client_id", "")
	v.SetDefault("oauth.google.client_secret", "")
	v.SetDefault("oauth.facebook.client_id", "")
	v.SetDefault("oauth.facebook.client_secret", "")
	v.SetDefault("oauth.callback_base", "http://localhost:5000/api/v1")
	v.SetDefault("cors.allow_origins", []string{})
	v.SetDefault("frontend_url", "http://localhost:5173")

	v.SetEnvPrefix("CHITIEU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, the environment can provide everything
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if c.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret must be configured")
	}

	return &c, nil
}
