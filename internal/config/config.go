package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".chatline"
	envPrefix  = "CHATLINE"

	profileFile = "profile.toml"
	secretsDir  = "secrets"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Storage StorageConfig `mapstructure:"storage"`
	Channel ChannelConfig `mapstructure:"channel"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	WSURL   string `mapstructure:"ws_url" validate:"required,url"`
}

type AuthConfig struct {
	Revalidate     string        `mapstructure:"revalidate" validate:"oneof=never expiry"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
}

type StorageConfig struct {
	Backend    string `mapstructure:"backend" validate:"oneof=file pass chain"`
	Dir        string `mapstructure:"dir" validate:"required"`
	PassPrefix string `mapstructure:"pass_prefix" validate:"required"`
}

type ChannelConfig struct {
	LogCapacity int    `mapstructure:"log_capacity" validate:"gte=0"`
	Eviction    string `mapstructure:"eviction" validate:"oneof=oldest newest"`
	ReadLimit   int64  `mapstructure:"read_limit" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
}

// Options controls where Load looks for configuration.
type Options struct {
	Home    string
	EnvFile string
}

var validate = validator.New()

// Load reads ~/.chatline/config.toml, then CHATLINE_* environment variables
// (optionally seeded from a .env file), and validates the result.
func Load(opts Options) (Config, error) {
	home := opts.Home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(home, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, home)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Server.WSURL == "" && cfg.Server.BaseURL != "" {
		wsURL, err := DeriveWSURL(cfg.Server.BaseURL)
		if err != nil {
			return Config{}, err
		}
		cfg.Server.WSURL = wsURL
	}
	cfg.Storage.Dir = expandHome(cfg.Storage.Dir, home)

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, home string) {
	v.SetDefault("server.base_url", "http://localhost:3000")
	v.SetDefault("server.ws_url", "")
	v.SetDefault("auth.revalidate", "never")
	v.SetDefault("auth.request_timeout", "0s")
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.dir", filepath.Join(home, configDir))
	v.SetDefault("storage.pass_prefix", "chatline")
	v.SetDefault("channel.log_capacity", 0)
	v.SetDefault("channel.eviction", "oldest")
	v.SetDefault("channel.read_limit", 32768)
	v.SetDefault("log.level", "info")
}

// DeriveWSURL maps an http(s) base URL to the ws(s) channel endpoint.
func DeriveWSURL(baseURL string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse server base url: %w", err)
	}

	switch parsed.Scheme {
	case "http":
		parsed.Scheme = "ws"
	case "https":
		parsed.Scheme = "wss"
	default:
		return "", fmt.Errorf("server base url must use http or https, got %q", parsed.Scheme)
	}
	parsed.Path = path.Join("/", parsed.Path, "ws")
	parsed.RawQuery = ""
	parsed.Fragment = ""

	return parsed.String(), nil
}

func (c Config) ProfilePath() string {
	return filepath.Join(c.Storage.Dir, profileFile)
}

func (c Config) SecretsDir() string {
	return filepath.Join(c.Storage.Dir, secretsDir)
}

func expandHome(dir string, home string) string {
	if dir == "~" {
		return home
	}
	if strings.HasPrefix(dir, "~/") {
		return filepath.Join(home, dir[2:])
	}
	return dir
}
