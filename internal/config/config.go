// Package config loads Greanium settings from defaults, config.yaml, .env
// files, environment variables and command-line flags.
//
// Precedence, highest first: flags, environment, local .env, config-dir
// .env, config.yaml, defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for Greanium environment variables.
const EnvPrefix = "GREANIUM"

// Data source kinds.
const (
	SourceHTTP = "http"
	SourceFile = "file"
)

// Chat providers.
const (
	ProviderHTTP      = "http"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Chat configures the AI collaborator.
type Chat struct {
	Provider  string `mapstructure:"provider"`
	Model     string `mapstructure:"model"`
	APIKey    string `mapstructure:"api_key"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// Config is the resolved Greanium configuration.
type Config struct {
	BaseURL        string        `mapstructure:"base_url"`
	DataDir        string        `mapstructure:"data_dir"`
	Source         string        `mapstructure:"source"`
	Watch          bool          `mapstructure:"watch"`
	Chat           Chat          `mapstructure:"chat"`
	Theme          string        `mapstructure:"theme"`
	RenderMarkdown bool          `mapstructure:"render_markdown"`
	Opener         string        `mapstructure:"opener"`
	HTTPTimeout    time.Duration `mapstructure:"http_timeout"`
	LogLevel       string        `mapstructure:"log_level"`
	LogFile        string        `mapstructure:"log_file"`

	// ConfigFile is the config.yaml that was read, if any.
	ConfigFile string `mapstructure:"-"`
	// EnvFiles lists the .env files that were read, lowest precedence first.
	EnvFiles []string `mapstructure:"-"`
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile overrides the config.yaml lookup.
	ConfigFile string
	// ConfigDir defaults to ~/.config/greanium.
	ConfigDir string
	// WorkDir holds the local .env. Defaults to the current directory.
	WorkDir string
	// Flags are bound over every other source when set.
	Flags *pflag.FlagSet
}

// keys lists every setting with its default.
var keys = []struct {
	key  string
	flag string
	def  interface{}
}{
	{key: "base_url", flag: "base-url", def: "http://localhost:5000"},
	{key: "data_dir", flag: "data-dir", def: "./data"},
	{key: "source", flag: "source", def: SourceHTTP},
	{key: "watch", flag: "watch", def: false},
	{key: "chat.provider", flag: "chat-provider", def: ProviderHTTP},
	{key: "chat.model", flag: "chat-model", def: ""},
	{key: "chat.api_key", def: ""},
	{key: "chat.max_tokens", def: 1024},
	{key: "theme", flag: "theme", def: "default"},
	{key: "render_markdown", flag: "render-markdown", def: false},
	{key: "opener", def: ""},
	{key: "http_timeout", def: "0s"},
	{key: "log_level", flag: "log-level", def: ""},
	{key: "log_file", flag: "log-file", def: ""},
}

// providerKeyEnv names the conventional API key variables per provider,
// consulted when chat.api_key is not set.
var providerKeyEnv = map[string][]string{
	ProviderOpenAI:    {"OPENAI_API_KEY"},
	ProviderAnthropic: {"ANTHROPIC_API_KEY"},
	ProviderGemini:    {"GOOGLE_API_KEY", "GEMINI_API_KEY"},
}

// EnvName returns the environment variable for a setting key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// DefaultConfigDir returns ~/.config/greanium.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "greanium"), nil
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	if opts.ConfigDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		opts.ConfigDir = dir
	}
	if opts.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		opts.WorkDir = wd
	}

	v := viper.New()
	for _, k := range keys {
		v.SetDefault(k.key, k.def)
	}

	cfg := &Config{}

	if err := readConfigFile(v, opts); err != nil {
		return nil, err
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	dotenv := map[string]string{}
	for _, path := range []string{
		filepath.Join(opts.ConfigDir, ".env"),
		filepath.Join(opts.WorkDir, ".env"),
	} {
		values, err := readDotEnv(path)
		if err != nil {
			return nil, err
		}
		if values == nil {
			continue
		}
		cfg.EnvFiles = append(cfg.EnvFiles, path)
		if err := v.MergeConfigMap(settingsFromEnv(values)); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", path, err)
		}
		for name, value := range values {
			dotenv[name] = value
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for _, k := range keys {
			if k.flag == "" {
				continue
			}
			if f := opts.Flags.Lookup(k.flag); f != nil {
				if err := v.BindPFlag(k.key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", k.flag, err)
				}
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if cfg.Chat.APIKey == "" {
		cfg.Chat.APIKey = providerAPIKey(cfg.Chat.Provider, dotenv)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.Source = strings.ToLower(strings.TrimSpace(cfg.Source))
	cfg.Chat.Provider = strings.ToLower(strings.TrimSpace(cfg.Chat.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper, opts Options) error {
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(opts.ConfigDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// readDotEnv parses a .env file. A missing file yields nil, nil.
func readDotEnv(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	values, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}
	return values, nil
}

// settingsFromEnv maps GREANIUM_* variables from a .env file onto nested
// setting keys.
func settingsFromEnv(values map[string]string) map[string]interface{} {
	out := map[string]interface{}{}
	for _, k := range keys {
		value, ok := values[EnvName(k.key)]
		if !ok {
			continue
		}
		parts := strings.Split(k.key, ".")
		node := out
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]interface{})
			if !ok {
				child = map[string]interface{}{}
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return out
}

func providerAPIKey(provider string, dotenv map[string]string) string {
	for _, name := range providerKeyEnv[provider] {
		if value := os.Getenv(name); value != "" {
			return value
		}
		if value := dotenv[name]; value != "" {
			return value
		}
	}
	return ""
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceHTTP, SourceFile:
	default:
		return fmt.Errorf("invalid source %q: must be %s or %s", c.Source, SourceHTTP, SourceFile)
	}

	switch c.Chat.Provider {
	case ProviderHTTP, ProviderOpenAI, ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("invalid chat provider %q", c.Chat.Provider)
	}

	if c.Source == SourceHTTP && c.BaseURL == "" {
		return fmt.Errorf("base_url is required for the http source")
	}
	if c.Chat.MaxTokens <= 0 {
		return fmt.Errorf("chat.max_tokens must be positive, got %d", c.Chat.MaxTokens)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout cannot be negative")
	}
	return nil
}

// ResumeURL is the download location of the resume file.
func (c *Config) ResumeURL() string {
	return c.BaseURL + "/files/download/resume.pdf"
}
