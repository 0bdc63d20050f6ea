package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment variable overrides, e.g.
// UPLOADAI_OPENAI_API_KEY overrides openai.api_key.
const EnvPrefix = "UPLOADAI"

// LoaderOption customizes Load.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// Load reads configuration into cfg with the precedence
// defaults < config.yml < .env < process environment, then applies section
// defaults and validates. Missing files are not an error.
func Load(cfg *Config, opts ...LoaderOption) error {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.envFile == "" {
		o.envFile = findFirst(".env")
	}
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load %s: %v\n", o.envFile, err)
		}
	}

	v := viper.New()

	if o.configFile == "" {
		o.configFile = findFirst("config.yml")
	}
	if o.configFile != "" {
		if _, err := os.Stat(o.configFile); err != nil {
			o.configFile = ""
		}
	}
	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", o.configFile, err)
		}
	}

	bindPrefixedEnv(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	return cfg.Validate()
}

// findFirst looks for name in the standard locations relative to the working
// directory and returns the first hit, or "".
func findFirst(name string) string {
	candidates := []string{
		name,
		"./cmd/api/" + name,
		"../" + name,
		"../../" + name,
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// bindPrefixedEnv overlays UPLOADAI_* environment variables onto viper keys.
// Underscores map to nesting dots: UPLOADAI_SERVER_MAX_BODY_SIZE sets both
// server.max_body_size and its fully dotted variant, so multi-word leaf keys
// resolve without explicit binding.
func bindPrefixedEnv(v *viper.Viper) {
	prefix := EnvPrefix + "_"
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}

		lower := strings.ToLower(strings.TrimPrefix(key, prefix))
		parts := strings.Split(lower, "_")
		for i := 1; i <= len(parts); i++ {
			variant := strings.Join(parts[:i], ".")
			if i < len(parts) {
				variant += "." + strings.Join(parts[i:], "_")
			}
			v.Set(variant, value)
		}
	}
}
