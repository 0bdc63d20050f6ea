package logger

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`
	// Format selects the output format: "console" or "json".
	Format string `yaml:"format" mapstructure:"format"`
	// Output selects the destination: "stdout" or "stderr".
	Output string `yaml:"output" mapstructure:"output"`
	// NoColor disables ANSI colors for console output.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
	// Timestamp controls whether log lines carry a timestamp.
	Timestamp bool `yaml:"timestamp" mapstructure:"timestamp"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}
