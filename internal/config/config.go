package config

// Config holds all application configuration.
type Config struct {
	Log LogConfig `mapstructure:"log" validate:"required"`
}

// LogConfig contains the structured logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
