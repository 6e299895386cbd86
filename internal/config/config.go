// Package config loads application settings from config.yaml and
// AGROCLIM_-prefixed environment variables, and initializes the global
// logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" mapstructure:"data"`
	Columns ColumnsConfig `yaml:"columns" mapstructure:"columns"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// DataConfig locates the input file and the presentation assets.
type DataConfig struct {
	Path            string `yaml:"path" mapstructure:"path"`
	Delimiter       string `yaml:"delimiter" mapstructure:"delimiter"`
	BackgroundImage string `yaml:"background_image" mapstructure:"background_image"`
}

// ColumnsConfig pins canonical roles to explicit source columns. An empty
// entry falls back to heuristic column sniffing; a non-empty entry must name
// a real column or the load fails.
type ColumnsConfig struct {
	Date          string `yaml:"date" mapstructure:"date"`
	TempMean      string `yaml:"temp_mean" mapstructure:"temp_mean"`
	TempMax       string `yaml:"temp_max" mapstructure:"temp_max"`
	TempMin       string `yaml:"temp_min" mapstructure:"temp_min"`
	Precipitation string `yaml:"precipitation" mapstructure:"precipitation"`
}

// ServerConfig configures the dashboard API server.
type ServerConfig struct {
	Host         string   `yaml:"host" mapstructure:"host"`
	Port         int      `yaml:"port" mapstructure:"port"`
	CORSOrigins  []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	RateLimitRPS float64  `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	RateBurst    int      `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DelimiterRune returns the configured CSV separator, defaulting to ','.
func (d DataConfig) DelimiterRune() rune {
	if d.Delimiter == "" {
		return ','
	}
	return []rune(d.Delimiter)[0]
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("AGROCLIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	for key, val := range Defaults() {
		v.SetDefault(key, val)
	}

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Default returns the default configuration. The default data path is the
// station export the dashboard ships with.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path:            "Station_Agroclim_INRAE_11170004_daily_1989_2024.csv",
			Delimiter:       ",",
			BackgroundImage: "fondecolo.jpg",
		},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			CORSOrigins:  []string{"*"},
			RateLimitRPS: 50,
			RateBurst:    100,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Defaults returns the default values keyed by viper path.
func Defaults() map[string]any {
	d := Default()
	return map[string]any{
		"data.path":             d.Data.Path,
		"data.delimiter":        d.Data.Delimiter,
		"data.background_image": d.Data.BackgroundImage,
		"columns.date":          d.Columns.Date,
		"columns.temp_mean":     d.Columns.TempMean,
		"columns.temp_max":      d.Columns.TempMax,
		"columns.temp_min":      d.Columns.TempMin,
		"columns.precipitation": d.Columns.Precipitation,
		"server.host":           d.Server.Host,
		"server.port":           d.Server.Port,
		"server.cors_origins":   d.Server.CORSOrigins,
		"server.rate_limit_rps": d.Server.RateLimitRPS,
		"server.rate_burst":     d.Server.RateBurst,
		"log.level":             d.Log.Level,
		"log.format":            d.Log.Format,
	}
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
