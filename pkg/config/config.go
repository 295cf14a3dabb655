package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"

	envPrefix = "ACHRECON"
)

type Config struct {
	OutputDir   string       `mapstructure:"output_dir"`
	OutputName  string       `mapstructure:"output_name"`
	Format      string       `mapstructure:"format"`
	HeaderSheet string       `mapstructure:"header_sheet"`
	DetailSheet string       `mapstructure:"detail_sheet"`
	LogLevel    string       `mapstructure:"log_level"`
	Server      ServerConfig `mapstructure:"server"`
}

type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	BodyLimit int    `mapstructure:"body_limit"`
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"output":       "output_dir",
	"output-name":  "output_name",
	"format":       "format",
	"header-sheet": "header_sheet",
	"detail-sheet": "detail_sheet",
	"log-level":    "log_level",
	"addr":         "server.addr",
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		OutputName:  "{name}",
		Format:      FormatXLSX,
		HeaderSheet: "Header",
		DetailSheet: "Detail",
		LogLevel:    "info",
		Server: ServerConfig{
			Addr:      "0.0.0.0:3000",
			BodyLimit: 32 << 20,
		},
	}
}

// Build layers defaults, the config file, a .env file, ACHRECON_* environment
// variables and flags, in increasing priority. A missing default config file
// is not an error; a missing explicit one is.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// .env is optional and never overrides variables already set.
	_ = gotenv.Load()

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("achrecon")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("output_name", d.OutputName)
	v.SetDefault("format", d.Format)
	v.SetDefault("header_sheet", d.HeaderSheet)
	v.SetDefault("detail_sheet", d.DetailSheet)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.body_limit", d.Server.BodyLimit)
}

func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatXLSX, FormatCSV:
	default:
		return fmt.Errorf("unsupported output format %q (want %s or %s)", c.Format, FormatXLSX, FormatCSV)
	}
	if c.OutputName == "" {
		return errors.New("output_name must not be empty")
	}
	if c.HeaderSheet == c.DetailSheet && c.HeaderSheet != "" {
		return fmt.Errorf("header and detail sheets must differ, both are %q", c.HeaderSheet)
	}
	return nil
}

// GetOutputPath returns the configured output directory.
func (c *Config) GetOutputPath() string {
	return c.OutputDir
}
