package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	PDF      PDFConfig      `mapstructure:"pdf"`
}

type ServerConfig struct {
	Address  string `mapstructure:"address"`
	HTTPPort string `mapstructure:"http_port"`
}

type DatabaseConfig struct {
	// Driver: "mysql" | "postgres" | "" (run without DB-backed routes)
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type PDFConfig struct {
	// FontsDir holds OpenSans-Regular.ttf and OpenSans-Bold.ttf.
	FontsDir string `mapstructure:"fonts_dir"`
	// Encoding: "embedded" (OpenSans, full Turkish glyphs) or "ascii"
	// (built-in Helvetica, diacritics folded; no font assets needed).
	Encoding string `mapstructure:"encoding"`
}

// Load reads the yaml config at path (optional) with YILDIZ_* environment
// overrides, e.g. YILDIZ_DATABASE_DSN.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("database.driver", "")
	v.SetDefault("database.dsn", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
	v.SetDefault("pdf.fonts_dir", "assets/fonts")
	v.SetDefault("pdf.encoding", "embedded")

	v.SetEnvPrefix("YILDIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
