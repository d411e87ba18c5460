package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Breaker  BreakerConfig  `mapstructure:"breaker"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ViewsDir     string        `mapstructure:"views_dir"`  // holds index.html for GET /
	PublicDir    string        `mapstructure:"public_dir"` // served under /public
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig selects the store. Driver is one of mongo, mysql, postgres or memory;
// URI is the mongo connection string or the SQL DSN.
type DatabaseConfig struct {
	Driver  string        `mapstructure:"driver"`
	URI     string        `mapstructure:"uri"`
	Name    string        `mapstructure:"name"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type BreakerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MaxFailures uint32        `mapstructure:"max_failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// CORSConfig lists allowed origins; empty allows all.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

const defaultPort = "3000"

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	// No default for the address, so bind it or Unmarshal never sees SERVER_ADDRESS.
	_ = v.BindEnv("server.address")

	v.SetDefault("server.views_dir", "views")
	v.SetDefault("server.public_dir", "public")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("database.driver", "mongo")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "exerciseTracker")
	v.SetDefault("database.timeout", "5s")
	v.SetDefault("breaker.enabled", true)
	v.SetDefault("breaker.max_failures", 5)
	v.SetDefault("breaker.open_timeout", "30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cors.allowed_origins", []string{})

	err = v.ReadInConfig()
	// A missing file is fine: defaults and env vars still apply.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	// Hosting platforms hand out the port alone; server.address wins when both are set.
	if config.Server.Address == "" {
		config.Server.Address = ":" + defaultPort
		if port := v.GetString("port"); port != "" {
			config.Server.Address = ":" + port
		}
	}

	return config, nil
}
