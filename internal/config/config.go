// Package config loads the backend configuration from defaults, an optional
// config file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config is the configuration of the backend.
type Config struct {
	APIURL           string `mapstructure:"api_url"`
	Port             int    `mapstructure:"port"`
	GinMode          string `mapstructure:"gin_mode"`
	LogFormat        string `mapstructure:"log_format"`
	CORSAllowOrigins string `mapstructure:"cors_allow_origins"`
	EnablePprof      bool   `mapstructure:"enable_pprof"`
	DBPath           string `mapstructure:"db_path"`
	UploadDir        string `mapstructure:"upload_dir"`
}

var keys = []string{
	"api_url",
	"port",
	"gin_mode",
	"log_format",
	"cors_allow_origins",
	"enable_pprof",
	"db_path",
	"upload_dir",
}

// Load reads the configuration.
//
// Values are looked up in the environment first, then in config.yaml in
// the working directory, then the defaults apply. A .env file in the
// working directory is loaded into the environment before, it never
// overrides variables that are already set.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment variables are the upper case keys, e.g. API_URL
	for _, key := range keys {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return Config{}, fmt.Errorf("could not bind environment variable for %s: %w", key, err)
		}
	}

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return Config{}, fmt.Errorf("could not read config file %s: %w", v.ConfigFileUsed(), err)
	} else if err == nil {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("Config")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("could not parse configuration: %w", err)
	}

	return config, config.validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("port", 8080)

	// gin uses debug as the default mode, we use release for
	// security reasons
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_format", "")
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("enable_pprof", false)
	v.SetDefault("db_path", "data/gorm.db")
	v.SetDefault("upload_dir", "data/uploads")
}

func (c Config) validate() error {
	if _, err := c.URL(); err != nil {
		return err
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be 'human' or 'json', got '%s'", c.LogFormat)
	}

	return nil
}

// URL returns the parsed API_URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API_URL must be an absolute URL, got '%s'", c.APIURL)
	}

	return u, nil
}

// AllowOrigins returns the origins allowed for CORS. It is empty if CORS is disabled.
func (c Config) AllowOrigins() []string {
	return strings.Fields(c.CORSAllowOrigins)
}
