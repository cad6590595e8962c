package config

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	APIPartner = "partner"
	APILegacy  = "legacy"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Client     ClientConfig     `mapstructure:"client"`
}

type ServerConfig struct {
	Host                     string       `mapstructure:"host" validate:"required"`
	Port                     int          `mapstructure:"port" validate:"gte=0,lte=65535"`
	RootStoreAlias           bool         `mapstructure:"root_store_alias"`
	ReadHeaderTimeoutSeconds int          `mapstructure:"read_header_timeout_seconds" validate:"gte=0"`
	ShutdownTimeoutSeconds   int          `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
	CORS                     CORSConfig   `mapstructure:"cors"`
	Static                   StaticConfig `mapstructure:"static"`
}

// Addr returns the host:port the server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type StaticConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Directory is the document root. The embedded front-end is served when empty.
	Directory string `mapstructure:"directory" validate:"omitempty,dir"`
	Index     string `mapstructure:"index" validate:"required_if=Enabled true"`
}

type DictionaryConfig struct {
	SeedFile string `mapstructure:"seed_file" validate:"omitempty,file"`
}

type ClientConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	API            string `mapstructure:"api" validate:"oneof=partner legacy"`
	RetryAttempts  uint   `mapstructure:"retry_attempts"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordbook")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3003)
	v.SetDefault("server.root_store_alias", false)
	v.SetDefault("server.read_header_timeout_seconds", 10)
	v.SetDefault("server.shutdown_timeout_seconds", 5)
	v.SetDefault("server.cors.allowed_origins", []string{"*"})
	v.SetDefault("server.static.enabled", true)
	v.SetDefault("server.static.directory", "")
	v.SetDefault("server.static.index", "store.html")
	v.SetDefault("dictionary.seed_file", "")
	v.SetDefault("client.base_url", "http://127.0.0.1:3003")
	v.SetDefault("client.api", APIPartner)
	v.SetDefault("client.retry_attempts", 2)
	v.SetDefault("client.timeout_seconds", 10)

	envBindings := map[string]string{
		"server.host":     "HOST",
		"server.port":     "PORT",
		"client.base_url": "WORDBOOK_SERVER_URL",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
