package config

import (
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	TranslationProviderGoogle = "google"
	TranslationProviderOpenAI = "openai"
	TranslationProviderNone   = "none"
)

type Config struct {
	Compound    CompoundConfig    `mapstructure:"compound"`
	Translation TranslationConfig `mapstructure:"translation"`
	OpenAI      OpenAIConfig      `mapstructure:"openai"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Calculator  CalculatorConfig  `mapstructure:"calculator"`
}

type CompoundConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type TranslationConfig struct {
	Provider string        `mapstructure:"provider" validate:"oneof=google openai none"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Google   GoogleConfig  `mapstructure:"google"`
	Breaker  BreakerConfig `mapstructure:"breaker"`
}

type GoogleConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures" validate:"gt=0"`
	Cooldown    time.Duration `mapstructure:"cooldown" validate:"gt=0"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type CacheConfig struct {
	DatabasePath string `mapstructure:"database_path" validate:"required"`
}

type CalculatorConfig struct {
	DefaultPurityPercent float64 `mapstructure:"default_purity_percent" validate:"gt=0"`
	DefaultUnit          string  `mapstructure:"default_unit" validate:"oneof=g mg kg"`
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
		v.AddConfigPath("$HOME/.config/chemcalc")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("compound.base_url", "https://pubchem.ncbi.nlm.nih.gov/rest/pug")
	v.SetDefault("compound.timeout", 10*time.Second)
	v.SetDefault("translation.provider", TranslationProviderGoogle)
	v.SetDefault("translation.timeout", 10*time.Second)
	v.SetDefault("translation.google.base_url", "https://translate.googleapis.com")
	v.SetDefault("translation.breaker.max_failures", 3)
	v.SetDefault("translation.breaker.cooldown", time.Minute)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("cache.database_path", "chem_cache.db")
	v.SetDefault("calculator.default_purity_percent", 100.0)
	v.SetDefault("calculator.default_unit", "g")

	// Bind OpenAI config to environment variables only (not from config file)
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("cache.database_path", "CHEMCALC_DATABASE"); err != nil {
		return nil, fmt.Errorf("failed to bind CHEMCALC_DATABASE environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}
	if cfg.Translation.Provider == TranslationProviderOpenAI && cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("invalid configuration: OPENAI_API_KEY environment variable is required for the %s translation provider", TranslationProviderOpenAI)
	}

	return &cfg, nil
}
