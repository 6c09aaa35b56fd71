// Package config loads settings shared by the command-line tools.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Prepare PrepareConfig `yaml:"prepare"`
	Extract ExtractConfig `yaml:"extract"`
	Vowels  VowelsConfig  `yaml:"vowels"`
	Audio   AudioConfig   `yaml:"audio"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `yaml:"level"  env:"PVI_LOG_LEVEL"  env-default:"info"    validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"PVI_LOG_FORMAT" env-default:"console" validate:"oneof=console json"`
}

// PrepareConfig holds data preparation settings
type PrepareConfig struct {
	Tier        string `yaml:"tier"         env:"PVI_PREPARE_TIER"         env-default:"production" validate:"required"`
	DropTier    string `yaml:"drop_tier"    env:"PVI_PREPARE_DROP_TIER"    env-default:"vowels"`
	ARPAbet     bool   `yaml:"arpabet"      env:"PVI_PREPARE_ARPABET"`
	PlainText   bool   `yaml:"plain_text"   env:"PVI_PREPARE_PLAIN_TEXT"`
	StripStress bool   `yaml:"strip_stress" env:"PVI_PREPARE_STRIP_STRESS"`
}

// ExtractConfig holds interval extraction settings
type ExtractConfig struct {
	WordTiers  []string `yaml:"word_tiers"  env:"PVI_EXTRACT_WORD_TIERS"  env-default:"words,production" validate:"min=1,dive,required"`
	PhoneTiers []string `yaml:"phone_tiers" env:"PVI_EXTRACT_PHONE_TIERS" env-default:"phones,vowels"    validate:"min=1,dive,required"`
}

// VowelsConfig holds vowel analysis settings
type VowelsConfig struct {
	VowelSet string `yaml:"vowel_set" env:"PVI_VOWELS_VOWEL_SET"`
	Strict   bool   `yaml:"strict"    env:"PVI_VOWELS_STRICT"`
}

// AudioConfig holds audio normalization settings
type AudioConfig struct {
	Skip    bool   `yaml:"skip"    env:"PVI_AUDIO_SKIP"`
	FFmpeg  string `yaml:"ffmpeg"  env:"PVI_AUDIO_FFMPEG"  env-default:"ffmpeg" validate:"required"`
	Workers int    `yaml:"workers" env:"PVI_AUDIO_WORKERS" env-default:"1"      validate:"min=1,max=64"`
	Verify  bool   `yaml:"verify"  env:"PVI_AUDIO_VERIFY"`
}

var validate = validator.New()

// Load reads configuration from an optional YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). A .env file in the
// working directory is loaded first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}
