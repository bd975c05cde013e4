package config

import (
	"time"

	"github.com/riverfjs/discordify-go/internal/types"
)

// Config is the application configuration for the CLI and service.
type Config struct {
	Split    SplitConfig    `koanf:"split"    validate:"required"`
	Article  ArticleConfig  `koanf:"article"  validate:"required"`
	Delivery DeliveryConfig `koanf:"delivery" validate:"required"`
	Log      LogConfig      `koanf:"log"      validate:"required"`
}

// SplitConfig mirrors the core constants treated as configuration.
type SplitConfig struct {
	MaxLength          int    `koanf:"max_length"          validate:"min=2"`
	BlankGlyph         string `koanf:"blank_glyph"         validate:"required"`
	ClosingPunctuation string `koanf:"closing_punctuation"`
	Unit               string `koanf:"unit"                validate:"oneof=runes utf16"`
}

type ArticleConfig struct {
	BaseURL          string        `koanf:"base_url"           validate:"required,url"`
	Timeout          time.Duration `koanf:"timeout"            validate:"min=0"`
	StripFrontMatter bool          `koanf:"strip_front_matter"`
}

type DeliveryConfig struct {
	Interval  time.Duration `koanf:"interval"  validate:"min=0"`
	Burst     int           `koanf:"burst"     validate:"min=1"`
	Separator string        `koanf:"separator"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// DefaultBaseURL is where the wiki articles live.
const DefaultBaseURL = "https://raw.githubusercontent.com/bliind/snap-wiki/refs/heads/main/"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Split: SplitConfig{
			MaxLength:          types.DefaultMaxLength,
			BlankGlyph:         types.DefaultBlankGlyph,
			ClosingPunctuation: types.DefaultClosingPunctuation,
			Unit:               string(types.UnitRunes),
		},
		Article: ArticleConfig{
			BaseURL:          DefaultBaseURL,
			Timeout:          10 * time.Second,
			StripFrontMatter: true,
		},
		Delivery: DeliveryConfig{
			Interval:  500 * time.Millisecond,
			Burst:     1,
			Separator: "---",
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// SplitOptions converts the split section into the core configuration.
func (c *Config) SplitOptions() *types.SplitConfig {
	return &types.SplitConfig{
		MaxLength:          c.Split.MaxLength,
		BlankGlyph:         c.Split.BlankGlyph,
		ClosingPunctuation: c.Split.ClosingPunctuation,
		Unit:               types.Unit(c.Split.Unit),
	}
}
