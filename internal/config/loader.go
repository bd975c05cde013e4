package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DISCORDIFY_"

// Loader builds a Config from defaults, environment and explicit overrides,
// in increasing order of precedence.
type Loader struct {
	koanf     *koanf.Koanf
	validator *validator.Validate
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		koanf:     koanf.New("."),
		validator: validator.New(),
	}
}

// Load loads and validates the configuration. Keys of overrides are koanf
// paths such as "split.max_length".
func (l *Loader) Load(_ context.Context, overrides map[string]any) (*Config, error) {
	l.koanf = koanf.New(".")

	if err := l.koanf.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := l.koanf.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnv,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range overrides {
		if err := l.koanf.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set key %s: %w", key, err)
		}
	}

	return l.unmarshalAndValidate()
}

// transformEnv converts environment variable names to koanf paths.
// For example: DISCORDIFY_SPLIT_MAX_LENGTH -> split.max_length
func transformEnv(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	section, field, ok := strings.Cut(key, "_")
	if !ok || section == "" || field == "" {
		return "", nil
	}
	return section + "." + field, value
}

func (l *Loader) unmarshalAndValidate() (*Config, error) {
	var config Config
	if err := l.koanf.UnmarshalWithConf("", &config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &config,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := l.validator.Struct(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// Load is shorthand for NewLoader().Load.
func Load(ctx context.Context, overrides map[string]any) (*Config, error) {
	return NewLoader().Load(ctx, overrides)
}
