package discordify

// ConvertOptions holds options for rewriting and splitting.
type ConvertOptions struct {
	Config SplitConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig replaces the whole split configuration.
func WithConfig(config *SplitConfig) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			opts.Config = *config
		}
	}
}

// WithMaxLength sets the maximum chunk length.
func WithMaxLength(n int) Option {
	return func(opts *ConvertOptions) {
		opts.Config.MaxLength = n
	}
}

// WithBlankGlyph sets the text that replaces image alt text.
func WithBlankGlyph(glyph string) Option {
	return func(opts *ConvertOptions) {
		opts.Config.BlankGlyph = glyph
	}
}

// WithClosingPunctuation sets the characters that never get a space inserted
// before them.
func WithClosingPunctuation(set string) Option {
	return func(opts *ConvertOptions) {
		opts.Config.ClosingPunctuation = set
	}
}

// WithUTF16 measures lengths in UTF-16 code units instead of runes.
func WithUTF16(enable bool) Option {
	return func(opts *ConvertOptions) {
		if enable {
			opts.Config.Unit = UnitUTF16
		} else {
			opts.Config.Unit = UnitRunes
		}
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: *DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	options.Config = options.Config.Normalized()
	return options
}
