package top2bottom

// Option configures the vertical-text extension.
type Option func(*Config)

// WithColumn sets the CSS column width of vertical containers.
func WithColumn(column string) Option {
	return func(c *Config) {
		c.Column = column
	}
}

// WithConfig copies the given Config. A nil config is ignored.
func WithConfig(config *Config) Option {
	return func(c *Config) {
		if config != nil {
			*c = *config
		}
	}
}

// applyOptions 在默认配置的副本上应用选项
func applyOptions(opts ...Option) *Config {
	config := *DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &config
}
