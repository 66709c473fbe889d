package textmeasure

// Option configures Context creation.
type Option func(*config)

// config holds configuration for a Context.
type config struct {
	language string
}

// defaultConfig returns the default context configuration.
func defaultConfig() config {
	return config{
		language: "en",
	}
}

// WithLanguage sets the BCP 47 language tag passed to the shaper. Shaping
// of some scripts picks language-specific glyph forms; the default is "en".
func WithLanguage(tag string) Option {
	return func(c *config) {
		c.language = tag
	}
}
