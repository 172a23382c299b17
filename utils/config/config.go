package config

// RuntimeConfig wraps the raw YAML Config with the defaulted control
// block services are built from. Mirrors the teacher's RuntimeConfig
// split between "everything loaded" (All/Raw) and "what the rest of
// the program reads" (C/Control).
type RuntimeConfig struct {
	All Config  // the config as loaded, before defaulting
	C   Control // defaulted control block, what services consume
}

// NewRuntimeConfig applies defaults to the raw config and returns the
// runtime view services are constructed from.
func NewRuntimeConfig(c Config) *RuntimeConfig {
	return &RuntimeConfig{
		All: c,
		C:   c.WithDefaults().Control,
	}
}
