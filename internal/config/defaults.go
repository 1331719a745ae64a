package config

import "adaptkit/internal/adapters"

// DefaultConfig returns the configuration the demo runs with when no
// config file is present.
func DefaultConfig() Config {
	return Config{
		Sentence:  adapters.DefaultSentence,
		ColorMode: "auto",
	}
}
