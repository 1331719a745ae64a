package config

// Config is the top-level configuration structure for adaptkit.
//
// Everything is optional: the zero value plus DefaultConfig reproduces
// the canonical demonstration exactly, so running without any config
// file matches the fixed transcript byte for byte.
type Config struct {
	// Sentence is the natural-order sentence the Adaptee serves
	// reversed.
	Sentence string `yaml:"sentence,omitempty"`

	// ColorMode controls styled output: "auto", "always" or "never".
	ColorMode string `yaml:"colorMode,omitempty"`
}
