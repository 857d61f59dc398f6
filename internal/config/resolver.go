package config

import (
	"github.com/pwagen/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with its resolution provenance.
type ResolvedValue struct {
	// Key is the configuration key (e.g. "approach").
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// Resolve resolves a configuration value using precedence:
// (1) command-line flag, (2) config file, (3) built-in default.
func Resolve(key, flagValue, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
		if defaultValue != "" {
			result.Shadowed[SourceDefault] = defaultValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
		if defaultValue != "" {
			result.Shadowed[SourceDefault] = defaultValue
		}
	default:
		result.Value = defaultValue
		result.Source = SourceDefault
	}

	return result
}

// LogResolvedValues logs configuration resolution at DEBUG level when verbose.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
