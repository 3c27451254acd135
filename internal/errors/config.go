package errors

import (
	"fmt"
	"strings"
)

// ConfigNotFound creates an error for a missing configuration file that was
// named explicitly.
func ConfigNotFound(configPath string) *NestError {
	return &NestError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check the --config path, or drop the flag to use
  .nestlist/config.yaml (optional; defaults apply when it is missing).`,
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *NestError {
	return &NestError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes

Common issues:
  - pages is a list; each page needs a '- ' prefix
  - durations need a unit (3s, 168h)`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *NestError {
	suggestion := fmt.Sprintf("Fix the %q field in your config file", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &NestError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}
