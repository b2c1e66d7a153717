package config

import (
	"fmt"
	"strings"
)

// MaxDecimals bounds the logging precision accepted by Validate.
const MaxDecimals = 10

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks a configuration strictly.
//
// The monitor itself never rejects a configuration; values Validate reports
// are silently replaced by defaults at resolution. Validate exists for
// tooling that wants to surface those mistakes.
//
// Returns nil if valid, or a ValidationErrors containing all validation errors.
func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	if c.SampleRate < 0 {
		errs.Add("sampleRate", fmt.Sprintf("must be a positive integer, got %d", c.SampleRate))
	}
	if c.BufferSize < 0 {
		errs.Add("bufferSize", fmt.Sprintf("must be a positive integer, got %d", c.BufferSize))
	}

	if c.Logging != nil {
		validateLogging(c.Logging, errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateLogging validates the logging options.
func validateLogging(l *LoggingOptions, errs *ValidationErrors) {
	if l.Decimals == nil {
		return
	}
	if *l.Decimals < 0 {
		errs.Add("logging.decimals", "must not be negative")
	} else if *l.Decimals > MaxDecimals {
		errs.Add("logging.decimals", fmt.Sprintf("must be at most %d", MaxDecimals))
	}
}

// Warnings returns non-fatal observations about a configuration, such as a
// configuration that measures nothing or reports nowhere.
func (c *Config) Warnings() []string {
	var warnings []string

	if !Resolve(c, nil).Measures() {
		warnings = append(warnings, "all metric families are disabled; no cycle will be measured")
	}
	if c.Logging != nil && c.Logging.Enabled != nil && !*c.Logging.Enabled {
		warnings = append(warnings, "logging is disabled; metrics will be collected but never reported")
	}

	return warnings
}
