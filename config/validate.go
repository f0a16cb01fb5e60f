package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate returns every problem found; an empty slice means the
// configuration is usable.
func (c *Config) Validate() []error {
	var errs []error

	if c.Degree < 3 {
		errs = append(errs, ValidationError{
			Field:   "degree",
			Message: fmt.Sprintf("must be at least 3, got %d", c.Degree),
		})
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("unknown level %q", c.Log.Level),
		})
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("unknown format %q", c.Log.Format),
		})
	}

	if c.Render.NumCounters <= 0 {
		errs = append(errs, ValidationError{
			Field:   "render.numCounters",
			Message: "must be positive",
		})
	}
	if c.Render.MaxCost <= 0 {
		errs = append(errs, ValidationError{
			Field:   "render.maxCost",
			Message: "must be positive",
		})
	}

	return errs
}
