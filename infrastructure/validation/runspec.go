package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"formrunner/domain/entities"
)

var (
	ErrNonPositiveCount = errors.New("submission count must be positive")
	ErrEmptyURL         = errors.New("form url is required")
	ErrBadScheme        = errors.New("form url must use http or https")
	ErrNegativeRate     = errors.New("rate limit must not be negative")
)

// ValidateRunSpec rejects an invalid spec before any task is
// dispatched. A spec that passes here will never be rejected later in
// the run.
func ValidateRunSpec(spec entities.RunSpec) error {
	if spec.Count <= 0 {
		return ErrNonPositiveCount
	}

	raw := strings.TrimSpace(spec.FormURL)
	if raw == "" {
		return ErrEmptyURL
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid form url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrBadScheme
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid form url: missing host")
	}

	if spec.RateLimit < 0 {
		return ErrNegativeRate
	}
	if spec.MaxWorkers < 0 {
		return fmt.Errorf("max workers must not be negative")
	}

	return nil
}
