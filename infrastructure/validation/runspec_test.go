package validation

import (
	"testing"

	"formrunner/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() entities.RunSpec {
	return entities.RunSpec{
		FormURL: "https://docs.google.com/forms/d/e/abc/viewform",
		Count:   3,
	}
}

func TestValidateRunSpecAccepts(t *testing.T) {
	require.NoError(t, ValidateRunSpec(validSpec()))
}

func TestValidateRunSpecRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entities.RunSpec)
		wantErr error
	}{
		{"zero count", func(s *entities.RunSpec) { s.Count = 0 }, ErrNonPositiveCount},
		{"negative count", func(s *entities.RunSpec) { s.Count = -5 }, ErrNonPositiveCount},
		{"empty url", func(s *entities.RunSpec) { s.FormURL = "  " }, ErrEmptyURL},
		{"bad scheme", func(s *entities.RunSpec) { s.FormURL = "ftp://example.com/form" }, ErrBadScheme},
		{"negative rate", func(s *entities.RunSpec) { s.RateLimit = -1 }, ErrNegativeRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)

			err := ValidateRunSpec(spec)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRunSpecRejectsMissingHost(t *testing.T) {
	spec := validSpec()
	spec.FormURL = "https://"

	assert.Error(t, ValidateRunSpec(spec))
}

func TestValidateRunSpecRejectsNegativeWorkers(t *testing.T) {
	spec := validSpec()
	spec.MaxWorkers = -1

	assert.Error(t, ValidateRunSpec(spec))
}
