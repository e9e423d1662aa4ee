package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCertificateDays(t *testing.T) {
	// Inclusive of both endpoints.
	assert.Equal(t, 1, CertificateDays("2024-01-10", "2024-01-10"))
	assert.Equal(t, 3, CertificateDays("2024-01-10", "2024-01-12"))
	assert.Equal(t, 31, CertificateDays("2024-01-01", "2024-01-31"))

	// Reversed range clamps to a single day.
	assert.Equal(t, 1, CertificateDays("2024-01-12", "2024-01-10"))

	// Bad dates yield zero.
	assert.Equal(t, 0, CertificateDays("", "2024-01-10"))
	assert.Equal(t, 0, CertificateDays("2024-01-10", "soon"))
}
