package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCertificateSVGEscapesUserText(t *testing.T) {
	svg := GenerateCertificateSVG(CertificateParams{
		CertificateNumber: "CERT-123",
		UserName:          `Alice <"X"> & Co`,
		ModuleTitle:       "Go's Concurrency",
		CompletionDate:    "March 1, 2026",
	})

	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0"`))
	assert.Contains(t, svg, "Alice &lt;&quot;X&quot;&gt; &amp; Co")
	assert.Contains(t, svg, "Go&apos;s Concurrency")
	assert.Contains(t, svg, "CERT-123")
	assert.NotContains(t, svg, `<"X">`)
}
