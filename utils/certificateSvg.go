package utils

import (
	"fmt"
	"strings"
)

// CertificateParams are the fields rendered onto a certificate.
type CertificateParams struct {
	CertificateNumber string
	UserName          string
	ModuleTitle       string
	CompletionDate    string
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes user-provided text before SVG interpolation.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// GenerateCertificateSVG renders a downloadable completion certificate.
func GenerateCertificateSVG(params CertificateParams) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="800" height="600" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="bgGrad" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:#1e293b"/>
      <stop offset="50%%" style="stop-color:#0f172a"/>
      <stop offset="100%%" style="stop-color:#1e293b"/>
    </linearGradient>
    <linearGradient id="goldGrad" x1="0%%" y1="0%%" x2="100%%" y2="0%%">
      <stop offset="0%%" style="stop-color:#d97706"/>
      <stop offset="50%%" style="stop-color:#fbbf24"/>
      <stop offset="100%%" style="stop-color:#d97706"/>
    </linearGradient>
  </defs>

  <rect width="800" height="600" fill="url(#bgGrad)"/>

  <rect x="20" y="20" width="760" height="560" fill="none" stroke="#f59e0b" stroke-width="2" opacity="0.3" rx="8"/>
  <rect x="30" y="30" width="740" height="540" fill="none" stroke="#f59e0b" stroke-width="1" opacity="0.2" rx="6"/>

  <text x="400" y="80" text-anchor="middle" font-family="Arial, sans-serif" font-size="14" fill="#f59e0b" letter-spacing="8">LEARNING HUB</text>
  <text x="400" y="130" text-anchor="middle" font-family="Georgia, serif" font-size="36" fill="white" font-weight="bold">Certificate of Completion</text>

  <text x="400" y="200" text-anchor="middle" font-family="Arial, sans-serif" font-size="16" fill="#94a3b8">This is to certify that</text>

  <text x="400" y="260" text-anchor="middle" font-family="Georgia, serif" font-size="32" fill="url(#goldGrad)" font-weight="bold">%s</text>
  <line x1="200" y1="275" x2="600" y2="275" stroke="#f59e0b" stroke-width="1" opacity="0.5"/>

  <text x="400" y="320" text-anchor="middle" font-family="Arial, sans-serif" font-size="16" fill="#94a3b8">has successfully completed</text>

  <text x="400" y="370" text-anchor="middle" font-family="Georgia, serif" font-size="24" fill="white" font-weight="bold">%s</text>

  <circle cx="400" cy="430" r="20" fill="#10b981" opacity="0.2"/>
  <path d="M 392 430 L 398 436 L 410 424" stroke="#10b981" stroke-width="3" fill="none" stroke-linecap="round" stroke-linejoin="round"/>

  <text x="400" y="490" text-anchor="middle" font-family="Arial, sans-serif" font-size="14" fill="#94a3b8">Completed on %s</text>
  <text x="400" y="545" text-anchor="middle" font-family="monospace" font-size="11" fill="#475569">Certificate No. %s</text>
</svg>`,
		EscapeXML(params.UserName),
		EscapeXML(params.ModuleTitle),
		EscapeXML(params.CompletionDate),
		EscapeXML(params.CertificateNumber),
	)
}
