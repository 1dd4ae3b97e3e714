// Package domain holds shared identifier types used across service boundaries.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	dErrors "spc-gateway/pkg/domain-errors"
)

// Document is a Brazilian natural-person taxpayer number (CPF), stored as
// digits only. Formatting characters are stripped on parse so lookups, cache
// keys, and audit hashes always agree.
type Document string

// ParseDocument validates and canonicalizes a CPF. It accepts the common
// punctuated form ("123.456.789-09") as well as bare digits.
func ParseDocument(raw string) (Document, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '.', '-', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if len(cleaned) != 11 {
		return "", dErrors.New(dErrors.CodeValidation, "document must have 11 digits")
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", dErrors.New(dErrors.CodeValidation, "document must contain only digits")
		}
	}
	return Document(cleaned), nil
}

func (d Document) String() string {
	return string(d)
}

// Hash returns the SHA-256 hex digest of the document. Audit events carry the
// hash for traceability without storing raw PII.
func (d Document) Hash() string {
	sum := sha256.Sum256([]byte(d))
	return hex.EncodeToString(sum[:])
}

// Masked returns a log-safe rendering that keeps only the last two digits.
func (d Document) Masked() string {
	if len(d) != 11 {
		return "***"
	}
	return "*********" + string(d[9:])
}
