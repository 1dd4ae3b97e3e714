package handler

import (
	"strings"

	id "spc-gateway/pkg/domain"
	dErrors "spc-gateway/pkg/domain-errors"
)

// ContextRequest asks for the normalized context of one document.
type ContextRequest struct {
	Document string `json:"document"`

	parsed id.Document
}

func (r *ContextRequest) Validate() error {
	if strings.TrimSpace(r.Document) == "" {
		return dErrors.New(dErrors.CodeValidation, "document is required")
	}
	document, err := id.ParseDocument(r.Document)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "document must be a valid CPF")
	}
	r.parsed = document
	return nil
}

// Parsed returns the validated document. Only meaningful after Validate.
func (r *ContextRequest) Parsed() id.Document {
	return r.parsed
}
