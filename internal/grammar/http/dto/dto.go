// Package dto provides data transfer objects for grammar check requests.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/posts/internal/validation"
)

// maxContentLength caps the text sent to the collaborator.
const maxContentLength = 10000

// CheckGrammarRequest contains the text to correct.
type CheckGrammarRequest struct {
	Content string `json:"content"`
}

// Validate checks if the grammar check request is valid.
func (r *CheckGrammarRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, maxContentLength),
		),
	)
}

// CheckGrammarEnvelope wraps a successful correction.
type CheckGrammarEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Corrected string `json:"corrected"`
}
