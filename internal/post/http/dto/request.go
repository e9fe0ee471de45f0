// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/posts/internal/validation"
)

// maxContentLength caps post content at 10000 characters.
const maxContentLength = 10000

// CreatePostRequest contains the parameters for creating a post.
// The owner is never part of the payload; it comes from the verified identity.
type CreatePostRequest struct {
	Content string `json:"content"`
}

// Validate checks if the create post request is valid.
func (r *CreatePostRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, maxContentLength),
		),
	)
}

// UpdatePostRequest contains the replacement content for an existing post.
type UpdatePostRequest struct {
	Content string `json:"content"`
}

// Validate checks if the update post request is valid.
func (r *UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, maxContentLength),
		),
	)
}
