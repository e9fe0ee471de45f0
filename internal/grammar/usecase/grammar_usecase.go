// Package usecase implements the grammar-correction passthrough.
package usecase

import (
	"context"

	"github.com/allisson/posts/internal/grammar/service"
)

// GrammarUseCase defines the grammar correction operation.
type GrammarUseCase interface {
	// Check sends the content to the collaborator and returns the corrected
	// text. The caller's identity gates access upstream and is never
	// forwarded.
	Check(ctx context.Context, content string) (string, error)
}

// grammarUseCase implements GrammarUseCase on top of a Corrector.
type grammarUseCase struct {
	corrector service.Corrector
}

// NewGrammarUseCase creates a new GrammarUseCase instance.
func NewGrammarUseCase(corrector service.Corrector) GrammarUseCase {
	return &grammarUseCase{corrector: corrector}
}

// Check forwards the content verbatim and returns the collaborator's result.
func (u *grammarUseCase) Check(ctx context.Context, content string) (string, error) {
	return u.corrector.Correct(ctx, content)
}
