package usecase

import (
	"context"
	"time"

	"github.com/allisson/posts/internal/metrics"
)

// grammarUseCaseWithMetrics decorates GrammarUseCase with metrics
// instrumentation.
type grammarUseCaseWithMetrics struct {
	next    GrammarUseCase
	metrics metrics.BusinessMetrics
}

// NewGrammarUseCaseWithMetrics wraps a GrammarUseCase with metrics recording.
func NewGrammarUseCaseWithMetrics(useCase GrammarUseCase, m metrics.BusinessMetrics) GrammarUseCase {
	return &grammarUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Check records metrics for grammar correction operations.
func (g *grammarUseCaseWithMetrics) Check(ctx context.Context, content string) (string, error) {
	start := time.Now()
	corrected, err := g.next.Check(ctx, content)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "grammar", "grammar_check", status)
	g.metrics.RecordDuration(ctx, "grammar", "grammar_check", time.Since(start), status)

	return corrected, err
}
