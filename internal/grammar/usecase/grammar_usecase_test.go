package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/posts/internal/errors"
	"github.com/allisson/posts/internal/metrics"
)

// mockCorrector is a mock implementation of service.Corrector for testing.
type mockCorrector struct {
	mock.Mock
}

func (m *mockCorrector) Correct(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func TestGrammarUseCase_Check(t *testing.T) {
	t.Run("returns corrected text", func(t *testing.T) {
		mockService := &mockCorrector{}
		useCase := NewGrammarUseCase(mockService)

		mockService.On("Correct", mock.Anything, "she dont like apples").
			Return("She does not like apples.", nil).
			Once()

		corrected, err := useCase.Check(context.Background(), "she dont like apples")
		require.NoError(t, err)
		assert.Equal(t, "She does not like apples.", corrected)
		mockService.AssertExpectations(t)
	})

	t.Run("propagates collaborator error", func(t *testing.T) {
		mockService := &mockCorrector{}
		useCase := NewGrammarUseCase(mockService)

		mockService.On("Correct", mock.Anything, "hello").
			Return("", apperrors.Wrap(apperrors.ErrCollaborator, "timeout")).
			Once()

		corrected, err := useCase.Check(context.Background(), "hello")
		assert.Empty(t, corrected)
		assert.ErrorIs(t, err, apperrors.ErrCollaborator)
	})
}

func TestGrammarUseCaseWithMetrics_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("records success metrics", func(t *testing.T) {
		mockService := &mockCorrector{}
		mockMetrics := &mockBusinessMetrics{}
		decorator := NewGrammarUseCaseWithMetrics(NewGrammarUseCase(mockService), mockMetrics)

		mockService.On("Correct", ctx, "hello").
			Return("Hello.", nil).
			Once()
		mockMetrics.On("RecordOperation", ctx, "grammar", "grammar_check", "success").
			Return().
			Once()
		mockMetrics.On("RecordDuration", ctx, "grammar", "grammar_check", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		corrected, err := decorator.Check(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, "Hello.", corrected)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("records error metrics", func(t *testing.T) {
		mockService := &mockCorrector{}
		mockMetrics := &mockBusinessMetrics{}
		decorator := NewGrammarUseCaseWithMetrics(NewGrammarUseCase(mockService), mockMetrics)

		mockService.On("Correct", ctx, "hello").
			Return("", apperrors.Wrap(apperrors.ErrCollaborator, "timeout")).
			Once()
		mockMetrics.On("RecordOperation", ctx, "grammar", "grammar_check", "error").
			Return().
			Once()
		mockMetrics.On("RecordDuration", ctx, "grammar", "grammar_check", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		_, err := decorator.Check(ctx, "hello")
		assert.Error(t, err)
		mockMetrics.AssertExpectations(t)
	})
}
