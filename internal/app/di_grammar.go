package app

import (
	"fmt"

	grammarHTTP "github.com/allisson/posts/internal/grammar/http"
	grammarService "github.com/allisson/posts/internal/grammar/service"
	grammarUseCase "github.com/allisson/posts/internal/grammar/usecase"
)

// GrammarUseCase returns the grammar use case instance.
// Construction fails when no API key is configured for the collaborator.
func (c *Container) GrammarUseCase() (grammarUseCase.GrammarUseCase, error) {
	c.grammarUseCaseInit.Do(func() {
		useCase, err := c.initGrammarUseCase()
		if err != nil {
			c.initErrors["grammarUseCase"] = err
			return
		}
		c.grammarUseCase = useCase
	})
	if storedErr, exists := c.initErrors["grammarUseCase"]; exists {
		return nil, storedErr
	}
	return c.grammarUseCase, nil
}

// GrammarHandler returns the grammar HTTP handler instance.
func (c *Container) GrammarHandler() (*grammarHTTP.GrammarHandler, error) {
	c.grammarHandlerInit.Do(func() {
		useCase, err := c.GrammarUseCase()
		if err != nil {
			c.initErrors["grammarHandler"] = fmt.Errorf("failed to get grammar use case for grammar handler: %w", err)
			return
		}
		c.grammarHandler = grammarHTTP.NewGrammarHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["grammarHandler"]; exists {
		return nil, storedErr
	}
	return c.grammarHandler, nil
}

// initGrammarUseCase creates the grammar use case with all its dependencies.
func (c *Container) initGrammarUseCase() (grammarUseCase.GrammarUseCase, error) {
	corrector, err := grammarService.NewClient(
		c.config.GrammarBaseURL,
		c.config.GrammarAPIKey,
		c.config.GrammarModel,
		c.config.GrammarTimeout,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create grammar client: %w", err)
	}

	baseUseCase := grammarUseCase.NewGrammarUseCase(corrector)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for grammar use case: %w", err)
		}
		return grammarUseCase.NewGrammarUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
