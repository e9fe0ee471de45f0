package app

import (
	"fmt"

	postHTTP "github.com/allisson/posts/internal/post/http"
	postRepository "github.com/allisson/posts/internal/post/repository"
	postUseCase "github.com/allisson/posts/internal/post/usecase"
)

// PostRepository returns the post repository instance for the configured
// database driver.
func (c *Container) PostRepository() (postUseCase.PostRepository, error) {
	c.postRepoInit.Do(func() {
		repo, err := c.initPostRepository()
		if err != nil {
			c.initErrors["postRepo"] = err
			return
		}
		c.postRepo = repo
	})
	if storedErr, exists := c.initErrors["postRepo"]; exists {
		return nil, storedErr
	}
	return c.postRepo, nil
}

// PostUseCase returns the post use case instance.
func (c *Container) PostUseCase() (postUseCase.PostUseCase, error) {
	c.postUseCaseInit.Do(func() {
		useCase, err := c.initPostUseCase()
		if err != nil {
			c.initErrors["postUseCase"] = err
			return
		}
		c.postUseCase = useCase
	})
	if storedErr, exists := c.initErrors["postUseCase"]; exists {
		return nil, storedErr
	}
	return c.postUseCase, nil
}

// PostHandler returns the post HTTP handler instance.
func (c *Container) PostHandler() (*postHTTP.PostHandler, error) {
	c.postHandlerInit.Do(func() {
		useCase, err := c.PostUseCase()
		if err != nil {
			c.initErrors["postHandler"] = fmt.Errorf("failed to get post use case for post handler: %w", err)
			return
		}
		c.postHandler = postHTTP.NewPostHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["postHandler"]; exists {
		return nil, storedErr
	}
	return c.postHandler, nil
}

// initPostRepository creates the post repository based on the database driver.
func (c *Container) initPostRepository() (postUseCase.PostRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for post repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return postRepository.NewPostgreSQLPostRepository(db), nil
	case "mysql":
		return postRepository.NewMySQLPostRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initPostUseCase creates the post use case with all its dependencies.
func (c *Container) initPostUseCase() (postUseCase.PostUseCase, error) {
	postRepo, err := c.PostRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get post repository for post use case: %w", err)
	}

	baseUseCase := postUseCase.NewPostUseCase(postRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for post use case: %w", err)
		}
		return postUseCase.NewPostUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
