package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/posts/internal/metrics"
	postDomain "github.com/allisson/posts/internal/post/domain"
)

// postUseCaseWithMetrics decorates PostUseCase with metrics instrumentation.
type postUseCaseWithMetrics struct {
	next    PostUseCase
	metrics metrics.BusinessMetrics
}

// NewPostUseCaseWithMetrics wraps a PostUseCase with metrics recording.
func NewPostUseCaseWithMetrics(useCase PostUseCase, m metrics.BusinessMetrics) PostUseCase {
	return &postUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (p *postUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "posts", operation, status)
	p.metrics.RecordDuration(ctx, "posts", operation, time.Since(start), status)
}

// Create records metrics for post creation operations.
func (p *postUseCaseWithMetrics) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	content string,
) (*postDomain.Post, error) {
	start := time.Now()
	post, err := p.next.Create(ctx, ownerID, content)
	p.record(ctx, "post_create", start, err)
	return post, err
}

// ListOwn records metrics for own-post listing operations.
func (p *postUseCaseWithMetrics) ListOwn(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*postDomain.Post, error) {
	start := time.Now()
	posts, err := p.next.ListOwn(ctx, ownerID)
	p.record(ctx, "post_list_own", start, err)
	return posts, err
}

// Get records metrics for single-post retrieval operations.
func (p *postUseCaseWithMetrics) Get(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
) (*postDomain.Post, error) {
	start := time.Now()
	post, err := p.next.Get(ctx, id, ownerID)
	p.record(ctx, "post_get", start, err)
	return post, err
}

// Update records metrics for post update operations.
func (p *postUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
	content string,
) error {
	start := time.Now()
	err := p.next.Update(ctx, id, ownerID, content)
	p.record(ctx, "post_update", start, err)
	return err
}

// Delete records metrics for post deletion operations.
func (p *postUseCaseWithMetrics) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	start := time.Now()
	err := p.next.Delete(ctx, id, ownerID)
	p.record(ctx, "post_delete", start, err)
	return err
}

// ListOthers records metrics for feed listing operations.
func (p *postUseCaseWithMetrics) ListOthers(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*postDomain.FeedEntry, error) {
	start := time.Now()
	entries, err := p.next.ListOthers(ctx, ownerID)
	p.record(ctx, "post_list_others", start, err)
	return entries, err
}
