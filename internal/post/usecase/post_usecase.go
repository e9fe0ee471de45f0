package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	postDomain "github.com/allisson/posts/internal/post/domain"
)

// postUseCase implements PostUseCase on top of a PostRepository.
type postUseCase struct {
	postRepo PostRepository
}

// NewPostUseCase creates a new PostUseCase instance.
func NewPostUseCase(postRepo PostRepository) PostUseCase {
	return &postUseCase{postRepo: postRepo}
}

// Create inserts a new post. The owner always comes from the verified
// identity, never from the request payload.
func (u *postUseCase) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	content string,
) (*postDomain.Post, error) {
	post := &postDomain.Post{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    ownerID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// ListOwn returns the caller's posts, newest first.
func (u *postUseCase) ListOwn(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*postDomain.Post, error) {
	return u.postRepo.ListByOwner(ctx, ownerID)
}

// Get returns the caller's post or (nil, nil) when the scoped query matches
// nothing. A missing post and another owner's post produce identical results.
func (u *postUseCase) Get(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
) (*postDomain.Post, error) {
	post, err := u.postRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, postDomain.ErrPostNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

// Update replaces the content of a post the caller owns.
func (u *postUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
	content string,
) error {
	return u.postRepo.UpdateContent(ctx, id, ownerID, content)
}

// Delete removes a post the caller owns.
func (u *postUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return u.postRepo.Delete(ctx, id, ownerID)
}

// ListOthers returns all posts not owned by the caller, newest first.
func (u *postUseCase) ListOthers(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*postDomain.FeedEntry, error) {
	return u.postRepo.ListByOtherOwners(ctx, ownerID)
}
