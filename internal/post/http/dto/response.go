package dto

import (
	"time"

	postDomain "github.com/allisson/posts/internal/post/domain"
)

// PostResponse represents a post in API responses.
type PostResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedPostResponse represents another user's post joined with its author's email.
type FeedPostResponse struct {
	PostResponse
	AuthorEmail string `json:"author_email"`
}

// PostEnvelope wraps a single post. Post stays a pointer so a scoped lookup
// that matched nothing serializes as post:null.
type PostEnvelope struct {
	Success bool          `json:"success"`
	Post    *PostResponse `json:"post"`
}

// PostListEnvelope wraps the caller's own posts.
type PostListEnvelope struct {
	Success bool           `json:"success"`
	Posts   []PostResponse `json:"posts"`
}

// FeedEnvelope wraps the cross-tenant listing.
type FeedEnvelope struct {
	Success bool               `json:"success"`
	Posts   []FeedPostResponse `json:"posts"`
}

// ConfirmationEnvelope confirms a mutation without echoing content.
type ConfirmationEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MapPostToResponse converts a domain post to an API response.
func MapPostToResponse(post *postDomain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID.String(),
		UserID:    post.UserID.String(),
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	}
}

// MapPostsToResponse converts a list of domain posts to API responses.
// Always returns a non-nil slice so an empty list serializes as [].
func MapPostsToResponse(posts []*postDomain.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, MapPostToResponse(post))
	}
	return responses
}

// MapFeedEntriesToResponse converts feed entries to API responses.
func MapFeedEntriesToResponse(entries []*postDomain.FeedEntry) []FeedPostResponse {
	responses := make([]FeedPostResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, FeedPostResponse{
			PostResponse: MapPostToResponse(&entry.Post),
			AuthorEmail:  entry.AuthorEmail,
		})
	}
	return responses
}
