package domain

import (
	"time"

	"github.com/google/uuid"
)

type Blog struct {
	ID          uuid.UUID    `json:"_id" db:"id"`
	Slug        string       `json:"blog_id" db:"blog_id"`
	AuthorID    uuid.UUID    `json:"author" db:"author_id"`
	Title       string       `json:"title" db:"title"`
	Comments    []uuid.UUID  `json:"comments" db:"-"`
	Activity    BlogActivity `json:"activity" db:"-"`
	Draft       bool         `json:"draft" db:"draft"`
	PublishedAt time.Time    `json:"publishedAt" db:"published_at"`
	UpdatedAt   time.Time    `json:"-" db:"updated_at"`
}

// BlogActivity holds counters denormalized from the comment store and the
// like feed. They are maintained incrementally and may lag briefly.
type BlogActivity struct {
	TotalLikes          int64 `json:"total_likes" db:"total_likes"`
	TotalComments       int64 `json:"total_comments" db:"total_comments"`
	TotalParentComments int64 `json:"total_parent_comments" db:"total_parent_comments"`
	TotalReads          int64 `json:"total_reads" db:"total_reads"`
}

type LikeBlogInput struct {
	IsLikedByUser bool `json:"is_liked_by_user"`
}
