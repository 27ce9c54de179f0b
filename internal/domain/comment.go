package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommentPageSize is the fixed window for top-level comment and reply listings.
const CommentPageSize = 5

// Comment is a node of a blog's two-level comment tree. Replies carry a
// parent pointer and the parent lists them in Children.
type Comment struct {
	ID          uuid.UUID   `json:"_id" db:"id"`
	BlogID      uuid.UUID   `json:"blog_id" db:"blog_id"`
	BlogAuthor  uuid.UUID   `json:"blog_author" db:"blog_author"`
	Comment     string      `json:"comment" db:"comment"`
	CommentedBy uuid.UUID   `json:"commented_by" db:"commented_by"`
	Parent      *uuid.UUID  `json:"parent,omitempty" db:"parent_id"`
	IsReply     bool        `json:"isReply" db:"is_reply"`
	Children    []uuid.UUID `json:"children" db:"-"`
	CommentedAt time.Time   `json:"commentedAt" db:"commented_at"`
	UpdatedAt   time.Time   `json:"-" db:"updated_at"`

	Author *UserSummary `json:"-" db:"-"`
}

func (c *Comment) IsTopLevel() bool {
	return !c.IsReply
}

// CommentView is the response shape of a comment. BlogID is omitted for replies.
type CommentView struct {
	ID          uuid.UUID    `json:"_id"`
	BlogID      *uuid.UUID   `json:"blog_id,omitempty"`
	Comment     string       `json:"comment"`
	CommentedAt time.Time    `json:"commentedAt"`
	UserID      uuid.UUID    `json:"user_id"`
	Parent      *uuid.UUID   `json:"parent,omitempty"`
	IsReply     bool         `json:"isReply"`
	Children    []uuid.UUID  `json:"children"`
	CommentedBy *UserSummary `json:"commented_by,omitempty"`
}

func NewCommentView(c *Comment, withBlog bool) CommentView {
	view := CommentView{
		ID:          c.ID,
		Comment:     c.Comment,
		CommentedAt: c.CommentedAt,
		UserID:      c.CommentedBy,
		Parent:      c.Parent,
		IsReply:     c.IsReply,
		Children:    c.Children,
		CommentedBy: c.Author,
	}
	if view.Children == nil {
		view.Children = []uuid.UUID{}
	}
	if withBlog {
		blogID := c.BlogID
		view.BlogID = &blogID
	}
	return view
}

type AddCommentInput struct {
	BlogID         uuid.UUID  `json:"-"`
	Comment        string     `json:"comment" validate:"required,max=2000"`
	ReplyingTo     *uuid.UUID `json:"replying_to"`
	NotificationID *uuid.UUID `json:"notification_id"`
}
