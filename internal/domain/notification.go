package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPageSize is the fixed window of the notification feed.
const NotificationPageSize = 10

type NotificationType string

const (
	NotifLike    NotificationType = "like"
	NotifComment NotificationType = "comment"
	NotifReply   NotificationType = "reply"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotifLike, NotifComment, NotifReply:
		return true
	default:
		return false
	}
}

// Notification is an entry of a user's feed. Likes act as an existence flag
// (one per user and blog); comment and reply entries are append-only, except
// for Reply which is attached or cleared after creation.
type Notification struct {
	ID               uuid.UUID        `json:"_id" db:"id"`
	Type             NotificationType `json:"type" db:"type"`
	BlogID           uuid.UUID        `json:"blog" db:"blog_id"`
	NotificationFor  uuid.UUID        `json:"notification_for" db:"notification_for"`
	UserID           uuid.UUID        `json:"user" db:"user_id"`
	CommentID        *uuid.UUID       `json:"comment,omitempty" db:"comment_id"`
	RepliedOnComment *uuid.UUID       `json:"replied_on_comment,omitempty" db:"replied_on_comment"`
	ReplyID          *uuid.UUID       `json:"reply,omitempty" db:"reply_id"`
	Seen             bool             `json:"seen" db:"seen"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
}

// NotificationView is a feed entry with its references resolved.
type NotificationView struct {
	ID               uuid.UUID        `json:"_id"`
	Type             NotificationType `json:"type"`
	Seen             bool             `json:"seen"`
	CreatedAt        time.Time        `json:"createdAt"`
	Blog             NotificationBlog `json:"blog"`
	User             *UserSummary     `json:"user,omitempty"`
	Comment          *CommentRef      `json:"comment,omitempty"`
	RepliedOnComment *CommentRef      `json:"replied_on_comment,omitempty"`
	Reply            *CommentRef      `json:"reply,omitempty"`
}

type NotificationBlog struct {
	ID    uuid.UUID `json:"_id"`
	Slug  string    `json:"blog_id"`
	Title string    `json:"title"`
}

type CommentRef struct {
	ID      uuid.UUID `json:"_id"`
	Comment string    `json:"comment"`
}

// NotificationFilter narrows the feed to one type. The zero value and "all"
// match every type.
type NotificationFilter string

const NotificationFilterAll NotificationFilter = "all"

func (f NotificationFilter) Type() (NotificationType, bool) {
	if f == "" || f == NotificationFilterAll {
		return "", false
	}
	return NotificationType(f), true
}

func (f NotificationFilter) IsValid() bool {
	t, typed := f.Type()
	return !typed || t.IsValid()
}

type NotificationQuery struct {
	Page            int                `query:"page"`
	Filter          NotificationFilter `query:"filter"`
	DeletedDocCount int                `query:"deleted_doc_count"`
}

// Skip returns the feed offset for the page, pulled back by the number of
// entries the client removed since it loaded earlier pages.
func (q NotificationQuery) Skip() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return SkipWithDeleted(page, NotificationPageSize, q.DeletedDocCount)
}
