package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"blogsphere/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	// CreateLike inserts the like entry unless one already exists for the
	// same user and blog, and reports whether a row was inserted.
	CreateLike(ctx context.Context, notif *domain.Notification) (bool, error)
	DeleteLike(ctx context.Context, userID, blogID uuid.UUID) (bool, error)
	LikeExists(ctx context.Context, userID, blogID uuid.UUID) (bool, error)
	SetReply(ctx context.Context, id, replyID uuid.UUID) error
	ClearReply(ctx context.Context, replyID uuid.UUID) error
	DeleteByComment(ctx context.Context, commentID uuid.UUID) error
	DeleteByBlog(ctx context.Context, blogID uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter, skip, limit int) ([]domain.NotificationView, error)
	CountForUser(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter) (int64, error)
	HasUnseen(ctx context.Context, userID uuid.UUID) (bool, error)
	MarkSeen(ctx context.Context, ids []uuid.UUID) error
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, type, blog_id, notification_for, user_id, comment_id, replied_on_comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.Type, notif.BlogID, notif.NotificationFor, notif.UserID,
		notif.CommentID, notif.RepliedOnComment,
	).Scan(&notif.CreatedAt)
}

func (r *notificationRepository) CreateLike(ctx context.Context, notif *domain.Notification) (bool, error) {
	query := `
		INSERT INTO notifications (id, type, blog_id, notification_for, user_id)
		VALUES ($1, 'like', $2, $3, $4)
		ON CONFLICT (user_id, blog_id) WHERE type = 'like' DO NOTHING
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.BlogID, notif.NotificationFor, notif.UserID,
	).Scan(&notif.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *notificationRepository) DeleteLike(ctx context.Context, userID, blogID uuid.UUID) (bool, error) {
	query := `DELETE FROM notifications WHERE user_id = $1 AND blog_id = $2 AND type = 'like'`
	res, err := r.db.ExecContext(ctx, query, userID, blogID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *notificationRepository) LikeExists(ctx context.Context, userID, blogID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM notifications WHERE user_id = $1 AND blog_id = $2 AND type = 'like')`
	err := r.db.GetContext(ctx, &exists, query, userID, blogID)
	return exists, err
}

func (r *notificationRepository) SetReply(ctx context.Context, id, replyID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET reply_id = $2 WHERE id = $1`, id, replyID)
	return err
}

func (r *notificationRepository) ClearReply(ctx context.Context, replyID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET reply_id = NULL WHERE reply_id = $1`, replyID)
	return err
}

func (r *notificationRepository) DeleteByComment(ctx context.Context, commentID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE comment_id = $1`, commentID)
	return err
}

func (r *notificationRepository) DeleteByBlog(ctx context.Context, blogID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE blog_id = $1`, blogID)
	return err
}

type notificationViewRow struct {
	ID        uuid.UUID               `db:"id"`
	Type      domain.NotificationType `db:"type"`
	Seen      bool                    `db:"seen"`
	CreatedAt time.Time               `db:"created_at"`

	BlogID    uuid.UUID      `db:"blog_id"`
	BlogSlug  sql.NullString `db:"blog_slug"`
	BlogTitle sql.NullString `db:"blog_title"`

	UserID         uuid.UUID      `db:"user_id"`
	UserUsername   sql.NullString `db:"user_username"`
	UserFullName   sql.NullString `db:"user_full_name"`
	UserProfileImg sql.NullString `db:"user_profile_img"`

	CommentID        *uuid.UUID     `db:"comment_id"`
	CommentText      sql.NullString `db:"comment_text"`
	RepliedOnComment *uuid.UUID     `db:"replied_on_comment"`
	RepliedOnText    sql.NullString `db:"replied_on_text"`
	ReplyID          *uuid.UUID     `db:"reply_id"`
	ReplyText        sql.NullString `db:"reply_text"`
}

func (r notificationViewRow) toView() domain.NotificationView {
	view := domain.NotificationView{
		ID:        r.ID,
		Type:      r.Type,
		Seen:      r.Seen,
		CreatedAt: r.CreatedAt,
		Blog: domain.NotificationBlog{
			ID:    r.BlogID,
			Slug:  r.BlogSlug.String,
			Title: r.BlogTitle.String,
		},
		Comment:          commentRef(r.CommentID, r.CommentText),
		RepliedOnComment: commentRef(r.RepliedOnComment, r.RepliedOnText),
		Reply:            commentRef(r.ReplyID, r.ReplyText),
	}
	if r.UserUsername.Valid {
		view.User = &domain.UserSummary{
			ID:         r.UserID,
			Username:   r.UserUsername.String,
			FullName:   r.UserFullName.String,
			ProfileImg: r.UserProfileImg.String,
		}
	}
	return view
}

func commentRef(id *uuid.UUID, text sql.NullString) *domain.CommentRef {
	if id == nil || !text.Valid {
		return nil
	}
	return &domain.CommentRef{ID: *id, Comment: text.String}
}

// feedWhere builds the shared predicate of the feed queries: entries addressed
// to userID that someone else triggered, optionally narrowed to one type.
func feedWhere(userID uuid.UUID, filter domain.NotificationFilter) (string, []interface{}) {
	where := `n.notification_for = $1 AND n.user_id <> $1`
	args := []interface{}{userID}
	if t, ok := filter.Type(); ok {
		args = append(args, t)
		where += fmt.Sprintf(` AND n.type = $%d`, len(args))
	}
	return where, args
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter, skip, limit int) ([]domain.NotificationView, error) {
	where, args := feedWhere(userID, filter)
	args = append(args, limit, skip)

	query := fmt.Sprintf(`
		SELECT n.id, n.type, n.seen, n.created_at,
			n.blog_id, b.blog_id AS blog_slug, b.title AS blog_title,
			n.user_id, u.username AS user_username, u.full_name AS user_full_name, u.profile_img AS user_profile_img,
			n.comment_id, c.comment AS comment_text,
			n.replied_on_comment, rc.comment AS replied_on_text,
			n.reply_id, rp.comment AS reply_text
		FROM notifications n
		LEFT JOIN blogs b ON b.id = n.blog_id
		LEFT JOIN users u ON u.id = n.user_id
		LEFT JOIN comments c ON c.id = n.comment_id
		LEFT JOIN comments rc ON rc.id = n.replied_on_comment
		LEFT JOIN comments rp ON rp.id = n.reply_id
		WHERE %s
		ORDER BY n.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	var rows []notificationViewRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	views := make([]domain.NotificationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView())
	}
	return views, nil
}

func (r *notificationRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter) (int64, error) {
	where, args := feedWhere(userID, filter)
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM notifications n WHERE `+where, args...)
	return count, err
}

func (r *notificationRepository) HasUnseen(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE notification_for = $1 AND user_id <> $1 AND seen = false
		)`
	err := r.db.GetContext(ctx, &exists, query, userID)
	return exists, err
}

func (r *notificationRepository) MarkSeen(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}
	query := `UPDATE notifications SET seen = true WHERE id = ANY($1::uuid[]) AND seen = false`
	_, err := r.db.ExecContext(ctx, query, pq.Array(values))
	return err
}
