package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"blogsphere/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	// AppendChild pushes childID onto the parent's children. It reports
	// false when the parent no longer exists.
	AppendChild(ctx context.Context, parentID, childID uuid.UUID) (bool, error)
	RemoveChild(ctx context.Context, parentID, childID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByBlog(ctx context.Context, blogID uuid.UUID) error
	ListTopLevel(ctx context.Context, blogID uuid.UUID, skip, limit int) ([]domain.Comment, error)
	ListReplies(ctx context.Context, parentID uuid.UUID, skip, limit int) ([]domain.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

type commentRow struct {
	ID          uuid.UUID      `db:"id"`
	BlogID      uuid.UUID      `db:"blog_id"`
	BlogAuthor  uuid.UUID      `db:"blog_author"`
	Comment     string         `db:"comment"`
	CommentedBy uuid.UUID      `db:"commented_by"`
	ParentID    *uuid.UUID     `db:"parent_id"`
	IsReply     bool           `db:"is_reply"`
	Children    pq.StringArray `db:"children"`
	CommentedAt time.Time      `db:"commented_at"`
	UpdatedAt   time.Time      `db:"updated_at"`

	AuthorUsername   sql.NullString `db:"author_username"`
	AuthorFullName   sql.NullString `db:"author_full_name"`
	AuthorProfileImg sql.NullString `db:"author_profile_img"`
}

func (r commentRow) toDomain() domain.Comment {
	c := domain.Comment{
		ID:          r.ID,
		BlogID:      r.BlogID,
		BlogAuthor:  r.BlogAuthor,
		Comment:     r.Comment,
		CommentedBy: r.CommentedBy,
		Parent:      r.ParentID,
		IsReply:     r.IsReply,
		Children:    parseUUIDs(r.Children),
		CommentedAt: r.CommentedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.AuthorUsername.Valid {
		c.Author = &domain.UserSummary{
			ID:         r.CommentedBy,
			Username:   r.AuthorUsername.String,
			FullName:   r.AuthorFullName.String,
			ProfileImg: r.AuthorProfileImg.String,
		}
	}
	return c
}

const commentColumns = `c.id, c.blog_id, c.blog_author, c.comment, c.commented_by, c.parent_id,
			c.is_reply, c.children, c.commented_at, c.updated_at`

const commentAuthorColumns = `u.username AS author_username, u.full_name AS author_full_name,
			u.profile_img AS author_profile_img`

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, blog_id, blog_author, comment, commented_by, parent_id, is_reply)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING commented_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.BlogID, comment.BlogAuthor, comment.Comment,
		comment.CommentedBy, comment.Parent, comment.IsReply,
	).Scan(&comment.CommentedAt, &comment.UpdatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var row commentRow
	query := `SELECT ` + commentColumns + ` FROM comments c WHERE c.id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c := row.toDomain()
	return &c, nil
}

func (r *commentRepository) AppendChild(ctx context.Context, parentID, childID uuid.UUID) (bool, error) {
	query := `
		UPDATE comments
		SET children = array_append(children, $2), updated_at = NOW()
		WHERE id = $1 AND NOT ($2 = ANY(children))`

	res, err := r.db.ExecContext(ctx, query, parentID, childID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *commentRepository) RemoveChild(ctx context.Context, parentID, childID uuid.UUID) error {
	query := `
		UPDATE comments
		SET children = array_remove(children, $2), updated_at = NOW()
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, parentID, childID)
	return err
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}

func (r *commentRepository) DeleteByBlog(ctx context.Context, blogID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE blog_id = $1`, blogID)
	return err
}

func (r *commentRepository) ListTopLevel(ctx context.Context, blogID uuid.UUID, skip, limit int) ([]domain.Comment, error) {
	query := `
		SELECT ` + commentColumns + `, ` + commentAuthorColumns + `
		FROM comments c
		LEFT JOIN users u ON u.id = c.commented_by
		WHERE c.blog_id = $1 AND c.is_reply = false
		ORDER BY c.commented_at DESC
		LIMIT $2 OFFSET $3`

	return r.selectComments(ctx, query, blogID, limit, skip)
}

func (r *commentRepository) ListReplies(ctx context.Context, parentID uuid.UUID, skip, limit int) ([]domain.Comment, error) {
	query := `
		SELECT ` + commentColumns + `, ` + commentAuthorColumns + `
		FROM comments p
		CROSS JOIN LATERAL unnest(p.children) AS child(id)
		INNER JOIN comments c ON c.id = child.id
		LEFT JOIN users u ON u.id = c.commented_by
		WHERE p.id = $1
		ORDER BY c.commented_at DESC
		LIMIT $2 OFFSET $3`

	return r.selectComments(ctx, query, parentID, limit, skip)
}

func (r *commentRepository) selectComments(ctx context.Context, query string, args ...interface{}) ([]domain.Comment, error) {
	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toDomain())
	}
	return comments, nil
}

func parseUUIDs(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
