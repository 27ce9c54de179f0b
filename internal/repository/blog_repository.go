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

type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	// AttachComment adds commentID to the blog's membership set and bumps
	// its counters. It reports false when the blog does not exist or
	// already lists the comment.
	AttachComment(ctx context.Context, blogID, commentID uuid.UUID, topLevel bool) (bool, error)
	// DetachComment is the inverse of AttachComment. It only decrements when
	// commentID is still a member, so repeating it is harmless.
	DetachComment(ctx context.Context, blogID, commentID uuid.UUID, topLevel bool) (bool, error)
	AdjustLikes(ctx context.Context, blogID uuid.UUID, delta int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) BlogRepository {
	return &blogRepository{db: db}
}

type blogRow struct {
	ID                  uuid.UUID      `db:"id"`
	Slug                string         `db:"blog_id"`
	AuthorID            uuid.UUID      `db:"author_id"`
	Title               string         `db:"title"`
	Comments            pq.StringArray `db:"comments"`
	TotalLikes          int64          `db:"total_likes"`
	TotalComments       int64          `db:"total_comments"`
	TotalParentComments int64          `db:"total_parent_comments"`
	TotalReads          int64          `db:"total_reads"`
	Draft               bool           `db:"draft"`
	PublishedAt         time.Time      `db:"published_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

func (r blogRow) toDomain() *domain.Blog {
	return &domain.Blog{
		ID:       r.ID,
		Slug:     r.Slug,
		AuthorID: r.AuthorID,
		Title:    r.Title,
		Comments: parseUUIDs(r.Comments),
		Activity: domain.BlogActivity{
			TotalLikes:          r.TotalLikes,
			TotalComments:       r.TotalComments,
			TotalParentComments: r.TotalParentComments,
			TotalReads:          r.TotalReads,
		},
		Draft:       r.Draft,
		PublishedAt: r.PublishedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	query := `
		INSERT INTO blogs (id, blog_id, author_id, title, draft)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING published_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		blog.ID, blog.Slug, blog.AuthorID, blog.Title, blog.Draft,
	).Scan(&blog.PublishedAt, &blog.UpdatedAt)
}

func (r *blogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	var row blogRow
	query := `
		SELECT id, blog_id, author_id, title, comments, total_likes, total_comments,
			total_parent_comments, total_reads, draft, published_at, updated_at
		FROM blogs WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *blogRepository) AttachComment(ctx context.Context, blogID, commentID uuid.UUID, topLevel bool) (bool, error) {
	query := `
		UPDATE blogs
		SET comments = array_append(comments, $2),
			total_comments = total_comments + 1,
			total_parent_comments = total_parent_comments + $3,
			updated_at = NOW()
		WHERE id = $1 AND NOT ($2 = ANY(comments))`

	return r.execAffected(ctx, query, blogID, commentID, boolToInt(topLevel))
}

func (r *blogRepository) DetachComment(ctx context.Context, blogID, commentID uuid.UUID, topLevel bool) (bool, error) {
	query := `
		UPDATE blogs
		SET comments = array_remove(comments, $2),
			total_comments = total_comments - 1,
			total_parent_comments = total_parent_comments - $3,
			updated_at = NOW()
		WHERE id = $1 AND $2 = ANY(comments)`

	return r.execAffected(ctx, query, blogID, commentID, boolToInt(topLevel))
}

func (r *blogRepository) AdjustLikes(ctx context.Context, blogID uuid.UUID, delta int) error {
	query := `UPDATE blogs SET total_likes = total_likes + $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, blogID, delta)
	return err
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	return err
}

func (r *blogRepository) execAffected(ctx context.Context, query string, args ...interface{}) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
