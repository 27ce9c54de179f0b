package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsphere/internal/domain"
)

func TestBlogMembershipIsASet(t *testing.T) {
	ctx := context.Background()
	s := New()
	repos := NewRepositories(s)
	blog := &domain.Blog{ID: uuid.New(), Slug: "go-tips", AuthorID: uuid.New()}
	require.NoError(t, repos.Blog.Create(ctx, blog))

	commentID := uuid.New()
	ok, err := repos.Blog.AttachComment(ctx, blog.ID, commentID, true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repos.Blog.AttachComment(ctx, blog.ID, commentID, true)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repos.Blog.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Activity.TotalComments)
	assert.Equal(t, int64(1), got.Activity.TotalParentComments)

	ok, err = repos.Blog.DetachComment(ctx, blog.ID, commentID, true)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repos.Blog.DetachComment(ctx, blog.ID, commentID, true)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err = repos.Blog.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Activity.TotalComments)
	assert.Empty(t, got.Comments)
}

func TestGetByIDReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(New())
	parent := &domain.Comment{ID: uuid.New(), BlogID: uuid.New()}
	require.NoError(t, repos.Comment.Create(ctx, parent))
	_, err := repos.Comment.AppendChild(ctx, parent.ID, uuid.New())
	require.NoError(t, err)

	got, err := repos.Comment.GetByID(ctx, parent.ID)
	require.NoError(t, err)
	got.Children[0] = uuid.Nil

	again, err := repos.Comment.GetByID(ctx, parent.ID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, again.Children[0])

	missing, err := repos.Comment.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListTopLevelNewestFirst(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(New())
	blogID := uuid.New()

	var ids []uuid.UUID
	for i := 0; i < 7; i++ {
		c := &domain.Comment{ID: uuid.New(), BlogID: blogID}
		require.NoError(t, repos.Comment.Create(ctx, c))
		ids = append(ids, c.ID)
	}
	reply := &domain.Comment{ID: uuid.New(), BlogID: blogID, IsReply: true, Parent: &ids[0]}
	require.NoError(t, repos.Comment.Create(ctx, reply))

	page, err := repos.Comment.ListTopLevel(ctx, blogID, 0, domain.CommentPageSize)
	require.NoError(t, err)
	require.Len(t, page, domain.CommentPageSize)
	assert.Equal(t, ids[6], page[0].ID)

	page, err = repos.Comment.ListTopLevel(ctx, blogID, 5, domain.CommentPageSize)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[0], page[1].ID)

	page, err = repos.Comment.ListTopLevel(ctx, blogID, 50, domain.CommentPageSize)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestLikeIsUniquePerUserAndBlog(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(New())
	user, owner, blogID := uuid.New(), uuid.New(), uuid.New()

	like := func() *domain.Notification {
		return &domain.Notification{ID: uuid.New(), BlogID: blogID, NotificationFor: owner, UserID: user}
	}

	created, err := repos.Notification.CreateLike(ctx, like())
	require.NoError(t, err)
	assert.True(t, created)
	created, err = repos.Notification.CreateLike(ctx, like())
	require.NoError(t, err)
	assert.False(t, created)

	count, err := repos.Notification.CountForUser(ctx, owner, "like")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	removed, err := repos.Notification.DeleteLike(ctx, user, blogID)
	require.NoError(t, err)
	assert.True(t, removed)
	exists, err := repos.Notification.LikeExists(ctx, user, blogID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFeedExcludesSelfTriggered(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(New())
	owner, other, blogID := uuid.New(), uuid.New(), uuid.New()

	own := &domain.Notification{ID: uuid.New(), Type: domain.NotifComment, BlogID: blogID, NotificationFor: owner, UserID: owner}
	theirs := &domain.Notification{ID: uuid.New(), Type: domain.NotifComment, BlogID: blogID, NotificationFor: owner, UserID: other}
	require.NoError(t, repos.Notification.Create(ctx, own))
	require.NoError(t, repos.Notification.Create(ctx, theirs))

	views, err := repos.Notification.ListForUser(ctx, owner, domain.NotificationFilterAll, 0, domain.NotificationPageSize)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, theirs.ID, views[0].ID)

	unseen, err := repos.Notification.HasUnseen(ctx, owner)
	require.NoError(t, err)
	assert.True(t, unseen)

	require.NoError(t, repos.Notification.MarkSeen(ctx, []uuid.UUID{theirs.ID}))
	unseen, err = repos.Notification.HasUnseen(ctx, owner)
	require.NoError(t, err)
	assert.False(t, unseen)
}
