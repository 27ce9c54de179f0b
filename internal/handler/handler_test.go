package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogsphere/internal/domain"
	"blogsphere/internal/handler"
	"blogsphere/internal/middleware"
	"blogsphere/internal/mocks"
	"blogsphere/internal/pkg/logger"
	"blogsphere/internal/service"
	"blogsphere/internal/service/upload"
)

const token = "good-token"

type testApp struct {
	app           *fiber.App
	auth          *mocks.AuthService
	comments      *mocks.CommentService
	notifications *mocks.NotificationService
	blogs         *mocks.BlogService
	uploads       *mocks.UploadService
	actor         domain.Actor
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	base, _ := test.NewNullLogger()

	ta := &testApp{
		auth:          new(mocks.AuthService),
		comments:      new(mocks.CommentService),
		notifications: new(mocks.NotificationService),
		blogs:         new(mocks.BlogService),
		uploads:       new(mocks.UploadService),
		actor:         domain.Actor{ID: uuid.New()},
	}
	ta.auth.On("ResolveActor", mock.Anything, token).Return(ta.actor, nil).Maybe()
	ta.auth.On("ResolveActor", mock.Anything, mock.Anything).Return(domain.Actor{}, domain.ErrUnauthorized).Maybe()

	services := &service.Services{
		Auth:         ta.auth,
		Comment:      ta.comments,
		Notification: ta.notifications,
		Blog:         ta.blogs,
		Upload:       ta.uploads,
	}

	ta.app = fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(logger.NewWithLogrus(base))})
	handler.SetupRoutes(ta.app, handler.NewHandlers(services), ta.auth)
	return ta
}

func (ta *testApp) do(t *testing.T, method, path, body string, authed bool) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decodeError(t *testing.T, data []byte) middleware.ErrorResponse {
	t.Helper()
	var e middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(data, &e))
	return e
}

func TestHealth(t *testing.T) {
	ta := newTestApp(t)
	resp, body := ta.do(t, http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestCreateComment(t *testing.T) {
	blogID := uuid.New()

	t.Run("created", func(t *testing.T) {
		ta := newTestApp(t)
		parent := uuid.New()
		view := &domain.CommentView{ID: uuid.New(), Comment: "hi", UserID: ta.actor.ID, IsReply: true, Parent: &parent, Children: []uuid.UUID{}}
		ta.comments.On("Add", mock.Anything, ta.actor.ID, domain.AddCommentInput{
			BlogID:     blogID,
			Comment:    "hi",
			ReplyingTo: &parent,
		}).Return(view, nil)

		resp, body := ta.do(t, http.MethodPost, "/api/v1/blogs/"+blogID.String()+"/comments",
			`{"comment":"hi","replying_to":"`+parent.String()+`"}`, true)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var got domain.CommentView
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, view.ID, got.ID)
		assert.Equal(t, []uuid.UUID{}, got.Children)
		ta.comments.AssertExpectations(t)
	})

	t.Run("missing text fails validation", func(t *testing.T) {
		ta := newTestApp(t)
		resp, body := ta.do(t, http.MethodPost, "/api/v1/blogs/"+blogID.String()+"/comments", `{"comment":""}`, true)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		e := decodeError(t, body)
		assert.Equal(t, "VALIDATION_ERROR", e.Code)
		assert.Contains(t, e.Message, "comment is required")
		ta.comments.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("requires a token", func(t *testing.T) {
		ta := newTestApp(t)
		resp, body := ta.do(t, http.MethodPost, "/api/v1/blogs/"+blogID.String()+"/comments", `{"comment":"hi"}`, false)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, body).Code)
	})

	t.Run("bad blog id", func(t *testing.T) {
		ta := newTestApp(t)
		resp, _ := ta.do(t, http.MethodPost, "/api/v1/blogs/not-a-uuid/comments", `{"comment":"hi"}`, true)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteCommentErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"forbidden", domain.ErrPermission, http.StatusForbidden, "FORBIDDEN"},
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ta := newTestApp(t)
			commentID := uuid.New()
			ta.comments.On("Delete", mock.Anything, ta.actor.ID, commentID).Return(tc.err)

			resp, body := ta.do(t, http.MethodDelete, "/api/v1/comments/"+commentID.String(), "", true)
			assert.Equal(t, tc.status, resp.StatusCode)
			e := decodeError(t, body)
			assert.Equal(t, tc.code, e.Code)
			assert.NotEmpty(t, e.TraceID)
		})
	}

	t.Run("success", func(t *testing.T) {
		ta := newTestApp(t)
		commentID := uuid.New()
		ta.comments.On("Delete", mock.Anything, ta.actor.ID, commentID).Return(nil)

		resp, _ := ta.do(t, http.MethodDelete, "/api/v1/comments/"+commentID.String(), "", true)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestListComments(t *testing.T) {
	ta := newTestApp(t)
	blogID := uuid.New()
	commentID := uuid.New()
	ta.comments.On("ListTopLevel", mock.Anything, blogID, 5).Return([]domain.CommentView{{ID: commentID, Children: []uuid.UUID{}}}, nil)
	ta.comments.On("ListReplies", mock.Anything, commentID, 0).Return([]domain.CommentView{}, nil)

	resp, body := ta.do(t, http.MethodGet, "/api/v1/blogs/"+blogID.String()+"/comments?skip=5", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var views []domain.CommentView
	require.NoError(t, json.Unmarshal(body, &views))
	require.Len(t, views, 1)
	assert.Equal(t, commentID, views[0].ID)

	resp, body = ta.do(t, http.MethodGet, "/api/v1/comments/"+commentID.String()+"/replies", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"replies":[]}`, string(body))
}

func TestNotificationRoutes(t *testing.T) {
	ta := newTestApp(t)
	ta.notifications.On("List", mock.Anything, ta.actor.ID, domain.NotificationQuery{
		Page:            2,
		Filter:          "reply",
		DeletedDocCount: 3,
	}).Return([]domain.NotificationView{}, nil)
	ta.notifications.On("Count", mock.Anything, ta.actor.ID, domain.NotificationFilterAll).Return(int64(7), nil)
	ta.notifications.On("HasNew", mock.Anything, ta.actor.ID).Return(true, nil)

	resp, body := ta.do(t, http.MethodGet, "/api/v1/notifications?page=2&filter=reply&deleted_doc_count=3", "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"notifications":[]}`, string(body))

	resp, body = ta.do(t, http.MethodGet, "/api/v1/notifications/count", "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"totalDocs":7}`, string(body))

	resp, body = ta.do(t, http.MethodGet, "/api/v1/notifications/new", "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"new_notification_available":true}`, string(body))
}

func TestBlogRoutes(t *testing.T) {
	blogID := uuid.New()

	t.Run("like", func(t *testing.T) {
		ta := newTestApp(t)
		ta.blogs.On("ToggleLike", mock.Anything, ta.actor.ID, blogID, false).Return(true, nil)
		ta.blogs.On("IsLiked", mock.Anything, ta.actor.ID, blogID).Return(true, nil)

		resp, body := ta.do(t, http.MethodPost, "/api/v1/blogs/"+blogID.String()+"/like", `{"is_liked_by_user":false}`, true)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"liked_by_user":true}`, string(body))

		resp, body = ta.do(t, http.MethodGet, "/api/v1/blogs/"+blogID.String()+"/like", "", true)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"result":true}`, string(body))
	})

	t.Run("delete requires admin", func(t *testing.T) {
		ta := newTestApp(t)
		resp, body := ta.do(t, http.MethodDelete, "/api/v1/blogs/"+blogID.String(), "", true)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", decodeError(t, body).Code)
		ta.blogs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUploadURL(t *testing.T) {
	t.Run("signed", func(t *testing.T) {
		ta := newTestApp(t)
		ta.uploads.On("UploadURL", mock.Anything).Return("https://media.example.com/x.jpeg?sig=1", nil)

		resp, body := ta.do(t, http.MethodGet, "/api/v1/upload-url", "", true)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"upload_url":"https://media.example.com/x.jpeg?sig=1"}`, string(body))
	})

	t.Run("storage unavailable", func(t *testing.T) {
		ta := newTestApp(t)
		ta.uploads.On("UploadURL", mock.Anything).Return("", upload.ErrStorageUnavailable)

		resp, body := ta.do(t, http.MethodGet, "/api/v1/upload-url", "", true)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "UNAVAILABLE", decodeError(t, body).Code)
	})
}
