package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipWithDeleted(t *testing.T) {
	tests := []struct {
		name                    string
		page, pageSize, deleted int
		want                    int
	}{
		{"first page", 1, 10, 0, 0},
		{"third page", 3, 10, 0, 20},
		{"deleted entries pull the window back", 2, 10, 3, 7},
		{"never negative", 1, 10, 4, 0},
		{"page below one", 0, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SkipWithDeleted(tt.page, tt.pageSize, tt.deleted))
		})
	}
}

func TestNotificationFilter(t *testing.T) {
	_, typed := NotificationFilterAll.Type()
	assert.False(t, typed)
	_, typed = NotificationFilter("").Type()
	assert.False(t, typed)

	typ, typed := NotificationFilter("reply").Type()
	assert.True(t, typed)
	assert.Equal(t, NotifReply, typ)

	assert.True(t, NotificationFilter("like").IsValid())
	assert.False(t, NotificationFilter("mention").IsValid())
}

func TestNotificationQuerySkip(t *testing.T) {
	assert.Equal(t, 0, NotificationQuery{}.Skip())
	assert.Equal(t, 10, NotificationQuery{Page: 2}.Skip())
	assert.Equal(t, 8, NotificationQuery{Page: 2, DeletedDocCount: 2}.Skip())
}

func TestNewCommentView(t *testing.T) {
	c := &Comment{Comment: "hi", IsReply: true}
	v := NewCommentView(c, false)
	assert.Nil(t, v.BlogID)
	assert.NotNil(t, v.Children)

	v = NewCommentView(c, true)
	if assert.NotNil(t, v.BlogID) {
		assert.Equal(t, c.BlogID, *v.BlogID)
	}
}
