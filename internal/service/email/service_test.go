package email

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsphere/internal/config"
	"blogsphere/internal/pkg/i18n"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.sent = append(f.sent, params)
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "msg-1"}, nil
}

func newTestService(t *testing.T, sender *fakeSender) *service {
	t.Helper()
	require.NoError(t, i18n.LoadTranslations(filepath.Join("..", "..", "..", "locales")))
	svc, err := newService(sender, &config.Config{
		FromEmail:     "noreply@blogsphere.test",
		Domain:        "blogsphere.test",
		DefaultLocale: "fr",
	})
	require.NoError(t, err)
	return svc
}

func TestSendCommentEmail(t *testing.T) {
	t.Run("reply in the recipient locale", func(t *testing.T) {
		sender := &fakeSender{}
		svc := newTestService(t, sender)

		err := svc.SendCommentEmail(context.Background(), CommentEmail{
			To:            "ada@example.com",
			Locale:        "en",
			RecipientName: "Ada",
			ActorName:     "Bob",
			BlogTitle:     "Go tips",
			BlogSlug:      "go-tips",
			Comment:       "<b>agreed</b>",
			Reply:         true,
		})
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)

		req := sender.sent[0]
		assert.Equal(t, []string{"ada@example.com"}, req.To)
		assert.Equal(t, "Blogsphere <noreply@blogsphere.test>", req.From)
		assert.Equal(t, "Bob replied to your comment", req.Subject)
		assert.Contains(t, req.Html, "Hi Ada,")
		assert.Contains(t, req.Html, "https://blogsphere.test/blog/go-tips")
		assert.Contains(t, req.Html, "&lt;b&gt;agreed&lt;/b&gt;")
	})

	t.Run("unknown locale uses the default", func(t *testing.T) {
		sender := &fakeSender{}
		svc := newTestService(t, sender)

		err := svc.SendCommentEmail(context.Background(), CommentEmail{
			To:        "jean@example.com",
			Locale:    "xx",
			ActorName: "Bob",
			BlogTitle: "Astuces",
		})
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "Bob a commenté « Astuces »", sender.sent[0].Subject)
		assert.Contains(t, sender.sent[0].Html, `lang="fr"`)
	})

	t.Run("provider error is returned", func(t *testing.T) {
		svc := newTestService(t, &fakeSender{err: errors.New("rate limited")})
		err := svc.SendCommentEmail(context.Background(), CommentEmail{To: "a@example.com"})
		assert.EqualError(t, err, "rate limited")
	})
}
