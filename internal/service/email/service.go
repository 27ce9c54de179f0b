package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"

	"blogsphere/internal/config"
	"blogsphere/internal/pkg/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

type Service interface {
	SendCommentEmail(ctx context.Context, msg CommentEmail) error
}

// CommentEmail tells a user that someone commented on their post or
// replied to their comment.
type CommentEmail struct {
	To            string
	Locale        string
	RecipientName string
	ActorName     string
	BlogTitle     string
	BlogSlug      string
	Comment       string
	Reply         bool
}

type sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type service struct {
	emails        sender
	config        *config.Config
	defaultLocale string
	tmpl          *template.Template
}

func NewService(cfg *config.Config) (Service, error) {
	client := resend.NewClient(cfg.ResendAPIKey)
	return newService(client.Emails, cfg)
}

func newService(emails sender, cfg *config.Config) (*service, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/comment.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return &service{
		emails:        emails,
		config:        cfg,
		defaultLocale: cfg.DefaultLocale,
		tmpl:          tmpl,
	}, nil
}

func (s *service) SendCommentEmail(ctx context.Context, msg CommentEmail) error {
	locale := msg.Locale
	if locale == "" || !i18n.HasLocale(locale) {
		locale = s.defaultLocale
	}

	params := map[string]string{
		"actor": msg.ActorName,
		"blog":  msg.BlogTitle,
		"name":  msg.RecipientName,
	}
	subjectKey, introKey := "COMMENT_SUBJECT", "COMMENT_BODY"
	if msg.Reply {
		subjectKey, introKey = "REPLY_SUBJECT", "REPLY_BODY"
	}

	data := struct {
		Locale   string
		Subject  string
		Greeting string
		Intro    string
		Comment  string
		Action   string
		Link     string
		Footer   string
	}{
		Locale:   locale,
		Subject:  i18n.Format(locale, subjectKey, params),
		Greeting: i18n.Format(locale, "GREETING", params),
		Intro:    i18n.Format(locale, introKey, params),
		Comment:  msg.Comment,
		Action:   i18n.Translate(locale, "VIEW_POST"),
		Link:     fmt.Sprintf("https://%s/blog/%s", s.config.Domain, msg.BlogSlug),
		Footer:   i18n.Translate(locale, "FOOTER"),
	}

	var body bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	_, err := s.emails.Send(&resend.SendEmailRequest{
		From:    fmt.Sprintf("Blogsphere <%s>", s.config.FromEmail),
		To:      []string{msg.To},
		Html:    body.String(),
		Subject: data.Subject,
	})
	return err
}
