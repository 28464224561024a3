package logic

import (
	"html"
	"mention_herald/dto"
	"mention_herald/shared"
	"mention_herald/texts"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_notifier.go -package mocks mention_herald/logic INotifier

// INotifier turns a mention record into a human-readable email and hands it
// to the mailer. Delivery failures are logged and swallowed; by the time a
// mention reaches the notifier the webhook has long been acknowledged.
type INotifier interface {
	NotifyMention(m *dto.Mention)
}

const mailTimeFormat = time.RFC1123

type notifier struct {
	cfg       *shared.Config
	logger    shared.ILogger
	txt       texts.ITexts
	mailer    IMailer
	metrics   IMetrics
	sanitizer *bluemonday.Policy
}

func NewNotifier(
	cfg *shared.Config,
	logger shared.ILogger,
	txt texts.ITexts,
	mailer IMailer,
	metrics IMetrics,
) INotifier {
	return &notifier{cfg, logger, txt, mailer, metrics, bluemonday.StrictPolicy()}
}

func (n *notifier) NotifyMention(m *dto.Mention) {

	account := m.MentionedUsername
	if account == "" {
		account = m.PageId
	}

	subject := n.txt.WithVals("mail_subject.txt", map[string]string{
		"platform": m.Platform,
		"account":  account,
	})

	tagger := m.TaggerName
	if tagger == "" {
		tagger = m.TaggerId
	}

	body := n.txt.WithVals("mail_body.html", map[string]string{
		"platform": m.Platform,
		"account":  account,
		"tagger":   tagger,
		"time":     m.Timestamp.Format(mailTimeFormat),
		"comment":  n.excerpt(m.CommentText),
		"post":     n.excerpt(m.PostContent),
		"url":      m.PostUrl,
	})

	if err := n.mailer.Send(subject, body); err != nil {
		n.logger.Errorf("Failed to send notification for comment %s: %v", m.CommentId, err)
		n.metrics.EmailFailed()
		return
	}

	n.logger.Infof("Sent notification for %s mention of '%s' in comment %s", m.Platform, account, m.CommentId)
	n.metrics.EmailSent()
}

// excerpt strips any markup from user-supplied text and bounds its length.
// The sanitizer entity-escapes what it keeps; we undo that here because the
// template layer escapes values once more when it interpolates them.
func (n *notifier) excerpt(text string) string {
	plain := html.UnescapeString(n.sanitizer.Sanitize(text))
	return shared.TruncateWithEllipsis(plain, shared.MaxExcerptLen)
}
