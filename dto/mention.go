package dto

import "time"

const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
)

// Mention is the unified record of one detected mention. It is built once by
// the extractor, optionally enriched by the fetcher, then handed to the
// notifier; nothing mutates it after that.
type Mention struct {
	Platform          string
	PageId            string
	PostId            string
	PostUrl           string
	PostContent       string
	CommentId         string
	CommentText       string
	TaggerId          string
	TaggerName        string
	MentionedUsername string
	Timestamp         time.Time
}
