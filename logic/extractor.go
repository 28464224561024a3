package logic

import (
	"mention_herald/dto"
	"mention_herald/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_extractor.go -package mocks mention_herald/logic IExtractor

const (
	fbFieldFeed     = "feed"
	fbItemComment   = "comment"
	igFieldComments = "comments"
)

// IExtractor decides whether a webhook change is a comment that mentions one
// of the monitored accounts, and if so, builds the unified mention record.
type IExtractor interface {
	ExtractFromChange(object string, entry *dto.Entry, change *dto.Change) *dto.Mention
}

type extractor struct {
	cfg      *shared.Config
	logger   shared.ILogger
	registry IRegistry
	metrics  IMetrics
}

func NewExtractor(
	cfg *shared.Config,
	logger shared.ILogger,
	registry IRegistry,
	metrics IMetrics,
) IExtractor {
	return &extractor{cfg, logger, registry, metrics}
}

func (ex *extractor) ExtractFromChange(object string, entry *dto.Entry, change *dto.Change) *dto.Mention {
	switch object {
	case "page":
		return ex.extractFacebook(entry, change)
	case "instagram":
		return ex.extractInstagram(entry, change)
	}
	return nil
}

func (ex *extractor) extractFacebook(entry *dto.Entry, change *dto.Change) *dto.Mention {

	if change.Field != fbFieldFeed || change.Value.Item != fbItemComment {
		ex.logger.Debugf("Ignoring Facebook change: field '%s', item '%s'", change.Field, change.Value.Item)
		return nil
	}

	text := change.Value.Message
	res := &dto.Mention{
		Platform:    dto.PlatformFacebook,
		PageId:      entry.Id,
		PostId:      change.Value.PostId,
		CommentId:   change.Value.CommentId,
		CommentText: text,
		TaggerId:    change.Value.From.Id,
		TaggerName:  change.Value.From.Name,
		Timestamp:   changeTime(entry, change),
	}

	if username, found := ex.registry.MatchUsername(text); found {
		res.MentionedUsername = username
		ex.logger.Infof("Facebook comment %s mentions username '%s'", res.CommentId, username)
		ex.metrics.MentionDetected(dto.PlatformFacebook)
		return res
	}

	// A page reference counts as a mention even when the page has no linked
	// Instagram username; the record then carries the page id only.
	if page, found := ex.registry.MatchPage(text); found {
		res.PageId = page.Id
		res.MentionedUsername = page.InstagramUsername
		ex.logger.Infof("Facebook comment %s mentions page '%s'", res.CommentId, page.Name)
		ex.metrics.MentionDetected(dto.PlatformFacebook)
		return res
	}

	ex.logger.Debugf("No monitored account mentioned in Facebook comment %s", res.CommentId)
	return nil
}

func (ex *extractor) extractInstagram(entry *dto.Entry, change *dto.Change) *dto.Mention {

	if change.Field != igFieldComments {
		ex.logger.Debugf("Ignoring Instagram change: field '%s'", change.Field)
		return nil
	}

	text := change.Value.Text
	username, found := ex.registry.MatchUsername(text)
	if !found {
		ex.logger.Debugf("No monitored account mentioned in Instagram comment %s", change.Value.Id)
		return nil
	}

	res := &dto.Mention{
		Platform:          dto.PlatformInstagram,
		PageId:            entry.Id,
		CommentId:         change.Value.Id,
		CommentText:       text,
		TaggerId:          change.Value.From.Id,
		TaggerName:        change.Value.From.Username,
		MentionedUsername: username,
		Timestamp:         changeTime(entry, change),
	}
	if change.Value.Media != nil {
		res.PostId = change.Value.Media.Id
	}

	ex.logger.Infof("Instagram comment %s mentions username '%s'", res.CommentId, username)
	ex.metrics.MentionDetected(dto.PlatformInstagram)
	return res
}

func changeTime(entry *dto.Entry, change *dto.Change) time.Time {
	if change.Value.CreatedTime != 0 {
		return time.Unix(change.Value.CreatedTime, 0).UTC()
	}
	if entry.Time != 0 {
		return time.Unix(entry.Time, 0).UTC()
	}
	return time.Now().UTC()
}
