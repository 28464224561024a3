package logic

import (
	"mention_herald/dto"
	"mention_herald/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_processor.go -package mocks mention_herald/logic IProcessor

// IProcessor runs one acknowledged webhook envelope through extraction,
// enrichment and notification. Entries are handled sequentially; a failure in
// one never stops the others.
type IProcessor interface {
	ProcessEnvelope(env *dto.Envelope)
}

type processor struct {
	cfg       *shared.Config
	logger    shared.ILogger
	registry  IRegistry
	extractor IExtractor
	fetcher   IFetcher
	notifier  INotifier
}

func NewProcessor(
	cfg *shared.Config,
	logger shared.ILogger,
	registry IRegistry,
	extractor IExtractor,
	fetcher IFetcher,
	notifier INotifier,
) IProcessor {
	return &processor{cfg, logger, registry, extractor, fetcher, notifier}
}

func (p *processor) ProcessEnvelope(env *dto.Envelope) {

	if env.Object != "page" && env.Object != "instagram" {
		p.logger.Infof("Ignoring webhook envelope with unsupported object '%s'", env.Object)
		return
	}

	for i := range env.Entry {
		p.processEntry(env.Object, &env.Entry[i])
	}
}

func (p *processor) processEntry(object string, entry *dto.Entry) {

	for i := range entry.Changes {
		mention := p.extractor.ExtractFromChange(object, entry, &entry.Changes[i])
		if mention == nil {
			continue
		}
		p.enrich(mention)
		p.notifier.NotifyMention(mention)
	}
}

// enrich fills in post content and permalink from the Graph API. Lookup
// failures leave the fields blank; the notification still goes out with what
// the webhook itself delivered.
func (p *processor) enrich(mention *dto.Mention) {

	if mention.PostId == "" {
		return
	}

	token, ok := p.registry.TokenForPage(mention.PageId)
	if !ok {
		p.logger.Warnf("No pages configured; cannot enrich post %s", mention.PostId)
		return
	}

	details, err := p.fetcher.FetchPost(mention.Platform, mention.PostId, token)
	if err != nil {
		// Already logged by the fetcher
		return
	}

	mention.PostContent = details.Content()
	mention.PostUrl = details.Url()
}
