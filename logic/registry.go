package logic

import (
	"mention_herald/shared"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_registry.go -package mocks mention_herald/logic IRegistry

// IRegistry is the read-only account registry built from configuration at
// startup. It answers token lookups for enrichment calls and username/page
// matching for mention detection.
type IRegistry interface {
	TokenForPage(pageId string) (token string, ok bool)
	MatchUsername(text string) (username string, ok bool)
	MatchPage(text string) (page *shared.Page, ok bool)
}

type registry struct {
	pages     []shared.Page
	pagesById map[string]*shared.Page
	usernames []string
}

func NewRegistry(cfg *shared.Config) IRegistry {
	res := &registry{
		pages:     cfg.Pages,
		pagesById: make(map[string]*shared.Page),
		usernames: cfg.WatchedUsernames,
	}
	for i := range res.pages {
		res.pagesById[res.pages[i].Id] = &res.pages[i]
	}
	return res
}

// TokenForPage returns the configured access token for the page, falling back
// to the first configured page's token when the id is unknown. The second
// return value is false only when no pages are configured at all.
func (reg *registry) TokenForPage(pageId string) (string, bool) {
	if page, found := reg.pagesById[pageId]; found {
		return page.AccessToken, true
	}
	if len(reg.pages) == 0 {
		return "", false
	}
	return reg.pages[0].AccessToken, true
}

// MatchUsername finds the first configured username whose @-handle occurs in
// the text. Configuration order decides ties; the match is case-sensitive.
func (reg *registry) MatchUsername(text string) (string, bool) {
	for _, name := range reg.usernames {
		if strings.Contains(text, "@"+name) {
			return name, true
		}
	}
	return "", false
}

// MatchPage finds the first configured page referenced in the text, either as
// @[pageId] or as @PageName. Used on the Facebook path only.
func (reg *registry) MatchPage(text string) (*shared.Page, bool) {
	for i := range reg.pages {
		page := &reg.pages[i]
		if strings.Contains(text, "@["+page.Id+"]") || strings.Contains(text, "@"+page.Name) {
			return page, true
		}
	}
	return nil, false
}
