package logic_test

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"mention_herald/dto"
	"mention_herald/logic"
	"mention_herald/shared"
	"mention_herald/test/mocks"
	"testing"
	"time"
)

type extractorHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockRegistry *mocks.MockIRegistry
	mockMetrics  *mocks.MockIMetrics
	mockObs      *mocks.MockIRequestObserver
}

func setupExtractorTest(t *testing.T) (*gomock.Controller, *extractorHarness, logic.IExtractor) {

	ctrl := gomock.NewController(t)

	h := &extractorHarness{
		cfg:          &shared.Config{},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRegistry: mocks.NewMockIRegistry(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		mockObs:      mocks.NewMockIRequestObserver(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics, h.mockObs)

	ex := logic.NewExtractor(h.cfg, h.mockLogger, h.mockRegistry, h.mockMetrics)

	return ctrl, h, ex
}

func makeFacebookChange(message string) (*dto.Entry, *dto.Change) {
	entry := &dto.Entry{Id: "111", Time: 1700000500}
	change := &dto.Change{
		Field: "feed",
		Value: dto.ChangeValue{
			Item:        "comment",
			CommentId:   "111_999",
			PostId:      "111_888",
			Message:     message,
			CreatedTime: 1700000000,
			From:        dto.FromRef{Id: "42", Name: "Jamie Doe"},
		},
	}
	return entry, change
}

func makeInstagramChange(text string) (*dto.Entry, *dto.Change) {
	entry := &dto.Entry{Id: "17890", Time: 1700000500}
	change := &dto.Change{
		Field: "comments",
		Value: dto.ChangeValue{
			Id:    "17900",
			Text:  text,
			Media: &dto.Media{Id: "17950"},
			From:  dto.FromRef{Id: "42", Username: "jamie.doe"},
		},
	}
	return entry, change
}

func TestExtract_FacebookCommentMention(t *testing.T) {

	ctrl, h, ex := setupExtractorTest(t)
	defer ctrl.Finish()

	entry, change := makeFacebookChange("Great shot, @acme!")
	h.mockRegistry.EXPECT().MatchUsername("Great shot, @acme!").Return("acme", true)

	mention := ex.ExtractFromChange("page", entry, change)

	assert.NotNil(t, mention)
	assert.Equal(t, dto.PlatformFacebook, mention.Platform)
	assert.Equal(t, "acme", mention.MentionedUsername)
	assert.Equal(t, "Great shot, @acme!", mention.CommentText)
	assert.Equal(t, "111_888", mention.PostId)
	assert.Equal(t, "111_999", mention.CommentId)
	assert.Equal(t, "Jamie Doe", mention.TaggerName)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), mention.Timestamp)
}

func TestExtract_FacebookWrongFieldOrItem(t *testing.T) {

	ctrl, _, ex := setupExtractorTest(t)
	defer ctrl.Finish()

	// Wrong field: registry is never consulted
	entry, change := makeFacebookChange("hello @acme")
	change.Field = "mention"
	assert.Nil(t, ex.ExtractFromChange("page", entry, change))

	// Right field, wrong item
	entry, change = makeFacebookChange("hello @acme")
	change.Value.Item = "reaction"
	assert.Nil(t, ex.ExtractFromChange("page", entry, change))
}

func TestExtract_FacebookPageWithoutLinkedUsername(t *testing.T) {

	ctrl, h, ex := setupExtractorTest(t)
	defer ctrl.Finish()

	entry, change := makeFacebookChange("I love @Acme Outlet")
	page := &shared.Page{Id: "222", Name: "Acme Outlet"}
	h.mockRegistry.EXPECT().MatchUsername(gomock.Any()).Return("", false)
	h.mockRegistry.EXPECT().MatchPage("I love @Acme Outlet").Return(page, true)

	mention := ex.ExtractFromChange("page", entry, change)

	assert.NotNil(t, mention)
	assert.Equal(t, "222", mention.PageId)
	assert.Equal(t, "", mention.MentionedUsername)
}

func TestExtract_FacebookNoMatch(t *testing.T) {

	ctrl, h, ex := setupExtractorTest(t)
	defer ctrl.Finish()

	entry, change := makeFacebookChange("just a comment")
	h.mockRegistry.EXPECT().MatchUsername(gomock.Any()).Return("", false)
	h.mockRegistry.EXPECT().MatchPage(gomock.Any()).Return(nil, false)

	assert.Nil(t, ex.ExtractFromChange("page", entry, change))
}

func TestExtract_InstagramCommentMention(t *testing.T) {

	ctrl, h, ex := setupExtractorTest(t)
	defer ctrl.Finish()

	entry, change := makeInstagramChange("so cool @acme")
	h.mockRegistry.EXPECT().MatchUsername("so cool @acme").Return("acme", true)

	mention := ex.ExtractFromChange("instagram", entry, change)

	assert.NotNil(t, mention)
	assert.Equal(t, dto.PlatformInstagram, mention.Platform)
	assert.Equal(t, "acme", mention.MentionedUsername)
	assert.Equal(t, "17950", mention.PostId)
	assert.Equal(t, "17900", mention.CommentId)
	assert.Equal(t, "jamie.doe", mention.TaggerName)
	// No created_time on the change; entry time is used
	assert.Equal(t, time.Unix(1700000500, 0).UTC(), mention.Timestamp)
}

func TestExtract_InstagramWrongField(t *testing.T) {

	ctrl, _, ex := setupExtractorTest(t)
	defer ctrl.Finish()

	entry, change := makeInstagramChange("hello @acme")
	change.Field = "mentions"
	assert.Nil(t, ex.ExtractFromChange("instagram", entry, change))
}

func TestExtract_InstagramNoMatch(t *testing.T) {

	ctrl, h, ex := setupExtractorTest(t)
	defer ctrl.Finish()

	entry, change := makeInstagramChange("nothing to see")
	h.mockRegistry.EXPECT().MatchUsername(gomock.Any()).Return("", false)

	assert.Nil(t, ex.ExtractFromChange("instagram", entry, change))
}

func TestExtract_UnknownObject(t *testing.T) {

	ctrl, _, ex := setupExtractorTest(t)
	defer ctrl.Finish()

	entry, change := makeFacebookChange("hello @acme")
	assert.Nil(t, ex.ExtractFromChange("whatsapp", entry, change))
}
