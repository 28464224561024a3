package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"mention_herald/dto"
	"mention_herald/shared"
	"mention_herald/test/mocks"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const testVerifyToken = "hunter2"
const testAppSecret = "app-secret"

const fbCommentEvent = `{
	"object": "page",
	"entry": [{
		"id": "111",
		"time": 1700000500,
		"changes": [{
			"field": "feed",
			"value": {
				"item": "comment",
				"comment_id": "111_999",
				"post_id": "111_888",
				"message": "Great shot, @acme!",
				"from": {"id": "42", "name": "Jamie Doe"}
			}
		}]
	}]
}`

type webhookHarness struct {
	cfg           *shared.Config
	mockLogger    *mocks.MockILogger
	mockMetrics   *mocks.MockIMetrics
	mockObs       *mocks.MockIRequestObserver
	mockProcessor *mocks.MockIProcessor
	server        *httptest.Server
}

func setupWebhookTest(t *testing.T, appSecret string) (*gomock.Controller, *webhookHarness) {

	ctrl := gomock.NewController(t)

	h := &webhookHarness{
		cfg: &shared.Config{
			Secrets: shared.Secrets{
				VerifyToken: testVerifyToken,
				AppSecret:   appSecret,
			},
		},
		mockLogger:    mocks.NewMockILogger(ctrl),
		mockMetrics:   mocks.NewMockIMetrics(ctrl),
		mockObs:       mocks.NewMockIRequestObserver(ctrl),
		mockProcessor: mocks.NewMockIProcessor(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics, h.mockObs)

	group := NewWebhookHandlerGroup(h.cfg, h.mockLogger, h.mockMetrics, h.mockProcessor)
	router := NewMux([]IHandlerGroup{group})
	h.server = httptest.NewServer(trimSlashHandler(router))
	t.Cleanup(h.server.Close)

	return ctrl, h
}

func signBody(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestHandshake_Verified(t *testing.T) {

	ctrl, h := setupWebhookTest(t, "")
	defer ctrl.Finish()

	resp, err := http.Get(h.server.URL +
		"/webhook?hub.mode=subscribe&hub.verify_token=" + testVerifyToken + "&hub.challenge=424242")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := make([]byte, 16)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "424242", string(body[:n]))
}

func TestHandshake_WrongToken(t *testing.T) {

	ctrl, h := setupWebhookTest(t, "")
	defer ctrl.Finish()

	resp, err := http.Get(h.server.URL +
		"/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=424242")
	assert.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandshake_WrongMode(t *testing.T) {

	ctrl, h := setupWebhookTest(t, "")
	defer ctrl.Finish()

	resp, err := http.Get(h.server.URL +
		"/webhook?hub.mode=unsubscribe&hub.verify_token=" + testVerifyToken + "&hub.challenge=424242")
	assert.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandshake_MissingParams(t *testing.T) {

	ctrl, h := setupWebhookTest(t, "")
	defer ctrl.Finish()

	for _, query := range []string{
		"",
		"hub.mode=subscribe",
		"hub.mode=subscribe&hub.verify_token=" + testVerifyToken,
		"hub.verify_token=" + testVerifyToken + "&hub.challenge=424242",
	} {
		resp, err := http.Get(h.server.URL + "/webhook?" + query)
		assert.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "query: %s", query)
	}
}

func TestEvent_AcknowledgedAndDispatched(t *testing.T) {

	ctrl, h := setupWebhookTest(t, "")
	defer ctrl.Finish()

	processed := make(chan *dto.Envelope, 1)
	h.mockProcessor.EXPECT().ProcessEnvelope(gomock.Any()).
		Do(func(env *dto.Envelope) { processed <- env })

	resp, err := http.Post(h.server.URL+"/webhook", "application/json", strings.NewReader(fbCommentEvent))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := make([]byte, 32)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "EVENT_RECEIVED", string(body[:n]))

	select {
	case env := <-processed:
		assert.Equal(t, "page", env.Object)
		assert.Len(t, env.Entry, 1)
		assert.Equal(t, "Great shot, @acme!", env.Entry[0].Changes[0].Value.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("envelope was never dispatched for processing")
	}
}

func TestEvent_InvalidJsonStillAcknowledged(t *testing.T) {

	ctrl, h := setupWebhookTest(t, "")
	defer ctrl.Finish()

	// No processor expectation: dispatch must not happen
	resp, err := http.Post(h.server.URL+"/webhook", "application/json", strings.NewReader("{not json"))
	assert.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEvent_ValidSignatureAccepted(t *testing.T) {

	ctrl, h := setupWebhookTest(t, testAppSecret)
	defer ctrl.Finish()

	processed := make(chan struct{}, 1)
	h.mockProcessor.EXPECT().ProcessEnvelope(gomock.Any()).
		Do(func(env *dto.Envelope) { processed <- struct{}{} })

	req, _ := http.NewRequest("POST", h.server.URL+"/webhook", strings.NewReader(fbCommentEvent))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signatureHeader, signBody(testAppSecret, fbCommentEvent))
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case <-processed:
	case <-time.After(2 * time.Second):
		t.Fatal("envelope was never dispatched for processing")
	}
}

func TestEvent_BadSignatureRejected(t *testing.T) {

	ctrl, h := setupWebhookTest(t, testAppSecret)
	defer ctrl.Finish()

	// No processor expectation: dispatch must not happen
	for _, sig := range []string{"", "sha256=deadbeef", signBody("other-secret", fbCommentEvent)} {
		req, _ := http.NewRequest("POST", h.server.URL+"/webhook", strings.NewReader(fbCommentEvent))
		req.Header.Set("Content-Type", "application/json")
		if sig != "" {
			req.Header.Set(signatureHeader, sig)
		}
		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {

	ctrl, h := setupWebhookTest(t, "")
	defer ctrl.Finish()

	resp, err := http.Get(h.server.URL + "/healthz")
	assert.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
