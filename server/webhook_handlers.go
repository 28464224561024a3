package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mention_herald/dto"
	"mention_herald/logic"
	"mention_herald/shared"
	"net/http"
	"strings"
)

const (
	hubModeParam      = "hub.mode"
	hubTokenParam     = "hub.verify_token"
	hubChallengeParam = "hub.challenge"
	signatureHeader   = "X-Hub-Signature-256"
	eventReceivedStr  = "EVENT_RECEIVED"
)

// Groups together the handlers of the webhook callback endpoint.
type webhookHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   logic.IMetrics
	processor logic.IProcessor
}

func NewWebhookHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	processor logic.IProcessor,
) IHandlerGroup {
	res := webhookHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		processor: processor,
	}
	return &res
}

func (hg *webhookHandlerGroup) Prefix() string {
	return ""
}

func (hg *webhookHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/webhook", func(w http.ResponseWriter, r *http.Request) { hg.getWebhook(w, r) }},
		{"POST", "/webhook", func(w http.ResponseWriter, r *http.Request) { hg.postWebhook(w, r) }},
		{"GET", "/healthz", func(w http.ResponseWriter, r *http.Request) { hg.getHealthz(w, r) }},
	}
}

func (hg *webhookHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

// getWebhook serves the subscription handshake. Missing parameters are a bad
// request; parameters present but wrong are forbidden.
func (hg *webhookHandlerGroup) getWebhook(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling webhook handshake GET: %s", r.URL.Path)
	obs := hg.metrics.StartWebhookRequestIn("handshake")
	defer obs.Finish()

	mode := r.URL.Query().Get(hubModeParam)
	token := r.URL.Query().Get(hubTokenParam)
	challenge := r.URL.Query().Get(hubChallengeParam)

	if mode == "" || token == "" || challenge == "" {
		hg.logger.Infof("Handshake with missing parameters: mode '%s', challenge present: %v", mode, challenge != "")
		writeErrorResponse(w, "Missing 'hub.mode', 'hub.verify_token' or 'hub.challenge' param", http.StatusBadRequest)
		return
	}

	if mode != "subscribe" || token != hg.cfg.Secrets.VerifyToken {
		hg.logger.Warnf("Handshake verification failed: mode '%s'", mode)
		writeErrorResponse(w, "Verification failed", http.StatusForbidden)
		return
	}

	hg.logger.Infof("Handshake verified; echoing challenge")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, challenge)
}

// postWebhook acknowledges the event before any processing happens, so the
// platform's retry logic never sees our internal failures.
func (hg *webhookHandlerGroup) postWebhook(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling webhook event POST: %s", r.URL.Path)
	obs := hg.metrics.StartWebhookRequestIn("event")
	defer obs.Finish()

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}

	if hg.cfg.Secrets.AppSecret != "" {
		if !hg.checkSignature(body, r.Header.Get(signatureHeader)) {
			hg.logger.Warnf("Webhook event with missing or invalid %s header", signatureHeader)
			writeErrorResponse(w, badAuthorization, http.StatusUnauthorized)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, eventReceivedStr)

	var env dto.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		hg.logger.Warnf("Invalid JSON in webhook event body: %v", err)
		return
	}

	go hg.processor.ProcessEnvelope(&env)
}

func (hg *webhookHandlerGroup) checkSignature(body []byte, sigHeader string) bool {
	expected, found := strings.CutPrefix(sigHeader, "sha256=")
	if !found {
		return false
	}
	mac := hmac.New(sha256.New, []byte(hg.cfg.Secrets.AppSecret))
	mac.Write(body)
	computed := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(computed), []byte(expected))
}

func (hg *webhookHandlerGroup) getHealthz(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(hg.logger, w, map[string]bool{"ok": true})
}
