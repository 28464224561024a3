package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"mention_herald/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks mention_herald/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartWebhookRequestIn(label string) IRequestObserver
	StartGraphRequestOut(label string) IRequestObserver
	MentionDetected(platform string)
	EmailSent()
	EmailFailed()
	GraphRequestFailed()
	ServiceStarted()
	ConfiguredPages(count int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                *shared.Config
	webhookRequestsIn  *prometheus.HistogramVec
	graphRequestsOut   *prometheus.HistogramVec
	mentionsDetected   *prometheus.CounterVec
	emailsSent         prometheus.Counter
	emailsFailed       prometheus.Counter
	graphRequestErrors prometheus.Counter
	serviceStarted     prometheus.Counter
	configuredPages    prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webhookRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "webhook_requests_in_duration",
		Help: "Duration in seconds of webhook requests served.",
	}, []string{"label"})
	prometheus.Register(res.webhookRequestsIn)

	res.graphRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "graph_requests_out_duration",
		Help: "Duration in seconds of Graph API requests made.",
	}, []string{"label"})
	prometheus.Register(res.graphRequestsOut)

	res.mentionsDetected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mentions_detected",
		Help: "Number of mentions detected",
	}, []string{"platform"})
	prometheus.Register(res.mentionsDetected)

	res.emailsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "emails_sent",
		Help: "Number of notification emails sent",
	})
	prometheus.Register(res.emailsSent)

	res.emailsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "emails_failed",
		Help: "Number of notification emails that failed to send",
	})
	prometheus.Register(res.emailsFailed)

	res.graphRequestErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "graph_request_errors",
		Help: "Number of failed Graph API requests",
	})
	prometheus.Register(res.graphRequestErrors)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.configuredPages = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "configured_page_count",
		Help: "Number of pages configured for mention monitoring",
	})
	prometheus.Register(res.configuredPages)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebhookRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webhookRequestsIn}
}

func (m *metrics) StartGraphRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.graphRequestsOut}
}

func (m *metrics) MentionDetected(platform string) {
	m.mentionsDetected.WithLabelValues(platform).Add(1)
}

func (m *metrics) EmailSent() {
	m.emailsSent.Add(1)
}

func (m *metrics) EmailFailed() {
	m.emailsFailed.Add(1)
}

func (m *metrics) GraphRequestFailed() {
	m.graphRequestErrors.Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) ConfiguredPages(count int) {
	m.configuredPages.Set(float64(count))
}
