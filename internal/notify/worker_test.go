package notify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/sos_intake_service/internal/config"
	"github.com/shenikar/sos_intake_service/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []Event
	err  error
}

func (f *fakeMailer) SendConfirmation(_ context.Context, event Event) error {
	f.sent = append(f.sent, event)
	return f.err
}

func newTestWorker(cfg *config.Config, mailer Mailer) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	if cfg.WebhookTimeout == 0 {
		cfg.WebhookTimeout = time.Second
	}
	return NewWorker(nil, mailer, logger, cfg)
}

func TestDeliverWebhook_RetriesThenSucceeds(t *testing.T) {
	var attempts int32
	var gotSignature, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&attempts, 1)
		if n == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}, nil)

	payload := `{"kind":"emergency","case_id":"PRS-SOS-2025-0001"}`
	err := w.deliverWebhook(context.Background(), w.logger.WithField("test", true), payload)

	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestDeliverWebhook_GivesUp(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}, nil)

	err := w.deliverWebhook(context.Background(), w.logger.WithField("test", true), `{}`)

	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestDeliverWebhook_NotConfigured(t *testing.T) {
	w := newTestWorker(&config.Config{WebhookMaxRetries: 1}, nil)

	err := w.deliverWebhook(context.Background(), w.logger.WithField("test", true), `{}`)

	assert.ErrorIs(t, err, errWebhookNotConfigured)
}

func TestDeliverWebhook_StopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Hour,
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := w.deliverWebhook(ctx, w.logger.WithField("test", true), `{}`)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestProcessEvent_ConfirmationUsesMailer(t *testing.T) {
	mailer := &fakeMailer{}
	w := newTestWorker(&config.Config{WebhookMaxRetries: 1}, mailer)
	event := Event{Kind: KindConfirmation, CaseID: "PRS-SOS-2025-0002", ContactEmail: "a@b.c", Severity: models.SeverityGreen}

	w.processEvent(context.Background(), event, "")

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "PRS-SOS-2025-0002", mailer.sent[0].CaseID)
}

func TestProcessEvent_EmergencyGoesToWebhook(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	mailer := &fakeMailer{}
	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookMaxRetries: 1}, mailer)

	w.processEvent(context.Background(), Event{Kind: KindEmergency, CaseID: "PRS-SOS-2025-0003"}, `{"kind":"emergency"}`)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Empty(t, mailer.sent)
}

func TestNewCaseEvent(t *testing.T) {
	lat, lon := 18.5, 73.8
	c := &models.Case{
		CaseID:       "PRS-SOS-2025-0004",
		Severity:     models.SeverityRed,
		SLA:          "Immediate — phone call + SMS to emergency contacts",
		Status:       models.StatusSubmitted,
		ContactEmail: "x@y.z",
		Latitude:     &lat,
		Longitude:    &lon,
		GeoCell:      "3bc0",
	}

	e := NewCaseEvent(KindEmergency, c)

	assert.Equal(t, KindEmergency, e.Kind)
	assert.Equal(t, c.CaseID, e.CaseID)
	assert.Equal(t, c.SLA, e.SLA)
	assert.Equal(t, &lat, e.Latitude)
	assert.False(t, e.Timestamp.IsZero())
}
