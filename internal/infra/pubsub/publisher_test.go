package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"mart/config"
	"mart/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.OrderPlacedEvent {
	return &service.OrderPlacedEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		OrderID:    7,
		UserID:     3,
		TotalPrice: "15000",
		UnitCount:  2,
		PlacedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOrderPlacedEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishOrderPlacedEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_type": "order.placed",
		"event_id":   "evt-1",
		"order_id":   "7",
		"user_id":    "3",
		"request_id": "req-1",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishOrderPlacedEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: testLogger()}

	assert.NoError(t, publisher.PublishOrderPlacedEvent(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantType any
		wantErr  string
	}{
		{name: "not configured", pubsub: nil, wantType: &noopPublisher{}},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, wantType: &noopPublisher{}},
		{
			name:     "local",
			pubsub:   &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"},
			wantType: &localHTTPPublisher{},
		},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "orders"}, wantErr: "project ID is required"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "mart"}, wantErr: "topic ID is required"},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: testLogger(),
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestLocalEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		want    string
		wantErr bool
	}{
		{
			name: "configured endpoint wins",
			cfg: &config.Config{
				PubSub: &config.PubSubConfig{LocalEndpoint: "http://worker:9000/pubsub/push"},
				Worker: &config.WorkerConfig{Port: 8081},
			},
			want: "http://worker:9000/pubsub/push",
		},
		{
			name: "derived from worker port",
			cfg:  &config.Config{PubSub: &config.PubSubConfig{}, Worker: &config.WorkerConfig{Port: 9191}},
			want: "http://localhost:9191/pubsub/push",
		},
		{
			name:    "nothing to push to",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := localEndpoint(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
