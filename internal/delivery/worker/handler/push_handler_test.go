package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mart/config"
	deliverycontext "mart/internal/delivery/context"
	"mart/internal/domain/constants"
	"mart/internal/domain/service"
	"mart/internal/errors"
	mockUsecase "mart/internal/mocks/usecase"
	"mart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockOrderEventUsecase) {
	orderEventUC := mockUsecase.NewMockOrderEventUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

	return NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		OrderEventUC: orderEventUC,
	}), orderEventUC
}

func encodePush(t *testing.T, event *service.OrderPlacedEvent, attributes map[string]string) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = event.EventID
	msg.Subscription = "projects/local/subscriptions/order-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(handler *PushHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	_ = handler.HandlePush(c)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.OrderPlacedEvent{EventID: "evt-1", OrderID: 11, UserID: 3, TotalPrice: "3000", UnitCount: 2}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setupMock  func(uc *mockUsecase.MockOrderEventUsecase)
		wantStatus int
	}{
		{
			name: "processed",
			body: func(t *testing.T) string {
				return encodePush(t, event, map[string]string{"event_type": constants.EventTypeOrderPlaced})
			},
			setupMock: func(uc *mockUsecase.MockOrderEventUsecase) {
				uc.EXPECT().HandleOrderPlaced(mock.Anything, mock.MatchedBy(func(e *service.OrderPlacedEvent) bool {
					return e.EventID == "evt-1" && e.OrderID == 11 && e.TotalPrice == "3000"
				})).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "transient failure asks for redelivery",
			body: func(t *testing.T) string { return encodePush(t, event, nil) },
			setupMock: func(uc *mockUsecase.MockOrderEventUsecase) {
				uc.EXPECT().HandleOrderPlaced(mock.Anything, mock.Anything).Return(errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "stale event is acknowledged",
			body: func(t *testing.T) string { return encodePush(t, event, nil) },
			setupMock: func(uc *mockUsecase.MockOrderEventUsecase) {
				uc.EXPECT().HandleOrderPlaced(mock.Anything, mock.Anything).
					Return(errors.Wrap(usecase.ErrStaleOrderEvent, "order 11 not found"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "other event types are ignored",
			body: func(t *testing.T) string {
				return encodePush(t, event, map[string]string{"event_type": "order.cancelled"})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed envelope",
			body:       func(t *testing.T) string { return "{" },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       func(t *testing.T) string { return `{"message":{"data":"%%%"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data is not an order event",
			body: func(t *testing.T) string {
				return `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[]")) + `"}}`
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, orderEventUC := newTestPushHandler(t)
			if tt.setupMock != nil {
				tt.setupMock(orderEventUC)
			}

			rec := servePush(handler, tt.body(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RejectsUnverifiedPush(t *testing.T) {
	handler, _ := newTestPushHandler(t)
	handler.verify = func(*http.Request) error { return errors.New("missing bearer token") }

	rec := servePush(handler, encodePush(t, &service.OrderPlacedEvent{EventID: "evt-2"}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_VerificationByEnvironment(t *testing.T) {
	tests := []struct {
		name       string
		provider   string
		env        string
		wantVerify bool
	}{
		{name: "google in production", provider: constants.PubSubProviderGoogle, env: "production", wantVerify: true},
		{name: "google locally", provider: constants.PubSubProviderGoogle, env: constants.EnvLocal},
		{name: "local provider", provider: constants.PubSubProviderLocal, env: "production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			handler := NewPushHandler(PushHandlerParams{
				Config:       cfg,
				Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
				OrderEventUC: mockUsecase.NewMockOrderEventUsecase(t),
			})

			assert.Equal(t, tt.wantVerify, handler.verify != nil)
		})
	}
}

func TestExtractRequestID(t *testing.T) {
	withAttribute := &PubSubMessage{}
	withAttribute.Message.Attributes = map[string]string{"request_id": "from-attribute"}

	tests := []struct {
		name    string
		ctx     context.Context
		msg     *PubSubMessage
		event   *service.OrderPlacedEvent
		want    string
		wantAny bool
	}{
		{name: "attribute wins", ctx: context.Background(), msg: withAttribute, event: &service.OrderPlacedEvent{RequestID: "from-event"}, want: "from-attribute"},
		{name: "event payload", ctx: context.Background(), msg: &PubSubMessage{}, event: &service.OrderPlacedEvent{RequestID: "from-event"}, want: "from-event"},
		{name: "incoming request", ctx: deliverycontext.WithRequestID(context.Background(), "from-header"), msg: &PubSubMessage{}, event: &service.OrderPlacedEvent{}, want: "from-header"},
		{name: "generated", ctx: context.Background(), msg: &PubSubMessage{}, event: &service.OrderPlacedEvent{}, wantAny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractRequestID(tt.ctx, tt.msg, tt.event)
			if tt.wantAny {
				assert.NotEmpty(t, got)

				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyPubSubToken_MissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", nil)
	req.Header.Set("Authorization", "Basic abc")

	assert.Error(t, verifyPubSubToken(req))
}
