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

	"timeclock/config"
	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"
	mockrepository "timeclock/internal/mocks/repository"
	mockservice "timeclock/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerMocks struct {
	notificationSvc *mockservice.MockNotificationService
	deviceRepo      *mockrepository.MockDeviceRepository
}

func newTestPushHandler(t *testing.T) (*PushHandler, *pushHandlerMocks) {
	t.Helper()

	mocks := &pushHandlerMocks{
		notificationSvc: mockservice.NewMockNotificationService(t),
		deviceRepo:      mockrepository.NewMockDeviceRepository(t),
	}

	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.PubSub = &config.PubSubConfig{Provider: "local"}

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: mocks.notificationSvc,
		DeviceRepo:      mocks.deviceRepo,
	})

	return h, mocks
}

func newPushRequest(t *testing.T, event *service.PunchEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/local/subscriptions/punch-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func clockOutEvent(employeeID uuid.UUID) *service.PunchEvent {
	return &service.PunchEvent{
		EmployeeID:    employeeID.String(),
		Date:          "2025-03-14",
		Kind:          "clock_out",
		Time:          "18:32",
		LocationName:  "總公司",
		TotalHours:    9.5,
		OvertimeHours: 1.5,
	}
}

func TestPushHandler_SendsReceiptToActiveDevices(t *testing.T) {
	h, mocks := newTestPushHandler(t)

	employeeID := uuid.New()
	devices := []*entity.EmployeeDevice{
		{ID: uuid.New(), EmployeeID: employeeID, FCMToken: "token-a"},
		{ID: uuid.New(), EmployeeID: employeeID, FCMToken: "token-b"},
	}

	mocks.deviceRepo.EXPECT().
		FindActiveDevicesByEmployee(mock.Anything, employeeID).
		Return(devices, nil)

	var gotTitle, gotBody string
	mocks.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-a", "token-b"}, mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, tokens []string, title, body string, data map[string]string) {
			gotTitle = title
			gotBody = body
		}).
		Return(2, 0, nil, nil)

	c, rec := newPushRequest(t, clockOutEvent(employeeID))

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "打卡成功通知", gotTitle)
	assert.Contains(t, gotBody, "下班打卡 18:32")
	assert.Contains(t, gotBody, "總公司")
	assert.Contains(t, gotBody, "9h30m")
	assert.Contains(t, gotBody, "1h30m")
}

func TestPushHandler_DeactivatesInvalidTokens(t *testing.T) {
	h, mocks := newTestPushHandler(t)

	employeeID := uuid.New()
	staleDevice := &entity.EmployeeDevice{ID: uuid.New(), EmployeeID: employeeID, FCMToken: "stale-token"}

	mocks.deviceRepo.EXPECT().
		FindActiveDevicesByEmployee(mock.Anything, employeeID).
		Return([]*entity.EmployeeDevice{staleDevice}, nil)
	mocks.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"stale-token"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, []string{"stale-token"}, nil)
	mocks.deviceRepo.EXPECT().
		DeactivateDevice(mock.Anything, staleDevice.ID).
		Return(nil)

	event := clockOutEvent(employeeID)
	event.Kind = "clock_in"
	c, rec := newPushRequest(t, event)

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_NoDevicesIsNotAnError(t *testing.T) {
	h, mocks := newTestPushHandler(t)

	employeeID := uuid.New()
	mocks.deviceRepo.EXPECT().
		FindActiveDevicesByEmployee(mock.Anything, employeeID).
		Return(nil, nil)

	c, rec := newPushRequest(t, clockOutEvent(employeeID))

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RepositoryFailureTriggersRetry(t *testing.T) {
	h, mocks := newTestPushHandler(t)

	employeeID := uuid.New()
	mocks.deviceRepo.EXPECT().
		FindActiveDevicesByEmployee(mock.Anything, employeeID).
		Return(nil, errors.New("connection refused"))

	c, rec := newPushRequest(t, clockOutEvent(employeeID))

	err := h.HandlePush(c)
	require.NoError(t, err)
	// 503 asks Pub/Sub to redeliver the message.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedEventIsDropped(t *testing.T) {
	h, _ := newTestPushHandler(t)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte("not-json"))
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err = h.HandlePush(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_InvalidEmployeeIDIsNotRetried(t *testing.T) {
	h, _ := newTestPushHandler(t)

	event := clockOutEvent(uuid.New())
	event.EmployeeID = "not-a-uuid"
	c, rec := newPushRequest(t, event)

	err := h.HandlePush(c)
	require.NoError(t, err)
	// Parse failures are permanent, so the message must not redeliver.
	assert.Equal(t, http.StatusOK, rec.Code)
}
