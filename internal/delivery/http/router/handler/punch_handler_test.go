package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"timeclock/internal/delivery/http/validator"
	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPunchUsecase lets each test script the workflow outcome.
type stubPunchUsecase struct {
	punchOutput  *usecase.PunchOutput
	punchErr     error
	statusOutput *usecase.DayStatusOutput
	statusErr    error

	gotInput *usecase.PunchInput
}

func (s *stubPunchUsecase) Punch(ctx context.Context, employeeID uuid.UUID, input *usecase.PunchInput) (*usecase.PunchOutput, error) {
	s.gotInput = input

	return s.punchOutput, s.punchErr
}

func (s *stubPunchUsecase) DayStatus(ctx context.Context, employeeID uuid.UUID) (*usecase.DayStatusOutput, error) {
	return s.statusOutput, s.statusErr
}

func newPunchTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/employee/punch", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("employeeID", uuid.New())

	return c, rec
}

func newPunchHandler(uc usecase.PunchUsecase) *PunchHandler {
	return NewPunchHandler(PunchHandlerParams{
		PunchUC: uc,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestPunchHandler_Punch_Success(t *testing.T) {
	stub := &stubPunchUsecase{
		punchOutput: &usecase.PunchOutput{
			Kind: entity.PunchClockIn,
			Location: &entity.AllowedLocation{
				Name: "總公司",
			},
			DistanceMeters:       12,
			AdaptiveRadiusMeters: 100,
		},
	}

	c, rec := newPunchTestContext(t, `{"reported":{"latitude":25.0330,"longitude":121.5654,"accuracy_meters":8}}`)

	err := newPunchHandler(stub).Punch(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Kind string `json:"kind"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "clock_in", envelope.Data.Kind)

	require.NotNil(t, stub.gotInput)
	require.NotNil(t, stub.gotInput.Reported)
	assert.InDelta(t, 25.0330, stub.gotInput.Reported.Latitude, 1e-9)
}

func TestPunchHandler_Punch_CooldownMapsToTooManyRequests(t *testing.T) {
	stub := &stubPunchUsecase{punchErr: domainerrors.NewCooldownError(120)}

	c, rec := newPunchTestContext(t, `{}`)

	err := newPunchHandler(stub).Punch(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Details string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "COOLDOWN_ACTIVE", envelope.Error.Code)
	assert.Equal(t, "retry in 120s", envelope.Error.Details)
}

func TestPunchHandler_Punch_GeofenceRejectionMapsToForbidden(t *testing.T) {
	stub := &stubPunchUsecase{punchErr: domainerrors.NewGeofenceRejection("總公司", 420, 100)}

	c, rec := newPunchTestContext(t, `{}`)

	err := newPunchHandler(stub).Punch(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "LOCATION_NOT_AUTHORIZED", envelope.Error.Code)
}

func TestPunchHandler_Punch_MissingEmployeeID(t *testing.T) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/employee/punch", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := newPunchHandler(&stubPunchUsecase{}).Punch(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPunchHandler_DayStatus(t *testing.T) {
	stub := &stubPunchUsecase{
		statusOutput: &usecase.DayStatusOutput{
			NextKind: entity.PunchLunchStart,
			Complete: false,
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/employee/punch/today", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("employeeID", uuid.New())

	err := newPunchHandler(stub).DayStatus(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			NextKind string `json:"next_kind"`
			Complete bool   `json:"complete"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "lunch_start", envelope.Data.NextKind)
	assert.False(t, envelope.Data.Complete)
}
