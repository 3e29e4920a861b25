package sensor

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"

	"github.com/pkg/errors"
)

// agentSensor implements PositionSensor by querying a punch-station GPS
// agent over HTTP. Stations without their own positioning hardware run a
// small agent process that owns the receiver and answers position
// requests on a local endpoint.
type agentSensor struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// agentRequest is the position request sent to the station agent.
type agentRequest struct {
	HighAccuracy   bool  `json:"high_accuracy"`
	TimeoutMs      int64 `json:"timeout_ms"`
	MaxCachedAgeMs int64 `json:"max_cached_age_ms"`
}

// agentResponse is the agent's answer to a position request.
type agentResponse struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	AccuracyMeters   float64 `json:"accuracy_meters"`
	CapturedAtEpochMs int64  `json:"captured_at_epoch_ms"`
}

// NewAgentSensor creates a sensor backed by a station GPS agent endpoint.
func NewAgentSensor(endpoint string, logger *slog.Logger) service.PositionSensor {
	return &agentSensor{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 35 * time.Second,
		},
		logger: logger,
	}
}

// CurrentPosition requests one fix from the agent. The per-request
// timeout comes from the options, not the shared client, so each attempt
// of the retry plan gets its own budget.
func (s *agentSensor) CurrentPosition(ctx context.Context, opts service.SensorOptions) (*entity.PositionFix, error) {
	body, err := json.Marshal(agentRequest{
		HighAccuracy:   opts.HighAccuracy,
		TimeoutMs:      opts.Timeout.Milliseconds(),
		MaxCachedAgeMs: opts.MaxCachedAge.Milliseconds(),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	reqCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return nil, service.ErrSensorTimeout
		}

		return nil, errors.Wrap(service.ErrPositionUnavailable, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusForbidden:
		return nil, service.ErrPermissionDenied
	case resp.StatusCode == http.StatusGatewayTimeout:
		return nil, service.ErrSensorTimeout
	default:
		s.logger.Warn("[AgentSensor] Unexpected agent status",
			slog.String("endpoint", s.endpoint),
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Wrapf(service.ErrPositionUnavailable, "agent returned status %d", resp.StatusCode)
	}

	var agentResp agentResponse
	if err := json.NewDecoder(resp.Body).Decode(&agentResp); err != nil {
		return nil, errors.Wrap(service.ErrPositionUnavailable, err.Error())
	}

	return &entity.PositionFix{
		Coordinate: entity.Coordinate{
			Latitude:  agentResp.Latitude,
			Longitude: agentResp.Longitude,
		},
		AccuracyMeters: agentResp.AccuracyMeters,
		CapturedAt:     agentResp.CapturedAtEpochMs,
	}, nil
}
