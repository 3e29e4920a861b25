package service

import (
	"context"
)

// PunchEvent represents a successful punch to be processed asynchronously
// by the punch worker (receipt notifications, downstream reporting).
type PunchEvent struct {
	RequestID      string  `json:"request_id,omitempty"` // For distributed tracing
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"` // "2006-01-02"
	Kind           string  `json:"kind"` // clock_in, lunch_start, lunch_end, clock_out
	Time           string  `json:"time"` // "HH:MM"
	LocationName   string  `json:"location_name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	AccuracyMeters float64 `json:"accuracy_meters"`
	TotalHours     float64 `json:"total_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPunchEvent publishes a punch event for async processing
	PublishPunchEvent(ctx context.Context, event *PunchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
