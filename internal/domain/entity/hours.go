// Package entity contains the core business objects of the project.
package entity

// HoursBreakdown is the payroll split of one worked day. It is derived
// from the raw punches of a DayPunchRecord and recomputed from scratch on
// every change, never updated incrementally.
//
// Invariant: NormalHours + OvertimeHours == TotalHours (within floating
// rounding), NormalHours <= 8, OvertimeHours >= 0.
type HoursBreakdown struct {
	TotalHours    float64 `json:"total_hours"`
	NormalHours   float64 `json:"normal_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}
