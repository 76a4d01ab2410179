package events

import "time"

const LeaveLifecycleTopic = "dorm.leave.lifecycle.v1"

const (
	TypeOutingSubmitted = "outing.submitted"
	TypeOutingReturned  = "outing.returned"
	TypeStaySubmitted   = "stay.submitted"
	TypeStayReturned    = "stay.returned"
)

// LeaveLifecycleEvent is published after a submission the record store has
// acknowledged. Consumed by the dormitory admin system, not by this repo.
type LeaveLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	StudentID  string    `json:"student_id"`
	Date       string    `json:"date"`
	ReturnDate string    `json:"return_date,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	ReturnType string    `json:"return_type,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
