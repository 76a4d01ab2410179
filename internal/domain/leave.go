// Package domain holds the entities shared between the lifecycle store, the
// draft builders and the submission services.
package domain

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// OutingRequest is a same-day leave. Seq stays 0 until the record store
// acknowledges the registration and assigns its ordinal.
type OutingRequest struct {
	ID        string
	StudentID string

	Date       string // YYYY-MM-DD
	Time       string // HH:MM, 10-minute grid
	ReturnTime string // expected return, same grid

	Reason1     string
	Reason1Name string
	Reason2     string
	Reason2Name string
	OtherReason string

	Status           Status
	ActualReturnTime string // set only when Status is completed
	Seq              int
}

// StayRequest is an overnight leave; departure and return may be different
// calendar days, with ReturnDate >= Date always.
type StayRequest struct {
	ID        string
	StudentID string

	Date       string
	Time       string
	ReturnDate string
	ReturnTime string

	Reason      string
	ReasonName  string
	OtherReason string

	Status           Status
	ActualReturnDate string
	ActualReturnTime string
	Note             string
	Seq              int
}

type Student struct {
	ID    string
	Name  string
	Grade string
	Phone string
	Class string
}
