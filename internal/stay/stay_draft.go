package stay

import (
	"go-outpass/internal/catalog"
	"go-outpass/internal/shared/timeslot"
	stayerrors "go-outpass/internal/stay/errors"
)

// Draft is a validated, normalized stay registration. Dates compare
// lexicographically because both sides are YYYY-MM-DD.
type Draft struct {
	StudentID   string
	Date        string
	Time        string
	ReturnDate  string
	ReturnTime  string
	Reason      string
	ReasonName  string
	OtherReason string
}

// BuildDraft validates field by field in form order and stops at the first
// gap. The departure/return ordering rule runs only once both dates are
// present and well-formed.
func BuildDraft(studentID string, req RegisterStayRequest, reasons catalog.Service) (Draft, error) {
	if req.Date == "" {
		return Draft{}, stayerrors.ErrDateRequired
	}
	if req.Time == "" {
		return Draft{}, stayerrors.ErrTimeRequired
	}
	if req.ReturnDate == "" {
		return Draft{}, stayerrors.ErrReturnDateRequired
	}
	if req.ReturnTime == "" {
		return Draft{}, stayerrors.ErrReturnTimeRequired
	}

	departure, err := timeslot.Normalize(req.Time)
	if err != nil {
		return Draft{}, stayerrors.ErrInvalidTime
	}
	expectedReturn, err := timeslot.Normalize(req.ReturnTime)
	if err != nil {
		return Draft{}, stayerrors.ErrInvalidReturnTime
	}

	if req.ReturnDate < req.Date {
		return Draft{}, stayerrors.ErrReturnBeforeDeparture
	}

	if req.Reason == "" {
		return Draft{}, stayerrors.ErrReasonRequired
	}

	return Draft{
		StudentID:   studentID,
		Date:        req.Date,
		Time:        departure,
		ReturnDate:  req.ReturnDate,
		ReturnTime:  expectedReturn,
		Reason:      req.Reason,
		ReasonName:  reasons.Resolve(catalog.KindStay, req.Reason),
		OtherReason: req.OtherReason,
	}, nil
}
