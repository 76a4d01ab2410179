package outing

import (
	"go-outpass/internal/catalog"
	outingerrors "go-outpass/internal/outing/errors"
	"go-outpass/internal/shared/timeslot"
)

// Draft is a validated, normalized outing registration. Reason names are
// resolved here so the submission payload never needs a second catalog
// lookup; a stale catalog degrades to blank names rather than blocking.
type Draft struct {
	StudentID   string
	Date        string
	Time        string
	ReturnTime  string
	Reason1     string
	Reason1Name string
	Reason2     string
	Reason2Name string
	OtherReason string
}

// BuildDraft validates field by field in form order and stops at the first
// gap, mirroring the one-alert-per-attempt entry flow.
func BuildDraft(studentID string, req RegisterOutingRequest, reasons catalog.Service) (Draft, error) {
	if req.Date == "" {
		return Draft{}, outingerrors.ErrDateRequired
	}
	if req.Time == "" {
		return Draft{}, outingerrors.ErrTimeRequired
	}
	if req.ReturnTime == "" {
		return Draft{}, outingerrors.ErrReturnTimeRequired
	}

	departure, err := timeslot.Normalize(req.Time)
	if err != nil {
		return Draft{}, outingerrors.ErrInvalidTime
	}
	expectedReturn, err := timeslot.Normalize(req.ReturnTime)
	if err != nil {
		return Draft{}, outingerrors.ErrInvalidReturnTime
	}

	if req.Reason1 == "" {
		return Draft{}, outingerrors.ErrReason1Required
	}

	draft := Draft{
		StudentID:   studentID,
		Date:        req.Date,
		Time:        departure,
		ReturnTime:  expectedReturn,
		Reason1:     req.Reason1,
		Reason1Name: reasons.Resolve(catalog.KindOuting, req.Reason1),
		OtherReason: req.OtherReason,
	}
	if req.Reason2 != "" {
		draft.Reason2 = req.Reason2
		draft.Reason2Name = reasons.Resolve(catalog.KindOuting, req.Reason2)
	}
	return draft, nil
}
