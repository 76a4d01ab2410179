package outingerrors

import (
	"go-outpass/internal/shared/apperror"
)

// Draft validation is fail-fast: exactly one of these surfaces per attempt,
// in the order the form fields appear.
var (
	ErrDateRequired       = apperror.RequiredField("date")
	ErrTimeRequired       = apperror.RequiredField("time")
	ErrReturnTimeRequired = apperror.RequiredField("returnTime")
	ErrReason1Required    = apperror.RequiredField("reason1")

	ErrInvalidTime       = apperror.InvalidField("time")
	ErrInvalidReturnTime = apperror.InvalidField("returnTime")
)
