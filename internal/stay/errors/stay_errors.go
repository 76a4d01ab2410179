package stayerrors

import (
	"net/http"

	"go-outpass/internal/shared/apperror"
)

// Same fail-fast contract as the outing draft: one error per attempt, in
// form-field order.
var (
	ErrDateRequired       = apperror.RequiredField("date")
	ErrTimeRequired       = apperror.RequiredField("time")
	ErrReturnDateRequired = apperror.RequiredField("returnDate")
	ErrReturnTimeRequired = apperror.RequiredField("returnTime")
	ErrReasonRequired     = apperror.RequiredField("reason")

	ErrInvalidTime       = apperror.InvalidField("time")
	ErrInvalidReturnTime = apperror.InvalidField("returnTime")

	ErrReturnBeforeDeparture = apperror.New(
		apperror.CodeInvalidInput,
		"returnDate must not precede date",
		http.StatusBadRequest,
	)
)
