package lifecycleerrors

import (
	"net/http"

	"go-outpass/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrAlreadyCompleted = apperror.New(
		apperror.CodeInvalidState,
		"leave request is already completed",
		http.StatusBadRequest,
	)
	ErrMissingActualReturn = apperror.New(
		apperror.CodeInvalidInput,
		"actual return time is required to complete a request",
		http.StatusBadRequest,
	)
)
