package recordstoreerrors

import (
	"net/http"

	"go-outpass/internal/shared/apperror"
)

var (
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"student not found",
		http.StatusNotFound,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave record not found",
		http.StatusNotFound,
	)
	ErrAlreadyReturned = apperror.New(
		apperror.CodeInvalidState,
		"leave record already has a recorded return",
		http.StatusConflict,
	)
	ErrDuplicateRegistration = apperror.New(
		apperror.CodeConflict,
		"an identical registration already exists",
		http.StatusConflict,
	)
)
