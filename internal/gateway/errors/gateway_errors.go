package gatewayerrors

import (
	"net/http"

	"go-outpass/internal/shared/apperror"
)

var (
	ErrSubmissionFailed = apperror.New(
		apperror.CodeSubmissionFailed,
		"record store rejected the submission",
		http.StatusBadGateway,
	)
	ErrRecordStoreUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"record store is unavailable",
		http.StatusServiceUnavailable,
	)
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"student not found",
		http.StatusNotFound,
	)
)
