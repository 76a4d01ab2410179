package catalogerrors

import (
	"net/http"

	"go-outpass/internal/shared/apperror"
)

var ErrCatalogUnavailable = apperror.New(
	apperror.CodeCatalogUnavailable,
	"reason catalog could not be loaded",
	http.StatusServiceUnavailable,
)
