package handler

import (
	"errors"
	"net/http"

	"portfolio/internal/domain"
	"portfolio/internal/httputil"
)

// handleError converts domain errors to HTTP responses.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr domain.HTTPError

	switch {
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error(), r.URL.Path)
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error(), r.URL.Path)
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error(), r.URL.Path)
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error(), r.URL.Path)
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error", r.URL.Path)
	}
}
