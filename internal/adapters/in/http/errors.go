package http

import (
	"errors"
	"net/http"

	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	ReasonInvalidArgument      = "INVALID_ARGUMENT"
	ReasonNotOwner             = "NOT_OWNER"
	ReasonNotFound             = "NOT_FOUND"
	ReasonIllegalTransition    = "ILLEGAL_TRANSITION"
	ReasonStaleState           = "STALE_STATE"
	ReasonTransientContention  = "TRANSIENT_CONTENTION"
	ReasonConsistencyViolation = "CONSISTENCY_VIOLATION"
	ReasonInternal             = "INTERNAL"
	ReasonInvalidCredentials   = "INVALID_CREDENTIALS"
	ReasonNoSession            = "NO_SESSION"
	ReasonForcedLogout         = "FORCED_LOGOUT"
)

// classify maps a use case error to an HTTP status and reason.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrTransientContention):
		return http.StatusServiceUnavailable, ReasonTransientContention
	case errors.Is(err, errs.ErrConsistencyViolation):
		return http.StatusInternalServerError, ReasonConsistencyViolation
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, ReasonNotFound
	case errors.Is(err, errs.ErrNotOwner):
		return http.StatusForbidden, ReasonNotOwner
	case errors.Is(err, errs.ErrIllegalTransition):
		return http.StatusConflict, ReasonIllegalTransition
	case errors.Is(err, errs.ErrStaleState):
		return http.StatusConflict, ReasonStaleState
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, ReasonInvalidArgument
	default:
		return http.StatusInternalServerError, ReasonInternal
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	status, reason := classify(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "reason", reason, "error", err)
		if reason == ReasonInternal {
			message = "internal error"
		}
	}
	if reason == ReasonTransientContention {
		c.Response().Header().Set("Retry-After", "1")
	}

	return c.JSON(status, Error{Code: status, Reason: reason, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Reason:  ReasonInvalidArgument,
		Message: message,
	})
}

func unauthorized(c echo.Context, reason, message string) error {
	return c.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Reason:  reason,
		Message: message,
	})
}
