package http

import (
	"errors"
	"net/http"

	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StatusFor maps the workflow failure taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindMissingParameter, errs.KindInvalidParameter:
		return http.StatusBadRequest
	case errs.KindInvalidStatus, errs.KindInvalidTransition, errs.KindAlreadyAssigned, errs.KindBranchMismatch:
		return http.StatusConflict
	case errs.KindCapacityExceeded, errs.KindAreaNotCovered, errs.KindUnavailable, errs.KindInactiveResource:
		return http.StatusUnprocessableEntity
	case errs.KindInfrastructure:
		return http.StatusServiceUnavailable
	case errs.KindUnknown:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// fail writes a workflow error. Infrastructure causes stay in the logs; the
// client only sees the code and a generic message.
func fail(c echo.Context, err error) error {
	status := StatusFor(err)
	failure := errs.CodeOf(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	return c.JSON(status, servers.Error{Code: status, Failure: &failure, Message: message})
}

// ErrorHandler renders echo errors (routing, binding, validation, identity) in
// the same Error shape the handlers use.
func ErrorHandler(l *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else {
			l.Error("unhandled request error",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, servers.Error{Code: status, Message: message})
		}
		if writeErr != nil {
			l.Warn("write error response failed", zap.Error(writeErr))
		}
	}
}
