package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/qauto/garage/pkg/binder"
	"github.com/qauto/garage/pkg/logger"
)

// classifyError maps binding failures to 400 and leaves the rest to JSONError.
func classifyError(err error) error {
	switch {
	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType),
		errors.Is(err, binder.ErrFailedToParseJSON):
		return errors.Join(NewHTTPError(http.StatusBadRequest, "Invalid request body"), err)
	case errors.Is(err, binder.ErrMissingBearerToken):
		return errors.Join(ErrUnauthorized, err)
	}
	return err
}

func logLevel(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler returns an ErrorHandler that logs err and renders it as a
// JSON error envelope.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		err = classifyError(err)
		r := ctx.Request()

		resp := JSONError(err).(*jsonResponse)
		status := resp.status

		log.LogAttrs(r.Context(), logLevel(status), "request error",
			logger.RequestID(middleware.GetReqID(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.Error("failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
