package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"mergington/internal/errors"
)

// FrontendEntry is the static document the root path redirects to.
const FrontendEntry = "/static/index.html"

// MessageResponse is the body of successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// Root godoc
// @Summary Redirect to the frontend
// @Tags frontend
// @Success 302
// @Router / [get]
func Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, FrontendEntry)
}

// pathParam returns the decoded value of a path parameter. Echo only leaves
// values escaped when the request carried a raw path (e.g. an encoded slash).
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// domainError converts a service error into an echo HTTP error. Faults outside
// the domain taxonomy are logged here, with the cause the client never sees.
func domainError(c echo.Context, err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request().Context()).Error().
			Err(err).
			Str("kind", string(errors.KindOf(err))).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
