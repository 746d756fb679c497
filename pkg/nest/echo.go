package nest

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

// Echo bridge. The Server registers assembled routes on its embedded
// echo instance through these helpers, and the adapters package reuses
// them for standalone echo routers.

// EchoHandler converts h into an echo.HandlerFunc. HTTPError return
// values are translated into echo's native error type so echo's error
// handler renders them; other errors pass through unchanged.
func EchoHandler(h HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := h(&echoContext{ctx: c})
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
		}
		return err
	}
}

// EchoPath renders parsed path parts in echo syntax: parameters become
// :name and the wildcard becomes *.
func EchoPath(parts []PathPart) string {
	var b strings.Builder
	for _, part := range parts {
		switch part.Type {
		case StaticPart:
			b.WriteString(part.Value)
		case ParameterPart:
			b.WriteString(":")
			b.WriteString(part.Value)
		case WildcardPart:
			b.WriteString("*")
		}
	}
	return b.String()
}

// RegisterEcho registers every route of asm on e under base, an already
// rendered echo path prefix. The assembly's own prefix is appended to
// base. Route names are forwarded to echo.
func RegisterEcho(e *echo.Echo, base string, asm *Assembly) {
	prefix := base + EchoPath(asm.PrefixParts)
	for _, r := range asm.Routes {
		route := e.Add(r.Method, prefix+EchoPath(r.Parts), EchoHandler(asm.Handler(r)))
		if r.Options.Name != "" {
			route.Name = r.Options.Name
		}
	}
}

// echoContext implements Context for echo
type echoContext struct {
	ctx echo.Context
}

func (ec *echoContext) Method() string {
	return ec.ctx.Request().Method
}

func (ec *echoContext) Path() string {
	return ec.ctx.Request().URL.Path
}

func (ec *echoContext) Param(name string) string {
	return ec.ctx.Param(name)
}

func (ec *echoContext) QueryParam(name string) string {
	return ec.ctx.QueryParam(name)
}

func (ec *echoContext) Header(key string) string {
	return ec.ctx.Request().Header.Get(key)
}

func (ec *echoContext) Bind(v any) error {
	return ec.ctx.Bind(v)
}

func (ec *echoContext) Get(key string) any {
	return ec.ctx.Get(key)
}

func (ec *echoContext) Set(key string, val any) {
	ec.ctx.Set(key, val)
}

func (ec *echoContext) SetHeader(key, value string) {
	ec.ctx.Response().Header().Set(key, value)
}

func (ec *echoContext) JSON(code int, v any) error {
	return ec.ctx.JSON(code, v)
}

func (ec *echoContext) String(code int, s string) error {
	return ec.ctx.String(code, s)
}

func (ec *echoContext) NoContent(code int) error {
	return ec.ctx.NoContent(code)
}
