package nest

// Context is the request view handed to handlers. Every adapter backs it
// with the host framework's own request context, so a handler written
// against Context runs unchanged on echo, gin, fiber, chi, httprouter
// and net/http.
type Context interface {
	// Request data access
	Method() string
	Path() string
	Param(name string) string
	QueryParam(name string) string
	Header(key string) string
	Bind(v any) error

	// Request scoped storage
	Get(key string) any
	Set(key string, val any)

	// Response writing
	SetHeader(key, value string)
	JSON(code int, v any) error
	String(code int, s string) error
	NoContent(code int) error
}

// HandlerFunc is a framework independent request handler.
type HandlerFunc func(Context) error

// MiddlewareFunc decorates a handler with additional behavior.
type MiddlewareFunc func(HandlerFunc) HandlerFunc

// Chain wraps h with middleware so that the first element of mw becomes
// the outermost wrapper.
func Chain(h HandlerFunc, mw ...MiddlewareFunc) HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}
