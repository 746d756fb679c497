package nest

import "net/http"

// Route is a single endpoint declaration: an HTTP verb, a path spec and
// the handler that serves it. Routes are built with the verb constructors
// and collected by a controller's Routes method; declaring is cheap and
// never fails, validation happens during assembly.
type Route struct {
	Method  string
	Path    PathSpec
	Handler HandlerFunc
	Options RouteOptions
}

// Methods lists the supported HTTP verbs in the order their constructors
// are declared below.
func Methods() []string {
	return []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodPatch,
		http.MethodOptions,
		http.MethodHead,
		http.MethodTrace,
	}
}

var supportedMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodDelete:  {},
	http.MethodPatch:   {},
	http.MethodOptions: {},
	http.MethodHead:    {},
	http.MethodTrace:   {},
}

// MethodSupported reports whether method is one of the verbs listed by
// Methods.
func MethodSupported(method string) bool {
	_, ok := supportedMethods[method]
	return ok
}

// NewRoute declares an endpoint for an arbitrary verb. Most callers use
// the per verb constructors instead. Declaring the same handler again
// replaces the earlier declaration during assembly, it does not add a
// second route.
func NewRoute(method, path string, h HandlerFunc, opts ...RouteOption) Route {
	r := Route{Method: method, Path: PathSpec(path), Handler: h}
	for _, opt := range opts {
		opt(&r.Options)
	}
	return r
}

// Get declares a GET endpoint at path served by h.
func Get(path string, h HandlerFunc, opts ...RouteOption) Route {
	return NewRoute(http.MethodGet, path, h, opts...)
}

// Post declares a POST endpoint at path served by h.
func Post(path string, h HandlerFunc, opts ...RouteOption) Route {
	return NewRoute(http.MethodPost, path, h, opts...)
}

// Put declares a PUT endpoint at path served by h.
func Put(path string, h HandlerFunc, opts ...RouteOption) Route {
	return NewRoute(http.MethodPut, path, h, opts...)
}

// Delete declares a DELETE endpoint at path served by h.
func Delete(path string, h HandlerFunc, opts ...RouteOption) Route {
	return NewRoute(http.MethodDelete, path, h, opts...)
}

// Patch declares a PATCH endpoint at path served by h.
func Patch(path string, h HandlerFunc, opts ...RouteOption) Route {
	return NewRoute(http.MethodPatch, path, h, opts...)
}

// Options declares an OPTIONS endpoint at path served by h.
func Options(path string, h HandlerFunc, opts ...RouteOption) Route {
	return NewRoute(http.MethodOptions, path, h, opts...)
}

// Head declares a HEAD endpoint at path served by h.
func Head(path string, h HandlerFunc, opts ...RouteOption) Route {
	return NewRoute(http.MethodHead, path, h, opts...)
}

// Trace declares a TRACE endpoint at path served by h.
func Trace(path string, h HandlerFunc, opts ...RouteOption) Route {
	return NewRoute(http.MethodTrace, path, h, opts...)
}
