// Package nest turns plain Go values into HTTP routers.
//
// A controller is any value whose Routes method lists the endpoints it
// serves. Endpoints are declared with the verb constructors (Get, Post,
// Put, ...) and carry a handler plus optional metadata. Assemble folds a
// controller's declarations into a validated route set, and the adapters
// subpackage converts that set into a fresh native router for echo, gin,
// fiber, chi, httprouter or net/http.
//
// Example usage:
//
//	type ItemController struct{}
//
//	func (c *ItemController) Routes() []nest.Route {
//		return []nest.Route{
//			nest.Get("/items", c.List),
//			nest.Post("/items", c.Create),
//		}
//	}
//
//	e, err := adapters.AsEchoRouter(&ItemController{})
package nest

import "reflect"

// Version is the nest library version.
const Version = "0.0.2"

// Controller is implemented by any value that declares HTTP routes.
// Routes must return the endpoint declarations in declaration order;
// assembly preserves that order when registering them.
type Controller interface {
	Routes() []Route
}

// ControllerWithPrefix mounts every route of the controller under a
// common path prefix. The prefix uses the same path grammar as route
// paths, so it may itself contain parameters.
type ControllerWithPrefix interface {
	Controller
	Prefix() string
}

// ControllerWithMiddleware wraps every route of the controller with
// shared middleware, outermost first.
type ControllerWithMiddleware interface {
	Controller
	Middleware() []MiddlewareFunc
}

// ControllerWithTags attaches documentation tags to every route of the
// controller in addition to the per route tags.
type ControllerWithTags interface {
	Controller
	Tags() []string
}

// ControllerWithName overrides the controller name derived from the Go
// type, used in route dumps and registry entries.
type ControllerWithName interface {
	Controller
	Name() string
}

// IsController reports whether v declares routes and can therefore be
// assembled into a router.
func IsController(v any) bool {
	_, ok := v.(Controller)
	return ok
}

// ControllerName returns the display name of c: the value of its Name
// method when it has one, otherwise the bare Go type name.
func ControllerName(c Controller) string {
	if named, ok := c.(ControllerWithName); ok {
		return named.Name()
	}
	t := reflect.TypeOf(c)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
