package nest

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// AssembledRoute is one validated endpoint of an Assembly: the surviving
// declaration for a handler plus its parsed path and registry record.
type AssembledRoute struct {
	Method  string
	Path    PathSpec
	Parts   []PathPart
	Handler HandlerFunc
	Options RouteOptions
	Info    RouteInfo
}

// Assembly is the validated route set of a single controller instance.
// Adapters consume it to register routes on a native router. Every call
// to Assemble produces a fresh value, so one controller instance can back
// any number of independent routers.
type Assembly struct {
	Controller  string
	Prefix      PathSpec
	PrefixParts []PathPart
	Middleware  []MiddlewareFunc
	Routes      []AssembledRoute
}

// Handler returns the effective handler of r: the declared handler
// wrapped with the controller middleware of a and then the route's own
// middleware.
func (a *Assembly) Handler(r AssembledRoute) HandlerFunc {
	mw := make([]MiddlewareFunc, 0, len(a.Middleware)+len(r.Options.Middlewares))
	mw = append(mw, a.Middleware...)
	mw = append(mw, r.Options.Middlewares...)
	return Chain(r.Handler, mw...)
}

// Infos returns the registry records of every route in the assembly, in
// registration order.
func (a *Assembly) Infos() []RouteInfo {
	infos := make([]RouteInfo, len(a.Routes))
	for i, r := range a.Routes {
		infos[i] = r.Info
	}
	return infos
}

// Assemble folds the declarations of c into a validated route set.
//
// Declarations are keyed by handler identity: declaring the same method
// or function a second time replaces the earlier record in place instead
// of adding a second route. Otherwise declaration order is preserved. A
// controller that declares no routes assembles to an empty set, which is
// still a valid router source.
//
// The first invalid declaration aborts assembly: a nil handler, a verb
// outside Methods or a path that does not parse.
func Assemble(c Controller) (*Assembly, error) {
	if c == nil {
		return nil, ErrNilController
	}
	if v := reflect.ValueOf(c); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, fmt.Errorf("%w: got (*%s)(nil), pass a constructed instance", ErrNilController, v.Type().Elem().Name())
	}

	asm := &Assembly{Controller: ControllerName(c)}

	if p, ok := c.(ControllerWithPrefix); ok {
		asm.Prefix = PathSpec(p.Prefix())
		parts, err := asm.Prefix.Parts()
		if err != nil {
			return nil, fmt.Errorf("controller %s: prefix: %w", asm.Controller, err)
		}
		asm.PrefixParts = parts
	}
	if m, ok := c.(ControllerWithMiddleware); ok {
		asm.Middleware = m.Middleware()
	}
	var ctrlTags []string
	if t, ok := c.(ControllerWithTags); ok {
		ctrlTags = t.Tags()
	}

	declared := c.Routes()

	// Fold by handler identity: a later declaration for the same handler
	// overwrites the earlier one and keeps its position.
	folded := make([]Route, 0, len(declared))
	position := make(map[uintptr]int, len(declared))
	for _, r := range declared {
		if r.Handler == nil {
			return nil, fmt.Errorf("controller %s: %s %s: %w", asm.Controller, r.Method, r.Path, ErrNilHandler)
		}
		key := reflect.ValueOf(r.Handler).Pointer()
		if at, seen := position[key]; seen {
			folded[at] = r
			continue
		}
		position[key] = len(folded)
		folded = append(folded, r)
	}

	asm.Routes = make([]AssembledRoute, 0, len(folded))
	for _, r := range folded {
		if !MethodSupported(r.Method) {
			return nil, fmt.Errorf("controller %s: path %q: %w %q", asm.Controller, r.Path, ErrUnknownMethod, r.Method)
		}
		parts, err := r.Path.Parts()
		if err != nil {
			return nil, fmt.Errorf("controller %s: %s: %w", asm.Controller, r.Method, err)
		}

		tags := make([]string, 0, len(ctrlTags)+len(r.Options.Tags))
		tags = append(tags, ctrlTags...)
		tags = append(tags, r.Options.Tags...)

		asm.Routes = append(asm.Routes, AssembledRoute{
			Method:  r.Method,
			Path:    r.Path,
			Parts:   parts,
			Handler: r.Handler,
			Options: r.Options,
			Info: RouteInfo{
				Method:      r.Method,
				Path:        string(asm.Prefix) + string(r.Path),
				Name:        r.Options.Name,
				Summary:     r.Options.Summary,
				Tags:        tags,
				Controller:  asm.Controller,
				HandlerName: handlerName(r.Handler),
			},
		})
	}
	return asm, nil
}

// handlerName resolves the runtime name of h, trimmed to its last path
// element. Method values come out as "pkg.(*Type).Method".
func handlerName(h HandlerFunc) string {
	fn := runtime.FuncForPC(reflect.ValueOf(h).Pointer())
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i != -1 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
