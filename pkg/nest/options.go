package nest

// RouteOptions carries the optional metadata of a route declaration.
// Adapters forward what the host framework understands (the route name,
// for example) and ignore the rest; Extras travels with the route as an
// opaque bag for adapter specific settings.
type RouteOptions struct {
	// Name labels the route for registry lookups and dumps.
	Name string

	// Summary is a one line description shown in route dumps.
	Summary string

	// Tags group routes in dumps and registry queries.
	Tags []string

	// SuccessStatus is the status code response helpers default to.
	// Zero means http.StatusOK.
	SuccessStatus int

	// Middlewares wrap only this route, first entry outermost.
	Middlewares []MiddlewareFunc

	// Extras holds uninterpreted adapter specific settings keyed by name.
	Extras map[string]any
}

// RouteOption mutates the options of a route declaration.
type RouteOption func(*RouteOptions)

// WithName sets the route name.
func WithName(name string) RouteOption {
	return func(o *RouteOptions) { o.Name = name }
}

// WithSummary sets the route summary line.
func WithSummary(summary string) RouteOption {
	return func(o *RouteOptions) { o.Summary = summary }
}

// WithTags appends documentation tags to the route.
func WithTags(tags ...string) RouteOption {
	return func(o *RouteOptions) { o.Tags = append(o.Tags, tags...) }
}

// WithSuccessStatus sets the status code the route reports on success.
func WithSuccessStatus(code int) RouteOption {
	return func(o *RouteOptions) { o.SuccessStatus = code }
}

// WithMiddleware appends route level middleware, applied inside any
// controller level middleware.
func WithMiddleware(mw ...MiddlewareFunc) RouteOption {
	return func(o *RouteOptions) { o.Middlewares = append(o.Middlewares, mw...) }
}

// WithExtra records an adapter specific setting under key.
func WithExtra(key string, value any) RouteOption {
	return func(o *RouteOptions) {
		if o.Extras == nil {
			o.Extras = make(map[string]any)
		}
		o.Extras[key] = value
	}
}
