package nest

import "sync"

// RouteInfo records one assembled route for inspection, dumps and
// registry queries.
type RouteInfo struct {
	Method      string
	Path        string // generic path including the controller prefix
	NativePath  string // path as registered on the host framework, when known
	Name        string
	Summary     string
	Tags        []string
	Controller  string
	HandlerName string
}

// Registry is a concurrency safe collection of route records. A Server
// keeps one per instance and fills it as controllers are mounted;
// applications can keep their own to track routes across routers.
type Registry struct {
	mu     sync.RWMutex
	routes []RouteInfo
}

// NewRegistry creates an empty route registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends route records in the order given.
func (r *Registry) Add(infos ...RouteInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, infos...)
}

// All returns a copy of every record in registration order.
func (r *Registry) All() []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]RouteInfo, len(r.routes))
	copy(out, r.routes)
	return out
}

// Len returns the number of records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}

// ByController returns the records of the named controller.
func (r *Registry) ByController(name string) []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []RouteInfo
	for _, info := range r.routes {
		if info.Controller == name {
			out = append(out, info)
		}
	}
	return out
}

// ByMethod returns the records registered for the given HTTP verb.
func (r *Registry) ByMethod(method string) []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []RouteInfo
	for _, info := range r.routes {
		if info.Method == method {
			out = append(out, info)
		}
	}
	return out
}

// ByName returns the first record with the given route name and whether
// one exists.
func (r *Registry) ByName(name string) (RouteInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, info := range r.routes {
		if info.Name == name {
			return info, true
		}
	}
	return RouteInfo{}, false
}
