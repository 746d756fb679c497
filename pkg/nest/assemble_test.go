package nest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// itemController is the canonical fixture: two verbs on the same path,
// bound to per instance state.
type itemController struct {
	hits int
}

func (c *itemController) List(ctx Context) error {
	c.hits++
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Reading items"})
}

func (c *itemController) Create(ctx Context) error {
	var item map[string]any
	if err := ctx.Bind(&item); err != nil {
		return ErrBadRequest("invalid item payload")
	}
	return ctx.JSON(http.StatusOK, map[string]any{"message": "Creating item", "item": item})
}

func (c *itemController) Routes() []Route {
	return []Route{
		Get("/items", c.List),
		Post("/items", c.Create),
	}
}

// routeListController adapts an arbitrary route slice into a controller.
type routeListController struct {
	routes []Route
}

func (c routeListController) Routes() []Route { return c.routes }

type emptyController struct{}

func (emptyController) Routes() []Route { return nil }

func TestAssemble_DeclarationOrder(t *testing.T) {
	asm, err := Assemble(&itemController{})
	require.NoError(t, err)

	assert.Equal(t, "itemController", asm.Controller)
	require.Len(t, asm.Routes, 2)
	assert.Equal(t, http.MethodGet, asm.Routes[0].Method)
	assert.Equal(t, PathSpec("/items"), asm.Routes[0].Path)
	assert.Equal(t, http.MethodPost, asm.Routes[1].Method)
	assert.Equal(t, PathSpec("/items"), asm.Routes[1].Path)
}

func TestAssemble_EachVerb(t *testing.T) {
	tests := []struct {
		name   string
		build  func(string, HandlerFunc, ...RouteOption) Route
		method string
	}{
		{"Get", Get, http.MethodGet},
		{"Post", Post, http.MethodPost},
		{"Put", Put, http.MethodPut},
		{"Delete", Delete, http.MethodDelete},
		{"Patch", Patch, http.MethodPatch},
		{"Options", Options, http.MethodOptions},
		{"Head", Head, http.MethodHead},
		{"Trace", Trace, http.MethodTrace},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			h := func(ctx Context) error {
				called = true
				return nil
			}

			asm, err := Assemble(routeListController{routes: []Route{tc.build("/things", h)}})
			require.NoError(t, err)
			require.Len(t, asm.Routes, 1)

			r := asm.Routes[0]
			assert.Equal(t, tc.method, r.Method)
			assert.Equal(t, PathSpec("/things"), r.Path)

			require.NoError(t, asm.Handler(r)(newFakeContext()))
			assert.True(t, called)
		})
	}
}

func TestAssemble_RedeclaredHandlerOverwrites(t *testing.T) {
	c := &itemController{}
	ctrl := routeListController{routes: []Route{
		Get("/items", c.List, WithName("first")),
		Post("/items", c.Create),
		Put("/items/{id}", c.List, WithName("last")),
	}}

	asm, err := Assemble(ctrl)
	require.NoError(t, err)

	// One record per handler: the re-declared c.List keeps its original
	// position but carries the data of the last declaration.
	require.Len(t, asm.Routes, 2)
	assert.Equal(t, http.MethodPut, asm.Routes[0].Method)
	assert.Equal(t, PathSpec("/items/{id}"), asm.Routes[0].Path)
	assert.Equal(t, "last", asm.Routes[0].Options.Name)
	assert.Equal(t, http.MethodPost, asm.Routes[1].Method)
}

func TestAssemble_EmptyController(t *testing.T) {
	asm, err := Assemble(emptyController{})
	require.NoError(t, err)
	assert.Empty(t, asm.Routes)
	assert.Empty(t, asm.Infos())
}

func TestAssemble_NilController(t *testing.T) {
	_, err := Assemble(nil)
	assert.ErrorIs(t, err, ErrNilController)

	var typed *itemController
	_, err = Assemble(typed)
	assert.ErrorIs(t, err, ErrNilController)
	assert.Contains(t, err.Error(), "itemController")
}

func TestAssemble_NilHandler(t *testing.T) {
	_, err := Assemble(routeListController{routes: []Route{Get("/things", nil)}})
	assert.ErrorIs(t, err, ErrNilHandler)
}

func TestAssemble_UnknownMethod(t *testing.T) {
	h := func(ctx Context) error { return nil }
	_, err := Assemble(routeListController{routes: []Route{NewRoute("FETCH", "/things", h)}})
	assert.ErrorIs(t, err, ErrUnknownMethod)
	assert.Contains(t, err.Error(), "FETCH")
}

func TestAssemble_BadPath(t *testing.T) {
	h := func(ctx Context) error { return nil }
	_, err := Assemble(routeListController{routes: []Route{Get("/items/{id", h)}})
	assert.ErrorIs(t, err, ErrBadPath)
}

// scopedController exercises the prefix, tags and middleware interfaces.
type scopedController struct {
	mw      MiddlewareFunc
	routeMW MiddlewareFunc
	calls   *[]string
}

func (c *scopedController) Prefix() string { return "/admin" }

func (c *scopedController) Tags() []string { return []string{"admin"} }

func (c *scopedController) Middleware() []MiddlewareFunc { return []MiddlewareFunc{c.mw} }

func (c *scopedController) users(ctx Context) error {
	*c.calls = append(*c.calls, "handler")
	return ctx.NoContent(http.StatusNoContent)
}

func (c *scopedController) Routes() []Route {
	return []Route{
		Get("/users", c.users, WithTags("users"), WithMiddleware(c.routeMW)),
	}
}

func TestAssemble_PrefixTagsAndMiddleware(t *testing.T) {
	var order []string
	c := &scopedController{
		calls: &order,
		mw: func(next HandlerFunc) HandlerFunc {
			return func(ctx Context) error {
				order = append(order, "controller")
				return next(ctx)
			}
		},
		routeMW: func(next HandlerFunc) HandlerFunc {
			return func(ctx Context) error {
				order = append(order, "route")
				return next(ctx)
			}
		},
	}

	asm, err := Assemble(c)
	require.NoError(t, err)

	assert.Equal(t, PathSpec("/admin"), asm.Prefix)
	require.Len(t, asm.Routes, 1)

	r := asm.Routes[0]
	assert.Equal(t, "/admin/users", r.Info.Path)
	assert.Equal(t, []string{"admin", "users"}, r.Info.Tags)

	require.NoError(t, asm.Handler(r)(newFakeContext()))
	assert.Equal(t, []string{"controller", "route", "handler"}, order)
}

type badPrefixController struct{}

func (badPrefixController) Prefix() string { return "/{broken" }

func (badPrefixController) Routes() []Route {
	return []Route{Get("/ok", func(ctx Context) error { return nil })}
}

func TestAssemble_BadPrefix(t *testing.T) {
	_, err := Assemble(badPrefixController{})
	assert.ErrorIs(t, err, ErrBadPath)
	assert.Contains(t, err.Error(), "prefix")
}

func TestAssemble_IndependentInstances(t *testing.T) {
	c1, c2 := &itemController{}, &itemController{}

	a1, err := Assemble(c1)
	require.NoError(t, err)
	a2, err := Assemble(c2)
	require.NoError(t, err)
	assert.NotSame(t, a1, a2)

	// Handlers stay bound to their own receiver.
	require.NoError(t, a1.Routes[0].Handler(newFakeContext()))
	require.NoError(t, a1.Routes[0].Handler(newFakeContext()))
	assert.Equal(t, 2, c1.hits)
	assert.Equal(t, 0, c2.hits)
}

func TestAssemble_FreshAssemblyPerCall(t *testing.T) {
	c := &itemController{}

	a1, err := Assemble(c)
	require.NoError(t, err)
	a2, err := Assemble(c)
	require.NoError(t, err)

	assert.NotSame(t, a1, a2)
	a1.Routes[0].Info.Name = "mutated"
	assert.Empty(t, a2.Routes[0].Info.Name)
}

func TestAssemble_HandlerName(t *testing.T) {
	asm, err := Assemble(&itemController{})
	require.NoError(t, err)

	name := asm.Routes[0].Info.HandlerName
	assert.Contains(t, name, "itemController")
	assert.Contains(t, name, "List")
	assert.NotContains(t, name, "-fm")
	assert.NotContains(t, name, "/")
}
