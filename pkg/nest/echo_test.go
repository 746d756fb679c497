package nest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/items", "/items"},
		{"/items/{id}", "/items/:id"},
		{"/items/{id:int}", "/items/:id"},
		{"/docs/{*}", "/docs/*"},
		{"/users/{userId:int}/posts/{postId}", "/users/:userId/posts/:postId"},
		{"", ""},
	}
	for _, tc := range tests {
		parts, err := PathSpec(tc.path).Parts()
		require.NoError(t, err)
		assert.Equal(t, tc.want, EchoPath(parts), tc.path)
	}
}

func TestRegisterEcho(t *testing.T) {
	asm, err := Assemble(&itemController{})
	require.NoError(t, err)

	e := echo.New()
	RegisterEcho(e, "", asm)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Reading items"}`, rec.Body.String())
}

func TestRegisterEcho_Base(t *testing.T) {
	asm, err := Assemble(&itemController{})
	require.NoError(t, err)

	e := echo.New()
	RegisterEcho(e, "/api/v1", asm)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/items", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterEcho_RouteName(t *testing.T) {
	h := func(ctx Context) error { return ctx.NoContent(http.StatusNoContent) }
	asm, err := Assemble(routeListController{routes: []Route{
		Get("/named", h, WithName("my-route")),
	}})
	require.NoError(t, err)

	e := echo.New()
	RegisterEcho(e, "", asm)

	names := make([]string, 0, 1)
	for _, r := range e.Routes() {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "my-route")
}

func TestEchoHandler_TypedParam(t *testing.T) {
	show := func(ctx Context) error {
		id, err := ParamInt(ctx, "id")
		if err != nil {
			return ErrBadRequest(err.Error())
		}
		return ctx.JSON(http.StatusOK, map[string]int{"id": id})
	}

	asm, err := Assemble(routeListController{routes: []Route{Get("/users/{id:int}", show)}})
	require.NoError(t, err)

	e := echo.New()
	RegisterEcho(e, "", asm)

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":42}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEchoHandler_HTTPErrorMapping(t *testing.T) {
	boom := func(ctx Context) error { return ErrNotFound("no such item") }
	asm, err := Assemble(routeListController{routes: []Route{Get("/missing", boom)}})
	require.NoError(t, err)

	e := echo.New()
	RegisterEcho(e, "", asm)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no such item")
}
