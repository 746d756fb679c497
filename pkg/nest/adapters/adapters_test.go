package adapters

import (
	"net/http"

	"github.com/eatmoreapple/nest/pkg/nest"
)

// itemsController is the shared fixture for the adapter tests: a static
// route, a JSON bind route, a typed parameter route and a wildcard route,
// with per instance state.
type itemsController struct {
	hits int
}

func (c *itemsController) List(ctx nest.Context) error {
	c.hits++
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Reading items"})
}

func (c *itemsController) Create(ctx nest.Context) error {
	var item map[string]any
	if err := ctx.Bind(&item); err != nil {
		return nest.ErrBadRequest("invalid item payload")
	}
	return ctx.JSON(http.StatusOK, map[string]any{"message": "Creating item", "item": item})
}

func (c *itemsController) Show(ctx nest.Context) error {
	id, err := nest.ParamInt(ctx, "id")
	if err != nil {
		return nest.ErrBadRequest(err.Error())
	}
	if id == 0 {
		return nest.ErrNotFound("no such item")
	}
	return ctx.JSON(http.StatusOK, map[string]int{"id": id})
}

func (c *itemsController) Docs(ctx nest.Context) error {
	return ctx.String(http.StatusOK, ctx.Param("*"))
}

func (c *itemsController) Routes() []nest.Route {
	return []nest.Route{
		nest.Get("/items", c.List),
		nest.Post("/items", c.Create),
		nest.Get("/items/{id:int}", c.Show),
		nest.Get("/docs/{*}", c.Docs),
	}
}

// prefixedController exercises prefix translation in every adapter.
type prefixedController struct{}

func (prefixedController) Prefix() string { return "/api/v1" }

func (prefixedController) ping(ctx nest.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

func (c prefixedController) Routes() []nest.Route {
	return []nest.Route{nest.Get("/ping", c.ping)}
}

// brokenController fails assembly in every adapter.
type brokenController struct{}

func (brokenController) Routes() []nest.Route {
	return []nest.Route{nest.Get("/x", nil)}
}
