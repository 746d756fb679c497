package adapters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/eatmoreapple/nest/pkg/nest"
)

// AsFiberRouter builds a fresh fiber.App serving every route of c.
func AsFiberRouter(c nest.Controller) (*fiber.App, error) {
	app := fiber.New()
	if err := MountFiber(app, "", c); err != nil {
		return nil, err
	}
	return app, nil
}

// MountFiber registers every route of the controllers on an existing
// fiber app under prefix.
func MountFiber(app *fiber.App, prefix string, controllers ...nest.Controller) error {
	parts, err := nest.PathSpec(prefix).Parts()
	if err != nil {
		return fmt.Errorf("mount prefix: %w", err)
	}
	base := fiberPath(parts)

	for _, c := range controllers {
		asm, err := nest.Assemble(c)
		if err != nil {
			return err
		}
		registerFiber(app, base, asm)
	}
	return nil
}

func registerFiber(app *fiber.App, base string, asm *nest.Assembly) {
	prefix := base + fiberPath(asm.PrefixParts)
	for _, r := range asm.Routes {
		app.Add(r.Method, prefix+fiberPath(r.Parts), fiberHandler(asm.Handler(r)))
		if r.Options.Name != "" {
			// Name applies to the route registered last
			app.Name(r.Options.Name)
		}
	}
}

// fiberPath renders parsed path parts in fiber syntax: parameters become
// :name and the wildcard becomes *.
func fiberPath(parts []nest.PathPart) string {
	var b strings.Builder
	for _, part := range parts {
		switch part.Type {
		case nest.StaticPart:
			b.WriteString(part.Value)
		case nest.ParameterPart:
			b.WriteString(":")
			b.WriteString(part.Value)
		case nest.WildcardPart:
			b.WriteString("*")
		}
	}
	return b.String()
}

func fiberHandler(h nest.HandlerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := h(&fiberContext{ctx: c})
		var httpErr *nest.HTTPError
		if errors.As(err, &httpErr) {
			return fiber.NewError(httpErr.StatusCode, httpErr.Message)
		}
		return err
	}
}

// fiberContext implements nest.Context for fiber
type fiberContext struct {
	ctx *fiber.Ctx
}

func (fc *fiberContext) Method() string {
	return fc.ctx.Method()
}

func (fc *fiberContext) Path() string {
	return fc.ctx.Path()
}

func (fc *fiberContext) Param(name string) string {
	return fc.ctx.Params(name)
}

func (fc *fiberContext) QueryParam(name string) string {
	return fc.ctx.Query(name)
}

func (fc *fiberContext) Header(key string) string {
	return fc.ctx.Get(key)
}

func (fc *fiberContext) Bind(v any) error {
	return fc.ctx.BodyParser(v)
}

func (fc *fiberContext) Get(key string) any {
	return fc.ctx.Locals(key)
}

func (fc *fiberContext) Set(key string, val any) {
	fc.ctx.Locals(key, val)
}

func (fc *fiberContext) SetHeader(key, value string) {
	fc.ctx.Set(key, value)
}

func (fc *fiberContext) JSON(code int, v any) error {
	return fc.ctx.Status(code).JSON(v)
}

func (fc *fiberContext) String(code int, s string) error {
	return fc.ctx.Status(code).SendString(s)
}

func (fc *fiberContext) NoContent(code int) error {
	return fc.ctx.SendStatus(code)
}
