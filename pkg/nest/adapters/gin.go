package adapters

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eatmoreapple/nest/pkg/nest"
)

// AsGinRouter builds a fresh gin.Engine serving every route of c.
func AsGinRouter(c nest.Controller) (*gin.Engine, error) {
	engine := gin.New()
	if err := MountGin(engine, "", c); err != nil {
		return nil, err
	}
	return engine, nil
}

// MountGin registers every route of the controllers on an existing gin
// engine under prefix.
func MountGin(engine *gin.Engine, prefix string, controllers ...nest.Controller) error {
	parts, err := nest.PathSpec(prefix).Parts()
	if err != nil {
		return fmt.Errorf("mount prefix: %w", err)
	}
	base := ginPath(parts)

	for _, c := range controllers {
		asm, err := nest.Assemble(c)
		if err != nil {
			return err
		}
		registerGin(engine, base, asm)
	}
	return nil
}

func registerGin(engine *gin.Engine, base string, asm *nest.Assembly) {
	prefix := base + ginPath(asm.PrefixParts)
	for _, r := range asm.Routes {
		engine.Handle(r.Method, prefix+ginPath(r.Parts), ginHandler(asm.Handler(r)))
	}
}

// ginPath renders parsed path parts in gin syntax: parameters become
// :name and the wildcard becomes *path.
func ginPath(parts []nest.PathPart) string {
	var b strings.Builder
	for _, part := range parts {
		switch part.Type {
		case nest.StaticPart:
			b.WriteString(part.Value)
		case nest.ParameterPart:
			b.WriteString(":")
			b.WriteString(part.Value)
		case nest.WildcardPart:
			b.WriteString("*path")
		}
	}
	return b.String()
}

// ginHandler converts a nest handler to a gin handler. Gin handlers do
// not return errors, so failures are written to the response here.
func ginHandler(h nest.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(&ginContext{ctx: c}); err != nil {
			var httpErr *nest.HTTPError
			if errors.As(err, &httpErr) {
				c.AbortWithStatusJSON(httpErr.StatusCode, gin.H{"error": httpErr.Message})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

// ginContext implements nest.Context for gin
type ginContext struct {
	ctx *gin.Context
}

func (gc *ginContext) Method() string {
	return gc.ctx.Request.Method
}

func (gc *ginContext) Path() string {
	return gc.ctx.Request.URL.Path
}

func (gc *ginContext) Param(name string) string {
	if name == "*" {
		// Gin keeps the leading slash on catch-all values
		return strings.TrimPrefix(gc.ctx.Param("path"), "/")
	}
	return gc.ctx.Param(name)
}

func (gc *ginContext) QueryParam(name string) string {
	return gc.ctx.Query(name)
}

func (gc *ginContext) Header(key string) string {
	return gc.ctx.GetHeader(key)
}

func (gc *ginContext) Bind(v any) error {
	return gc.ctx.ShouldBindJSON(v)
}

func (gc *ginContext) Get(key string) any {
	value, _ := gc.ctx.Get(key)
	return value
}

func (gc *ginContext) Set(key string, val any) {
	gc.ctx.Set(key, val)
}

func (gc *ginContext) SetHeader(key, value string) {
	gc.ctx.Header(key, value)
}

func (gc *ginContext) JSON(code int, v any) error {
	gc.ctx.JSON(code, v)
	return nil
}

func (gc *ginContext) String(code int, s string) error {
	gc.ctx.String(code, "%s", s)
	return nil
}

func (gc *ginContext) NoContent(code int) error {
	gc.ctx.Status(code)
	return nil
}
