package adapters

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/eatmoreapple/nest/pkg/nest"
)

// AsHTTPRouter builds a fresh httprouter.Router serving every route of c.
func AsHTTPRouter(c nest.Controller) (*httprouter.Router, error) {
	router := httprouter.New()
	if err := MountHTTPRouter(router, "", c); err != nil {
		return nil, err
	}
	return router, nil
}

// MountHTTPRouter registers every route of the controllers on an
// existing router under prefix.
func MountHTTPRouter(router *httprouter.Router, prefix string, controllers ...nest.Controller) error {
	parts, err := nest.PathSpec(prefix).Parts()
	if err != nil {
		return fmt.Errorf("mount prefix: %w", err)
	}
	base := httprouterPath(parts)

	for _, c := range controllers {
		asm, err := nest.Assemble(c)
		if err != nil {
			return err
		}
		registerHTTPRouter(router, base, asm)
	}
	return nil
}

func registerHTTPRouter(router *httprouter.Router, base string, asm *nest.Assembly) {
	prefix := base + httprouterPath(asm.PrefixParts)
	for _, r := range asm.Routes {
		router.Handle(r.Method, prefix+httprouterPath(r.Parts), httprouterHandler(asm.Handler(r)))
	}
}

// httprouterPath renders parsed path parts in httprouter syntax:
// parameters become :name and the wildcard becomes *path.
func httprouterPath(parts []nest.PathPart) string {
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

func httprouterHandler(h nest.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx := &httpContext{w: w, r: r, params: func(name string) string {
			if name == "*" {
				// httprouter keeps the leading slash on catch-all values
				return strings.TrimPrefix(ps.ByName("path"), "/")
			}
			return ps.ByName(name)
		}}
		if err := h(ctx); err != nil {
			writeHTTPError(w, err)
		}
	}
}
