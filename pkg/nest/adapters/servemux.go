package adapters

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/eatmoreapple/nest/pkg/nest"
)

// AsServeMux builds a fresh http.ServeMux serving every route of c,
// using method aware patterns.
func AsServeMux(c nest.Controller) (*http.ServeMux, error) {
	mux := http.NewServeMux()
	if err := MountServeMux(mux, "", c); err != nil {
		return nil, err
	}
	return mux, nil
}

// MountServeMux registers every route of the controllers on an existing
// mux under prefix.
func MountServeMux(mux *http.ServeMux, prefix string, controllers ...nest.Controller) error {
	parts, err := nest.PathSpec(prefix).Parts()
	if err != nil {
		return fmt.Errorf("mount prefix: %w", err)
	}
	base := muxPath(parts)

	for _, c := range controllers {
		asm, err := nest.Assemble(c)
		if err != nil {
			return err
		}
		registerServeMux(mux, base, asm)
	}
	return nil
}

func registerServeMux(mux *http.ServeMux, base string, asm *nest.Assembly) {
	prefix := base + muxPath(asm.PrefixParts)
	for _, r := range asm.Routes {
		pattern := r.Method + " " + prefix + muxPath(r.Parts)
		mux.HandleFunc(pattern, muxHandler(asm.Handler(r)))
	}
}

// muxPath renders parsed path parts in ServeMux syntax: parameters keep
// the {name} form with any type hint dropped and the wildcard becomes
// {rest...}.
func muxPath(parts []nest.PathPart) string {
	var b strings.Builder
	for _, part := range parts {
		switch part.Type {
		case nest.StaticPart:
			b.WriteString(part.Value)
		case nest.ParameterPart:
			b.WriteString("{")
			b.WriteString(part.Value)
			b.WriteString("}")
		case nest.WildcardPart:
			b.WriteString("{rest...}")
		}
	}
	return b.String()
}

func muxHandler(h nest.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := &httpContext{w: w, r: r, params: func(name string) string {
			if name == "*" {
				return r.PathValue("rest")
			}
			return r.PathValue(name)
		}}
		if err := h(ctx); err != nil {
			writeHTTPError(w, err)
		}
	}
}
