package adapters

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/eatmoreapple/nest/pkg/nest"
)

// AsChiRouter builds a fresh chi.Mux serving every route of c.
func AsChiRouter(c nest.Controller) (*chi.Mux, error) {
	mux := chi.NewRouter()
	if err := MountChi(mux, "", c); err != nil {
		return nil, err
	}
	return mux, nil
}

// MountChi registers every route of the controllers on an existing chi
// router under prefix.
func MountChi(mux chi.Router, prefix string, controllers ...nest.Controller) error {
	parts, err := nest.PathSpec(prefix).Parts()
	if err != nil {
		return fmt.Errorf("mount prefix: %w", err)
	}
	base := chiPath(parts)

	for _, c := range controllers {
		asm, err := nest.Assemble(c)
		if err != nil {
			return err
		}
		registerChi(mux, base, asm)
	}
	return nil
}

func registerChi(mux chi.Router, base string, asm *nest.Assembly) {
	prefix := base + chiPath(asm.PrefixParts)
	for _, r := range asm.Routes {
		mux.Method(r.Method, prefix+chiPath(r.Parts), chiHandler(asm.Handler(r)))
	}
}

// chiPath renders parsed path parts in chi syntax: parameters keep the
// {name} form with any type hint dropped, since chi would read it as a
// regular expression. The wildcard becomes *.
func chiPath(parts []nest.PathPart) string {
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
			b.WriteString("*")
		}
	}
	return b.String()
}

func chiHandler(h nest.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := &httpContext{w: w, r: r, params: func(name string) string {
			return chi.URLParam(r, name)
		}}
		if err := h(ctx); err != nil {
			writeHTTPError(w, err)
		}
	}
}
