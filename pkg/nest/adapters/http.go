package adapters

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/eatmoreapple/nest/pkg/nest"
)

// httpContext implements nest.Context over plain net/http primitives.
// The chi, httprouter and servemux adapters share it and differ only in
// how path parameters are looked up.
type httpContext struct {
	w      http.ResponseWriter
	r      *http.Request
	params func(name string) string
	store  map[string]any
}

func (hc *httpContext) Method() string {
	return hc.r.Method
}

func (hc *httpContext) Path() string {
	return hc.r.URL.Path
}

func (hc *httpContext) Param(name string) string {
	if hc.params == nil {
		return ""
	}
	return hc.params(name)
}

func (hc *httpContext) QueryParam(name string) string {
	return hc.r.URL.Query().Get(name)
}

func (hc *httpContext) Header(key string) string {
	return hc.r.Header.Get(key)
}

func (hc *httpContext) Bind(v any) error {
	return json.NewDecoder(hc.r.Body).Decode(v)
}

func (hc *httpContext) Get(key string) any {
	return hc.store[key]
}

func (hc *httpContext) Set(key string, val any) {
	if hc.store == nil {
		hc.store = make(map[string]any)
	}
	hc.store[key] = val
}

func (hc *httpContext) SetHeader(key, value string) {
	hc.w.Header().Set(key, value)
}

func (hc *httpContext) JSON(code int, v any) error {
	hc.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	hc.w.WriteHeader(code)
	return json.NewEncoder(hc.w).Encode(v)
}

func (hc *httpContext) String(code int, s string) error {
	hc.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	hc.w.WriteHeader(code)
	_, err := io.WriteString(hc.w, s)
	return err
}

func (hc *httpContext) NoContent(code int) error {
	hc.w.WriteHeader(code)
	return nil
}

// writeHTTPError renders err on w, honoring HTTPError status codes.
func writeHTTPError(w http.ResponseWriter, err error) {
	var httpErr *nest.HTTPError
	if errors.As(err, &httpErr) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(httpErr.StatusCode)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": httpErr.Message})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
