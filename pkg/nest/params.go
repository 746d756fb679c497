package nest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Typed parameter access. The helpers read through Context, so they work
// with every adapter.

// ParamInt returns the named path parameter as an int.
func ParamInt(c Context, name string) (int, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, fmt.Errorf("path parameter %q is empty", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("path parameter %q: %w", name, err)
	}
	return v, nil
}

// ParamInt64 returns the named path parameter as an int64.
func ParamInt64(c Context, name string) (int64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, fmt.Errorf("path parameter %q is empty", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path parameter %q: %w", name, err)
	}
	return v, nil
}

// ParamFloat returns the named path parameter as a float64.
func ParamFloat(c Context, name string) (float64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, fmt.Errorf("path parameter %q is empty", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("path parameter %q: %w", name, err)
	}
	return v, nil
}

// ParamBool returns the named path parameter as a bool.
func ParamBool(c Context, name string) (bool, error) {
	raw := c.Param(name)
	if raw == "" {
		return false, fmt.Errorf("path parameter %q is empty", name)
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("path parameter %q: %w", name, err)
	}
	return v, nil
}

// ParamUUID returns the named path parameter as a UUID.
func ParamUUID(c Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("path parameter %q is empty", name)
	}
	v, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("path parameter %q: %w", name, err)
	}
	return v, nil
}

// QueryDefault returns the named query parameter, or fallback when the
// parameter is absent or empty.
func QueryDefault(c Context, name, fallback string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}
	return fallback
}

// QueryInt returns the named query parameter as an int, or fallback when
// the parameter is absent or malformed.
func QueryInt(c Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}
	return v
}

// QueryBool reports whether the named query parameter holds a truthy
// value: "1", "t", "true", "y", "yes" or "on", case insensitive.
func QueryBool(c Context, name string) bool {
	switch strings.ToLower(c.QueryParam(name)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	}
	return false
}
