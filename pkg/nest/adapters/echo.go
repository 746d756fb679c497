// Package adapters converts controllers into native routers for popular
// Go web frameworks. Every As*Router call assembles the controller again
// and returns a fresh, independent router; the Mount* variants register
// the same routes on an existing router under a path prefix instead.
package adapters

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/eatmoreapple/nest/pkg/nest"
)

// AsEchoRouter builds a fresh echo.Echo serving every route of c.
func AsEchoRouter(c nest.Controller) (*echo.Echo, error) {
	e := echo.New()
	if err := MountEcho(e, "", c); err != nil {
		return nil, err
	}
	return e, nil
}

// MountEcho registers every route of the controllers on an existing echo
// instance under prefix. The prefix uses the generic path syntax and may
// be empty.
func MountEcho(e *echo.Echo, prefix string, controllers ...nest.Controller) error {
	parts, err := nest.PathSpec(prefix).Parts()
	if err != nil {
		return fmt.Errorf("mount prefix: %w", err)
	}
	base := nest.EchoPath(parts)

	for _, c := range controllers {
		asm, err := nest.Assemble(c)
		if err != nil {
			return err
		}
		nest.RegisterEcho(e, base, asm)
	}
	return nil
}
