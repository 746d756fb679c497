package nest

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/fatih/color"
)

var methodColors = map[string]*color.Color{
	http.MethodGet:     color.New(color.FgGreen),
	http.MethodPost:    color.New(color.FgCyan),
	http.MethodPut:     color.New(color.FgYellow),
	http.MethodPatch:   color.New(color.FgYellow),
	http.MethodDelete:  color.New(color.FgRed),
	http.MethodOptions: color.New(color.FgBlue),
	http.MethodHead:    color.New(color.FgBlue),
	http.MethodTrace:   color.New(color.FgMagenta),
}

// FprintRoutes writes an aligned table of route records to w, one route
// per line. Methods are colored by verb unless color output is disabled.
func FprintRoutes(w io.Writer, infos []RouteInfo) {
	methodWidth, pathWidth := 0, 0
	for _, info := range infos {
		if len(info.Method) > methodWidth {
			methodWidth = len(info.Method)
		}
		if len(info.Path) > pathWidth {
			pathWidth = len(info.Path)
		}
	}

	for _, info := range infos {
		method := fmt.Sprintf("%-*s", methodWidth, info.Method)
		if c, ok := methodColors[info.Method]; ok {
			method = c.Sprint(method)
		}

		line := fmt.Sprintf("%s  %-*s  %s", method, pathWidth, info.Path, info.HandlerName)
		if info.Name != "" {
			line += fmt.Sprintf(" (%s)", info.Name)
		}
		if len(info.Tags) > 0 {
			line += fmt.Sprintf(" [%s]", strings.Join(info.Tags, ", "))
		}
		fmt.Fprintln(w, line)
	}
}

// PrintRoutes writes the route table to standard output.
func PrintRoutes(infos []RouteInfo) {
	FprintRoutes(os.Stdout, infos)
}
