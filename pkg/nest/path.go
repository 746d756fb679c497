package nest

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// PathPartType represents the type of path part
type PathPartType int

const (
	StaticPart PathPartType = iota
	ParameterPart
	WildcardPart
)

// PathPart represents a single part of a parsed path spec
type PathPart struct {
	Type      PathPartType
	Value     string // For static parts: the literal text, for parameters: the parameter name
	ParamType string // For parameters: the type hint (e.g. "int", "uuid"), empty for untyped
}

// PathSpec is a route path in generic form: static text interleaved with
// {name} or {name:type} parameters and the {*} wildcard. Adapters
// translate the parsed parts into each framework's native syntax, so the
// same declaration serves every supported router.
type PathSpec string

// Raw returns the path spec as declared.
func (p PathSpec) Raw() string {
	return string(p)
}

type pathNode struct {
	Parts []pathPartNode `parser:"@@*"`
}

type pathPartNode struct {
	Param  *string `parser:"'{' @Text '}'"`
	Static *string `parser:"| @Text"`
}

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Open", Pattern: `\{`},
	{Name: "Close", Pattern: `\}`},
	{Name: "Text", Pattern: `[^{}]+`},
})

var pathParser = participle.MustBuild[pathNode](
	participle.Lexer(pathLexer),
)

// Parts parses the path spec and returns the individual parts. Unbalanced
// braces, empty braces and empty parameter names are reported as
// ErrBadPath.
func (p PathSpec) Parts() ([]PathPart, error) {
	node, err := pathParser.ParseString("", string(p))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadPath, string(p), err)
	}

	parts := make([]PathPart, 0, len(node.Parts))
	for _, pn := range node.Parts {
		switch {
		case pn.Param != nil:
			content := *pn.Param
			if content == "*" {
				parts = append(parts, PathPart{Type: WildcardPart, Value: "*"})
				continue
			}

			name := content
			paramType := ""
			if colonIndex := strings.Index(content, ":"); colonIndex != -1 {
				name = content[:colonIndex]
				paramType = content[colonIndex+1:]
			}
			if name == "" || strings.ContainsAny(name, "*/ ") {
				return nil, fmt.Errorf("%w %q: bad parameter %q", ErrBadPath, string(p), content)
			}

			parts = append(parts, PathPart{Type: ParameterPart, Value: name, ParamType: paramType})
		case pn.Static != nil:
			parts = append(parts, PathPart{Type: StaticPart, Value: *pn.Static})
		}
	}
	return parts, nil
}

// ParamNames returns the parameter names of the path spec in order of
// appearance. Malformed specs yield nil.
func (p PathSpec) ParamNames() []string {
	parts, err := p.Parts()
	if err != nil {
		return nil
	}
	var names []string
	for _, part := range parts {
		if part.Type == ParameterPart {
			names = append(names, part.Value)
		}
	}
	return names
}
