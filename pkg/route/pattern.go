package route

import (
	"fmt"
	"strings"
)

// catchAllKey is the URL parameter key chi assigns to a trailing wildcard.
const catchAllKey = "*"

// Pattern is a route path compiled into a chi routing pattern.
//
// Supported syntax:
//
//	/static          literal segment
//	/:id             named parameter matching one segment
//	/:id(\d+)        named parameter constrained by a regular expression
//	/user-:id        static prefix followed by a parameter
//	/:path(.*)       trailing wildcard capturing the remaining path
//	/:path*          trailing wildcard capturing the remaining path
//
// Optional (?) parameters and repeatable (+, *) parameters that are not the
// final segment are rejected.
type Pattern struct {
	source   string
	chi      string
	shape    string
	params   []string
	catchAll string
}

// Compile parses a router path pattern.
func Compile(pattern string) (*Pattern, error) {
	if pattern == "" || !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, pattern)
	}

	p := &Pattern{source: pattern}
	segments := strings.Split(pattern[1:], "/")
	out := make([]string, 0, len(segments))
	shape := make([]string, 0, len(segments))

	for i, seg := range segments {
		last := i == len(segments)-1
		compiled, err := p.compileSegment(seg, last)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
		}
		out = append(out, compiled)
		shape = append(shape, shapeOf(compiled))
	}

	p.chi = "/" + strings.Join(out, "/")
	p.shape = "/" + strings.Join(shape, "/")
	return p, nil
}

func (p *Pattern) compileSegment(seg string, last bool) (string, error) {
	idx := strings.IndexByte(seg, ':')
	if idx < 0 {
		if strings.ContainsAny(seg, "{}*()") {
			return "", fmt.Errorf("reserved character in segment %q", seg)
		}
		return seg, nil
	}

	prefix := seg[:idx]
	if strings.ContainsAny(prefix, "{}*()") {
		return "", fmt.Errorf("reserved character in segment %q", seg)
	}

	rest := seg[idx+1:]
	name, rest := readName(rest)
	if name == "" {
		return "", fmt.Errorf("missing parameter name in segment %q", seg)
	}
	for _, existing := range p.params {
		if existing == name {
			return "", fmt.Errorf("duplicate parameter %q", name)
		}
	}

	var regex string
	if strings.HasPrefix(rest, "(") {
		end := closingParen(rest)
		if end < 0 {
			return "", fmt.Errorf("unbalanced parentheses in segment %q", seg)
		}
		regex = rest[1:end]
		rest = rest[end+1:]
	}

	var modifier string
	if rest != "" {
		if len(rest) > 1 || !strings.ContainsAny(rest, "?*+") {
			return "", fmt.Errorf("unexpected %q after parameter %q", rest, name)
		}
		modifier = rest
	}

	p.params = append(p.params, name)

	wildcard := modifier == "*" || ((regex == ".*" || regex == ".+") && modifier == "")
	switch {
	case wildcard:
		if !last || prefix != "" {
			return "", fmt.Errorf("wildcard parameter %q must be a whole final segment", name)
		}
		p.catchAll = name
		return catchAllKey, nil
	case modifier != "":
		return "", fmt.Errorf("modifier %q on parameter %q is not supported", modifier, name)
	case regex != "":
		if strings.Contains(regex, "/") {
			return "", fmt.Errorf("parameter %q regex may not match /", name)
		}
		return prefix + "{" + name + ":" + regex + "}", nil
	default:
		return prefix + "{" + name + "}", nil
	}
}

// Source returns the pattern as written.
func (p *Pattern) Source() string { return p.source }

// Chi returns the equivalent chi routing pattern.
func (p *Pattern) Chi() string { return p.chi }

// Shape returns the chi pattern with parameter names removed. Two patterns
// with the same shape match exactly the same paths.
func (p *Pattern) Shape() string { return p.shape }

// Params returns the parameter names in declaration order.
func (p *Pattern) Params() []string { return cloneStrings(p.params) }

// CatchAll reports whether the pattern ends in a wildcard capture.
func (p *Pattern) CatchAll() bool { return p.catchAll != "" }

// Key returns the chi URL parameter key for the named parameter.
func (p *Pattern) Key(name string) string {
	if name == p.catchAll {
		return catchAllKey
	}
	return name
}

func readName(s string) (string, string) {
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			i++
			continue
		}
		break
	}
	return s[:i], s[i:]
}

func closingParen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// shapeOf strips the parameter name from a compiled chi segment.
func shapeOf(seg string) string {
	open := strings.IndexByte(seg, '{')
	if open < 0 {
		return seg
	}
	inner := seg[open+1 : len(seg)-1]
	if i := strings.IndexByte(inner, ':'); i >= 0 {
		return seg[:open] + "{" + inner[i:] + "}"
	}
	return seg[:open] + "{}"
}
