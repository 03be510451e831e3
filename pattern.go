package navi

import (
	"fmt"
	"regexp"
	"strings"
)

// Params holds the values extracted from dynamic path segments, keyed
// by parameter name.
type Params map[string]string

// Get returns the value bound to name, or the empty string.
func (p Params) Get(name string) string {
	return p[name]
}

// Matcher is the compiled form of a route pattern.
type Matcher struct {
	pattern string
	names   []string
	re      *regexp.Regexp
}

// Compile turns a route pattern such as "user/[id]" into a Matcher.
// The pattern goes through the same normalization as paths do, so
// "/user/[id]/" and "user/[id]" compile to the same matcher.
func Compile(pattern string) (*Matcher, error) {
	normalized := Normalize(pattern)

	var names []string
	var buf strings.Builder
	buf.WriteByte('^')
	if normalized == "/" {
		buf.WriteString(regexp.QuoteMeta(normalized))
	} else {
		seen := make(map[string]struct{})
		for i, seg := range strings.Split(normalized, "/") {
			if i > 0 {
				buf.WriteByte('/')
			}

			name, isParam, err := parseSegment(seg)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrMalformedPattern, pattern, err)
			}
			if !isParam {
				buf.WriteString(regexp.QuoteMeta(seg))
				continue
			}
			if _, ok := seen[name]; ok {
				return nil, fmt.Errorf("%w %q: duplicate parameter %q", ErrMalformedPattern, pattern, name)
			}
			seen[name] = struct{}{}
			names = append(names, name)
			buf.WriteString(`([^/]+)`)
		}
	}
	buf.WriteByte('$')

	re, err := regexp.Compile(buf.String())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrMalformedPattern, pattern, err)
	}

	return &Matcher{
		pattern: normalized,
		names:   names,
		re:      re,
	}, nil
}

// MustCompile is like Compile but panics if the pattern is malformed.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// parseSegment reports whether seg is a parameter slot ("[name]"), and
// if so, the parameter name. Brackets anywhere else are rejected.
func parseSegment(seg string) (string, bool, error) {
	open := strings.Count(seg, "[")
	closing := strings.Count(seg, "]")
	if open == 0 && closing == 0 {
		return "", false, nil
	}

	if open != 1 || closing != 1 || !strings.HasPrefix(seg, "[") || !strings.HasSuffix(seg, "]") {
		return "", false, fmt.Errorf("unbalanced brackets in segment %q", seg)
	}

	name := seg[1 : len(seg)-1]
	if name == "" {
		return "", false, fmt.Errorf("empty parameter name in segment %q", seg)
	}
	return name, true, nil
}

// Pattern returns the normalized pattern the matcher was compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Names returns the parameter names in declared order.
func (m *Matcher) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Match reports whether the normalized path matches the whole pattern,
// and returns the extracted parameters if it does.
func (m *Matcher) Match(path string) (Params, bool) {
	values := m.re.FindStringSubmatch(path)
	if values == nil {
		return nil, false
	}

	params := make(Params, len(m.names))
	for i, name := range m.names {
		params[name] = values[i+1]
	}
	return params, true
}
