package models

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Method is an HTTP verb accepted by the Management API
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

// HasBody reports whether requests with this method carry a JSON payload
func (m Method) HasBody() bool {
	return m == MethodPost || m == MethodPut || m == MethodPatch
}

// ActionEntry maps an action name to a Management API endpoint
type ActionEntry struct {
	Method Method
	Path   PathTemplate
}

// ActionInfo describes an action for the GET /actions listing
type ActionInfo struct {
	Name       string   `json:"name"`
	Method     Method   `json:"method"`
	Path       string   `json:"path"`
	Parameters []string `json:"parameters"`
}

// templatePart is either literal path text or the name of a placeholder
type templatePart struct {
	text        string
	placeholder bool
}

// PathTemplate is a URL path with {name} placeholders, parsed ahead of time
type PathTemplate struct {
	raw   string
	parts []templatePart
}

// ParsePathTemplate splits raw into literal segments and placeholders.
func ParsePathTemplate(raw string) (PathTemplate, error) {
	tmpl := PathTemplate{raw: raw}

	rest := raw
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open == -1 {
			if strings.IndexByte(rest, '}') != -1 {
				return PathTemplate{}, fmt.Errorf("unbalanced '}' in path template %q", raw)
			}
			tmpl.parts = append(tmpl.parts, templatePart{text: rest})
			break
		}
		if open > 0 {
			if strings.IndexByte(rest[:open], '}') != -1 {
				return PathTemplate{}, fmt.Errorf("unbalanced '}' in path template %q", raw)
			}
			tmpl.parts = append(tmpl.parts, templatePart{text: rest[:open]})
		}

		end := strings.IndexByte(rest[open:], '}')
		if end == -1 {
			return PathTemplate{}, fmt.Errorf("unterminated placeholder in path template %q", raw)
		}
		name := rest[open+1 : open+end]
		if name == "" || strings.ContainsAny(name, "{/") {
			return PathTemplate{}, fmt.Errorf("invalid placeholder %q in path template %q", name, raw)
		}
		tmpl.parts = append(tmpl.parts, templatePart{text: name, placeholder: true})
		rest = rest[open+end+1:]
	}

	return tmpl, nil
}

// MustParsePathTemplate is like ParsePathTemplate but panics on error.
// It is meant for the static action table.
func MustParsePathTemplate(raw string) PathTemplate {
	tmpl, err := ParsePathTemplate(raw)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// String returns the template as written
func (t PathTemplate) String() string {
	return t.raw
}

// Placeholders returns the placeholder names in order of appearance
func (t PathTemplate) Placeholders() []string {
	names := []string{}
	for _, p := range t.parts {
		if p.placeholder {
			names = append(names, p.text)
		}
	}
	return names
}

// Expand builds a concrete path, calling lookup once per placeholder.
// Substituted values are path-escaped. The first lookup error is returned as is.
func (t PathTemplate) Expand(lookup func(name string) (string, error)) (string, error) {
	var b strings.Builder
	for _, p := range t.parts {
		if !p.placeholder {
			b.WriteString(p.text)
			continue
		}
		value, err := lookup(p.text)
		if err != nil {
			return "", err
		}
		b.WriteString(url.PathEscape(value))
	}
	return b.String(), nil
}
