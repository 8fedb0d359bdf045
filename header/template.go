// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"errors"
	"fmt"
	"strings"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

var (
	// ErrMalformedTemplate is returned when placeholder delimiters in a
	// template are unbalanced.
	ErrMalformedTemplate = errors.New("malformed template")
	// ErrUnsupportedPlaceholder is returned for a placeholder name outside of
	// the supported set.
	ErrUnsupportedPlaceholder = errors.New("unsupported placeholder")
	// ErrMissingOption is returned when a template uses a placeholder whose
	// value was not provided.
	ErrMissingOption = errors.New("missing option")
)

// Placeholder is a named value that can be substituted into a template.
type Placeholder int

const (
	CurrentYear Placeholder = iota // {{current-year}}
	StartYear                      // {{start-year}}
	AuthorName                     // {{author-name}}
	AuthorEmail                    // {{author-email}}
)

var placeholderNames = [...]string{
	CurrentYear: "current-year",
	StartYear:   "start-year",
	AuthorName:  "author-name",
	AuthorEmail: "author-email",
}

// String returns the placeholder name as written in templates.
func (p Placeholder) String() string {
	if p < 0 || int(p) >= len(placeholderNames) {
		return fmt.Sprintf("Placeholder(%d)", int(p))
	}
	return placeholderNames[p]
}

func parsePlaceholder(name string) (Placeholder, error) {
	for p, n := range placeholderNames {
		if n == name {
			return Placeholder(p), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnsupportedPlaceholder, name)
}

// Data holds values for placeholders.
type Data struct {
	// CurrentYear is substituted for {{current-year}}. Callers usually pass
	// time.Now().Year().
	CurrentYear int
	StartYear   string
	// AuthorName tokens are joined with single spaces.
	AuthorName  []string
	AuthorEmail string
}

func (d Data) value(p Placeholder) (string, error) {
	switch p {
	case CurrentYear:
		return fmt.Sprintf("%04d", d.CurrentYear), nil
	case StartYear:
		return required(p, d.StartYear)
	case AuthorName:
		return required(p, strings.Join(d.AuthorName, " "))
	case AuthorEmail:
		return required(p, d.AuthorEmail)
	}
	panic(fmt.Sprintf("unhandled placeholder %v", p))
}

func required(p Placeholder, val string) (string, error) {
	if val == "" {
		return "", fmt.Errorf("%w: placeholder {{%s}} requires the %s option", ErrMissingOption, p, p)
	}
	return val, nil
}

// Template is a parsed header template.
type Template struct {
	// literals surround placeholders: literals[i] precedes placeholders[i],
	// so len(literals) == len(placeholders)+1.
	literals     []string
	placeholders []Placeholder
}

// ParseTemplate parses text containing {{placeholder}} tokens.
//
// Every opening delimiter must be followed by exactly one closing delimiter
// before the next opening one or the end of text.
func ParseTemplate(text string) (*Template, error) {
	parts := strings.Split(text, openDelim)
	t := &Template{literals: []string{parts[0]}}
	for i, part := range parts[1:] {
		n := i + 1
		pieces := strings.Split(part, closeDelim)
		switch len(pieces) {
		case 1:
			return nil, fmt.Errorf(
				"%w: placeholder must be enclosed in double braces, for example %q; did not find closing %q for the opening %q number %d",
				ErrMalformedTemplate, "{{current-year}}", closeDelim, openDelim, n,
			)
		case 2:
		default:
			return nil, fmt.Errorf(
				"%w: expected only one closing %q after the opening %q number %d, found %d",
				ErrMalformedTemplate, closeDelim, openDelim, n, len(pieces)-1,
			)
		}
		p, err := parsePlaceholder(pieces[0])
		if err != nil {
			return nil, err
		}
		t.placeholders = append(t.placeholders, p)
		t.literals = append(t.literals, pieces[1])
	}
	return t, nil
}

// Placeholders returns the placeholders used by t in order of appearance.
func (t *Template) Placeholders() []Placeholder {
	return append([]Placeholder(nil), t.placeholders...)
}

// Execute substitutes every placeholder in t with its value from d.
// It never returns partially substituted text.
func (t *Template) Execute(d Data) (string, error) {
	var sb strings.Builder
	sb.WriteString(t.literals[0])
	for i, p := range t.placeholders {
		val, err := d.value(p)
		if err != nil {
			return "", err
		}
		sb.WriteString(val)
		sb.WriteString(t.literals[i+1])
	}
	return sb.String(), nil
}

// Resolve parses text as a template and executes it with d.
func Resolve(text string, d Data) (string, error) {
	t, err := ParseTemplate(text)
	if err != nil {
		return "", err
	}
	return t.Execute(d)
}
