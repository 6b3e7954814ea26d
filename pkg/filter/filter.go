// Package filter implements name-based exclusion of listing entries using
// doublestar glob patterns.
package filter

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// pattern is a single parsed exclusion pattern.
type pattern struct {
	// negated indicates that a match re-includes the name.
	negated bool
	// directoryOnly indicates that the pattern only applies to directories.
	directoryOnly bool
	// glob is the doublestar pattern itself.
	glob string
}

// newPattern validates and parses a pattern string. A leading "!"
// negates the pattern and a trailing "/" restricts it to directories.
func newPattern(text string) (*pattern, error) {
	// Reject empty patterns.
	if text == "" {
		return nil, errors.New("empty pattern")
	}

	// Check for negation.
	var negated bool
	if text[0] == '!' {
		negated = true
		text = text[1:]
	}
	if text == "" {
		return nil, errors.New("negated empty pattern")
	}

	// Check for a directory-only restriction.
	var directoryOnly bool
	if text[len(text)-1] == '/' {
		directoryOnly = true
		text = text[:len(text)-1]
	}
	if text == "" {
		return nil, errors.New("directory-only empty pattern")
	}

	// Validate the pattern. Matching has to be performed against a non-empty
	// name for bad pattern errors to be detected.
	if _, err := doublestar.Match(text, "a"); err != nil {
		return nil, errors.Wrap(err, "unable to validate pattern")
	}

	// Success.
	return &pattern{
		negated:       negated,
		directoryOnly: directoryOnly,
		glob:          text,
	}, nil
}

// matches indicates whether or not the pattern matches the specified name.
func (p *pattern) matches(name string, directory bool) bool {
	if p.directoryOnly && !directory {
		return false
	}
	match, _ := doublestar.Match(p.glob, name)
	return match
}

// Filter is an ordered set of exclusion patterns. Later patterns take
// precedence over earlier ones.
type Filter struct {
	// patterns are the parsed patterns.
	patterns []*pattern
}

// ValidatePattern checks whether or not a pattern string is valid.
func ValidatePattern(text string) error {
	_, err := newPattern(text)
	return err
}

// NewFilter creates a new filter from the specified pattern strings.
func NewFilter(specifications []string) (*Filter, error) {
	patterns := make([]*pattern, 0, len(specifications))
	for _, text := range specifications {
		if p, err := newPattern(text); err != nil {
			return nil, errors.Wrapf(err, "invalid pattern (%s)", text)
		} else {
			patterns = append(patterns, p)
		}
	}
	return &Filter{patterns}, nil
}

// Excluded indicates whether or not the specified name is excluded. A nil or
// empty filter excludes nothing.
func (f *Filter) Excluded(name string, directory bool) bool {
	if f == nil {
		return false
	}
	excluded := false
	for _, p := range f.patterns {
		if p.negated != excluded {
			continue
		}
		if p.matches(name, directory) {
			excluded = !p.negated
		}
	}
	return excluded
}
