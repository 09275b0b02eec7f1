// Package propertypath resolves dotted selectors such as
// "vitals.hitPoints.value" against a derived-data tree.
package propertypath

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/special-api/internal/errors"
)

// MetaExpected is the error meta key a Setter uses to name the kind of
// value a property accepts.
const MetaExpected = "expected"

// Holder exposes named sub-properties of a leaf value.
type Holder interface {
	Property(name string) (any, bool)
}

// Setter accepts writes to named sub-properties. CheckProperty reports what
// SetProperty would return without writing: FailedPrecondition for a
// read-only name, InvalidArgument for a rejected value.
type Setter interface {
	CheckProperty(name string, value any) error
	SetProperty(name string, value any) error
}

// Get walks root along path. Maps, slices and Holders are traversed; the
// second result is false when any segment is missing.
func Get(root any, path string) (any, bool) {
	segments, ok := split(path)
	if !ok {
		return nil, false
	}

	cur := root
	for _, seg := range segments {
		next, ok := step(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Set replaces the value at path. Only existing properties can be written.
func Set(root any, path string, value any) error {
	parent, last, err := resolveParent(root, path, value)
	if err != nil {
		return err
	}

	switch p := parent.(type) {
	case map[string]any:
		p[last] = value
	case []any:
		i, _ := strconv.Atoi(last)
		p[i] = value
	case Setter:
		return p.SetProperty(last, value)
	}
	return nil
}

// Check reports the error Set would return for the same arguments, leaving
// root untouched.
func Check(root any, path string, value any) error {
	_, _, err := resolveParent(root, path, value)
	return err
}

func resolveParent(root any, path string, value any) (any, string, error) {
	segments, ok := split(path)
	if !ok {
		return nil, "", errors.InvalidArgumentf("invalid property path %q", path)
	}

	parent := root
	for _, seg := range segments[:len(segments)-1] {
		next, ok := step(parent, seg)
		if !ok {
			return nil, "", errors.NotFoundf("property path %q does not exist", path)
		}
		parent = next
	}

	last := segments[len(segments)-1]
	switch p := parent.(type) {
	case map[string]any:
		if _, exists := p[last]; !exists {
			return nil, "", errors.NotFoundf("property path %q does not exist", path)
		}
		return parent, last, nil
	case []any:
		i, err := strconv.Atoi(last)
		if err != nil || i < 0 || i >= len(p) {
			return nil, "", errors.NotFoundf("property path %q does not exist", path)
		}
		return parent, last, nil
	case Setter:
		if err := p.CheckProperty(last, value); err != nil {
			return nil, "", err
		}
		return parent, last, nil
	}
	return nil, "", errors.FailedPreconditionf("property path %q is not writable", path)
}

func split(path string) ([]string, bool) {
	if path == "" {
		return nil, false
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, false
		}
	}
	return segments, true
}

func step(cur any, seg string) (any, bool) {
	switch c := cur.(type) {
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	case Holder:
		return c.Property(seg)
	}
	return nil, false
}
