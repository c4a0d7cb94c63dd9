package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// FieldErrors maps a field path (for example "name" or "address.city")
// to a human-readable validation message. It is the only error shape
// validation produces; it never escapes as a panic.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	paths := make([]string, 0, len(fe))
	for path := range fe {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var b strings.Builder
	b.WriteString("invalid input")
	for _, path := range paths {
		b.WriteString("; ")
		b.WriteString(path)
		b.WriteString(": ")
		b.WriteString(fe[path])
	}
	return b.String()
}

// Is makes errors.Is(err, ErrInvalidInput) hold for any FieldErrors.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrInvalidInput
}
