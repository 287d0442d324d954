package window

import (
	"strings"
	"unicode"
)

// Scheme selects how windows are keyed in a Manager
type Scheme int

const (
	// SchemeName keys windows by a unique, whitespace-free name
	SchemeName Scheme = iota
	// SchemeKind keys windows by a kind tag, one window per kind
	SchemeKind
)

// String returns the config spelling of the scheme
func (s Scheme) String() string {
	switch s {
	case SchemeKind:
		return "kind"
	default:
		return "name"
	}
}

// Kind is an explicit type tag for a family of windows
type Kind string

// Identity is the key a window is registered under
type Identity struct {
	scheme Scheme
	key    string
}

// Named returns a name identity. All whitespace is stripped from name.
func Named(name string) Identity {
	return Identity{scheme: SchemeName, key: NormalizeName(name)}
}

// KindOf returns a kind identity
func KindOf(k Kind) Identity {
	return Identity{scheme: SchemeKind, key: string(k)}
}

// Scheme returns the identity's scheme
func (i Identity) Scheme() Scheme {
	return i.scheme
}

// IsZero reports whether the identity has no key
func (i Identity) IsZero() bool {
	return i.key == ""
}

// String returns the identity key
func (i Identity) String() string {
	return i.key
}

// NormalizeName strips every whitespace rune from s
func NormalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func normalizeIdentity(i Identity) Identity {
	if i.scheme == SchemeName {
		i.key = NormalizeName(i.key)
	}
	return i
}
