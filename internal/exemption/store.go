package exemption

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Store answers exemption queries. It is read-only once built and may be
// shared by concurrent queries without locking.
type Store struct {
	exact    map[Exemption]struct{}
	packages []string // doublestar patterns from KindPackage exemptions
}

// NewStore builds a store from the given exemptions.
// Duplicates are merged; package patterns are validated.
func NewStore(exemptions ...Exemption) (*Store, error) {
	s := &Store{exact: make(map[Exemption]struct{}, len(exemptions))}

	for _, e := range exemptions {
		e.Identifier = strings.TrimSpace(e.Identifier)
		if err := e.validate(); err != nil {
			return nil, err
		}

		if e.Kind == KindPackage {
			if !doublestar.ValidatePattern(e.Identifier) {
				return nil, fmt.Errorf("%w: bad package pattern %q", ErrInvalidExemption, e.Identifier)
			}
			if _, dup := s.exact[e]; !dup {
				s.packages = append(s.packages, e.Identifier)
			}
		}

		s.exact[e] = struct{}{}
	}

	return s, nil
}

// IsExempt reports whether (kind, identifier) is approved as immutable.
// Type identifiers are also matched against package patterns.
func (s *Store) IsExempt(kind Kind, identifier string) bool {
	if s == nil {
		return false
	}

	if _, ok := s.exact[Exemption{Kind: kind, Identifier: identifier}]; ok {
		return true
	}

	if kind != KindType || len(s.packages) == 0 {
		return false
	}

	pkg := PackageOf(identifier)
	if pkg == "" {
		return false
	}

	for _, pattern := range s.packages {
		if matchPkg(pkg, pattern) {
			return true
		}
	}

	return false
}

// Len returns the number of distinct exemptions.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}

	return len(s.exact)
}

// PackageOf returns the package path of a named type identifier
// such as "golang.org/x/text/language.Tag" or "example.com/lib.Box[int]".
// It returns "" for identifiers without a package and for composite
// types ("*lib.T", "[]lib.T", "map[string]lib.T"): a package pattern
// trusts the named types it declares, not containers of them.
func PackageOf(identifier string) string {
	id := identifier
	if i := strings.IndexByte(id, '['); i >= 0 {
		id = id[:i]
	}
	if id == "" || strings.ContainsAny(id, "*(){} \t,;") {
		return ""
	}

	// The package path ends at the last dot after the last slash.
	lastSlash := strings.LastIndexByte(id, '/')
	lastDot := strings.LastIndexByte(id, '.')
	if lastDot <= lastSlash {
		return ""
	}

	return id[:lastDot]
}

// matchPkg matches pkgPath against a glob pattern, allowing major version
// suffixes on literal paths ("example.com/lib" matches "example.com/lib/v2").
func matchPkg(pkgPath, pattern string) bool {
	if ok, err := doublestar.Match(pattern, pkgPath); err == nil && ok {
		return true
	}

	prefix := pattern + "/v"
	if !strings.HasPrefix(pkgPath, prefix) {
		return false
	}
	rest := pkgPath[len(prefix):]

	return len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' && !strings.Contains(rest, "/")
}
