// Package exemption holds the set of types and members that are accepted
// as immutable without proof.
package exemption

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidExemption is returned when an exemption cannot be used as a key.
var ErrInvalidExemption = errors.New("invalid exemption")

// Kind disambiguates the namespace of an exemption identifier.
type Kind int

const (
	// KindType exempts a type by its identifier (e.g., "time.Location").
	KindType Kind = iota + 1
	// KindMember exempts a field, property or event (e.g., "example.com/app.Config.cache").
	KindMember
	// KindPackage exempts every named type whose package path matches a glob.
	KindPackage
)

// String returns the name used for the kind in configuration files.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindMember:
		return "member"
	case KindPackage:
		return "package"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a kind name as written in configuration files.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "type":
		return KindType, nil
	case "member":
		return KindMember, nil
	case "package":
		return KindPackage, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidExemption, s)
	}
}

// Exemption is a pre-approved (kind, identifier) pair.
// Two exemptions are equal iff both fields are equal, so values can be
// used directly as map keys.
type Exemption struct {
	Kind       Kind
	Identifier string
}

// New returns an exemption for the given kind and identifier.
func New(kind Kind, identifier string) Exemption {
	return Exemption{Kind: kind, Identifier: identifier}
}

// String returns "kind:identifier".
func (e Exemption) String() string {
	return e.Kind.String() + ":" + e.Identifier
}

func (e Exemption) validate() error {
	switch e.Kind {
	case KindType, KindMember, KindPackage:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidExemption, e)
	}

	if strings.TrimSpace(e.Identifier) == "" {
		return fmt.Errorf("%w: empty identifier for kind %s", ErrInvalidExemption, e.Kind)
	}

	return nil
}
