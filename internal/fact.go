package internal

import "errors"

// ErrInvalidFlag is returned when an analyzer flag has an unusable value.
var ErrInvalidFlag = errors.New("invalid flag")

// ImmutableFact marks a type proven immutable. Dependent packages treat
// facted types as exempt instead of reporting them as unknown.
type ImmutableFact struct {
	// Identifier is the type identifier used for exemption lookups.
	Identifier string
}

// AFact implements analysis.Fact.
func (*ImmutableFact) AFact() {}

func (*ImmutableFact) String() string { return "immutable" }
