package unknownallow

import (
	"bytes"
	"strings"
)

// Unknown types are accepted, but not proven immutable.
//
//immutablecheck:immutable
type Buffered struct {
	buf bytes.Buffer
}

//immutablecheck:immutable
type Mixed struct { // want `Mixed is not immutable: field Mixed.tags has mutable type \[\]string`
	r    strings.Reader
	tags []string
}

//immutablecheck:immutable
type Plain struct { // want Plain:"immutable"
	n int
}
