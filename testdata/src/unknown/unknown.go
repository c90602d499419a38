package unknown

import (
	"bytes"
	"strings"
)

//immutablecheck:immutable
type Buffered struct { // want `Buffered cannot be proven immutable: field Buffered.buf has type bytes.Buffer from another package`
	name string
	buf  bytes.Buffer
}

// Mutable members take precedence over unknown ones.
//
//immutablecheck:immutable
type Mixed struct { // want `Mixed is not immutable: field Mixed.tags has mutable type \[\]string`
	r    strings.Reader
	tags []string
}

//immutablecheck:immutable
type Alias = bytes.Buffer // want `Alias cannot be proven immutable: type bytes.Buffer is from another package`
