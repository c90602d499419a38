package flags

import (
	"bytes"
	"strings"
	"sync"
)

//immutablecheck:immutable
type Holder struct { // want Holder:"immutable"
	buf   bytes.Buffer
	mu    *sync.Mutex
	cache map[string]int
	r     strings.Reader
}

//immutablecheck:immutable
type Other struct { // want `Other is not immutable: field Other.cache has mutable type map\[string\]int`
	cache map[string]int
}
