package configured

import (
	"bytes"
	"sync"
)

//immutablecheck:immutable
type Cache struct { // want Cache:"immutable"
	once    sync.Once
	entries map[string]string
	buf     bytes.Buffer
}

//immutablecheck:immutable
type Leaky struct { // want `Leaky is not immutable: field Leaky.entries has mutable type map\[string\]string`
	entries map[string]string
}
