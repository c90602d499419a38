package generics

//immutablecheck:immutable
type Box[T any] struct { // want `Box is not immutable: field Box.v has type parameter T`
	v T
}

//immutablecheck:immutable
type IntBox struct { // want IntBox:"immutable"
	b Box[int]
}

//immutablecheck:immutable
type SliceBox struct { // want `SliceBox is not immutable: field Box.v has mutable type \[\]byte`
	b Box[[]byte]
}

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

//immutablecheck:immutable
type Entry struct { // want Entry:"immutable"
	p Pair[string, [4]int]
}
