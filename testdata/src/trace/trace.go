package trace

//immutablecheck:immutable
type Outer struct { // want `Outer is not immutable: field Inner.p has mutable type \*int \(path: Outer -> Outer.in -> Inner -> Inner.p -> \*int\)`
	in Inner
}

type Inner struct {
	n int
	p *int
}
