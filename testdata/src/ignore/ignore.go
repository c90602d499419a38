package ignore

//immutablecheck:immutable
//immutablecheck:ignore mutable - rows are filled once at init
type Table struct {
	rows []string
}

//immutablecheck:immutable
type Same struct { //immutablecheck:ignore
	p *int
}

//immutablecheck:ignore // want `unused immutablecheck:ignore directive`
type Plain struct{}

//immutablecheck:immutable
//immutablecheck:ignore unknown // want `unused immutablecheck:ignore directive for checker\(s\): unknown`
type Wrong struct { // want `Wrong is not immutable: field Wrong.p has mutable type \*int`
	p *int
}

//immutablecheck:immutable
//immutablecheck:ignore mutable,unknown // want `unused immutablecheck:ignore directive for checker\(s\): unknown`
type Partly struct {
	m map[int]int
}

var _ = Plain{}
