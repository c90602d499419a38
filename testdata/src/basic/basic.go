package basic

import "time"

type ID int64

// ===== SHOULD NOT REPORT =====

// Point has only basic fields.
//
//immutablecheck:immutable
type Point struct { // want Point:"immutable"
	X, Y int
}

// Record nests named basics, std value types, arrays and other structs.
//
//immutablecheck:immutable
type Record struct { // want Record:"immutable"
	ID    ID
	Name  string
	At    time.Time
	Grid  [3][3]float64
	Point Point
}

// Celsius is a named basic type.
//
//immutablecheck:immutable
type Celsius float64 // want Celsius:"immutable"

// Methods do not affect immutability.
//
//immutablecheck:immutable
type Temperature struct { // want Temperature:"immutable"
	value Celsius
}

func (t Temperature) Value() Celsius { return t.value }

func (t *Temperature) Set(v Celsius) { t.value = v }

// Aliases are checked but carry no fact: the type belongs to another package.
//
//immutablecheck:immutable
type Stamp = time.Time

// Unmarked types are never reported.
type Unmarked struct {
	items []string
}

// ===== SHOULD REPORT =====

//immutablecheck:immutable
type Config struct { // want `Config is not immutable: field Config.Items has mutable type \[\]string`
	Name  string
	Items []string
}

//immutablecheck:immutable
type Indirect struct { // want `Indirect is not immutable: field Holder.Ptr has mutable type \*int`
	Name string
	H    Holder
}

type Holder struct {
	Ptr *int
}

//immutablecheck:immutable
type Lookup struct { // want `Lookup is not immutable: field Lookup.byName has mutable type map\[string\]Point`
	byName map[string]Point
}

//immutablecheck:immutable
type Pointers struct { // want `Pointers is not immutable: element of \[2\]\*int has mutable type \*int`
	cells [2]*int
}

//immutablecheck:immutable
type Callback struct { // want `Callback is not immutable: field Callback.fn has mutable type func\(\)`
	fn func()
}

//immutablecheck:immutable
type Failure struct { // want `Failure is not immutable: field Failure.err has mutable type error`
	err error
}

//immutablecheck:immutable
type Handle *int // want `Handle is not immutable: type Handle is mutable`

func init() {
	_ = Unmarked{}
}
