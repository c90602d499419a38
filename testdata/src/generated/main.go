package generated

//immutablecheck:immutable
type Handwritten struct { // want `Handwritten is not immutable: field Handwritten.g has mutable type \*Generated`
	g *Generated
}
