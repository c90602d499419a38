package exempt

// Registry is trusted wholesale.
//
//immutablecheck:exempt
type Registry struct {
	m map[string]int
}

//immutablecheck:immutable
type Service struct { // want Service:"immutable"
	reg   Registry
	cache map[string]string //immutablecheck:exempt
}

//immutablecheck:immutable
type Partial struct { // want `Partial is not immutable: field Partial.log has mutable type \[\]string`
	//immutablecheck:exempt
	cache map[string]string
	log   []string
}

// An exempt type is immutable even if marked for checking.
//
//immutablecheck:immutable
//immutablecheck:exempt
type Trusted struct { // want Trusted:"immutable"
	p *int
}

type (
	// Grouped specs carry their own directives.
	//immutablecheck:exempt
	Shared []byte

	//immutablecheck:immutable
	Snapshot struct { // want Snapshot:"immutable"
		data Shared
	}
)
