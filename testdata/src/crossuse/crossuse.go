package crossuse

import (
	"bytes"

	"crossdep"
)

// Money is proven immutable in its own package.
//
//immutablecheck:immutable
type Order struct { // want Order:"immutable"
	Total crossdep.Money
}

//immutablecheck:immutable
type Account struct { // want `Account cannot be proven immutable: field Account.wallet has type crossdep.Wallet from another package`
	wallet crossdep.Wallet
}

//immutablecheck:immutable
type Pricing struct { // want `Pricing cannot be proven immutable: field Pricing.rate has type crossdep.Rate from another package`
	rate crossdep.Rate
}

// Exemptions of an alias in crossdep do not follow the aliased type.
//
//immutablecheck:immutable
type Report struct { // want `Report cannot be proven immutable: field Report.buf has type bytes.Buffer from another package`
	buf bytes.Buffer
}

var _ crossdep.Legacy
