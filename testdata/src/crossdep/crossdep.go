package crossdep

import "bytes"

//immutablecheck:immutable
type Money struct {
	Amount   int64
	Currency string
}

type Wallet struct {
	Coins []Money
}

//immutablecheck:immutable
type Rate struct {
	per *int
}

// Legacy is trusted here only.
//
//immutablecheck:immutable
//immutablecheck:exempt
type Legacy = bytes.Buffer
