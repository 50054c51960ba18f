package pricing

import "fmt"

var (
	ErrUnknownPair      = fmt.Errorf("unrecognized trading pair")
	ErrPriceUnavailable = fmt.Errorf("price unavailable")
)
