package sim

import "github.com/vovakirdan/zone-arcade/internal/config"

// Purchase rejection reasons.
const (
	ReasonInsufficientCurrency = "insufficient currency"
	ReasonUnknownItem          = "item not sold"
)

// PurchaseResult is the outcome of a purchase. A rejected purchase leaves
// the currency unchanged.
type PurchaseResult struct {
	Success     bool
	NewCurrency int
	Cost        int
	Reason      string
}

// Purchase prices kind against the table. There are no partial purchases.
func Purchase(kind PickupKind, prices config.Shop, currency int) PurchaseResult {
	price, ok := prices.Price(kind)
	if !ok {
		return PurchaseResult{NewCurrency: currency, Reason: ReasonUnknownItem}
	}
	if currency < price {
		return PurchaseResult{NewCurrency: currency, Cost: price, Reason: ReasonInsufficientCurrency}
	}
	return PurchaseResult{Success: true, NewCurrency: currency - price, Cost: price}
}
