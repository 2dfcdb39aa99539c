package sim

import (
	"testing"

	"github.com/vovakirdan/zone-arcade/internal/config"
)

func TestPurchase(t *testing.T) {
	prices := config.Shop{ExtraLife: 30, Shield: 15, Weapon: 20}

	tests := []struct {
		name     string
		kind     PickupKind
		currency int
		expected PurchaseResult
	}{
		{"affordable", config.PickupShield, 40, PurchaseResult{Success: true, NewCurrency: 25, Cost: 15}},
		{"exact", config.PickupExtraLife, 30, PurchaseResult{Success: true, NewCurrency: 0, Cost: 30}},
		{"insufficient", config.PickupWeapon, 19, PurchaseResult{NewCurrency: 19, Cost: 20, Reason: ReasonInsufficientCurrency}},
		{"not sold", config.PickupInvulnerability, 100, PurchaseResult{NewCurrency: 100, Reason: ReasonUnknownItem}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Purchase(tt.kind, prices, tt.currency); got != tt.expected {
				t.Errorf("Purchase = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}
