package models

import "testing"

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusUnpaid, StatusPaid, StatusProcessing, StatusShipped, StatusCancelled, StatusOverdue, StatusRefunded} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if OrderStatus("delivered").Valid() {
		t.Error("unknown status accepted")
	}
	if StatusUnpaid.Label() != "Not paid" {
		t.Errorf("label = %q", StatusUnpaid.Label())
	}
}

func TestExpenseCategoryValid(t *testing.T) {
	if !ExpenseGoods.Valid() {
		t.Error("goods should be valid")
	}
	if ExpenseCategory("yachts").Valid() {
		t.Error("unknown category accepted")
	}
}

func TestDeriveMargin(t *testing.T) {
	p := Product{PriceLocal: 50, SellingPrice: 100}
	p.DeriveMargin()
	if p.Margin != 50 {
		t.Errorf("margin = %v, want 50", p.Margin)
	}
	if p.Markup != 100 {
		t.Errorf("markup = %v, want 100", p.Markup)
	}

	var zero Product
	zero.DeriveMargin()
	if zero.Margin != 0 || zero.Markup != 0 {
		t.Errorf("zero product derived margin %v markup %v, want 0/0", zero.Margin, zero.Markup)
	}
}

func TestPurchaseTotal(t *testing.T) {
	p := Purchase{ExchangeRate: 2, Items: []PurchaseItem{{Quantity: 10, UnitCost: 5}, {Quantity: 1, UnitCost: 50}}}
	if got := p.Total(); got != 200 {
		t.Errorf("total = %v, want 200", got)
	}
	// Missing rate defaults to 1.
	p.ExchangeRate = 0
	if got := p.Total(); got != 100 {
		t.Errorf("total = %v, want 100", got)
	}
}
