package orders

import (
	"testing"

	"mfrida/models"
)

func TestComputeTotals(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: "p1", Price: 1000, FinalPrice: 800, Quantity: 2},
		{ProductID: "p2", Price: 500, FinalPrice: 500, Quantity: 1},
	}

	subtotal, discount, total := computeTotals(items)

	if subtotal != 2100 {
		t.Fatalf("subtotal = %v, want 2100", subtotal)
	}
	if discount != 400 {
		t.Fatalf("discount = %v, want 400", discount)
	}
	if total != subtotal {
		t.Fatalf("total = %v, want %v", total, subtotal)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	subtotal, discount, total := computeTotals(nil)
	if subtotal != 0 || discount != 0 || total != 0 {
		t.Fatalf("expected all zero, got %v %v %v", subtotal, discount, total)
	}
}

func TestComputeTotalsRounding(t *testing.T) {
	// 2.125 sits exactly on the half and rounds up to 2.13
	items := []models.OrderItem{
		{ProductID: "p1", Price: 2.125, FinalPrice: 2.125, Quantity: 1},
	}

	subtotal, _, _ := computeTotals(items)
	if subtotal != 2.13 {
		t.Fatalf("subtotal = %v, want 2.13", subtotal)
	}
}
