package products

import (
	"net/url"
	"sort"
	"testing"

	"mfrida/models"
)

func TestFinalPrice(t *testing.T) {
	if got := finalPrice(1000, 20); got != 800 {
		t.Fatalf("finalPrice(1000, 20) = %v, want 800", got)
	}
	if got := finalPrice(500, 0); got != 500 {
		t.Fatalf("finalPrice(500, 0) = %v, want 500", got)
	}
	if got := finalPrice(999, 33); got != 669.33 {
		t.Fatalf("finalPrice(999, 33) = %v, want 669.33", got)
	}
}

func TestBuildProductPatchRecomputesFinalPrice(t *testing.T) {
	existing := models.Product{Price: 1000, Discount: 20, FinalPrice: 800}

	newPrice := 500.0
	set := buildProductPatch(existing, models.ProductUpdate{Price: &newPrice})

	if set["price"] != 500.0 {
		t.Fatalf("price = %v, want 500", set["price"])
	}
	// discount stays 20, so final price follows the merged values
	if set["final_price"] != 400.0 {
		t.Fatalf("final_price = %v, want 400", set["final_price"])
	}
}

func TestBuildProductPatchDiscountCleared(t *testing.T) {
	existing := models.Product{Price: 500, Discount: 10, FinalPrice: 450}

	zero := 0.0
	set := buildProductPatch(existing, models.ProductUpdate{Discount: &zero})

	if set["final_price"] != 500.0 {
		t.Fatalf("final_price = %v, want 500", set["final_price"])
	}
}

func TestBuildProductPatchNoPriceFields(t *testing.T) {
	existing := models.Product{Price: 100, Discount: 5}

	name := "New name"
	set := buildProductPatch(existing, models.ProductUpdate{Name: &name})

	if _, ok := set["final_price"]; ok {
		t.Fatal("final_price should not be recomputed when price and discount are untouched")
	}
	if set["name"] != "New name" {
		t.Fatalf("name = %v, want New name", set["name"])
	}
}

func TestVariantSortKey(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"5 ML", 5},
		{"12 ML", 12},
		{"100ml", 100},
		{"EDP 50 ML", 50},
		{"Tester", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := variantSortKey(c.name); got != c.want {
			t.Fatalf("variantSortKey(%q) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestVariantOrdering(t *testing.T) {
	names := []string{"12 ML", "5 ML", "unknown"}
	sort.SliceStable(names, func(i, j int) bool {
		return variantSortKey(names[i]) < variantSortKey(names[j])
	})

	want := []string{"unknown", "5 ML", "12 ML"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestBuildListFilter(t *testing.T) {
	q := url.Values{}
	q.Set("category_id", "cat1")
	q.Set("is_featured", "true")
	q.Set("min_price", "100")
	q.Set("max_price", "500")
	q.Set("search", "oud")

	filter := buildListFilter(q)

	if filter["category_id"] != "cat1" {
		t.Fatalf("category_id = %v", filter["category_id"])
	}
	if filter["is_featured"] != true {
		t.Fatalf("is_featured = %v", filter["is_featured"])
	}
	if _, ok := filter["final_price"]; !ok {
		t.Fatal("expected final_price range")
	}
	if _, ok := filter["$or"]; !ok {
		t.Fatal("expected $or search clause")
	}
}

func TestBuildListFilterEmpty(t *testing.T) {
	filter := buildListFilter(url.Values{})
	if len(filter) != 0 {
		t.Fatalf("expected empty filter, got %v", filter)
	}
}
