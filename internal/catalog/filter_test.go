package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testItems() []Item {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Item{
		{ID: 1, Name: "Ring A", Description: "classic gold band", Category: "rings", Material: "Gold", Gemstone: "Diamond", Price: decimal.NewFromInt(5000), Stock: 3, Featured: true, CreatedAt: base},
		{ID: 2, Name: "Ring B", Description: "silver solitaire", Category: "rings", Material: "Silver", Gemstone: "", Price: decimal.NewFromInt(1200), Stock: 0, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Name: "Necklace", Description: "ruby pendant necklace", Category: "necklaces", Material: "Gold", Gemstone: "Ruby", Price: decimal.NewFromInt(8000), Stock: 5, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, Name: "Earrings", Description: "plain hoops", Category: "earrings", Material: "", Gemstone: "", Price: decimal.NewFromInt(800), Stock: 10, Featured: true, CreatedAt: base.Add(3 * time.Hour)},
	}
}

func ids(items []Item) []uint {
	out := make([]uint, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func sameIDs(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyFiltersDefaultPassesAll(t *testing.T) {
	items := testItems()
	filters := DefaultFilterState(MaxPrice(items))

	got := ApplyFilters(items, filters, "")
	if len(got) != len(items) {
		t.Fatalf("expected all %d items, got %d", len(items), len(got))
	}
}

func TestApplyFiltersSearchCaseInsensitive(t *testing.T) {
	items := testItems()
	filters := DefaultFilterState(MaxPrice(items))

	got := ApplyFilters(items, filters, "RING")
	if !sameIDs(ids(got), []uint{1, 2, 4}) {
		t.Fatalf("search ring mismatch: %v", ids(got))
	}
}

func TestApplyFiltersInStock(t *testing.T) {
	items := testItems()
	filters := DefaultFilterState(MaxPrice(items))
	filters.Categories = []string{"rings"}
	filters.InStock = true

	got := ApplyFilters(items, filters, "")
	if !sameIDs(ids(got), []uint{1}) {
		t.Fatalf("expected only Ring A, got %v", ids(got))
	}
}

func TestApplyFiltersPriceRangeInclusive(t *testing.T) {
	items := testItems()
	filters := DefaultFilterState(MaxPrice(items))
	filters.PriceMin = decimal.NewFromInt(1200)
	filters.PriceMax = decimal.NewFromInt(5000)

	got := ApplyFilters(items, filters, "")
	if !sameIDs(ids(got), []uint{1, 2}) {
		t.Fatalf("price range should include both boundaries, got %v", ids(got))
	}
}

func TestApplyFiltersMissingMaterialExcluded(t *testing.T) {
	items := testItems()
	filters := DefaultFilterState(MaxPrice(items))
	filters.Materials = []string{"Gold", "Silver"}

	got := ApplyFilters(items, filters, "")
	for _, item := range got {
		if item.ID == 4 {
			t.Fatalf("item without material must not match active material filter")
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
}

func TestApplyFiltersMissingGemstoneExcluded(t *testing.T) {
	items := testItems()
	filters := DefaultFilterState(MaxPrice(items))
	filters.Gemstones = []string{"Diamond", "Ruby"}

	got := ApplyFilters(items, filters, "")
	if !sameIDs(ids(got), []uint{1, 3}) {
		t.Fatalf("gemstone filter mismatch: %v", ids(got))
	}
}

func TestApplyFiltersFeatured(t *testing.T) {
	items := testItems()
	filters := DefaultFilterState(MaxPrice(items))
	filters.Featured = true

	got := ApplyFilters(items, filters, "")
	if !sameIDs(ids(got), []uint{1, 4}) {
		t.Fatalf("featured filter mismatch: %v", ids(got))
	}
}

func TestApplyFiltersIdempotent(t *testing.T) {
	items := testItems()
	filters := DefaultFilterState(MaxPrice(items))
	filters.Categories = []string{"rings"}
	filters.InStock = true

	once := ApplyFilters(items, filters, "ring")
	twice := ApplyFilters(once, filters, "ring")
	if !sameIDs(ids(once), ids(twice)) {
		t.Fatalf("filtering must be idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestApplyFiltersOrderIndependent(t *testing.T) {
	items := testItems()
	max := MaxPrice(items)

	categoryOnly := DefaultFilterState(max)
	categoryOnly.Categories = []string{"rings"}
	stockOnly := DefaultFilterState(max)
	stockOnly.InStock = true
	combined := DefaultFilterState(max)
	combined.Categories = []string{"rings"}
	combined.InStock = true

	forward := ApplyFilters(ApplyFilters(items, categoryOnly, ""), stockOnly, "")
	backward := ApplyFilters(ApplyFilters(items, stockOnly, ""), categoryOnly, "")
	direct := ApplyFilters(items, combined, "")

	if !sameIDs(ids(forward), ids(backward)) || !sameIDs(ids(forward), ids(direct)) {
		t.Fatalf("predicate application order must not matter: %v / %v / %v",
			ids(forward), ids(backward), ids(direct))
	}
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	items := testItems()
	filters := DefaultFilterState(MaxPrice(items))
	filters.InStock = true

	_ = ApplyFilters(items, filters, "")
	if len(items) != 4 || items[1].ID != 2 {
		t.Fatalf("input slice was mutated")
	}
}
