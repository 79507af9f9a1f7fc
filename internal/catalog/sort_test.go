package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseSortKey(t *testing.T) {
	cases := []struct {
		input string
		want  SortKey
	}{
		{"name", SortByName},
		{"price-low", SortByPriceLow},
		{"price-high", SortByPriceHigh},
		{"newest", SortByNewest},
		{" newest ", SortByNewest},
		{"", SortByName},
		{"bogus", SortByName},
	}
	for _, c := range cases {
		if got := ParseSortKey(c.input); got != c.want {
			t.Fatalf("ParseSortKey(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestSortItemsByName(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "Necklace"},
		{ID: 2, Name: "earrings"},
		{ID: 3, Name: "Bracelet"},
	}

	got := SortItems(items, SortByName, NewCollator("en"))
	if got[0].ID != 3 || got[1].ID != 2 || got[2].ID != 1 {
		t.Fatalf("name sort mismatch: %v", ids(got))
	}
}

func TestSortItemsByPrice(t *testing.T) {
	items := []Item{
		{ID: 1, Price: decimal.NewFromInt(100)},
		{ID: 2, Price: decimal.NewFromInt(300)},
		{ID: 3, Price: decimal.NewFromInt(200)},
	}

	low := SortItems(items, SortByPriceLow, nil)
	if !sameIDs(ids(low), []uint{1, 3, 2}) {
		t.Fatalf("price-low mismatch: %v", ids(low))
	}

	high := SortItems(items, SortByPriceHigh, nil)
	if !sameIDs(ids(high), []uint{2, 3, 1}) {
		t.Fatalf("price-high mismatch: %v", ids(high))
	}
}

func TestSortItemsByNewest(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{
		{ID: 1, CreatedAt: base},
		{ID: 2, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 3, CreatedAt: base.Add(time.Hour)},
	}

	got := SortItems(items, SortByNewest, nil)
	if !sameIDs(ids(got), []uint{2, 3, 1}) {
		t.Fatalf("newest mismatch: %v", ids(got))
	}
}

func TestSortItemsStable(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "Ring A", Price: decimal.NewFromInt(100)},
		{ID: 2, Name: "Ring B", Price: decimal.NewFromInt(100)},
		{ID: 3, Name: "Ring C", Price: decimal.NewFromInt(100)},
	}

	got := SortItems(items, SortByPriceLow, nil)
	if !sameIDs(ids(got), []uint{1, 2, 3}) {
		t.Fatalf("equal prices must keep original order: %v", ids(got))
	}
}

func TestSortItemsDoesNotMutateInput(t *testing.T) {
	items := []Item{
		{ID: 1, Price: decimal.NewFromInt(300)},
		{ID: 2, Price: decimal.NewFromInt(100)},
	}

	_ = SortItems(items, SortByPriceLow, nil)
	if items[0].ID != 1 {
		t.Fatalf("input slice was mutated")
	}
}
