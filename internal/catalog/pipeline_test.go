package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPipelineRecompute(t *testing.T) {
	p := NewPipeline("en")
	p.SetBaseItems(testItems())

	got := p.Run()
	if len(got) != 4 {
		t.Fatalf("default pipeline should keep all items, got %d", len(got))
	}

	p.SetQuery("ring")
	filters := p.Filters()
	filters.InStock = true
	p.SetFilters(filters)
	p.SetSortKey(SortByPriceHigh)

	got = p.Run()
	if !sameIDs(ids(got), []uint{1, 4}) {
		t.Fatalf("recompute mismatch: %v", ids(got))
	}
}

func TestPipelineSetBaseItemsResetsPriceRange(t *testing.T) {
	p := NewPipeline("en")
	p.SetBaseItems(testItems())

	filters := p.Filters()
	filters.PriceMin = decimal.NewFromInt(1000)
	filters.PriceMax = decimal.NewFromInt(2000)
	p.SetFilters(filters)

	p.SetBaseItems(testItems()[:2])
	filters = p.Filters()
	if !filters.PriceMin.IsZero() {
		t.Fatalf("price min should reset to 0, got %s", filters.PriceMin)
	}
	if !filters.PriceMax.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("price max should reset to new list max, got %s", filters.PriceMax)
	}
	if !p.MaxPrice().Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("max price mismatch: %s", p.MaxPrice())
	}
}

func TestPipelineSetFiltersNormalizes(t *testing.T) {
	p := NewPipeline("en")
	p.SetBaseItems(testItems())

	p.SetFilters(FilterState{
		PriceMin: decimal.NewFromInt(-50),
		PriceMax: decimal.Zero,
	})
	filters := p.Filters()
	if !filters.PriceMin.IsZero() {
		t.Fatalf("negative min should clamp to 0, got %s", filters.PriceMin)
	}
	if !filters.PriceMax.Equal(p.MaxPrice()) {
		t.Fatalf("zero max should fall back to max price, got %s", filters.PriceMax)
	}

	p.SetFilters(FilterState{
		PriceMin: decimal.NewFromInt(3000),
		PriceMax: decimal.NewFromInt(1000),
	})
	filters = p.Filters()
	if !filters.PriceMin.Equal(decimal.NewFromInt(1000)) || !filters.PriceMax.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("inverted range should swap, got [%s,%s]", filters.PriceMin, filters.PriceMax)
	}
}

func TestPipelineReset(t *testing.T) {
	p := NewPipeline("en")
	p.SetBaseItems(testItems())

	p.SetQuery("nothing matches this")
	filters := p.Filters()
	filters.InStock = true
	filters.Featured = true
	filters.Categories = []string{"rings"}
	p.SetFilters(filters)
	p.SetSortKey(SortByNewest)

	if got := p.Run(); len(got) != 0 {
		t.Fatalf("expected empty result before reset, got %v", ids(got))
	}

	p.Reset()
	got := p.Run()
	if len(got) != 4 {
		t.Fatalf("reset should restore full list, got %d", len(got))
	}
	filters = p.Filters()
	if filters.InStock || filters.Featured || len(filters.Categories) != 0 {
		t.Fatalf("reset should clear filters: %+v", filters)
	}
	if !filters.PriceMax.Equal(p.MaxPrice()) {
		t.Fatalf("reset should restore full price range, got %s", filters.PriceMax)
	}
}

func TestMetadata(t *testing.T) {
	meta := Metadata(testItems())

	if meta.Availability.InStock != 3 || meta.Availability.OutOfStock != 1 {
		t.Fatalf("availability mismatch: %+v", meta.Availability)
	}
	if len(meta.Categories) != 3 || meta.Categories[0] != "earrings" {
		t.Fatalf("categories mismatch: %v", meta.Categories)
	}
	if len(meta.Materials) != 2 {
		t.Fatalf("materials mismatch: %v", meta.Materials)
	}
	if len(meta.Gemstones) != 2 {
		t.Fatalf("gemstones mismatch: %v", meta.Gemstones)
	}
	if !meta.PriceRange.Min.Equal(decimal.NewFromInt(800)) || !meta.PriceRange.Max.Equal(decimal.NewFromInt(8000)) {
		t.Fatalf("price range mismatch: %+v", meta.PriceRange)
	}

	empty := Metadata(nil)
	if empty.Availability.InStock != 0 || len(empty.Categories) != 0 {
		t.Fatalf("empty metadata mismatch: %+v", empty)
	}
}
