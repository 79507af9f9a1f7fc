package catalog

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AvailabilityData 库存可用性计数
type AvailabilityData struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// PriceRangeData 基础列表的价格区间
type PriceRangeData struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// FilterMetadata 前台筛选侧栏所需的全部元数据
type FilterMetadata struct {
	Availability AvailabilityData `json:"availability"`
	Categories   []string         `json:"categories"`
	Materials    []string         `json:"materials"`
	Gemstones    []string         `json:"gemstones"`
	PriceRange   PriceRangeData   `json:"price_range"`
}

// Metadata 基于未筛选的基础列表汇总筛选元数据
func Metadata(items []Item) FilterMetadata {
	meta := FilterMetadata{
		Categories: []string{},
		Materials:  []string{},
		Gemstones:  []string{},
	}
	if len(items) == 0 {
		return meta
	}

	categories := make(map[string]struct{})
	materials := make(map[string]struct{})
	gemstones := make(map[string]struct{})
	min := items[0].Price
	max := items[0].Price
	for _, item := range items {
		if item.Stock > 0 {
			meta.Availability.InStock++
		} else {
			meta.Availability.OutOfStock++
		}
		if item.Category != "" {
			categories[item.Category] = struct{}{}
		}
		if item.Material != "" {
			materials[item.Material] = struct{}{}
		}
		if item.Gemstone != "" {
			gemstones[item.Gemstone] = struct{}{}
		}
		if item.Price.LessThan(min) {
			min = item.Price
		}
		if item.Price.GreaterThan(max) {
			max = item.Price
		}
	}

	meta.Categories = sortedKeys(categories)
	meta.Materials = sortedKeys(materials)
	meta.Gemstones = sortedKeys(gemstones)
	meta.PriceRange = PriceRangeData{Min: min, Max: max}
	return meta
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
