package catalog

import (
	"sort"
	"strings"

	"github.com/zhubao-next/internal/constants"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey 商品排序键
type SortKey string

const (
	SortByName      SortKey = constants.SortKeyName
	SortByPriceLow  SortKey = constants.SortKeyPriceLow
	SortByPriceHigh SortKey = constants.SortKeyPriceHigh
	SortByNewest    SortKey = constants.SortKeyNewest
)

// ParseSortKey 解析排序键，未知值回退到名称排序
func ParseSortKey(value string) SortKey {
	switch SortKey(strings.TrimSpace(value)) {
	case SortByPriceLow:
		return SortByPriceLow
	case SortByPriceHigh:
		return SortByPriceHigh
	case SortByNewest:
		return SortByNewest
	default:
		return SortByName
	}
}

// NewCollator 按语言创建名称排序用的 collator，无法识别的语言回退到英文
func NewCollator(locale string) *collate.Collator {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	return collate.New(tag)
}

// SortItems 返回按指定键排序的新切片，稳定排序，不修改输入。
// 等价元素保持原相对顺序。
func SortItems(items []Item, key SortKey, collator *collate.Collator) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	if collator == nil {
		collator = collate.New(language.English)
	}

	switch key {
	case SortByPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	case SortByPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.GreaterThan(sorted[j].Price)
		})
	case SortByNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	}
	return sorted
}
