package catalog

import "strings"

// ApplyFilters 依次应用七个筛选谓词（逻辑与）。
// 谓词彼此独立且可交换；对应条件为空/关闭的谓词直接放行。
// 价格区间闭区间判定且始终生效。
func ApplyFilters(items []Item, filters FilterState, query string) []Item {
	result := make([]Item, 0, len(items))
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, item := range items {
		if !matchSearch(item, needle) {
			continue
		}
		if !matchSet(item.Category, filters.Categories) {
			continue
		}
		if !matchMaterial(item, filters.Materials) {
			continue
		}
		if !matchGemstone(item, filters.Gemstones) {
			continue
		}
		if !matchPrice(item, filters) {
			continue
		}
		if filters.InStock && item.Stock <= 0 {
			continue
		}
		if filters.Featured && !item.Featured {
			continue
		}
		result = append(result, item)
	}
	return result
}

// matchSearch 名称或描述的大小写不敏感子串匹配
func matchSearch(item Item, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle)
}

func matchSet(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// matchMaterial 材质筛选激活时，缺失材质（空名称）一律不匹配
func matchMaterial(item Item, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	if item.Material == "" {
		return false
	}
	return matchSet(item.Material, selected)
}

// matchGemstone 宝石筛选激活时，无宝石商品一律不匹配
func matchGemstone(item Item, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	if item.Gemstone == "" {
		return false
	}
	return matchSet(item.Gemstone, selected)
}

func matchPrice(item Item, filters FilterState) bool {
	return item.Price.GreaterThanOrEqual(filters.PriceMin) &&
		item.Price.LessThanOrEqual(filters.PriceMax)
}
