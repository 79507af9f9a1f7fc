package service

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// parsePrice 解析价格参数，空串或非法值视为未提供
func parsePrice(value string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
