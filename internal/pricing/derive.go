package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrBasePriceNegative 基准克价为负
	ErrBasePriceNegative = errors.New("base price per gram must not be negative")
	// ErrPurityOutOfRange 纯度超出 [0,100]
	ErrPurityOutOfRange = errors.New("purity percent must be within [0,100]")
)

var oneHundred = decimal.NewFromInt(100)

// DerivePrice 按基准克价与纯度推导档位克价。
// 结果取整数单位，四舍五入（round-half-up）：decimal.Round 在非负定义域上
// 的 half-away-from-zero 与 half-up 等价。
// 基准价为负或纯度超出 [0,100] 时直接拒绝，不做钳制。
func DerivePrice(basePricePerGram, purityPercent decimal.Decimal) (decimal.Decimal, error) {
	if basePricePerGram.IsNegative() {
		return decimal.Zero, ErrBasePriceNegative
	}
	if purityPercent.IsNegative() || purityPercent.GreaterThan(oneHundred) {
		return decimal.Zero, ErrPurityOutOfRange
	}
	return basePricePerGram.Mul(purityPercent).Div(oneHundred).Round(0), nil
}
