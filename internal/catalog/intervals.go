package catalog

import "maps"

// DefaultIntervalKm applies to every item missing from an interval policy.
const DefaultIntervalKm = 10000

var defaultIntervals = map[string]int{
	"機油":    5000,
	"機油芯":   5000,
	"空氣濾芯":  10000,
	"汽油濾芯":  20000,
	"冷氣濾芯":  10000,
	"火星塞":   20000,
	"煞車來令片": 30000,
	"煞車油":   40000,
	"變速箱油":  60000,
	"冷卻水":   40000,
	"正時皮帶":  80000,
	"發電機皮帶": 40000,
	"水幫浦皮帶": 40000,
	"冷氣皮帶":  40000,
	"輪胎更換":  50000,
	"電瓶":    60000,
	"避震器":   80000,
	"雨刷片":   20000,
}

// DefaultIntervalPolicy returns a fresh copy of the recommended replacement
// interval, in kilometers, per item name.
func DefaultIntervalPolicy() map[string]int {
	return maps.Clone(defaultIntervals)
}
