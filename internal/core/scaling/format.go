package scaling

import (
	"math"
	"strconv"
)

type fraction struct {
	value     float64
	tolerance float64
	text      string
}

var commonFractions = []fraction{
	{0.25, 0.01, "1/4"},
	{0.33, 0.02, "1/3"},
	{0.5, 0.01, "1/2"},
	{0.67, 0.02, "2/3"},
	{0.75, 0.01, "3/4"},
}

// FormatAmount 顯示用數量字串
// tsp / tbsp / cup 會轉為常見分數，其餘以去掉尾端 0 的小數表示
func FormatAmount(amount float64, unit string) string {
	if IsVolumeUnit(unit) {
		if text, ok := nearestFraction(amount); ok {
			return text
		}
	}
	return FormatDecimal(amount)
}

// FormatQuantity 不看單位，一律嘗試轉為常見分數
func FormatQuantity(amount float64) string {
	if text, ok := nearestFraction(amount); ok {
		return text
	}
	return FormatDecimal(amount)
}

// FormatDecimal 2.00 → "2"，1.10 → "1.1"
func FormatDecimal(amount float64) string {
	return strconv.FormatFloat(Round2(amount), 'f', -1, 64)
}

func nearestFraction(amount float64) (string, bool) {
	for _, f := range commonFractions {
		if math.Abs(amount-f.value) < f.tolerance {
			return f.text, true
		}
	}
	return "", false
}
