package scaling

import (
	"math"
	"strings"
)

// ScaledIngredient 依份量換算後的食材
type ScaledIngredient struct {
	Name            string `json:"name"`
	Amount          Amount `json:"amount"`
	Unit            string `json:"unit"`
	FormattedAmount string `json:"formatted_amount"`
	// OriginalAmount 換算前的數量，步驟改寫時用來比對文字中的數字
	OriginalAmount Amount `json:"original_amount"`
}

const (
	spiceGrowth = 0.6
	timeGrowth  = 0.15
)

// spices 以較低比例放大的調味料
var spices = []string{
	"salt", "turmeric", "pepper", "mustard", "cumin", "hing", "asafoetida",
	"curry leaves", "coriander", "sambar powder", "rasam powder", "garam masala",
	"chilli", "garlic", "ginger", "jaggery",
}

// IsSpice 名稱包含任一調味料關鍵字即視為調味料
func IsSpice(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range spices {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// ScaleFactor 回傳食材的放大倍率
// 調味料：1 + 0.6 × (servings − 1)；其他：servings
func ScaleFactor(name string, servings int) float64 {
	if IsSpice(name) {
		return 1 + spiceGrowth*float64(servings-1)
	}
	return float64(servings)
}

// Scale 將解析後的食材換算為指定份量
func Scale(ing ParsedIngredient, servings int) ScaledIngredient {
	scaled := ScaledIngredient{
		Name:           ing.Name,
		Unit:           ing.Unit,
		OriginalAmount: ing.Amount,
	}

	amount, ok := ing.Amount.Value()
	if !ok {
		scaled.Amount = None()
		scaled.FormattedAmount = qualitativeAmount(ing.Unit, servings)
		return scaled
	}

	rounded := Round2(amount * ScaleFactor(ing.Name, servings))
	scaled.Amount = Some(rounded)
	scaled.FormattedAmount = FormatAmount(rounded, ing.Unit)
	return scaled
}

// ScaleAll 解析並換算整份食材清單，長度與順序不變
func ScaleAll(lines []string, servings int) []ScaledIngredient {
	out := make([]ScaledIngredient, len(lines))
	for i, line := range lines {
		out[i] = Scale(Parse(line), servings)
	}
	return out
}

func qualitativeAmount(unit string, servings int) string {
	if unit == "few" {
		if servings > 2 {
			return "generous handful"
		}
		return "few"
	}
	return "as needed"
}

// ScaleCookingTime 換算烹調時間：original × (1 + 0.15 × (servings − 1))
// 取最接近的整數分鐘，恰好 .5 時取偶數
func ScaleCookingTime(originalMinutes float64, servings int) int {
	return int(math.RoundToEven(originalMinutes * (1 + timeGrowth*float64(servings-1))))
}

// Round2 四捨五入到小數點後兩位
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
