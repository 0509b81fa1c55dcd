package scaling

import "strings"

// unitSynonyms 單位同義詞對照表，值為正規化後的單位
var unitSynonyms = map[string]string{
	"tsp":         "tsp",
	"tsps":        "tsp",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tbsp":        "tbsp",
	"tbsps":       "tbsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"cup":         "cup",
	"cups":        "cup",
	"handful":     "handful",
	"handfuls":    "handful",
	"pinch":       "pinch",
	"pinches":     "pinch",
	"sprig":       "sprig",
	"sprigs":      "sprig",
	"clove":       "clove",
	"cloves":      "clove",
	"inch":        "inch",
	"inches":      "inch",
	"g":           "g",
	"gram":        "g",
	"grams":       "g",
	"kg":          "kg",
	"oz":          "oz",
	"ounce":       "oz",
	"ounces":      "oz",
	"lb":          "lb",
	"lbs":         "lb",
	"pound":       "lb",
	"pounds":      "lb",
	"ml":          "ml",
	"l":           "l",
	"litre":       "l",
	"litres":      "l",
	"liter":       "l",
	"liters":      "l",
}

// volumeUnits 會以常見分數顯示的容量單位
var volumeUnits = map[string]bool{
	"tsp":  true,
	"tbsp": true,
	"cup":  true,
}

// LookupUnit 查詢單位，回傳正規化單位與是否為已知單位
func LookupUnit(token string) (string, bool) {
	u, ok := unitSynonyms[strings.ToLower(strings.TrimSpace(token))]
	return u, ok
}

// NormalizeUnit 已知單位轉為正規化形式，未知單位原樣返回
func NormalizeUnit(token string) string {
	if u, ok := LookupUnit(token); ok {
		return u
	}
	return token
}

// IsVolumeUnit 是否為 tsp / tbsp / cup
func IsVolumeUnit(unit string) bool {
	return volumeUnits[unit]
}
