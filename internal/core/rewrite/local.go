package rewrite

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"recipe-browser/internal/core/scaling"
	"recipe-browser/internal/pkg/common"
)

// rule 一條改寫規則
// replace 回傳替換文字與要替換的範圍，ok 為 false 時保留原文
type rule struct {
	name    string
	pattern *regexp.Regexp
	replace func(text string, loc []int, req Request) (repl string, start, end int, ok bool)
}

var (
	quantityPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?(?:/\d+)?)\s*(tablespoons?|teaspoons?|tbsps?|tsps?|cups?|handfuls?|pinch(?:es)?|sprigs?|cloves?|inch(?:es)?|grams?|kg|ml|litres?|liters?|g|l)\b`)
	nounPattern     = regexp.MustCompile(`(?i)\b(curry leaves|onion|tomato|garlic|ginger|chilli|chili|pepper|salt|oil|water|rice|dal|lentil|cumin|mustard|turmeric|coriander|coconut|tamarind|jaggery|sugar)(?:e?s)?\b`)
	timePattern     = regexp.MustCompile(`(?i)(?:(\d+(?:\.\d+)?)\s*-\s*)?(\d+(?:\.\d+)?)\s*(minutes?|mins?|seconds?|secs?)\b`)
	containerRegexp = regexp.MustCompile(`(?i)\b(small|medium|large)(\s*)(pan|pot|bowl|vessel)(?:e?s)?\b`)

	// 名詞前已有數量（規則一處理過）時不再重複加上
	quantifiedPrefix = regexp.MustCompile(`\d[\d./-]*\s*(?:[A-Za-z]+\s+)?$`)
	parenthetical    = regexp.MustCompile(`\s*\([^)]*\)`)
)

// nounAliases 名詞對應的食材名稱關鍵字
var nounAliases = map[string][]string{
	"chili":  {"chili", "chilli", "chilly"},
	"chilli": {"chilli", "chili", "chilly"},
	"pepper": {"pepper", "chili", "chilli"},
	"dal":    {"dal", "lentil"},
	"lentil": {"lentil", "dal"},
}

// LocalRewriter 以固定順序的規則改寫步驟，不需網路
type LocalRewriter struct {
	rules []rule
}

// NewLocalRewriter 建立本地改寫器
func NewLocalRewriter() *LocalRewriter {
	return &LocalRewriter{
		rules: []rule{
			{name: "quantity", pattern: quantityPattern, replace: replaceQuantity},
			{name: "ingredient", pattern: nounPattern, replace: replaceIngredient},
			{name: "time", pattern: timePattern, replace: replaceTime},
			{name: "container", pattern: containerRegexp, replace: replaceContainer},
		},
	}
}

// Name 改寫器名稱
func (l *LocalRewriter) Name() string {
	return string(SourceLocal)
}

// Rewrite 逐步套用規則，步驟數量與順序不變，永遠不回傳錯誤
func (l *LocalRewriter) Rewrite(_ context.Context, req Request) ([]string, error) {
	out := make([]string, len(req.Steps))
	for i, step := range req.Steps {
		out[i] = l.rewriteStep(step, req)
	}
	return out, nil
}

func (l *LocalRewriter) rewriteStep(step string, req Request) (result string) {
	defer func() {
		if r := recover(); r != nil {
			common.LogWarn("步驟改寫失敗，保留原文",
				zap.String("step", step),
				zap.Any("panic", r),
			)
			result = step
		}
	}()

	text := step
	for _, r := range l.rules {
		text = r.apply(text, req)
	}
	return text + servingHint(text, req.Servings)
}

// apply 由左至右替換，不重疊
func (r rule) apply(text string, req Request) string {
	locs := r.pattern.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	var b strings.Builder
	cursor := 0
	for _, loc := range locs {
		if loc[0] < cursor {
			continue
		}
		repl, start, end, ok := r.replace(text, loc, req)
		if !ok || start < cursor {
			continue
		}
		b.WriteString(text[cursor:start])
		b.WriteString(repl)
		cursor = end
	}
	b.WriteString(text[cursor:])
	return b.String()
}

// replaceQuantity <數字><單位>：優先使用原始數量相符的食材，否則直接乘上份量
func replaceQuantity(text string, loc []int, req Request) (string, int, int, bool) {
	number := text[loc[2]:loc[3]]
	unit := scaling.NormalizeUnit(strings.ToLower(text[loc[4]:loc[5]]))

	value, ok := scaling.ParseNumber(number).Value()
	if !ok {
		return "", 0, 0, false
	}

	if ing, found := matchQuantity(value, unit, text[loc[1]:], req.Ingredients); found {
		return ing.FormattedAmount + " " + ing.Unit, loc[0], loc[1], true
	}

	scaled := scaling.Round2(value * float64(req.Servings))
	return scaling.FormatQuantity(scaled), loc[2], loc[3], true
}

// matchQuantity 找出單位相同且原始數量相差 0.1 以內的食材
// 多個符合時，優先選名稱出現在數量之後的那一個
func matchQuantity(value float64, unit, after string, ingredients []scaling.ScaledIngredient) (scaling.ScaledIngredient, bool) {
	var candidates []scaling.ScaledIngredient
	for _, ing := range ingredients {
		original, ok := ing.OriginalAmount.Value()
		if !ok || scaling.NormalizeUnit(ing.Unit) != unit {
			continue
		}
		if diff := original - value; diff <= 0.1+1e-9 && diff >= -0.1-1e-9 {
			candidates = append(candidates, ing)
		}
	}
	if len(candidates) == 0 {
		return scaling.ScaledIngredient{}, false
	}

	lowerAfter := strings.ToLower(after)
	for _, ing := range candidates {
		fields := strings.Fields(strings.ToLower(ing.Name))
		if len(fields) > 0 && strings.Contains(lowerAfter, fields[0]) {
			return ing, true
		}
	}
	return candidates[0], true
}

// replaceIngredient 常見食材名詞補上換算後的數量
func replaceIngredient(text string, loc []int, req Request) (string, int, int, bool) {
	noun := strings.ToLower(text[loc[2]:loc[3]])
	ing, found := lookupIngredient(noun, req.Ingredients)
	if !found {
		return "", 0, 0, false
	}

	name := displayName(ing.Name)
	start, end := extendToName(text, loc[0], loc[1], noun, name)

	if quantifiedPrefix.MatchString(text[:start]) {
		return "", 0, 0, false
	}

	parts := []string{ing.FormattedAmount}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	parts = append(parts, name)
	return strings.Join(parts, " "), start, end, true
}

// lookupIngredient 以名稱子字串比對，只看有數量的食材
// 先找名稱含有原字的食材，找不到才改用別名
func lookupIngredient(noun string, ingredients []scaling.ScaledIngredient) (scaling.ScaledIngredient, bool) {
	if ing, ok := findByTerm(noun, ingredients); ok {
		return ing, true
	}
	for _, term := range nounAliases[noun] {
		if term == noun {
			continue
		}
		if ing, ok := findByTerm(term, ingredients); ok {
			return ing, true
		}
	}
	return scaling.ScaledIngredient{}, false
}

func findByTerm(term string, ingredients []scaling.ScaledIngredient) (scaling.ScaledIngredient, bool) {
	for _, ing := range ingredients {
		if ing.Amount.IsSet() && strings.Contains(strings.ToLower(ing.Name), term) {
			return ing, true
		}
	}
	return scaling.ScaledIngredient{}, false
}

// displayName 去掉逗號後的處理方式與括號註記
// "medium tomatoes, chopped" → "medium tomatoes"
func displayName(name string) string {
	if i := strings.Index(name, ","); i >= 0 {
		name = name[:i]
	}
	name = parenthetical.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// extendToName 步驟中已寫出完整食材名稱時，把整個名稱納入替換範圍
func extendToName(text string, start, end int, noun, name string) (int, int) {
	lowerName := strings.ToLower(name)
	matched := strings.ToLower(text[start:end])

	var head, tail string
	if idx := strings.Index(lowerName, matched); idx >= 0 {
		head, tail = lowerName[:idx], lowerName[idx+len(matched):]
	} else if idx := strings.Index(lowerName, noun); idx >= 0 {
		// 步驟用複數、名稱用單數時只往前延伸
		head = lowerName[:idx]
	} else {
		return start, end
	}

	if head != "" && start >= len(head) && strings.EqualFold(text[start-len(head):start], head) {
		start -= len(head)
	}
	if tail != "" && len(text)-end >= len(tail) && strings.EqualFold(text[end:end+len(tail)], tail) {
		end += len(tail)
	}
	return start, end
}

// replaceTime 時間數字依烹調時間公式放大，"5-6 minutes" 兩端都放大
func replaceTime(text string, loc []int, req Request) (string, int, int, bool) {
	if req.Servings <= 1 {
		return "", 0, 0, false
	}

	upper, ok := scaleMinutes(text[loc[4]:loc[5]], req.Servings)
	if !ok {
		return "", 0, 0, false
	}
	if loc[2] < 0 {
		return upper, loc[4], loc[5], true
	}

	lower, ok := scaleMinutes(text[loc[2]:loc[3]], req.Servings)
	if !ok {
		return "", 0, 0, false
	}
	return lower + text[loc[3]:loc[4]] + upper, loc[2], loc[5], true
}

func scaleMinutes(number string, servings int) (string, bool) {
	minutes, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return "", false
	}
	return strconv.Itoa(scaling.ScaleCookingTime(minutes, servings)), true
}

// replaceContainer 份量變多時改用較大的鍋具
func replaceContainer(text string, loc []int, req Request) (string, int, int, bool) {
	size := text[loc[2]:loc[3]]
	upgraded := upgradeSize(strings.ToLower(size), req.Servings)
	if upgraded == strings.ToLower(size) {
		return "", 0, 0, false
	}
	return matchCase(size, upgraded), loc[2], loc[3], true
}

func upgradeSize(size string, servings int) string {
	switch {
	case servings <= 2:
		return size
	case servings <= 4:
		switch size {
		case "small":
			return "medium"
		case "medium":
			return "large"
		}
	default:
		if size == "small" || size == "medium" {
			return "large"
		}
	}
	return size
}

// matchCase 依原字的大小寫輸出替換字
func matchCase(original, word string) string {
	switch {
	case original == strings.ToUpper(original):
		return strings.ToUpper(word)
	case original[:1] == strings.ToUpper(original[:1]):
		return strings.ToUpper(word[:1]) + word[1:]
	default:
		return word
	}
}

// servingHint 份量超過 4 人時的額外提示，最多一個
func servingHint(text string, servings int) string {
	if servings <= 4 {
		return ""
	}
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "mix") || strings.Contains(lower, "stir"):
		return " (mix thoroughly for larger quantity)"
	case strings.Contains(lower, "cook") || strings.Contains(lower, "fry"):
		return " (may need to cook in batches)"
	}
	return ""
}
