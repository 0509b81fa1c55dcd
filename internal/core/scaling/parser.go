package scaling

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ParsedIngredient 單行食材解析結果
type ParsedIngredient struct {
	Amount       Amount `json:"amount"`
	Unit         string `json:"unit"`
	Name         string `json:"name"`
	OriginalText string `json:"original_text"`
}

const numberPattern = `\d+(?:\.\d+)?(?:\s*[-–/]\s*\d+(?:\.\d+)?)?`

var (
	saltPhrases = []string{"salt needed", "salt as needed", "salt to taste"}

	fewPattern   = regexp.MustCompile(`(?i)\b(?:a\s+)?(?:few|little)\b`)
	pinchPattern = regexp.MustCompile(`(?i)\b(?:a\s+)?pinch(?:es)?(?:\s+of)?\b`)
	spacePattern = regexp.MustCompile(`\s+`)

	// <number><optional unit><space><name>
	leadingAmountPattern = regexp.MustCompile(`^(` + numberPattern + `)(\s*)([A-Za-z]+)?\s+(.+)$`)
	// <number><space><name>
	leadingNumberPattern = regexp.MustCompile(`^(` + numberPattern + `)\s+(.+)$`)
	// <name><dash><number><optional unit><trailing>
	trailingAmountPattern = regexp.MustCompile(`^(.+?)\s*[-–]\s*(` + numberPattern + `)(\s*)([A-Za-z]+)?\s*(.*)$`)
)

// Parse 將一行自由文字食材轉為結構化資料，永遠不會失敗
func Parse(line string) ParsedIngredient {
	text := strings.TrimSpace(line)
	lower := strings.ToLower(text)
	fallback := ParsedIngredient{Amount: None(), Unit: "", Name: text, OriginalText: text}

	if text == "" {
		return fallback
	}

	for _, phrase := range saltPhrases {
		if strings.Contains(lower, phrase) {
			return ParsedIngredient{Amount: None(), Unit: "", Name: "Salt", OriginalText: text}
		}
	}

	if strings.Contains(lower, "few") || strings.Contains(lower, "little") {
		return ParsedIngredient{
			Amount:       None(),
			Unit:         "few",
			Name:         stripWords(fewPattern, text),
			OriginalText: text,
		}
	}

	if strings.Contains(lower, "pinch") {
		return ParsedIngredient{
			Amount:       Some(1),
			Unit:         "pinch",
			Name:         stripWords(pinchPattern, text),
			OriginalText: text,
		}
	}

	if m := leadingAmountPattern.FindStringSubmatch(text); m != nil {
		unit, name := splitUnit(m[2], m[3], m[4])
		return ParsedIngredient{Amount: ParseNumber(m[1]), Unit: unit, Name: name, OriginalText: text}
	}

	if m := leadingNumberPattern.FindStringSubmatch(text); m != nil {
		return ParsedIngredient{Amount: ParseNumber(m[1]), Unit: "", Name: strings.TrimSpace(m[2]), OriginalText: text}
	}

	if m := trailingAmountPattern.FindStringSubmatch(text); m != nil {
		unit, _ := splitUnit(m[3], m[4], m[5])
		name := strings.TrimSpace(m[1])
		if name == "" {
			name = text
		}
		return ParsedIngredient{Amount: ParseNumber(m[2]), Unit: unit, Name: name, OriginalText: text}
	}

	return fallback
}

// splitUnit 決定數字後的單字是否為單位
// 緊貼數字的單字一律視為單位（250g、2oz）；以空白分隔時只有已知單位才算
func splitUnit(gap, token, rest string) (string, string) {
	rest = strings.TrimSpace(rest)
	if token == "" {
		return "", rest
	}
	if normalized, ok := LookupUnit(token); ok {
		return normalized, rest
	}
	if gap == "" {
		return token, rest
	}
	return "", strings.TrimSpace(token + " " + rest)
}

// stripWords 移除關鍵字後整理空白，結果為空時保留原文
func stripWords(pattern *regexp.Regexp, text string) string {
	name := pattern.ReplaceAllString(text, " ")
	name = strings.TrimSpace(spacePattern.ReplaceAllString(name, " "))
	if name == "" {
		return text
	}
	return name
}

// ParseNumber 解析小數、分數（1/2）與範圍（2-3 取平均），無法解析時回傳 None
func ParseNumber(s string) Amount {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return None()
	}

	if parts := strings.SplitN(s, "/", 2); len(parts) == 2 {
		num, err1 := strconv.ParseFloat(parts[0], 64)
		den, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil || den == 0 {
			return None()
		}
		return finite(num / den)
	}

	s = strings.ReplaceAll(s, "–", "-")
	if parts := strings.SplitN(s, "-", 2); len(parts) == 2 {
		lo, err1 := strconv.ParseFloat(parts[0], 64)
		hi, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return None()
		}
		return finite((lo + hi) / 2)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return None()
	}
	return finite(v)
}

func finite(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return None()
	}
	return Some(v)
}
