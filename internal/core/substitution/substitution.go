package substitution

import (
	"regexp"
	"strings"
)

// Reason 替換原因
type Reason string

const (
	ReasonAllergy     Reason = "allergy"
	ReasonDiet        Reason = "diet"
	ReasonUnavailable Reason = "unavailable"
)

// Substitution 一筆食材替換紀錄
type Substitution struct {
	Original   string `json:"original"`
	Substitute string `json:"substitute"`
	Reason     Reason `json:"reason"`
}

// Preferences 使用者的過敏、飲食限制與缺少的食材
type Preferences struct {
	Allergies   []string `json:"allergies"`
	Diets       []string `json:"diets"`
	Unavailable []string `json:"unavailable"`
}

// Result 替換後的食材清單
type Result struct {
	Ingredients   []string       `json:"ingredients"`
	Substitutions []Substitution `json:"substitutions"`
}

// entry 單一食材在各情境下的替代品，key 為 allergy、unavailable 或飲食名稱
type entry struct {
	food    string
	options map[string]string
}

// table 依序比對的替換表
var table = []entry{
	{"milk", map[string]string{"vegan": "coconut milk", "lactose-free": "almond milk", "unavailable": "water"}},
	{"butter", map[string]string{"vegan": "coconut oil", "unavailable": "ghee", "low-fat": "olive oil"}},
	{"ghee", map[string]string{"vegan": "coconut oil", "unavailable": "butter"}},
	{"egg", map[string]string{"vegan": "flax egg (1 tbsp ground flaxseed + 3 tbsp water)", "unavailable": "extra binding agent"}},
	{"rice", map[string]string{"keto": "cauliflower rice", "low-carb": "cauliflower rice", "unavailable": "quinoa"}},
	{"wheat flour", map[string]string{"gluten-free": "rice flour", "keto": "almond flour", "unavailable": "rice flour"}},
	{"chicken", map[string]string{"vegetarian": "paneer", "vegan": "tofu", "unavailable": "mushrooms"}},
	{"fish", map[string]string{"vegetarian": "paneer", "vegan": "jackfruit", "unavailable": "mushrooms"}},
	{"onion", map[string]string{"allergy": "leek", "unavailable": "shallots"}},
	{"garlic", map[string]string{"allergy": "asafoetida (hing)", "unavailable": "ginger"}},
	{"tomato", map[string]string{"allergy": "red bell pepper", "unavailable": "tamarind paste"}},
	{"sugar", map[string]string{"diabetic": "stevia", "keto": "erythritol", "unavailable": "jaggery"}},
	{"jaggery", map[string]string{"diabetic": "stevia", "unavailable": "brown sugar"}},
}

// Substituter 依使用者偏好替換食材
type Substituter struct {
	allergies   []string
	diets       []string
	unavailable []string
}

// New 建立替換器，偏好一律轉為小寫
func New(prefs Preferences) *Substituter {
	return &Substituter{
		allergies:   lowerAll(prefs.Allergies),
		diets:       lowerAll(prefs.Diets),
		unavailable: lowerAll(prefs.Unavailable),
	}
}

// Process 逐行替換食材，順序與數量不變
func (s *Substituter) Process(ingredients []string) Result {
	result := Result{
		Ingredients:   make([]string, 0, len(ingredients)),
		Substitutions: []Substitution{},
	}
	for _, line := range ingredients {
		replaced, sub, ok := s.substitute(line)
		result.Ingredients = append(result.Ingredients, replaced)
		if ok {
			result.Substitutions = append(result.Substitutions, sub)
		}
	}
	return result
}

// substitute 依序檢查過敏、飲食限制、缺少的食材，第一個符合的規則生效
func (s *Substituter) substitute(line string) (string, Substitution, bool) {
	lower := strings.ToLower(line)

	for _, allergy := range s.allergies {
		if !strings.Contains(lower, allergy) {
			continue
		}
		if sub, ok := lookup(allergy, string(ReasonAllergy)); ok {
			return replaceFold(line, allergy, sub), Substitution{Original: allergy, Substitute: sub, Reason: ReasonAllergy}, true
		}
	}

	for _, diet := range s.diets {
		for _, e := range table {
			sub, ok := e.options[diet]
			if !ok || !strings.Contains(lower, e.food) {
				continue
			}
			return replaceFold(line, e.food, sub), Substitution{Original: e.food, Substitute: sub, Reason: ReasonDiet}, true
		}
	}

	for _, item := range s.unavailable {
		if !strings.Contains(lower, item) {
			continue
		}
		if sub, ok := lookup(item, string(ReasonUnavailable)); ok {
			return replaceFold(line, item, sub), Substitution{Original: item, Substitute: sub, Reason: ReasonUnavailable}, true
		}
	}

	return line, Substitution{}, false
}

func lookup(food, key string) (string, bool) {
	for _, e := range table {
		if e.food == food {
			sub, ok := e.options[key]
			return sub, ok
		}
	}
	return "", false
}

// replaceFold 不分大小寫替換所有出現處，複數字尾一併取代
func replaceFold(line, term, replacement string) string {
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term) + `(?:es|s)?`)
	return pattern.ReplaceAllLiteralString(line, replacement)
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
