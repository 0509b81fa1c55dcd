package ai

import (
	"fmt"
	"regexp"
	"strings"

	"recipe-browser/internal/pkg/common"
)

var numberedLine = regexp.MustCompile(`^\s*\d+\s*[.)]\s*(.+?)\s*$`)

// ParseSteps 解析模型輸出的步驟
// 優先讀取 JSON 字串陣列，其次讀取 "1. ..." 形式的編號行
func ParseSteps(content string) ([]string, error) {
	if raw, ok := common.ExtractJSONArray(content); ok {
		var steps []string
		if err := common.ParseJSON(raw, &steps); err == nil {
			if cleaned := compact(steps); len(cleaned) > 0 {
				return cleaned, nil
			}
		}
	}

	var steps []string
	for _, line := range strings.Split(content, "\n") {
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			steps = append(steps, m[1])
		}
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("no steps found in model output")
	}
	return steps, nil
}

func compact(steps []string) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
