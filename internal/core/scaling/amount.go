package scaling

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Amount 可選的數量，未設定代表「無法量化」（例如 salt to taste）
type Amount struct {
	value float64
	set   bool
}

// Some 建立已設定的數量
func Some(v float64) Amount {
	return Amount{value: v, set: true}
}

// None 建立未設定的數量
func None() Amount {
	return Amount{}
}

// Value 回傳數值與是否已設定
func (a Amount) Value() (float64, bool) {
	return a.value, a.set
}

// IsSet 是否有數值
func (a Amount) IsSet() bool {
	return a.set
}

// String 方便日誌輸出
func (a Amount) String() string {
	if !a.set {
		return "none"
	}
	return strconv.FormatFloat(a.value, 'f', -1, 64)
}

// MarshalJSON 未設定時輸出 null
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON null 轉為未設定
func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = None()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = Some(v)
	return nil
}
