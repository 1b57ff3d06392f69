package models

import (
	"encoding/json"
)

// 性别、婚恋状态枚举值
const (
	GenderMale   = "M"
	GenderFemale = "F"
	Yes          = "Y"
	No           = "N"
)

// Profile 一次分析请求的用户画像，字段顺序即序列化顺序，不可调整
type Profile struct {
	Birth     string `json:"birth"`              // "2006-01-02 15:04" 或仅日期
	Gender    string `json:"gender"`             // M | F
	IsMarried string `json:"isMarried"`          // Y | N
	IsDating  string `json:"isDating,omitempty"` // 已婚时为空
}

// Married 是否已婚
func (p Profile) Married() bool { return p.IsMarried == Yes }

// BuildProfileKey 生成画像查找键：固定键顺序的 JSON，与旧数据逐字节兼容
func BuildProfileKey(p Profile) string {
	if p.Married() {
		p.IsDating = ""
	}
	b, _ := json.Marshal(p) // 纯字符串字段，不会失败
	return string(b)
}
