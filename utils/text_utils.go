package utils

import (
	"strings"
	"unicode/utf8"
)

var fenceReplacer = strings.NewReplacer("```json", "", "```JSON", "", "```", "")

// StripCodeFences 移除 markdown 代码块标记
func StripCodeFences(text string) string {
	return strings.TrimSpace(fenceReplacer.Replace(text))
}

// EscapeControlChars 处理 ASCII 控制字符：换行、回车、制表符转为 JSON 转义序列，其余直接移除
func EscapeControlChars(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20:
			// drop
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Preview 截取前 n 个字符，用于日志
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "..."
}
