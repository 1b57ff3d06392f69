package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"aging_curve/models"
	"aging_curve/utils"
)

// analysisTemplate 固定 JSON 模板，占位符 {{LABEL}} 被替换为清洗后的值
const analysisTemplate = `{
  "analysis_summary": {
    "theme": "{{THEME}}",
    "advice": "{{ADVICE}}"
  },
  "personality_and_aptitude": {
    "core_trait": "{{CORE_TRAIT}}",
    "strength": "{{STRENGTH}}",
    "weakness": "{{WEAKNESS}}"
  },
  "relationship_and_family": {
    "love_style": "{{LOVE_STYLE}}",
    "partner_affinity": "{{PARTNER_AFFINITY}}",
    "social_pattern": "{{SOCIAL_PATTERN}}"
  },
  "wealth_and_career": {
    "wealth_type": "{{WEALTH_TYPE}}",
    "best_career": "{{BEST_CAREER}}",
    "financial_advice": "{{FINANCIAL_ADVICE}}"
  }
}`

// labelPatterns 每个标签一个正则：从 LABEL: 开始，截到下一个标签或文本结尾。
// \b 保证 ADVICE: 不会匹配到 FINANCIAL_ADVICE: 内部。
var labelPatterns = func() map[string]*regexp.Regexp {
	alternatives := strings.Join(sectionLabels, "|")
	out := make(map[string]*regexp.Regexp, len(sectionLabels))
	for _, label := range sectionLabels {
		out[label] = regexp.MustCompile(`(?s)\b` + label + `:(.*?)(?:\b(?:` + alternatives + `):|\z)`)
	}
	return out
}()

// labelDecoration 标签两侧的 markdown 标记：行首 # 标题、** 加粗
var labelDecoration = regexp.MustCompile(`(?m)(?:^[ \t]*#{1,6}[ \t]*)?\*{0,3}\b(` +
	strings.Join(sectionLabels, "|") + `)\b\*{0,3}:\*{0,3}`)

// stripLabelDecoration 把 **THEME:** / ## THEME: 还原为 THEME:
func stripLabelDecoration(text string) string {
	return labelDecoration.ReplaceAllString(text, "${1}:")
}

// ExtractSection 取第一个匹配的标签内容；未找到返回 ok=false
func ExtractSection(text, label string) (string, bool) {
	re, known := labelPatterns[label]
	if !known {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// ExtractAnalysis 把模型的自由文本解析为 AnalysisResult。
// 缺失的标签得到空串；值含引号或反斜杠、或模板解析失败时返回 ErrMalformedModelOutput。
func ExtractAnalysis(raw string) (*models.AnalysisResult, error) {
	text := stripLabelDecoration(utils.StripCodeFences(raw))

	pairs := make([]string, 0, len(sectionLabels)*2)
	for _, label := range sectionLabels {
		value, _ := ExtractSection(text, label)
		// 引号和反斜杠会破坏模板，甚至注入额外字段
		if strings.ContainsAny(value, `"\`) {
			return nil, fmt.Errorf("%w: %s contains a quote or backslash", ErrMalformedModelOutput, label)
		}
		pairs = append(pairs, "{{"+label+"}}", utils.EscapeControlChars(value))
	}

	// 单次替换，值中出现的占位符不会被再次展开
	filled := strings.NewReplacer(pairs...).Replace(analysisTemplate)

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(filled), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}
	return &result, nil
}

// NormalizeStructured 结构化输出已符合 schema，只做首尾空白清理
func NormalizeStructured(r models.AnalysisResult) models.AnalysisResult {
	trim := strings.TrimSpace
	s := &r.AnalysisSummary
	s.Theme, s.Advice = trim(s.Theme), trim(s.Advice)
	p := &r.PersonalityAndAptitude
	p.CoreTrait, p.Strength, p.Weakness = trim(p.CoreTrait), trim(p.Strength), trim(p.Weakness)
	rf := &r.RelationshipAndFamily
	rf.LoveStyle, rf.PartnerAffinity, rf.SocialPattern = trim(rf.LoveStyle), trim(rf.PartnerAffinity), trim(rf.SocialPattern)
	w := &r.WealthAndCareer
	w.WealthType, w.BestCareer, w.FinancialAdvice = trim(w.WealthType), trim(w.BestCareer), trim(w.FinancialAdvice)
	return r
}
