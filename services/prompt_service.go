package services

import (
	"fmt"
	"strings"
	"time"

	"aging_curve/models"
)

// SystemInstruction 系统角色指令
const SystemInstruction = "너는 장문 스토리텔링 역술가이다. 지정된 영어 라벨 형식을 정확히 지키고, 각 항목을 길고 풍부하게 작성하라."

// sectionLabels 输出标签，顺序即提示词中要求的顺序
var sectionLabels = []string{
	"THEME", "ADVICE",
	"CORE_TRAIT", "STRENGTH", "WEAKNESS",
	"LOVE_STYLE", "PARTNER_AFFINITY", "SOCIAL_PATTERN",
	"WEALTH_TYPE", "BEST_CAREER", "FINANCIAL_ADVICE",
}

var labelGuides = map[string]string{
	"THEME":            "인생 에이징 커브를 한 줄로 요약한 제목",
	"ADVICE":           "지금 가장 필요한 조언 (2~4줄)",
	"CORE_TRAIT":       "타고난 핵심 성향",
	"STRENGTH":         "강점과 그것이 빛나는 시기",
	"WEAKNESS":         "약점과 보완 방법",
	"LOVE_STYLE":       "연애와 사랑의 방식",
	"PARTNER_AFFINITY": "잘 맞는 배우자·연인의 유형",
	"SOCIAL_PATTERN":   "대인관계와 가족 관계의 흐름",
	"WEALTH_TYPE":      "재물운의 유형과 흐름",
	"BEST_CAREER":      "잘 맞는 직업과 커리어 전환 시기",
	"FINANCIAL_ADVICE": "돈 관리와 투자에 대한 조언",
}

// KoreanAge 한국나이：当前年份 - 出生年份 + 1，不考虑月日
func KoreanAge(birthYear int, now time.Time) int {
	return now.Year() - birthYear + 1
}

// ComposePrompt 构建生成提示词，仅依赖画像与当前时间
func ComposePrompt(p models.Profile, now time.Time) string {
	var b strings.Builder

	b.WriteString("당신은 전문 스토리텔러 역술가입니다.\n")
	b.WriteString("아래 사용자의 인생 에이징 커브(나이에 따라 운이 오르내리는 흐름)를 분석하세요.\n\n")

	b.WriteString("사용자 정보:\n")
	fmt.Fprintf(&b, "- 생년월일시: %s\n", p.Birth)
	fmt.Fprintf(&b, "- 한국나이: %d세\n", KoreanAge(birthYear(p.Birth), now))
	fmt.Fprintf(&b, "- 성별: %s\n", genderText(p.Gender))
	fmt.Fprintf(&b, "- 결혼 여부: %s\n", marriedText(p.IsMarried))
	if !p.Married() {
		fmt.Fprintf(&b, "- 연애 상태: %s\n", datingText(p.IsDating))
	}

	b.WriteString("\n출력 형식 (라벨은 영어 대문자 그대로, 라벨 뒤에 콜론):\n")
	for _, label := range sectionLabels {
		fmt.Fprintf(&b, "%s:\n<%s>\n\n", label, labelGuides[label])
	}

	b.WriteString("절대 규칙:\n")
	b.WriteString("1) THEME은 한 줄로만 작성\n")
	b.WriteString("2) ADVICE는 2~4줄로 작성\n")
	b.WriteString("3) CORE_TRAIT부터 FINANCIAL_ADVICE까지 아홉 항목은 각각 10~12문장으로 길고 풍부하게 작성\n")
	b.WriteString("4) 큰따옴표, 작은따옴표, 백틱 등 모든 인용 부호 사용 금지\n")
	b.WriteString("5) 코드블록(```) 사용 금지, JSON 형식 금지\n")
	b.WriteString("6) 각 항목이 끝나면 반드시 줄바꿈\n")
	b.WriteString("7) 위 라벨 외의 다른 라벨이나 제목을 추가하지 말 것\n")

	return b.String()
}

func genderText(g string) string {
	if g == models.GenderMale {
		return "남자"
	}
	return "여자"
}

func marriedText(m string) string {
	if m == models.Yes {
		return "기혼"
	}
	return "미혼"
}

func datingText(d string) string {
	if d == models.Yes {
		return "연애 중"
	}
	return "솔로"
}
