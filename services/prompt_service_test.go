package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aging_curve/models"
)

var fixedNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestKoreanAgeIgnoresMonthAndDay(t *testing.T) {
	require.Equal(t, 36, KoreanAge(1990, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 36, KoreanAge(1990, time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)))
	require.Equal(t, 1, KoreanAge(2025, fixedNow))
}

func TestComposePromptUnmarried(t *testing.T) {
	p := models.Profile{Birth: "1990-05-01 08:00", Gender: "M", IsMarried: "N", IsDating: "Y"}
	got := ComposePrompt(p, fixedNow)

	require.Contains(t, got, "1990-05-01 08:00")
	require.Contains(t, got, "36세")
	require.Contains(t, got, "남자")
	require.Contains(t, got, "미혼")
	require.Contains(t, got, "연애 중")
	for _, label := range sectionLabels {
		require.Contains(t, got, label+":")
	}
	require.Contains(t, got, "10~12문장")
	require.Contains(t, got, "2~4줄")
	require.Contains(t, got, "코드블록")
}

func TestComposePromptMarriedOmitsDating(t *testing.T) {
	p := models.Profile{Birth: "1975-03-09 12:30", Gender: "F", IsMarried: "Y"}
	got := ComposePrompt(p, fixedNow)

	require.Contains(t, got, "여자")
	require.Contains(t, got, "기혼")
	require.NotContains(t, got, "연애 상태")
}

func TestComposePromptIsPure(t *testing.T) {
	p := models.Profile{Birth: "1990-05-01 08:00", Gender: "M", IsMarried: "N", IsDating: "N"}
	require.Equal(t, ComposePrompt(p, fixedNow), ComposePrompt(p, fixedNow))
	require.True(t, strings.Contains(ComposePrompt(p, fixedNow), "솔로"))
}
