// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// '<' 다음에 영문자가 오는 경우만 태그로 본다. "3 < 5" 는 유지된다.
var htmlTagRegexp = regexp.MustCompile(`</?([a-zA-Z]+)[^>]*>`)

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  hello   world  " -> "hello world"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripHTMLTags HTML 태그를 제거하고 엔티티를 디코딩합니다.
// 예: "<b>Hello</b> &amp; World" -> "Hello & World"
func StripHTMLTags(s string) string {
	return html.UnescapeString(htmlTagRegexp.ReplaceAllString(s, ""))
}

// Mask 로그에 남길 민감 정보를 가립니다.
//
//   - 3자 이하: 전체 마스킹
//   - 12자 이하: 앞 4자만 노출
//   - 그 외: 앞 4자와 뒤 4자만 노출
func Mask(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 3:
		return "***"
	case len(s) <= 12:
		return s[:4] + "***"
	default:
		return s[:4] + "***" + s[len(s)-4:]
	}
}

// ContainsFold 유니코드 케이스 폴딩 기준으로 substr 이 s 에 포함되는지 검사합니다.
// 빈 substr 은 항상 포함된 것으로 봅니다.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}

	// Caser 는 상태를 가지므로 호출마다 새로 만든다.
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}
