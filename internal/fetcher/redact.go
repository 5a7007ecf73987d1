package fetcher

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
)

const redacted = "xxxxx"

var (
	// sensitiveExactKeys 대소문자 구분 없이 전체가 일치할 때만 마스킹하는 쿼리 파라미터 키
	sensitiveExactKeys = []string{
		"token", "auth", "key", "secret", "password", "signature",
		"access_token", "api_key", "apikey", "client_secret",
	}

	sensitiveSuffixes = []string{"_token", "_secret", "_key"}

	sensitiveHeaders = []string{"Authorization", "Proxy-Authorization", "Cookie", "Set-Cookie"}
)

// redactHeaders 인증 관련 헤더 값을 가린 복사본을 반환합니다.
func redactHeaders(h http.Header) http.Header {
	if h == nil {
		return nil
	}

	masked := h.Clone()
	for _, key := range sensitiveHeaders {
		if masked.Get(key) != "" {
			masked.Set(key, "***")
		}
	}

	return masked
}

// redactURL 비밀번호와 민감한 쿼리 파라미터 값을 가린 URL 문자열을 반환합니다. 원본 URL 은 변경하지 않습니다.
//
//	https://serpapi.com/search.json?q=mouse&api_key=abc -> https://serpapi.com/search.json?api_key=xxxxx&q=mouse
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	clone := *u
	if clone.User != nil {
		if _, ok := clone.User.Password(); ok {
			clone.User = url.UserPassword(clone.User.Username(), redacted)
		}
	}

	if clone.RawQuery != "" {
		query := clone.Query()
		changed := false
		for key := range query {
			if isSensitiveKey(key) {
				for i := range query[key] {
					query[key][i] = redacted
				}
				changed = true
			}
		}
		if changed {
			clone.RawQuery = query.Encode()
		}
	}

	return clone.String()
}

// RedactURL 문자열 URL 을 마스킹합니다. 파싱할 수 없으면 쿼리 전체를 제거합니다.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if before, _, found := strings.Cut(raw, "?"); found {
			return before + "?" + redacted
		}
		return raw
	}
	return redactURL(u)
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	if slices.Contains(sensitiveExactKeys, lower) {
		return true
	}
	for _, suffix := range sensitiveSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
