package search

import (
	"strings"

	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
)

// Mode 검색 데이터 출처
type Mode string

const (
	// ModeMock 내장 카탈로그에서 검색
	ModeMock Mode = "mock"

	// ModeLive 업스트림 제공자에서 실시간 검색
	ModeLive Mode = "live"
)

// ParseMode 대소문자와 앞뒤 공백을 무시하고 검색 모드를 해석합니다.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeMock, ModeLive:
		return m, nil
	default:
		return "", newErrInvalidMode(s)
	}
}

func (m Mode) String() string {
	return string(m)
}

func newErrInvalidMode(s string) error {
	return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 검색 모드입니다: '%s' (허용: mock, live)", s)
}
