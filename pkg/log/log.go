// Package log logrus 기반의 전역 로깅 시스템을 제공합니다.
//
// Setup 으로 출력 대상(로테이션 파일, 콘솔)을 구성한 뒤, 각 패키지는 WithComponent 로
// 컴포넌트 이름이 붙은 Entry 를 얻어 로그를 남깁니다.
//
//	applog.WithComponentAndFields("search.service", applog.Fields{
//	    "query": query,
//	    "mode":  mode,
//	}).Info("상품 검색 완료")
package log

import (
	"maps"

	"github.com/sirupsen/logrus"
)

// ComponentKey 로그 발생 위치를 나타내는 필드 이름
const ComponentKey = "component"

// StandardLogger 전역 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetDebugMode 디버그 모드면 Trace, 아니면 Info 레벨로 전환합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// WithComponent component 필드를 가진 Entry 를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(ComponentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드를 가진 Entry 를 반환합니다.
// 전달된 fields 맵은 변경하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	maps.Copy(merged, fields)
	merged[ComponentKey] = component
	return logrus.WithFields(merged)
}

// WithFields logrus.WithFields 의 별칭입니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}
