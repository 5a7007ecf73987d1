package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// newValidator JSON 필드명을 사용하고 커스텀 규칙이 등록된 Validator 를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 설정 파일의 키 이름이 보이도록 한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateCORSOrigin "*" 또는 Scheme://Host[:Port] 형식만 허용합니다.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	origin := strings.TrimSpace(fl.Field().String())
	if origin == "*" {
		return true
	}
	if origin == "" || strings.HasSuffix(origin, "/") {
		return false
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != "" && u.Path == "" && u.RawQuery == "" && u.Fragment == "" && u.User == nil
}

func newInvalidInput(message string) error {
	return apperrors.New(apperrors.InvalidInput, message)
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 오류를 사용자 친화적인 메시지로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	fe := validationErrors[0]

	switch fe.StructField() {
	case "MaxRetries":
		return newInvalidInput(fmt.Sprintf("HTTP 최대 재시도 횟수(max_retries)는 0 또는 1이어야 합니다: '%v'", fe.Value()))
	case "RetryDelay":
		return newInvalidInput(fmt.Sprintf("HTTP 재시도 대기 시간(retry_delay)은 0보다 커야 합니다: '%v'", fe.Value()))
	case "Mode":
		return newInvalidInput(fmt.Sprintf("검색 모드(mode)는 'mock' 또는 'live'여야 합니다: '%v'", fe.Value()))
	case "ResultLimit":
		return newInvalidInput(fmt.Sprintf("검색 결과 개수(result_limit)는 1에서 100 사이의 값이어야 합니다: '%v'", fe.Value()))
	case "CatalogFile":
		return newInvalidInput(fmt.Sprintf("지정된 카탈로그 파일(catalog_file)을 찾을 수 없습니다: '%v'", fe.Value()))
	case "Endpoint":
		return newInvalidInput(fmt.Sprintf("업스트림 엔드포인트(endpoint)는 http 또는 https URL 이어야 합니다: '%v'", fe.Value()))
	case "Timeout":
		return newInvalidInput(fmt.Sprintf("업스트림 타임아웃(timeout)은 0보다 커야 합니다: '%v'", fe.Value()))
	case "ListenPort":
		return newInvalidInput("웹 서비스 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	}

	if fe.Tag() == "cors_origin" {
		return newInvalidInput(fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	}

	return newInvalidInput(fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fe.Field(), fe.Tag()))
}
