package httputil

import (
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
	"github.com/darkkaiser/scrape-server/internal/service/api/constants"
	"github.com/darkkaiser/scrape-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// StatusCode 애플리케이션 에러에 대응하는 HTTP 상태 코드를 반환합니다.
// 잘못된 입력만 400 이고, 설정 누락과 업스트림 실패를 포함한 나머지는 500 입니다.
func StatusCode(err error) int {
	switch {
	case apperrors.Is(err, apperrors.InvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage 에러 체인에 포함된 AppError 메시지들을 바깥쪽부터 ": " 로 이어 붙입니다.
// 외부 라이브러리 에러는 AppError 메시지에 옮겨 담긴 원인 문구만 노출된다.
func ErrorMessage(err error) string {
	var parts []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		if appErr, ok := e.(*apperrors.AppError); ok && appErr.Message() != "" {
			parts = append(parts, appErr.Message())
		}
	}

	if len(parts) == 0 {
		return constants.ErrMsgInternalServer
	}
	return strings.Join(parts, ": ")
}

// FromError 애플리케이션 에러를 echo.HTTPError 로 변환합니다.
func FromError(err error) error {
	return newHTTPError(StatusCode(err), ErrorMessage(err))
}

// ErrorHandler echo 의 전역 HTTP 에러 핸들러입니다.
// 모든 에러 응답은 {"result_code": N, "error": "..."} 형태로 통일됩니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case response.ErrorResponse:
			message = m.Message
		case string:
			message = m
		}
	} else if err != nil {
		code = StatusCode(err)
		message = ErrorMessage(err)
	}

	if code == http.StatusNotFound {
		message = constants.ErrMsgNotFound
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}
