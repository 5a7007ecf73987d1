package middleware

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/darkkaiser/scrape-server/internal/service/api/constants"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
	"github.com/darkkaiser/scrape-server/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// HTTPLogger 요청마다 한 줄의 구조화된 접근 로그를 남깁니다.
// 에러는 여기서 c.Error 로 처리하므로 로그에 최종 상태 코드가 기록된다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			path := req.URL.Path
			if path == "" {
				path = "/"
			}

			applog.WithFields(applog.Fields{
				"method":   req.Method,
				"path":     path,
				"uri":      maskSensitiveQueryParams(req.RequestURI),
				"host":     req.Host,
				"protocol": req.Proto,

				"remote_ip":  c.RealIP(),
				"user_agent": req.UserAgent(),

				"status":    res.Status,
				"bytes_out": strconv.FormatInt(res.Size, 10),

				"latency_us":    latency.Microseconds(),
				"latency_human": latency.String(),

				"request_id": res.Header().Get(echo.HeaderXRequestID),
			}).Info("HTTP 요청")

			return nil
		}
	}
}

func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.RawQuery == "" {
		return uri
	}

	q := u.Query()
	masked := false
	for key, values := range q {
		if !slices.Contains(constants.SensitiveQueryParams, strings.ToLower(key)) {
			continue
		}
		for i, v := range values {
			values[i] = strutil.Mask(v)
		}
		masked = true
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
