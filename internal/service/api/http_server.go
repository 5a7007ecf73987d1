package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/scrape-server/internal/service/api/constants"
	"github.com/darkkaiser/scrape-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/scrape-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정
type HTTPServerConfig struct {
	Debug bool

	AllowOrigins []string

	// RequestTimeout 0 이면 constants.DefaultRequestTimeout 을 사용한다.
	RequestTimeout time.Duration

	// RateLimitEnabled 가 false 이면 속도 제한 미들웨어를 적용하지 않는다.
	RateLimitEnabled  bool
	RequestsPerSecond float64
	Burst             int
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다. 라우트는 포함하지 않습니다.
//
// 미들웨어 적용 순서:
//
//  1. PanicRecovery: 다른 미들웨어의 panic 까지 복구하도록 가장 바깥에 둔다.
//  2. RequestID
//  3. Server 헤더 제거
//  4. HTTPLogger: 429/503 응답도 기록되도록 RateLimit/Timeout 보다 앞에 둔다.
//  5. RateLimiting
//  6. BodyLimit
//  7. Timeout
//  8. CORS
//  9. Secure
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	if cfg.RateLimitEnabled {
		e.Use(appmiddleware.RateLimiting(cfg.RequestsPerSecond, cfg.Burst))
	}
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.Secure())

	return e
}
