// Package api 상품 검색 REST API 서버의 생명주기를 관리합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/scrape-server/docs"
	"github.com/darkkaiser/scrape-server/internal/config"
	"github.com/darkkaiser/scrape-server/internal/pkg/version"
	"github.com/darkkaiser/scrape-server/internal/service/api/constants"
	"github.com/darkkaiser/scrape-server/internal/service/api/handler/scrape"
	"github.com/darkkaiser/scrape-server/internal/service/api/handler/system"
	"github.com/darkkaiser/scrape-server/internal/service/search"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service API 서버를 고루틴에서 실행하고, serviceStopCtx 가 취소되면 Graceful Shutdown 합니다.
type Service struct {
	appConfig *config.AppConfig

	searcher scrape.Searcher
	upstream system.HealthChecker

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService upstream 은 nil 일 수 있습니다.
func NewService(appConfig *config.AppConfig, searcher scrape.Searcher, upstream system.HealthChecker, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}
	if searcher == nil {
		panic("Searcher는 필수입니다")
	}

	return &Service{
		appConfig: appConfig,
		searcher:  searcher,
		upstream:  upstream,
		buildInfo: buildInfo,
	}
}

// Start 서버를 시작하고 즉시 반환합니다. 서비스가 완전히 종료되면 serviceStopWG.Done() 이 호출됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

func (s *Service) setupServer() *echo.Echo {
	mode := search.Mode(s.appConfig.Search.Mode)

	systemHandler := system.NewHandler(s.upstream, mode.String(), s.buildInfo)
	scrapeHandler := scrape.NewHandler(s.searcher, mode)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:             s.appConfig.Debug,
		AllowOrigins:      s.appConfig.ScrapeAPI.CORS.AllowOrigins,
		RateLimitEnabled:  s.appConfig.ScrapeAPI.RateLimit.Enabled,
		RequestsPerSecond: s.appConfig.ScrapeAPI.RateLimit.RequestsPerSecond,
		Burst:             s.appConfig.ScrapeAPI.RateLimit.Burst,
	})

	RegisterRoutes(e, systemHandler, scrapeHandler)

	return e
}

func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.ScrapeAPI.WS.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Info(constants.LogMsgHTTPServerStarting)

	err := e.Start(fmt.Sprintf(":%d", port))
	if err == nil {
		return
	}
	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  port,
		"error": err,
	}).Error(constants.LogMsgHTTPServerFatalError)
}

func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// IsRunning 서비스 실행 여부
func (s *Service) IsRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}
