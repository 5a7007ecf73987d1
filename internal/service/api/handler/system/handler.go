// Package system 헬스체크와 버전 정보 엔드포인트를 제공합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/scrape-server/internal/pkg/version"
	"github.com/darkkaiser/scrape-server/internal/service/api/constants"
	"github.com/darkkaiser/scrape-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// HealthChecker 외부 의존성의 준비 상태를 확인합니다. upstream.Client 가 이를 만족한다.
type HealthChecker interface {
	Validate() error
}

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	upstream  HealthChecker
	mode      string
	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler upstream 은 nil 일 수 있습니다. 이 경우 업스트림 상태는 보고하지 않습니다.
func NewHandler(upstream HealthChecker, mode string, buildInfo version.Info) *Handler {
	return &Handler{
		upstream:  upstream,
		mode:      mode,
		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler
// @Summary 서버 헬스체크
// @Description 서버 가동 시간, 기본 검색 모드, 업스트림 설정 상태를 반환합니다.
// @Description 업스트림 키가 없으면 live 모드 검색이 실패하므로 unhealthy 로 표시됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug("헬스체크 요청")

	resp := system.HealthResponse{
		Status: constants.HealthStatusHealthy,
		Uptime: int64(time.Since(h.serverStartTime).Seconds()),
		Mode:   h.mode,
	}

	if h.upstream != nil {
		dep := system.DependencyStatus{Status: constants.HealthStatusHealthy, Message: "정상 작동 중"}
		if err := h.upstream.Validate(); err != nil {
			dep = system.DependencyStatus{Status: constants.HealthStatusUnhealthy, Message: err.Error()}

			// mock 모드에서는 업스트림이 필요 없다.
			if h.mode != "mock" {
				resp.Status = constants.HealthStatusUnhealthy
			}
		}
		resp.Dependencies = map[string]system.DependencyStatus{constants.DependencyUpstream: dep}
	}

	return c.JSON(http.StatusOK, resp)
}

// VersionHandler
// @Summary 서버 버전 정보
// @Description 빌드 버전, 커밋 해시, 빌드 날짜, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:   h.buildInfo.Version,
		Commit:    h.buildInfo.Commit,
		BuildDate: h.buildInfo.BuildDate,
		GoVersion: h.buildInfo.GoVersion,
		Platform:  h.buildInfo.OS + "/" + h.buildInfo.Arch,
	})
}
