package api

import (
	"github.com/darkkaiser/scrape-server/internal/service/api/handler/scrape"
	"github.com/darkkaiser/scrape-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes 시스템, 검색, API 문서 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, scrapeHandler *scrape.Handler) {
	e.GET("/health", systemHandler.HealthCheckHandler)
	e.GET("/version", systemHandler.VersionHandler)

	e.GET("/api/scrape", scrapeHandler.ScrapeHandler)

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
