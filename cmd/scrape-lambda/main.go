package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/darkkaiser/scrape-server/internal/app"
	"github.com/darkkaiser/scrape-server/internal/config"
	"github.com/darkkaiser/scrape-server/internal/pkg/version"
	scrapelambda "github.com/darkkaiser/scrape-server/internal/service/lambda"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
)

func main() {
	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	appLogCloser, err := applog.Setup(applog.NewServerlessOptions(config.AppName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패 (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	for _, w := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(w)
	}

	components, err := app.Build(appConfig)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("검색 서비스 구성 실패")
		appLogCloser.Close()
		os.Exit(1)
	}

	allowOrigin := ""
	if len(appConfig.ScrapeAPI.CORS.AllowOrigins) == 1 {
		allowOrigin = appConfig.ScrapeAPI.CORS.AllowOrigins[0]
	}

	h := scrapelambda.NewHandler(components.Search, components.DefaultMode, allowOrigin)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": version.Get().String(),
	}).Info("Lambda 핸들러 시작")

	lambda.Start(h.Handle)
}
