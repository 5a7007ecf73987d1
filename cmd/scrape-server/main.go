package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/scrape-server/internal/app"
	"github.com/darkkaiser/scrape-server/internal/config"
	"github.com/darkkaiser/scrape-server/internal/pkg/version"
	"github.com/darkkaiser/scrape-server/internal/service/api"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
)

// @title Scrape Server API
// @version 1.0.0
// @description 인도네시아 마켓플레이스 상품을 검색하여 정규화된 목록으로 반환하는 REST API입니다.
// @description
// @description ## 검색 모드
// @description - **mock**: 내장 카탈로그에서 상품명 부분 일치 검색
// @description - **live**: SerpApi(Google Shopping)에서 실시간 검색. SERPAPI_API_KEY 환경 변수가 필요합니다.
// @description
// @description 응답은 최대 6개의 상품으로 제한됩니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT
// @license.url https://github.com/DarkKaiser/scrape-server/blob/master/LICENSE

// @BasePath /

const banner = `
  ____                                  ____
 / ___|  ___  _ __  __ _  _ __    ___  / ___|   ___  _ __ __   __  ___  _ __
 \___ \ / __|| '__|/ _` + "`" + ` || '_ \  / _ \ \___ \  / _ \| '__|\ \ / / / _ \| '__|
  ___) | (__ | |  | (_| || |_) ||  __/  ___) ||  __/| |    \ V / |  __/| |
 |____/ \___||_|   \__,_|| .__/  \___| |____/  \___||_|     \_/   \___||_|
                         |_|                                  %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig(os.Args[1:])
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

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

	apiService := api.NewService(appConfig, components.Search, components.Upstream, buildInfo)

	serviceStopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serviceStopWG := &sync.WaitGroup{}
	serviceStopWG.Add(1)
	if err := apiService.Start(serviceStopCtx, serviceStopWG); err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서비스 초기화 실패")

		stop()
		serviceStopWG.Wait()
		appLogCloser.Close()
		os.Exit(1)
	}

	applog.WithComponent("main").Info("서버 가동 완료")

	<-serviceStopCtx.Done() // Blocks here until interrupted

	applog.WithComponent("main").Info("Shutdown signal received")
	serviceStopWG.Wait()
}

// loadConfig 첫 번째 인자가 주어지면 해당 경로의 설정 파일을 사용합니다.
func loadConfig(args []string) (*config.AppConfig, error) {
	if len(args) > 0 && args[0] != "" {
		return config.LoadWithFile(args[0])
	}
	return config.Load()
}
