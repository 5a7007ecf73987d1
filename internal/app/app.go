// Package app 설정으로부터 검색 서비스 객체 그래프를 조립합니다.
// HTTP 서버와 Lambda 진입점이 같은 구성을 공유한다.
package app

import (
	"github.com/darkkaiser/scrape-server/internal/catalog"
	"github.com/darkkaiser/scrape-server/internal/config"
	"github.com/darkkaiser/scrape-server/internal/fetcher"
	"github.com/darkkaiser/scrape-server/internal/normalizer"
	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
	"github.com/darkkaiser/scrape-server/internal/service/search"
	"github.com/darkkaiser/scrape-server/internal/upstream"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
)

const component = "app"

// Components 조립된 서비스 구성 요소
type Components struct {
	Search      *search.Service
	Upstream    *upstream.SerpAPIClient
	DefaultMode search.Mode
}

// Build appConfig 를 바탕으로 카탈로그, 업스트림 클라이언트, 검색 서비스를 생성합니다.
func Build(appConfig *config.AppConfig) (*Components, error) {
	if appConfig == nil {
		return nil, apperrors.New(apperrors.Internal, "AppConfig는 필수입니다")
	}

	mode, err := search.ParseMode(appConfig.Search.Mode)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Configuration, "기본 검색 모드가 올바르지 않습니다")
	}

	store := catalog.NewDefault()
	if appConfig.Search.CatalogFile != "" {
		if store, err = catalog.LoadFile(appConfig.Search.CatalogFile); err != nil {
			return nil, err
		}
	}

	f := fetcher.New(fetcher.Config{
		Timeout:    appConfig.Upstream.Timeout,
		MaxRetries: appConfig.HTTPRetry.MaxRetries,
		RetryDelay: appConfig.HTTPRetry.RetryDelay,
		MaxBytes:   appConfig.Upstream.MaxResponseBytes,
		UserAgent:  appConfig.Upstream.UserAgent,
	})

	client := upstream.NewSerpAPIClient(upstream.Settings{
		Endpoint:   appConfig.Upstream.Endpoint,
		Engine:     appConfig.Upstream.Engine,
		APIKey:     appConfig.Upstream.APIKey,
		ResultHint: appConfig.Upstream.ResultHint,
	}, f)

	svc := search.NewService(store, normalizer.New(), client, search.Config{
		Limit:           appConfig.Search.ResultLimit,
		UpstreamTimeout: appConfig.Upstream.Timeout,
		Marketplaces:    appConfig.Upstream.Marketplaces,
	})

	applog.WithComponentAndFields(component, applog.Fields{
		"mode":          mode,
		"catalog_size":  store.Len(),
		"result_limit":  appConfig.Search.ResultLimit,
		"marketplaces":  appConfig.Upstream.Marketplaces,
		"has_api_key":   appConfig.Upstream.APIKey != "",
		"upstream_host": appConfig.Upstream.Endpoint,
	}).Info("검색 서비스 구성 완료")

	return &Components{
		Search:      svc,
		Upstream:    client,
		DefaultMode: mode,
	}, nil
}
