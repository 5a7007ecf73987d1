// Package search 카탈로그 또는 업스트림에서 상품을 모아 정규화된 목록을 만드는 검색 서비스를 제공합니다.
package search

import (
	"context"
	"time"

	"github.com/darkkaiser/scrape-server/internal/catalog"
	"github.com/darkkaiser/scrape-server/internal/normalizer"
	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
	"github.com/darkkaiser/scrape-server/internal/product"
	"github.com/darkkaiser/scrape-server/internal/upstream"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
	"github.com/darkkaiser/scrape-server/pkg/strutil"
)

const component = "search.service"

const (
	// DefaultLimit 한 번의 검색이 반환하는 최대 상품 수
	DefaultLimit = 6

	// DefaultUpstreamTimeout 업스트림 호출 전체에 적용되는 제한 시간
	DefaultUpstreamTimeout = 10 * time.Second
)

// Config 검색 서비스 설정
type Config struct {
	Limit           int
	UpstreamTimeout time.Duration

	// Marketplaces 비어 있지 않으면 source 또는 url 에 이 중 하나가 포함된 상품만 남긴다.
	Marketplaces []string
}

// Service 상품 검색 서비스
type Service struct {
	store      *catalog.Store
	normalizer *normalizer.Normalizer
	client     upstream.Client
	config     Config
}

// NewService client 는 nil 일 수 있으며, 이 경우 live 검색은 Configuration 에러를 반환합니다.
func NewService(store *catalog.Store, n *normalizer.Normalizer, client upstream.Client, cfg Config) *Service {
	if store == nil {
		store = catalog.NewDefault()
	}
	if n == nil {
		n = normalizer.New()
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = DefaultUpstreamTimeout
	}

	return &Service{
		store:      store,
		normalizer: n,
		client:     client,
		config:     cfg,
	}
}

// Search 검색어와 모드에 따라 정규화된 상품 목록을 반환합니다.
// 성공 시 결과는 nil 이 아니며 길이는 Limit 을 넘지 않습니다.
func (s *Service) Search(ctx context.Context, query string, mode Mode) ([]product.Product, error) {
	var (
		products []product.Product
		err      error
	)

	switch mode {
	case ModeMock:
		products = s.searchCatalog(query)
	case ModeLive:
		products, err = s.searchUpstream(ctx, query)
	default:
		return nil, newErrInvalidMode(string(mode))
	}
	if err != nil {
		return nil, err
	}

	if len(products) > s.config.Limit {
		products = products[:s.config.Limit]
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"query": query,
		"mode":  mode,
		"count": len(products),
	}).Info("상품 검색 완료")

	return products, nil
}

func (s *Service) searchCatalog(query string) []product.Product {
	listings := s.store.Filter(query)

	products := make([]product.Product, 0, len(listings))
	for i, raw := range listings {
		p, err := s.normalizer.Normalize(raw)
		if err != nil {
			logSkipped(ModeMock, i, err)
			continue
		}
		products = append(products, p)
	}

	return products
}

func (s *Service) searchUpstream(ctx context.Context, query string) ([]product.Product, error) {
	if s.client == nil {
		return nil, upstream.ErrCredentialMissing
	}
	if err := s.client.Validate(); err != nil {
		if apperrors.Is(err, apperrors.Configuration) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, apperrors.Configuration, "업스트림 클라이언트 설정이 올바르지 않습니다")
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.UpstreamTimeout)
	defer cancel()

	resp, err := s.client.Search(ctx, query)
	if err != nil {
		if !apperrors.Is(err, apperrors.Timeout) && ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.Wrap(err, apperrors.Timeout, "업스트림 응답 대기 시간이 초과되었습니다")
		}
		return nil, err
	}

	if resp == nil || !resp.HasResults {
		return []product.Product{}, nil
	}

	products := make([]product.Product, 0, len(resp.Items))
	for i, item := range resp.Items {
		p, err := s.normalizer.NormalizeValue(item)
		if err != nil {
			logSkipped(ModeLive, i, err)
			continue
		}
		if !s.allowed(p) {
			continue
		}
		products = append(products, p)
	}

	return products, nil
}

// allowed 마켓플레이스 허용 목록을 source 와 url 에 대해 대소문자 구분 없이 검사합니다.
func (s *Service) allowed(p product.Product) bool {
	if len(s.config.Marketplaces) == 0 {
		return true
	}

	for _, m := range s.config.Marketplaces {
		if strutil.ContainsFold(p.Source, m) || strutil.ContainsFold(p.URL, m) {
			return true
		}
	}
	return false
}

func logSkipped(mode Mode, index int, err error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"mode":  mode,
		"index": index,
		"error": err.Error(),
	}).Warn("형식이 올바르지 않은 상품 데이터를 건너뜁니다")
}
