package upstream

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/darkkaiser/scrape-server/internal/fetcher"
	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
	"github.com/darkkaiser/scrape-server/pkg/strutil"
	"github.com/tidwall/gjson"
)

const (
	// resultsField 상품 목록이 담기는 응답 필드
	resultsField = "shopping_results"

	defaultEngine = "google_shopping"
)

// Settings SerpApi 클라이언트 설정
type Settings struct {
	Endpoint   string
	Engine     string
	APIKey     string
	ResultHint int
}

// SerpAPIClient SerpApi 쇼핑 검색 클라이언트
type SerpAPIClient struct {
	settings Settings
	fetcher  fetcher.Fetcher
}

var _ Client = (*SerpAPIClient)(nil)

func NewSerpAPIClient(settings Settings, f fetcher.Fetcher) *SerpAPIClient {
	settings.APIKey = strings.TrimSpace(settings.APIKey)
	if settings.Engine == "" {
		settings.Engine = defaultEngine
	}

	return &SerpAPIClient{
		settings: settings,
		fetcher:  f,
	}
}

func (c *SerpAPIClient) Validate() error {
	if c.settings.APIKey == "" {
		return ErrCredentialMissing
	}
	if c.fetcher == nil {
		return apperrors.New(apperrors.Internal, "업스트림 HTTP Fetcher가 구성되지 않았습니다")
	}
	return nil
}

func (c *SerpAPIClient) Search(ctx context.Context, query string) (*Response, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	requestURL, err := c.buildURL(query)
	if err != nil {
		return nil, err
	}

	resp, err := fetcher.Get(ctx, c.fetcher, requestURL)
	if err != nil {
		return nil, classify(ctx, err)
	}

	body, err := fetcher.ReadAll(resp)
	if err != nil {
		return nil, classify(ctx, err)
	}

	return c.parse(body)
}

func (c *SerpAPIClient) buildURL(query string) (string, error) {
	u, err := url.Parse(c.settings.Endpoint)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.Configuration, "업스트림 엔드포인트 URL이 올바르지 않습니다")
	}

	params := u.Query()
	params.Set("engine", c.settings.Engine)
	params.Set("q", query)
	params.Set("api_key", c.settings.APIKey)
	params.Set("tbs", "srch:1")
	if c.settings.ResultHint > 0 {
		params.Set("num", strconv.Itoa(c.settings.ResultHint))
	}
	u.RawQuery = params.Encode()

	return u.String(), nil
}

func (c *SerpAPIClient) parse(body []byte) (*Response, error) {
	if !gjson.ValidBytes(body) {
		return nil, apperrors.New(apperrors.ParsingFailed, "업스트림 응답을 JSON으로 해석할 수 없습니다")
	}

	doc := gjson.ParseBytes(body)

	if msg := doc.Get("error"); msg.Exists() {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": msg.String(),
		}).Warn("업스트림이 오류 메시지를 응답했습니다")
	}

	results := doc.Get(resultsField)
	if !results.Exists() || results.Type == gjson.Null {
		return &Response{Items: []any{}}, nil
	}

	var items []any
	if results.IsArray() {
		items = make([]any, 0, len(results.Array()))
		for _, r := range results.Array() {
			items = append(items, r.Value())
		}
	} else {
		// 배열이 아닌 단일 값은 원소 하나로 취급한다.
		items = []any{results.Value()}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"items":   len(items),
		"api_key": strutil.Mask(c.settings.APIKey),
	}).Debug("업스트림 검색 결과 수신")

	return &Response{HasResults: true, Items: items}, nil
}

// classify 전송 단계 에러를 타임아웃과 그 밖의 업스트림 실패로 구분합니다.
// 외부 라이브러리 에러는 원인 문구를 메시지에 포함한다. URL 의 api_key 는 HTTPFetcher 에서 이미 가려져 있다.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.Wrapf(err, apperrors.Timeout, "업스트림 응답 대기 시간이 초과되었습니다: %s", causeText(err))
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.Wrapf(err, apperrors.Timeout, "업스트림 응답 대기 시간이 초과되었습니다: %s", causeText(err))
	}

	// AppError 는 체인의 메시지가 응답에 그대로 이어지므로 원인을 다시 적지 않는다.
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return apperrors.Wrap(err, apperrors.UnderlyingType(err), "업스트림 검색 요청이 실패했습니다")
	}

	return apperrors.Wrapf(err, apperrors.Unavailable, "업스트림 검색 요청이 실패했습니다: %s", causeText(err))
}

// causeText *url.Error 는 요청 URL 을 뺀 내부 원인만 사용합니다.
//
// Get "https://...": dial tcp 127.0.0.1:1: connect: connection refused
// -> dial tcp 127.0.0.1:1: connect: connection refused
func causeText(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
