package fetcher

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

const defaultUserAgent = "scrape-server/1.0 (+https://github.com/darkkaiser/scrape-server)"

// HTTPFetcher 실제 네트워크 호출을 담당하는 체인의 가장 안쪽 단계입니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher timeout 이 0 이하이면 http.Client 기본값(무제한)을 사용합니다.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10
	transport.IdleConnTimeout = 90 * time.Second

	client := &http.Client{Transport: transport}
	if timeout > 0 {
		client.Timeout = timeout
	}

	return &HTTPFetcher{
		client:    client,
		userAgent: userAgent,
	}
}

// Do 요청에 User-Agent 가 없으면 기본값을 채운 뒤 전송합니다. 원본 요청은 변경하지 않습니다.
// 전송 에러에 포함된 URL 은 마스킹된다.
func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redactURL(req.URL)
		}
		return resp, err
	}

	return resp, nil
}

// CloseIdleConnections 유휴 커넥션을 정리합니다.
func (f *HTTPFetcher) CloseIdleConnections() {
	f.client.CloseIdleConnections()
}
