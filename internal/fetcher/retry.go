package fetcher

import (
	"context"
	"crypto/x509"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	applog "github.com/darkkaiser/scrape-server/pkg/log"
)

const (
	// maxAllowedRetries 업스트림 비용을 고려한 재시도 상한
	maxAllowedRetries = 1

	// defaultRetryDelay 재시도 대기 시간이 지정되지 않았을 때의 기본값
	defaultRetryDelay = 500 * time.Millisecond

	// maxRetryAfter 서버가 요구한 Retry-After 가 이 값을 넘으면 재시도하지 않는다.
	maxRetryAfter = 5 * time.Second
)

// RetryFetcher 일시적인 실패를 한 번 더 시도합니다.
//
// 재시도 대상은 네트워크 오류, 5xx(501/505/511 제외), 408, 429 이며
// GET/HEAD 요청에만 적용됩니다. 대기 중에 요청 컨텍스트가 끝나면 즉시 중단합니다.
type RetryFetcher struct {
	delegate   Fetcher
	maxRetries int
	retryDelay time.Duration
}

var _ Fetcher = (*RetryFetcher)(nil)

// NewRetryFetcher maxRetries 는 0 ~ maxAllowedRetries 범위로 보정됩니다.
func NewRetryFetcher(delegate Fetcher, maxRetries int, retryDelay time.Duration) *RetryFetcher {
	maxRetries = min(max(maxRetries, 0), maxAllowedRetries)
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	return &RetryFetcher{
		delegate:   delegate,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

func (f *RetryFetcher) Do(req *http.Request) (*http.Response, error) {
	maxRetries := f.maxRetries
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		maxRetries = 0
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		resp, err := f.delegate.Do(req)
		if err == nil {
			return resp, nil
		}
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		lastErr = err
		if attempt >= maxRetries || req.Context().Err() != nil || !isRetriable(err) {
			return nil, lastErr
		}

		delay, ok := f.nextDelay(err)
		if !ok {
			return nil, lastErr
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"url":     redactURL(req.URL),
			"attempt": attempt + 1,
			"delay":   delay.String(),
			"error":   err.Error(),
		}).Warn("일시적인 업스트림 오류로 요청을 재시도합니다")

		if err := sleep(req.Context(), delay); err != nil {
			return nil, lastErr
		}
	}
}

// nextDelay 지터가 적용된 대기 시간을 계산합니다. 서버가 Retry-After 를 보냈다면 그 값을 따른다.
func (f *RetryFetcher) nextDelay(err error) (time.Duration, bool) {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) && statusErr.Header != nil {
		if d, ok := parseRetryAfter(statusErr.Header.Get("Retry-After")); ok {
			if d > maxRetryAfter {
				return 0, false
			}
			return d, true
		}
	}

	// [delay/2, delay] 범위의 지터
	half := int64(f.retryDelay / 2)
	return time.Duration(half + rand.Int64N(half+1)), true
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isRetriable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusTooManyRequests, http.StatusRequestTimeout:
			return true
		case http.StatusNotImplemented, http.StatusHTTPVersionNotSupported, http.StatusNetworkAuthenticationRequired:
			return false
		}
		return statusErr.StatusCode >= 500
	}

	// 인증서 오류는 다시 시도해도 같은 결과가 나온다.
	var certErr *x509.UnknownAuthorityError
	var hostErr x509.HostnameError
	if errors.As(err, &certErr) || errors.As(err, &hostErr) {
		return false
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// parseRetryAfter 초 단위 또는 HTTP-date 형식의 Retry-After 값을 해석합니다.
func parseRetryAfter(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		return max(time.Until(t), 0), true
	}
	return 0, false
}
