package fetcher

import "time"

// Config 업스트림 호출 체인 설정
type Config struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	// MaxBytes 0 이하이면 응답 크기를 제한하지 않는다.
	MaxBytes  int64
	UserAgent string
}

// New 설정에 따라 Fetcher 체인을 조립합니다.
//
//	RetryFetcher -> StatusCodeFetcher -> MaxBytesFetcher -> HTTPFetcher
func New(cfg Config) Fetcher {
	var f Fetcher = NewHTTPFetcher(cfg.Timeout, cfg.UserAgent)
	f = NewMaxBytesFetcher(f, cfg.MaxBytes)
	f = NewStatusCodeFetcher(f)
	f = NewRetryFetcher(f, cfg.MaxRetries, cfg.RetryDelay)

	return f
}
