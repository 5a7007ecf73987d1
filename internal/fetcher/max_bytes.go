package fetcher

import (
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
)

// MaxBytesFetcher 응답 본문 크기를 제한합니다.
// Content-Length 가 한도를 넘으면 즉시 실패하고, 그렇지 않으면 읽는 도중 한도를 넘을 때 실패한다.
type MaxBytesFetcher struct {
	delegate Fetcher
	limit    int64
}

var _ Fetcher = (*MaxBytesFetcher)(nil)

func NewMaxBytesFetcher(delegate Fetcher, limit int64) *MaxBytesFetcher {
	return &MaxBytesFetcher{delegate: delegate, limit: limit}
}

func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil || f.limit <= 0 {
		return resp, err
	}

	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)
		return nil, newErrResponseTooLarge(f.limit)
	}

	resp.Body = &limitedBody{
		Reader: io.LimitReader(resp.Body, f.limit+1),
		closer: resp.Body,
		limit:  f.limit,
	}

	return resp, nil
}

type limitedBody struct {
	io.Reader
	closer io.Closer
	limit  int64
	read   int64
}

func (b *limitedBody) Read(p []byte) (int, error) {
	n, err := b.Reader.Read(p)
	b.read += int64(n)
	if b.read > b.limit {
		return n - int(b.read-b.limit), newErrResponseTooLarge(b.limit)
	}
	return n, err
}

func (b *limitedBody) Close() error {
	return b.closer.Close()
}

func newErrResponseTooLarge(limit int64) error {
	return apperrors.New(apperrors.ExecutionFailed, fmt.Sprintf("응답 본문이 허용된 최대 크기(%d 바이트)를 초과했습니다", limit))
}
