// Package fetcher 업스트림 HTTP 호출을 위한 미들웨어 체인을 제공합니다.
//
// 각 단계는 Fetcher 인터페이스를 구현하고 다음 단계(delegate)를 감쌉니다.
// New 가 조립하는 기본 체인은 다음과 같습니다.
//
//	RetryFetcher -> StatusCodeFetcher -> MaxBytesFetcher -> HTTPFetcher
package fetcher

import (
	"context"
	"io"
	"net/http"
	"sync"

	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
)

const component = "upstream.fetcher"

// Fetcher HTTP 요청을 수행하는 공통 인터페이스입니다.
// 반환된 응답의 Body 는 호출자가 닫아야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get ctx 가 적용된 GET 요청을 만들어 수행합니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "HTTP 요청 객체를 생성할 수 없습니다")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	return resp, nil
}

// ReadAll 응답 본문을 모두 읽고 닫습니다.
func ReadAll(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "응답 본문을 읽는 중 오류가 발생했습니다")
	}

	return body, nil
}

// maxDrainBytes 커넥션 재사용을 위해 버릴 본문의 최대 크기
const maxDrainBytes = 64 * 1024

var drainBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 32*1024)
		return &b
	},
}

// drainAndCloseBody 커넥션이 풀로 돌아갈 수 있도록 본문 일부를 비우고 닫습니다.
// maxDrainBytes 를 넘는 본문을 가진 커넥션은 재사용되지 않는다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	bufPtr := drainBufPool.Get().(*[]byte)
	defer drainBufPool.Put(bufPtr)

	_, _ = io.CopyBuffer(io.Discard, io.LimitReader(body, maxDrainBytes), *bufPtr)
}
