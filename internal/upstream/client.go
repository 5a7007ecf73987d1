// Package upstream 실시간 쇼핑 검색 제공자에 대한 클라이언트를 정의합니다.
package upstream

import (
	"context"

	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
)

const component = "upstream.client"

// ErrCredentialMissing 업스트림 인증 키가 없을 때 반환되는 에러입니다.
var ErrCredentialMissing = apperrors.New(apperrors.Configuration, "API key not found. Please set the SERPAPI_API_KEY environment variable.")

// Client 실시간 검색 제공자와 통신하는 인터페이스입니다.
type Client interface {
	// Validate 요청을 보낼 수 있는 상태인지(자격 증명 등) 확인합니다.
	Validate() error

	// Search 검색어에 해당하는 원시 상품 목록을 조회합니다.
	Search(ctx context.Context, query string) (*Response, error)
}

// Response 제공자가 돌려준 원시 검색 결과
type Response struct {
	// HasResults 응답에 결과 필드가 존재했는지 여부
	HasResults bool

	// Items 결과 배열의 원소들. 원소는 map[string]any 가 아닐 수도 있다.
	Items []any
}
