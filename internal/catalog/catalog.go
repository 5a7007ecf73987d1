// Package catalog mock 모드에서 사용하는 읽기 전용 상품 카탈로그를 제공합니다.
package catalog

import (
	"maps"
	"strings"

	"github.com/darkkaiser/scrape-server/internal/product"
	"github.com/darkkaiser/scrape-server/pkg/strutil"
)

// Store 생성 이후 변경되지 않는 원시 상품 목록입니다. 여러 고루틴에서 잠금 없이 읽을 수 있습니다.
type Store struct {
	listings []product.RawListing
}

// New 주어진 목록을 복사하여 Store 를 생성합니다. 호출자가 이후 원본을 수정해도 영향을 받지 않습니다.
func New(listings []product.RawListing) *Store {
	copied := make([]product.RawListing, 0, len(listings))
	for _, l := range listings {
		if l == nil {
			continue
		}
		copied = append(copied, maps.Clone(l))
	}

	return &Store{listings: copied}
}

// Len 카탈로그의 항목 수
func (s *Store) Len() int {
	return len(s.listings)
}

// Filter 이름(name)에 query 가 포함된 항목을 카탈로그 순서대로 반환합니다.
//
// query 가 비어 있거나 공백뿐이면 전체 카탈로그를 반환합니다. 결과 개수 제한은 호출자가 적용합니다.
// 반환되는 맵은 얕은 복사본이며, 일치 항목이 없으면 빈 슬라이스를 반환합니다.
func (s *Store) Filter(query string) []product.RawListing {
	query = strings.TrimSpace(query)

	results := make([]product.RawListing, 0, len(s.listings))
	for _, l := range s.listings {
		if query != "" {
			name, ok := l["name"].(string)
			if !ok || !strutil.ContainsFold(name, query) {
				continue
			}
		}
		results = append(results, maps.Clone(l))
	}

	return results
}
