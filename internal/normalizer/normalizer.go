// Package normalizer 출처마다 형태가 다른 원시 상품 레코드를 표준 Product 스키마로 변환합니다.
//
// 변환 규칙:
//   - 키 이름은 snake_case 로 정규화한 뒤 별칭 목록 순서대로 조회합니다. (imageUrl, image_url, ImageURL 은 같은 필드)
//   - 누락되었거나 타입이 맞지 않는 필드는 기본값으로 채웁니다.
//   - 판매자가 없으면 상품 URL 의 호스트에서 유도합니다.
//   - 가격 문자열은 통화 기호와 천 단위 구분자를 해석하여 숫자로 변환합니다.
//   - 상품 ID 는 업스트림 값을 쓰지 않고 매번 새로 발급합니다.
package normalizer

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
	"github.com/darkkaiser/scrape-server/internal/product"
	"github.com/google/uuid"
)

// Normalizer 상태를 갖지 않으므로 여러 고루틴에서 동시에 사용할 수 있습니다.
type Normalizer struct {
	newID func() string
	now   func() time.Time
}

// Option Normalizer 생성 옵션
type Option func(*Normalizer)

// WithIDGenerator 상품 ID 생성 함수를 지정합니다. (기본값: UUID v4)
func WithIDGenerator(fn func() string) Option {
	return func(n *Normalizer) {
		if fn != nil {
			n.newID = fn
		}
	}
}

// WithClock 수집 시각을 구하는 함수를 지정합니다. (기본값: time.Now)
func WithClock(fn func() time.Time) Option {
	return func(n *Normalizer) {
		if fn != nil {
			n.now = fn
		}
	}
}

// New Normalizer 를 생성합니다.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Normalize 원시 레코드 하나를 Product 로 변환합니다. raw 는 변경하지 않습니다.
//
// raw 가 nil 이면 ParsingFailed 에러를 반환합니다. 그 외에는 항상 모든 필드가 채워진 Product 를 반환합니다.
func (n *Normalizer) Normalize(raw product.RawListing) (product.Product, error) {
	if raw == nil {
		return product.Product{}, apperrors.New(apperrors.ParsingFailed, "상품 레코드가 비어 있습니다(null)")
	}

	f := canonicalize(raw)

	url := stringField(f, urlAliases...)
	if url == "" {
		url = product.DefaultURL
	}

	p := product.Product{
		ProductID: n.newID(),
		Source:    orDefault(stringField(f, sourceAliases...), product.DefaultSource),
		Name:      orDefault(cleanText(stringField(f, nameAliases...)), product.DefaultName),
		Price:     priceField(f, priceAliases...),
		Seller:    sellerField(f, url),
		URL:       url,
		ImageURL:  orDefault(stringField(f, imageAliases...), product.DefaultImageURL),
	}

	t := n.now().UTC()
	p.DateScraped = t.Format(product.DateLayout)
	p.Timestamp = t.UnixMilli()

	return p, nil
}

// NormalizeValue 타입이 확인되지 않은 업스트림 원소를 변환합니다.
// 객체(JSON object)가 아니면 ParsingFailed 에러를 반환하며, 호출자는 해당 원소를 건너뜁니다.
func (n *Normalizer) NormalizeValue(v any) (product.Product, error) {
	raw, ok := v.(map[string]any)
	if !ok {
		return product.Product{}, apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("상품 레코드가 객체 형식이 아닙니다: %T", v))
	}
	return n.Normalize(raw)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
