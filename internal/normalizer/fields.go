package normalizer

import (
	"slices"
	"strings"

	"github.com/darkkaiser/scrape-server/internal/product"
	"github.com/darkkaiser/scrape-server/pkg/maputil"
	"github.com/darkkaiser/scrape-server/pkg/strutil"
	"github.com/iancoleman/strcase"
)

// 필드별 별칭. 앞에 있을수록 우선한다.
var (
	sourceAliases = []string{"source", "marketplace", "platform"}
	nameAliases   = []string{"name", "title", "product_name"}
	urlAliases    = []string{"url", "link", "product_link"}
	imageAliases  = []string{"image_url", "thumbnail", "image"}
	sellerAliases = []string{"seller", "merchant", "shop_name", "store_name"}
	priceAliases  = []string{"price", "extracted_price", "price_value"}
)

// canonicalize 키를 snake_case 로 바꾼 사본을 만듭니다.
//
// 이미 snake_case 인 키가 우선하며, 그 외 충돌은 원래 키의 사전순으로 먼저 오는 쪽을 택한다.
func canonicalize(raw product.RawListing) map[string]any {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make(map[string]any, len(raw))
	var deferred []string
	for _, k := range keys {
		ck := strcase.ToSnake(k)
		if ck == k {
			out[ck] = raw[k]
			continue
		}
		deferred = append(deferred, k)
	}
	for _, k := range deferred {
		ck := strcase.ToSnake(k)
		if _, exists := out[ck]; !exists {
			out[ck] = raw[k]
		}
	}

	return out
}

// stringField 별칭 순서대로 비어 있지 않은 문자열 값을 찾습니다.
func stringField(f map[string]any, aliases ...string) string {
	for _, a := range aliases {
		if s, ok := f[a].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// cleanText 상품명에 섞인 HTML 태그와 엔티티를 걷어내고 공백을 정리합니다.
func cleanText(s string) string {
	return strutil.NormalizeSpaces(strutil.StripHTMLTags(s))
}

// priceField 별칭 순서대로 해석 가능한 첫 번째 가격을 반환합니다. 없으면 0 입니다.
func priceField(f map[string]any, aliases ...string) float64 {
	for _, a := range aliases {
		if v, ok := f[a]; ok {
			if price, ok := coercePrice(v); ok {
				return price
			}
		}
	}
	return 0
}

// merchant 업스트림이 판매자를 객체로 내려줄 때의 형태 ({"name": "..."})
type merchant struct {
	Name string `json:"name"`
}

// sellerField 명시된 판매자를 우선 사용하고, 없으면 URL 에서 유도합니다.
func sellerField(f map[string]any, url string) string {
	for _, a := range sellerAliases {
		switch v := f[a].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case map[string]any:
			if m, err := maputil.Decode[merchant](v); err == nil && m.Name != "" {
				return m.Name
			}
		}
	}

	return DeriveSeller(url)
}
