package normalizer

import (
	"net"
	"net/url"
	"strings"

	"github.com/darkkaiser/scrape-server/internal/product"
	"golang.org/x/net/idna"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeriveSeller 상품 URL 의 호스트에서 판매자 이름을 유도합니다.
//
// "https://www.shop.example.com/x" -> "Shop"
//
// 호스트가 없거나 IP 주소이거나 URL 을 해석할 수 없으면 "Unknown Seller" 를 반환합니다.
func DeriveSeller(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || rawURL == product.DefaultURL {
		return product.DefaultSeller
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return product.DefaultSeller
	}
	// 스킴이 없는 "shop.example.com/x" 형태
	if u.Host == "" && u.Scheme == "" && !strings.HasPrefix(rawURL, "/") {
		if u, err = url.Parse("//" + rawURL); err != nil {
			return product.DefaultSeller
		}
	}

	host := u.Hostname()
	if host == "" || net.ParseIP(host) != nil {
		return product.DefaultSeller
	}

	if h, err := idna.ToUnicode(host); err == nil {
		host = h
	}
	host = strings.ToLower(host)
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimSuffix(host, ".")

	// "www." 뿐인 호스트는 판매자 이름으로 쓸 라벨이 없다.
	label, _, _ := strings.Cut(host, ".")
	if label == "" || label == "www" {
		return product.DefaultSeller
	}

	return cases.Title(language.Und).String(label)
}
