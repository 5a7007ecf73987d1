// Package product 검색 결과로 반환되는 표준 상품 스키마를 정의합니다.
package product

// 누락된 필드에 채워지는 기본값
const (
	DefaultSource   = "Unknown"
	DefaultName     = "Product Name Not Found"
	DefaultSeller   = "Unknown Seller"
	DefaultURL      = "#"
	DefaultImageURL = "https://via.placeholder.com/150"
)

// DateLayout dateScraped 필드의 형식 (UTC, 밀리초)
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// RawListing 카탈로그 항목 또는 업스트림 검색 결과 한 건입니다.
// 키 이름과 값의 타입이 출처마다 다르며, 정규화 이후에는 보관하지 않습니다.
type RawListing = map[string]any

// Product 정규화를 거친 상품 정보입니다. 모든 필드는 항상 채워져 있습니다.
type Product struct {
	ProductID   string  `json:"product_id" example:"3f1c9a52-6a0e-4d0b-9f3e-2b7f0b1d8c11"`
	Source      string  `json:"source" example:"Tokopedia"`
	Name        string  `json:"name" example:"Mouse Gaming Nirkabel RGB"`
	Price       float64 `json:"price" example:"425000"`
	Seller      string  `json:"seller" example:"GadgetGrosir"`
	URL         string  `json:"url" example:"https://example.com/shopee/b"`
	ImageURL    string  `json:"imageUrl" example:"https://via.placeholder.com/150"`
	DateScraped string  `json:"dateScraped" example:"2025-01-01T09:30:00.000Z"`
	Timestamp   int64   `json:"timestamp" example:"1735723800000"`
}
