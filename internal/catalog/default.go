package catalog

import "github.com/darkkaiser/scrape-server/internal/product"

// NewDefault 내장 카탈로그(인도네시아 마켓플레이스 8개 상품)로 Store 를 생성합니다.
func NewDefault() *Store {
	return New(defaultListings())
}

func defaultListings() []product.RawListing {
	return []product.RawListing{
		{"source": "Tokopedia", "name": "Keyboard Gaming Mekanik Gateron Pro", "price": 850000, "seller": "TokoTech", "url": "https://example.com/tokped/a", "imageUrl": "https://placehold.co/400x400/22c55e/ffffff?text=Tokped+A"},
		{"source": "Shopee", "name": "Mouse Gaming Nirkabel RGB", "price": 425000, "seller": "GadgetGrosir", "url": "https://example.com/shopee/b", "imageUrl": "https://placehold.co/400x400/ef4444/ffffff?text=Shopee+B"},
		{"source": "Bukalapak", "name": "Headset Bluetooth Bass", "price": 600000, "seller": "ElektronikPintar", "url": "https://example.com/bukalapak/c", "imageUrl": "https://placehold.co/400x400/3b82f6/ffffff?text=Bukalapak+C"},
		{"source": "Lazada", "name": "Keyboard Gaming Logitech G Pro", "price": 1100000, "seller": "TokoTech", "url": "https://example.com/lazada/z", "imageUrl": "https://placehold.co/400x400/f97316/ffffff?text=Lazada+Z"},
		{"source": "Tokopedia", "name": "Mouse Gaming Nirkabel Ringan", "price": 400000, "seller": "GadgetGrosir", "url": "https://example.com/tokped/y", "imageUrl": "https://placehold.co/400x400/8b5cf6/ffffff?text=Tokped+Y"},
		{"source": "Shopee", "name": "Mouse Gaming Logitech G502 Hero", "price": 450000, "seller": "ElektronikPintar", "url": "https://example.com/shopee/z", "imageUrl": "https://placehold.co/400x400/6b7280/ffffff?text=Shopee+Z"},
		{"source": "Bukalapak", "name": "Earphone TWS Pro", "price": 300000, "seller": "TokoAudio", "url": "https://example.com/bukalapak/d", "imageUrl": "https://placehold.co/400x400/a3e635/000000?text=Buka+D"},
		{"source": "Lazada", "name": "Laptop Gaming ASUS ROG", "price": 18000000, "seller": "SuperKomputer", "url": "https://example.com/lazada/e", "imageUrl": "https://placehold.co/400x400/c084fc/ffffff?text=Lazada+E"},
	}
}
