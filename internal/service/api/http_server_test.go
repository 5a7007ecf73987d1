package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/scrape-server/internal/catalog"
	"github.com/darkkaiser/scrape-server/internal/fetcher"
	"github.com/darkkaiser/scrape-server/internal/normalizer"
	"github.com/darkkaiser/scrape-server/internal/pkg/version"
	"github.com/darkkaiser/scrape-server/internal/product"
	"github.com/darkkaiser/scrape-server/internal/service/api/handler/scrape"
	"github.com/darkkaiser/scrape-server/internal/service/api/handler/system"
	"github.com/darkkaiser/scrape-server/internal/service/api/model/response"
	systemmodel "github.com/darkkaiser/scrape-server/internal/service/api/model/system"
	"github.com/darkkaiser/scrape-server/internal/service/search"
	"github.com/darkkaiser/scrape-server/internal/testutil"
	"github.com/darkkaiser/scrape-server/internal/upstream"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServerOptions struct {
	apiKey      string
	endpoint    string
	defaultMode search.Mode
	rateLimit   bool
	burst       int
}

func newTestServer(t *testing.T, opts testServerOptions) *echo.Echo {
	t.Helper()

	var client *upstream.SerpAPIClient
	if opts.endpoint != "" || opts.apiKey != "" {
		f := fetcher.New(fetcher.Config{Timeout: 2 * time.Second, RetryDelay: time.Millisecond, MaxBytes: 1 << 20})
		client = upstream.NewSerpAPIClient(upstream.Settings{Endpoint: opts.endpoint, APIKey: opts.apiKey}, f)
	}

	var uc upstream.Client
	var hc system.HealthChecker
	if client != nil {
		uc, hc = client, client
	}

	svc := search.NewService(catalog.NewDefault(), normalizer.New(), uc, search.Config{})

	burst := opts.burst
	if burst == 0 {
		burst = 100
	}
	e := NewHTTPServer(HTTPServerConfig{
		AllowOrigins:      []string{"*"},
		RateLimitEnabled:  opts.rateLimit,
		RequestsPerSecond: 1,
		Burst:             burst,
	})
	RegisterRoutes(e,
		system.NewHandler(hc, string(opts.defaultMode), version.Info{Version: "v1.0.0", Commit: "abc1234", OS: "linux", Arch: "amd64"}),
		scrape.NewHandler(svc, opts.defaultMode),
	)

	return e
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(echo.HeaderOrigin, "https://shop.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeProducts(t *testing.T, rec *httptest.ResponseRecorder) []product.Product {
	t.Helper()

	var products []product.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products), rec.Body.String())
	return products
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestScrape_MockMode(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, testServerOptions{defaultMode: search.ModeMock})

	t.Run("빈 검색어", func(t *testing.T) {
		t.Parallel()

		rec := doGet(e, "/api/scrape")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

		products := decodeProducts(t, rec)
		require.Len(t, products, 6)
		for _, p := range products {
			assert.Contains(t, []string{"Tokopedia", "Shopee", "Bukalapak", "Lazada"}, p.Source)
			assert.NotEmpty(t, p.ProductID)
			assert.NotEmpty(t, p.DateScraped)
		}
	})

	t.Run("검색어 필터", func(t *testing.T) {
		t.Parallel()

		rec := doGet(e, "/api/scrape?q=MOUSE")
		require.Equal(t, http.StatusOK, rec.Code)

		products := decodeProducts(t, rec)
		require.Len(t, products, 3)
		for _, p := range products {
			assert.Contains(t, p.Name, "Mouse")
		}
	})

	t.Run("일치 없음은 빈 배열", func(t *testing.T) {
		t.Parallel()

		rec := doGet(e, "/api/scrape?q=zzz")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("잘못된 모드", func(t *testing.T) {
		t.Parallel()

		rec := doGet(e, "/api/scrape?mode=scrape")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeError(t, rec)
		assert.Equal(t, http.StatusBadRequest, body.ResultCode)
		assert.Contains(t, body.Message, "scrape")
	})

	t.Run("CORS 헤더", func(t *testing.T) {
		t.Parallel()

		rec := doGet(e, "/api/scrape")
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestScrape_LiveMode_MissingCredential(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, testServerOptions{defaultMode: search.ModeLive})

	rec := doGet(e, "/api/scrape?q=mouse")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "API key not found. Please set the SERPAPI_API_KEY environment variable.", body.Message)
	assert.Equal(t, http.StatusInternalServerError, body.ResultCode)
}

func TestScrape_LiveMode(t *testing.T) {
	t.Parallel()

	t.Run("결과 필드 없음", func(t *testing.T) {
		t.Parallel()

		srv := testutil.NewUpstreamServer(t, http.StatusOK, `{"search_metadata": {"status": "Success"}}`)
		e := newTestServer(t, testServerOptions{apiKey: "k", endpoint: srv.URL, defaultMode: search.ModeMock})

		rec := doGet(e, "/api/scrape?q=mouse&mode=live")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		assert.Equal(t, "mouse", srv.LastQuery())
	})

	t.Run("상품 정규화", func(t *testing.T) {
		t.Parallel()

		srv := testutil.NewUpstreamServer(t, http.StatusOK, `{"shopping_results": [
			{"title": "Mouse A", "source": "Tokopedia", "extracted_price": 150000, "link": "https://www.tokopedia.com/a", "thumbnail": "https://img/a.jpg"},
			"broken",
			{"title": "Mouse B", "merchant": {"name": "Toko B"}, "price": "Rp 99.000"}
		]}`)
		e := newTestServer(t, testServerOptions{apiKey: "k", endpoint: srv.URL, defaultMode: search.ModeLive})

		rec := doGet(e, "/api/scrape?q=mouse")
		require.Equal(t, http.StatusOK, rec.Code)

		products := decodeProducts(t, rec)
		require.Len(t, products, 2)
		assert.Equal(t, "Tokopedia", products[0].Seller)
		assert.Equal(t, "https://img/a.jpg", products[0].ImageURL)
		assert.Equal(t, "Toko B", products[1].Seller)
		assert.Equal(t, 99000.0, products[1].Price)
		assert.Equal(t, "Unknown", products[1].Source)
	})

	t.Run("업스트림 오류", func(t *testing.T) {
		t.Parallel()

		srv := testutil.NewUpstreamServer(t, http.StatusUnauthorized, `{"error": "Invalid API key."}`)
		e := newTestServer(t, testServerOptions{apiKey: "bad", endpoint: srv.URL, defaultMode: search.ModeLive})

		rec := doGet(e, "/api/scrape?q=mouse")
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeError(t, rec)
		assert.Equal(t, "업스트림 검색 요청이 실패했습니다: 업스트림이 HTTP 401 상태 코드를 응답했습니다: Invalid API key.", body.Message)
		assert.NotContains(t, rec.Body.String(), "bad")
	})

	t.Run("업스트림 연결 실패", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		endpoint := srv.URL
		srv.Close()

		e := newTestServer(t, testServerOptions{apiKey: "secret-key", endpoint: endpoint, defaultMode: search.ModeLive})

		rec := doGet(e, "/api/scrape?q=mouse")
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeError(t, rec)
		assert.True(t, strings.HasPrefix(body.Message, "업스트림 검색 요청이 실패했습니다: "), body.Message)
		assert.Contains(t, body.Message, "connection refused")
		assert.NotContains(t, rec.Body.String(), "secret-key")
	})
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, testServerOptions{defaultMode: search.ModeMock})

	rec := doGet(e, "/api/unknown")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"result_code": 404, "error": "Endpoint not found."}`, rec.Body.String())
}

func TestSystemRoutes(t *testing.T) {
	t.Parallel()

	t.Run("health", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(t, testServerOptions{defaultMode: search.ModeMock})
		rec := doGet(e, "/health")
		require.Equal(t, http.StatusOK, rec.Code)

		var body systemmodel.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "mock", body.Mode)
		assert.Empty(t, body.Dependencies)
	})

	t.Run("health live 모드 키 없음", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(t, testServerOptions{endpoint: "http://127.0.0.1:1", defaultMode: search.ModeLive})
		rec := doGet(e, "/health")
		require.Equal(t, http.StatusOK, rec.Code)

		var body systemmodel.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unhealthy", body.Status)
		assert.Equal(t, "unhealthy", body.Dependencies["upstream"].Status)
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(t, testServerOptions{defaultMode: search.ModeMock})
		rec := doGet(e, "/version")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"version":"v1.0.0","commit":"abc1234","build_date":"","go_version":"","platform":"linux/amd64"}`, rec.Body.String())
	})

	t.Run("swagger", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(t, testServerOptions{defaultMode: search.ModeMock})
		rec := doGet(e, "/swagger/doc.json")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/api/scrape")
	})
}

func TestRateLimiting(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, testServerOptions{defaultMode: search.ModeMock, rateLimit: true, burst: 1})

	assert.Equal(t, http.StatusOK, doGet(e, "/health").Code)

	rec := doGet(e, "/health")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, http.StatusTooManyRequests, decodeError(t, rec).ResultCode)
}

type panicSearcher struct{}

func (panicSearcher) Search(context.Context, string, search.Mode) ([]product.Product, error) {
	panic("boom")
}

func TestPanicRecovery(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	RegisterRoutes(e, system.NewHandler(nil, "mock", version.Info{}), scrape.NewHandler(panicSearcher{}, search.ModeMock))

	rec := doGet(e, "/api/scrape")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusInternalServerError, decodeError(t, rec).ResultCode)
}
