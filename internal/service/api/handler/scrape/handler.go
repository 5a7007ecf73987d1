// Package scrape 상품 검색 엔드포인트를 제공합니다.
package scrape

import (
	"context"
	"net/http"

	"github.com/darkkaiser/scrape-server/internal/product"
	"github.com/darkkaiser/scrape-server/internal/service/api/constants"
	"github.com/darkkaiser/scrape-server/internal/service/api/httputil"
	"github.com/darkkaiser/scrape-server/internal/service/search"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Searcher 상품 검색을 수행합니다. search.Service 가 이를 만족한다.
type Searcher interface {
	Search(ctx context.Context, query string, mode search.Mode) ([]product.Product, error)
}

// Handler 상품 검색 핸들러
type Handler struct {
	searcher    Searcher
	defaultMode search.Mode
}

func NewHandler(searcher Searcher, defaultMode search.Mode) *Handler {
	if searcher == nil {
		panic("Searcher는 필수입니다")
	}
	if defaultMode == "" {
		defaultMode = search.ModeMock
	}

	return &Handler{
		searcher:    searcher,
		defaultMode: defaultMode,
	}
}

// ScrapeHandler
// @Summary 상품 검색
// @Description 검색어와 일치하는 상품을 정규화된 형태로 최대 6개까지 반환합니다.
// @Description q 가 비어 있으면 전체 목록에서 앞쪽 상품을 반환합니다.
// @Description mode 를 생략하면 서버 설정(search.mode)을 따릅니다.
// @Tags Scrape
// @Produce json
// @Param q query string false "검색어 (대소문자 구분 없는 부분 일치)"
// @Param mode query string false "검색 모드" Enums(mock, live)
// @Success 200 {array} product.Product "검색 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 검색 모드"
// @Failure 429 {object} response.ErrorResponse "요청 속도 제한 초과"
// @Failure 500 {object} response.ErrorResponse "설정 누락 또는 업스트림 오류"
// @Router /api/scrape [get]
func (h *Handler) ScrapeHandler(c echo.Context) error {
	query := c.QueryParam(constants.QueryParamQuery)

	mode := h.defaultMode
	if raw := c.QueryParam(constants.QueryParamMode); raw != "" {
		m, err := search.ParseMode(raw)
		if err != nil {
			return httputil.NewBadRequestError(httputil.ErrorMessage(err))
		}
		mode = m
	}

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"query":     query,
		"mode":      mode,
		"remote_ip": c.RealIP(),
	}).Debug("상품 검색 요청")

	products, err := h.searcher.Search(c.Request().Context(), query, mode)
	if err != nil {
		return httputil.FromError(err)
	}

	return c.JSON(http.StatusOK, products)
}
