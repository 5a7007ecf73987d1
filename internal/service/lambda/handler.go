// Package lambda AWS Lambda 함수 URL(API Gateway HTTP API v2) 용 검색 핸들러를 제공합니다.
package lambda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/darkkaiser/scrape-server/internal/product"
	"github.com/darkkaiser/scrape-server/internal/service/api/constants"
	"github.com/darkkaiser/scrape-server/internal/service/api/httputil"
	"github.com/darkkaiser/scrape-server/internal/service/api/model/response"
	"github.com/darkkaiser/scrape-server/internal/service/search"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
)

const component = "lambda.handler"

// Searcher 상품 검색을 수행합니다. search.Service 가 이를 만족한다.
type Searcher interface {
	Search(ctx context.Context, query string, mode search.Mode) ([]product.Product, error)
}

// Handler Lambda 요청을 검색 서비스로 전달하고 HTTP 서버와 같은 규칙으로 응답합니다.
type Handler struct {
	searcher    Searcher
	defaultMode search.Mode
	allowOrigin string
}

// NewHandler allowOrigin 이 비어 있으면 "*" 를 사용합니다.
func NewHandler(searcher Searcher, defaultMode search.Mode, allowOrigin string) *Handler {
	if searcher == nil {
		panic("Searcher는 필수입니다")
	}
	if defaultMode == "" {
		defaultMode = search.ModeMock
	}
	if allowOrigin == "" {
		allowOrigin = "*"
	}

	return &Handler{
		searcher:    searcher,
		defaultMode: defaultMode,
		allowOrigin: allowOrigin,
	}
}

// Handle lambda.Start 에 전달되는 진입점입니다. 모든 실패는 HTTP 응답으로 표현되며 error 는 항상 nil 이다.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	path := req.RawPath
	if path == "" {
		path = req.RequestContext.HTTP.Path
	}

	switch path {
	case "", "/", "/api/scrape":
	default:
		return h.errorResponse(http.StatusNotFound, constants.ErrMsgNotFound), nil
	}

	params := queryParams(req)

	mode := h.defaultMode
	if raw := params.Get(constants.QueryParamMode); raw != "" {
		m, err := search.ParseMode(raw)
		if err != nil {
			return h.errorResponse(http.StatusBadRequest, httputil.ErrorMessage(err)), nil
		}
		mode = m
	}

	query := params.Get(constants.QueryParamQuery)

	products, err := h.searcher.Search(ctx, query, mode)
	if err != nil {
		code := httputil.StatusCode(err)
		applog.WithComponentAndFields(component, applog.Fields{
			"query":       query,
			"mode":        mode,
			"status_code": code,
			"request_id":  req.RequestContext.RequestID,
			"error":       err,
		}).Error("상품 검색 실패")

		return h.errorResponse(code, httputil.ErrorMessage(err)), nil
	}

	return h.jsonResponse(http.StatusOK, products), nil
}

// queryParams QueryStringParameters 가 비어 있으면 RawQueryString 을 해석합니다.
func queryParams(req events.APIGatewayV2HTTPRequest) url.Values {
	if len(req.QueryStringParameters) > 0 {
		v := make(url.Values, len(req.QueryStringParameters))
		for key, value := range req.QueryStringParameters {
			v.Set(key, value)
		}
		return v
	}

	v, err := url.ParseQuery(strings.TrimPrefix(req.RawQueryString, "?"))
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"raw_query": req.RawQueryString,
			"error":     err,
		}).Warn("쿼리 문자열 일부를 해석하지 못했습니다")
	}
	return v
}

func (h *Handler) errorResponse(code int, message string) events.APIGatewayV2HTTPResponse {
	return h.jsonResponse(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

func (h *Handler) jsonResponse(code int, body any) events.APIGatewayV2HTTPResponse {
	b, err := json.Marshal(body)
	if err != nil {
		code = http.StatusInternalServerError
		b = []byte(`{"result_code":500,"error":"` + constants.ErrMsgInternalServer + `"}`)
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: code,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": h.allowOrigin,
		},
		Body: string(b),
	}
}
