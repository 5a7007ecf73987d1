package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	HTTPRetry HTTPRetryConfig `json:"http_retry"`
	Search    SearchConfig    `json:"search"`
	Upstream  UpstreamConfig  `json:"upstream"`
	ScrapeAPI ScrapeAPIConfig `json:"scrape_api"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.HTTPRetry, "HTTP 재시도 정책"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Search, "검색"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Upstream, "업스트림"); err != nil {
		return err
	}
	if err := c.ScrapeAPI.CORS.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, c.ScrapeAPI, "Scrape API"); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 강제하지는 않지만 운영상 위험한 설정에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.ScrapeAPI.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ScrapeAPI.WS.ListenPort))
	}

	if c.Search.Mode == ModeLive && c.Upstream.APIKey == "" {
		warnings = append(warnings, fmt.Sprintf("live 모드로 설정되었지만 업스트림 API 키가 없습니다. %s 환경 변수를 설정하지 않으면 모든 검색 요청이 실패합니다", APIKeyEnv))
	}

	if !c.ScrapeAPI.RateLimit.Enabled {
		warnings = append(warnings, "요청 속도 제한(rate_limit)이 비활성화되어 있습니다. 업스트림 호출 비용이 통제되지 않을 수 있습니다")
	}

	return warnings
}

// HTTPRetryConfig 업스트림 호출 실패 시 재시도 정책
type HTTPRetryConfig struct {
	MaxRetries int           `json:"max_retries" validate:"min=0,max=1"`
	RetryDelay time.Duration `json:"retry_delay" validate:"gt=0"`
}

// SearchConfig 검색 동작 설정
type SearchConfig struct {
	Mode        string `json:"mode" validate:"oneof=mock live"`
	ResultLimit int    `json:"result_limit" validate:"min=1,max=100"`

	// CatalogFile mock 모드에서 내장 카탈로그 대신 사용할 JSON 배열 파일
	CatalogFile string `json:"catalog_file" validate:"omitempty,file"`
}

// UpstreamConfig 실시간 쇼핑 검색 제공자(SerpApi) 설정
type UpstreamConfig struct {
	Endpoint         string        `json:"endpoint" validate:"required,http_url"`
	Engine           string        `json:"engine" validate:"required"`
	APIKey           string        `json:"api_key"`
	Timeout          time.Duration `json:"timeout" validate:"gt=0"`
	ResultHint       int           `json:"result_hint" validate:"min=1,max=100"`
	Marketplaces     []string      `json:"marketplaces" validate:"dive,required"`
	MaxResponseBytes int64         `json:"max_response_bytes" validate:"gt=0"`
	UserAgent        string        `json:"user_agent"`
}

// ScrapeAPIConfig 검색 REST API 서버 설정
type ScrapeAPIConfig struct {
	WS        WSConfig        `json:"ws"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

// WSConfig 웹 서버 포트 설정
type WSConfig struct {
	ListenPort int `json:"listen_port" validate:"min=1,max=65535"`
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return newInvalidInput("CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return newInvalidInput("와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	return checkStruct(v, c, "CORS")
}

// RateLimitConfig IP 단위 토큰 버킷 속도 제한
type RateLimitConfig struct {
	Enabled           bool    `json:"enabled"`
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gt=0"`
	Burst             int     `json:"burst" validate:"min=1"`
}
