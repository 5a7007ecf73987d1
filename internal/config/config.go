package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "scrape-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않을 때 탐색하는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// DotEnvFilename 로컬 개발용 환경 변수 파일명입니다.
	DotEnvFilename = ".env"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다. 이중 언더스코어(__)는 계층 구분자입니다.
	// 예: SCRAPE_UPSTREAM__TIMEOUT=5s -> upstream.timeout
	EnvPrefix = "SCRAPE_"

	// APIKeyEnv 업스트림(SerpApi) 인증 키를 담는 환경 변수입니다.
	APIKeyEnv = "SERPAPI_API_KEY"
)

// 검색 모드
const (
	ModeMock = "mock"
	ModeLive = "live"
)

// defaultConfig 가장 낮은 우선순위로 적용되는 기본 설정을 반환합니다.
func defaultConfig() AppConfig {
	return AppConfig{
		HTTPRetry: HTTPRetryConfig{
			MaxRetries: 1,
			RetryDelay: 500 * time.Millisecond,
		},
		Search: SearchConfig{
			Mode:        ModeMock,
			ResultLimit: 6,
		},
		Upstream: UpstreamConfig{
			Endpoint:         "https://serpapi.com/search.json",
			Engine:           "google_shopping",
			Timeout:          10 * time.Second,
			ResultHint:       10,
			Marketplaces:     []string{},
			MaxResponseBytes: 5 * 1024 * 1024,
		},
		ScrapeAPI: ScrapeAPIConfig{
			WS: WSConfig{
				ListenPort: 8000,
			},
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerSecond: 10,
				Burst:             20,
			},
		},
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다. 파일이 없으면 기본값과 환경 변수만 사용합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, false)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
// filename 이 비어 있으면 파일 없이 기본값과 환경 변수만 사용합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, true)
}

func load(filename string, required bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(defaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드
	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				if required {
					return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
				}
			} else {
				return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
			}
		}
	}

	// 3. .env 파일을 프로세스 환경 변수로 적재 (이미 설정된 변수는 덮어쓰지 않음)
	if err := godotenv.Load(DotEnvFilename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("환경 변수 파일('%s')을 읽을 수 없습니다", DotEnvFilename))
	}

	// 4. 업스트림 인증 키
	if err := k.Load(env.Provider(APIKeyEnv, ".", func(s string) string {
		if s != APIKeyEnv {
			return ""
		}
		return "upstream.api_key"
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 5. SCRAPE_ 환경 변수 (최우선 순위)
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 6. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 구조체에 없는 키는 오타로 보고 에러 처리
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 7. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}

// normalizeEnvKey SCRAPE_UPSTREAM__API_KEY -> upstream.api_key
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// envKeyValue 목록형 설정은 콤마로 구분된 값을 슬라이스로 변환합니다.
func envKeyValue(key, value string) (string, any) {
	k := normalizeEnvKey(key)
	switch k {
	case "upstream.marketplaces", "scrape_api.cors.allow_origins":
		var items []string
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				items = append(items, v)
			}
		}
		return k, items
	}
	return k, value
}
