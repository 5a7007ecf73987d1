package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
	"github.com/darkkaiser/scrape-server/internal/product"
	applog "github.com/darkkaiser/scrape-server/pkg/log"
)

const component = "catalog"

// LoadFile JSON 배열 파일에서 카탈로그를 읽어 Store 를 생성합니다.
//
// 배열의 각 원소는 객체여야 합니다. 숫자는 json.Number 로 보존되어 정규화 단계에서 변환됩니다.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.NotFound, fmt.Sprintf("카탈로그 파일을 찾을 수 없습니다: '%s'", path))
		}
		return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("카탈로그 파일을 읽을 수 없습니다: '%s'", path))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var listings []product.RawListing
	if err := dec.Decode(&listings); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("카탈로그 파일이 JSON 객체 배열 형식이 아닙니다: '%s'", path))
	}

	s := New(listings)

	applog.WithComponentAndFields(component, applog.Fields{
		"path":  path,
		"count": s.Len(),
	}).Info("카탈로그 파일 로드 완료")

	return s, nil
}
