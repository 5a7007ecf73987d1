package normalizer

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// 숫자로 시작하고 숫자와 구분자(. ,)가 이어지는 첫 번째 토큰
var priceTokenRegexp = regexp.MustCompile(`\d[\d.,]*`)

// 숫자 바로 뒤에 오는 인도네시아어 단위 접미사 (rb = ribu, jt = juta)
var priceUnitRegexp = regexp.MustCompile(`(?i)^\s*(ribu|rb|juta|jt|miliar|milyar)\b`)

var priceUnits = map[string]float64{
	"ribu":   1e3,
	"rb":     1e3,
	"juta":   1e6,
	"jt":     1e6,
	"miliar": 1e9,
	"milyar": 1e9,
}

// ParsePrice 자유 형식의 가격 문자열에서 숫자 값을 추출합니다.
//
// 구분자 해석 규칙:
//   - '.' 과 ',' 가 모두 있으면 마지막에 나온 쪽이 소수점이다.
//   - 한 종류의 구분자가 두 번 이상 나오면 천 단위 구분자다.
//   - 한 번만 나오고 뒤에 정확히 세 자리가 오면 천 단위 구분자다.
//   - 그 외에는 소수점이다.
//
// 숫자 뒤의 rb/ribu, jt/juta, miliar/milyar 는 배수로 적용합니다. 그 밖의 접미사(K, M 등)는 무시한다.
//
// 예: "Rp 1.234.567" -> 1234567, "$1,299.99" -> 1299.99, "Rp1.234.567,50" -> 1234567.5, "Rp 1,5 juta" -> 1500000
func ParsePrice(s string) (float64, bool) {
	loc := priceTokenRegexp.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}

	multiplier := 1.0
	if m := priceUnitRegexp.FindStringSubmatch(s[loc[1]:]); m != nil {
		multiplier = priceUnits[strings.ToLower(m[1])]
	}

	tok := strings.TrimRight(s[loc[0]:loc[1]], ".,")
	if tok == "" {
		return 0, false
	}

	lastDot := strings.LastIndexByte(tok, '.')
	lastComma := strings.LastIndexByte(tok, ',')

	switch {
	case lastDot >= 0 && lastComma >= 0:
		decimal, thousands := ".", ","
		if lastComma > lastDot {
			decimal, thousands = ",", "."
		}
		tok = strings.ReplaceAll(tok, thousands, "")
		tok = strings.Replace(tok, decimal, ".", 1)

	case lastDot >= 0 || lastComma >= 0:
		sep, idx := ".", lastDot
		if lastComma >= 0 {
			sep, idx = ",", lastComma
		}
		if strings.Count(tok, sep) > 1 || len(tok)-idx-1 == 3 {
			tok = strings.ReplaceAll(tok, sep, "")
		} else {
			tok = strings.Replace(tok, sep, ".", 1)
		}
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	if multiplier != 1 {
		v = math.Round(v*multiplier*100) / 100
	}
	if !validPrice(v) {
		return 0, false
	}
	return v, true
}

// coercePrice 숫자 타입은 그대로, 문자열은 ParsePrice 로 해석합니다.
func coercePrice(v any) (float64, bool) {
	var f float64

	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		return ParsePrice(x)
	default:
		return 0, false
	}

	if !validPrice(f) {
		return 0, false
	}
	return f, true
}

func validPrice(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}
