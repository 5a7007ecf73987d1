package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

// maxBodySnippetBytes 에러 메시지에 포함할 응답 본문의 최대 크기
const maxBodySnippetBytes = 512

// maxProviderMessageRunes 에러 메시지에 포함할 제공자 오류 문구의 최대 길이
const maxProviderMessageRunes = 200

// HTTPStatusError 200 OK 가 아닌 응답을 나타냅니다.
type HTTPStatusError struct {
	StatusCode  int
	Status      string
	URL         string
	Header      http.Header
	BodySnippet string
	Cause       error
}

func (e *HTTPStatusError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		fmt.Fprintf(&sb, " URL: %s", e.URL)
	}
	if e.BodySnippet != "" {
		fmt.Fprintf(&sb, ", Body: %s", e.BodySnippet)
	}
	if e.Cause != nil {
		fmt.Fprintf(&sb, ": %v", e.Cause)
	}
	return sb.String()
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}

// StatusCodeFetcher 200 OK 가 아닌 응답을 HTTPStatusError 로 바꿉니다.
// 에러를 반환할 때 응답 본문은 이미 닫혀 있다.
type StatusCodeFetcher struct {
	delegate Fetcher
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

func NewStatusCodeFetcher(delegate Fetcher) *StatusCodeFetcher {
	return &StatusCodeFetcher{delegate: delegate}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}

	statusErr := newHTTPStatusError(resp)
	drainAndCloseBody(resp.Body)

	return nil, statusErr
}

func newHTTPStatusError(resp *http.Response) *HTTPStatusError {
	var snippet string
	if resp.Body != nil {
		buf, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetBytes))
		snippet = strings.ToValidUTF8(string(buf), string(utf8.RuneError))
	}

	// 5xx 와 429 는 잠시 후 다시 시도하면 성공할 수 있는 장애로 분류한다.
	errType := apperrors.ExecutionFailed
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		errType = apperrors.Unavailable
	}

	var rawURL string
	if resp.Request != nil {
		rawURL = redactURL(resp.Request.URL)
	}

	return &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      http.StatusText(resp.StatusCode),
		URL:         rawURL,
		Header:      redactHeaders(resp.Header),
		BodySnippet: snippet,
		Cause:       apperrors.New(errType, statusMessage(resp.StatusCode, snippet)),
	}
}

// statusMessage 응답 본문이 {"error": "..."} 또는 {"error": {"message": "..."}} 형태이면 제공자의 오류 문구를 덧붙입니다.
func statusMessage(statusCode int, snippet string) string {
	message := fmt.Sprintf("업스트림이 HTTP %d 상태 코드를 응답했습니다", statusCode)

	if detail := providerMessage(snippet); detail != "" {
		message += ": " + detail
	}
	return message
}

func providerMessage(snippet string) string {
	if snippet == "" || !gjson.Valid(snippet) {
		return ""
	}

	r := gjson.Get(snippet, "error")
	if r.IsObject() {
		r = r.Get("message")
	}
	if r.Type != gjson.String {
		return ""
	}

	msg := strings.Join(strings.Fields(r.String()), " ")
	if runes := []rune(msg); len(runes) > maxProviderMessageRunes {
		msg = string(runes[:maxProviderMessageRunes]) + "..."
	}
	return msg
}
