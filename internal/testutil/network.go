// Package testutil 패키지 테스트에서 공용으로 사용하는 헬퍼를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// FreePort 테스트용으로 사용 가능한 임의의 포트를 반환합니다.
func FreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err, "사용 가능한 포트를 가져오는데 실패했습니다")
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForServer 서버가 해당 포트에서 리스닝할 때까지 대기합니다.
func WaitForServer(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.Dial("tcp", fmt.Sprintf("localhost:%d", port))
		if err == nil {
			conn.Close()
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server did not start on port %d within %v", port, timeout)
}

// UpstreamServer 쇼핑 검색 제공자를 흉내 내는 테스트 서버
type UpstreamServer struct {
	*httptest.Server

	calls     atomic.Int32
	lastQuery atomic.Value
}

// NewUpstreamServer 모든 요청에 status 와 body 로 응답하는 서버를 시작합니다. 테스트 종료 시 자동으로 닫힙니다.
func NewUpstreamServer(t testing.TB, status int, body string) *UpstreamServer {
	t.Helper()

	s := &UpstreamServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		s.lastQuery.Store(r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)

	return s
}

// Calls 지금까지 받은 요청 수
func (s *UpstreamServer) Calls() int {
	return int(s.calls.Load())
}

// LastQuery 마지막 요청의 q 파라미터
func (s *UpstreamServer) LastQuery() string {
	q, _ := s.lastQuery.Load().(string)
	return q
}
