package system

// HealthResponse 헬스체크 응답
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`

	// Uptime 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`

	// Mode 기본 검색 모드
	Mode string `json:"mode" example:"mock"`

	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}

// DependencyStatus 외부 의존성 상태
type DependencyStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:"정상 작동 중"`
}
