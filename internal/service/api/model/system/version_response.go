package system

// VersionResponse 빌드 정보 응답
type VersionResponse struct {
	Version   string `json:"version" example:"v1.0.0"`
	Commit    string `json:"commit" example:"abc1234"`
	BuildDate string `json:"build_date" example:"2025-12-01T14:00:00Z"`
	GoVersion string `json:"go_version" example:"go1.24.0"`
	Platform  string `json:"platform" example:"linux/amd64"`
}
