package response

// ErrorResponse 모든 API 에러 응답의 본문
type ErrorResponse struct {
	// ResultCode HTTP 상태 코드와 같은 값
	ResultCode int `json:"result_code" example:"500"`

	Message string `json:"error" example:"API key not found. Please set the SERPAPI_API_KEY environment variable."`
}
