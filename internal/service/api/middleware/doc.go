// Package middleware echo 서버에 적용되는 공통 미들웨어를 제공합니다.
//
// 적용 순서는 api.NewHTTPServer 에 정의되어 있습니다.
package middleware
