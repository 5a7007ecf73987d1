package log

// NewProductionOptions 운영 서버용 설정을 반환합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		EnableConsoleLog:  false,

		ReportCaller: true,
	}
}

// NewDevelopmentOptions 개발 환경용 설정을 반환합니다. 모든 레벨을 한 파일과 콘솔에 기록합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableConsoleLog: true,

		ReportCaller: true,
	}
}

// NewServerlessOptions AWS Lambda 용 설정을 반환합니다.
// 파일을 만들지 않고 JSON 형식으로 표준 출력에만 기록합니다.
func NewServerlessOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		EnableConsoleLog: true,
		DisableFileLog:   true,
		JSONFormat:       true,
	}
}
