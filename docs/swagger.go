package docs

// @title 에이징 커브 API
// @version 1.0
// @description 출생 정보로 인생 에이징 커브 분석을 생성·저장·조회하는 서비스

// @contact.name API Support

// @host localhost:3000
// @BasePath /
// @schemes http https
