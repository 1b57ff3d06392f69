package models

// AnalysisRequest /aging/init 与 /aging/reInit 请求体
type AnalysisRequest struct {
	BirthDate string `json:"birthDate" example:"1990-05-01"`
	BirthTime string `json:"birthTime,omitempty" example:"08:00"` // init 必填，reInit 可选
	Gender    string `json:"gender" example:"M" enums:"M,F"`
	IsMarried string `json:"isMarried" example:"N" enums:"Y,N"`
	IsDating  string `json:"isDating,omitempty" example:"Y" enums:"Y,N"` // 仅未婚时有效
}

// AnalysisResponse 分析成功响应
type AnalysisResponse struct {
	Success  bool           `json:"success" example:"true"`
	Data     AnalysisResult `json:"data"`
	ResultID string         `json:"resultId" example:"2Z4kPqY1bYlJ0s8yQm4bq3xT2cF"`
}

// ResultResponse 结果查询响应
type ResultResponse struct {
	Success   bool           `json:"success" example:"true"`
	InputData Profile        `json:"inputdata"`
	Data      AnalysisResult `json:"data"`
	ResultID  string         `json:"resultId" example:"2Z4kPqY1bYlJ0s8yQm4bq3xT2cF"`
}

// ErrorResponse 失败响应
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Code    int    `json:"code" example:"1000"`
	Message string `json:"message" example:"입력값이 올바르지 않습니다"`
	Error   string `json:"error" example:"gender must be M or F"`
}

// ServerTime 服务器时间
type ServerTime struct {
	Time string `json:"time" example:"2025-01-01 12:00:00"`
}

// MainResponse /main/init 响应
type MainResponse struct {
	Message string     `json:"message" example:"성공"`
	Data    ServerTime `json:"data"`
}
