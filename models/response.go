package models

// 响应码定义
const (
	// 成功
	CodeSuccess = 0

	// 客户端错误 (1000-1999)
	CodeInvalidParams  = 1000 // 无效的参数
	CodeMissingParams  = 1001 // 缺少必要参数
	CodeResultNotFound = 1002 // 结果不存在

	// 服务端错误 (2000-2999)
	CodeServerError        = 2000 // 服务器内部错误
	CodeMalformedOutput    = 2002 // 模型输出无法解析
	CodeThirdPartyAPIError = 2005 // 第三方API错误
)

// 错误码对应的消息（面向韩语用户）
var CodeMessages = map[int]string{
	CodeSuccess:            "성공",
	CodeInvalidParams:      "입력값이 올바르지 않습니다",
	CodeMissingParams:      "필수 입력값이 없습니다",
	CodeResultNotFound:     "결과를 찾을 수 없습니다",
	CodeServerError:        "서버 오류가 발생했습니다",
	CodeMalformedOutput:    "분석 결과를 해석하지 못했습니다. 다시 시도해 주세요",
	CodeThirdPartyAPIError: "분석 서비스를 일시적으로 사용할 수 없습니다",
}

// NewAnalysisResponse 创建分析成功响应
func NewAnalysisResponse(id string, data AnalysisResult) AnalysisResponse {
	return AnalysisResponse{Success: true, Data: data, ResultID: id}
}

// NewResultResponse 创建结果查询响应
func NewResultResponse(rec *ResultRecord) ResultResponse {
	return ResultResponse{
		Success:   true,
		InputData: rec.UserInput,
		Data:      rec.ResultData,
		ResultID:  rec.ID,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, detail string) ErrorResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "알 수 없는 오류"
	}
	return ErrorResponse{
		Success: false,
		Code:    code,
		Message: message,
		Error:   detail,
	}
}
