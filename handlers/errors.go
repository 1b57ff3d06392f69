package handlers

import (
	"errors"
	"net/http"

	"aging_curve/logger"
	"aging_curve/models"
	"aging_curve/services"
	"aging_curve/utils"
)

// classify 把服务层错误映射为 HTTP 状态码与业务码
func classify(err error) (int, int) {
	switch {
	case errors.Is(err, services.ErrMissingParam):
		return http.StatusBadRequest, models.CodeMissingParams
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, models.CodeInvalidParams
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, models.CodeResultNotFound
	case errors.Is(err, services.ErrModelUnavailable):
		return http.StatusBadGateway, models.CodeThirdPartyAPIError
	case errors.Is(err, services.ErrMalformedModelOutput):
		return http.StatusBadGateway, models.CodeMalformedOutput
	default:
		return http.StatusInternalServerError, models.CodeServerError
	}
}

// writeServiceError 写入失败响应；5xx 记录错误日志
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	detail := err.Error()
	if status >= http.StatusInternalServerError {
		logger.From(r.Context()).Error("请求处理失败", "code", code, "error", err)
		if status == http.StatusInternalServerError {
			detail = models.CodeMessages[code] // 内部错误不外泄
		}
	}
	utils.WriteFormattedJSON(w, status, models.NewErrorResponse(code, detail))
}
