package services

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation 画像字段缺失或非法，在调用模型前拒绝
	ErrValidation = errors.New("validation error")
	// ErrMissingParam 缺少必填字段（ErrValidation 的细分）
	ErrMissingParam = fmt.Errorf("%w: missing parameter", ErrValidation)
	// ErrModelUnavailable 主模型与备用模型均调用失败
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrMalformedModelOutput 模型输出清洗后仍无法解析
	ErrMalformedModelOutput = errors.New("malformed model output")
	// ErrNotFound 结果 id 不存在
	ErrNotFound = errors.New("not found")
)
