package handlers

import (
	"context"

	"aging_curve/models"
	"aging_curve/services"
)

// AnalysisAPI 分析生成（services.AnalysisService）
type AnalysisAPI interface {
	Init(ctx context.Context, req models.AnalysisRequest) (*services.Analysis, error)
	ReInit(ctx context.Context, req models.AnalysisRequest) (*services.Analysis, error)
}

// ResultAPI 结果读取（services.ResultService）
type ResultAPI interface {
	GetResult(ctx context.Context, id string) (*models.ResultRecord, error)
}

// MainAPI 站点心跳（services.MainService）
type MainAPI interface {
	ServerTime(ctx context.Context) (string, error)
}

// Handler HTTP 层依赖
type Handler struct {
	analysis AnalysisAPI
	results  ResultAPI
	main     MainAPI
}

func NewHandler(analysis AnalysisAPI, results ResultAPI, main MainAPI) *Handler {
	return &Handler{analysis: analysis, results: results, main: main}
}
