package services

import (
	"context"
	"time"

	"aging_curve/models"
)

// ResultStore 结果持久化（repository.ResultRepository 实现）
type ResultStore interface {
	// 返回最新 ACTIVE 记录，不存在时返回 nil, nil
	FindByProfile(ctx context.Context, profileKey string) (*models.ResultRecord, error)
	Create(ctx context.Context, profile models.Profile, result models.AnalysisResult) (string, error)
	SoftDelete(ctx context.Context, id string) error
	// 不区分状态；不存在时返回 repository.ErrResultNotFound
	GetByID(ctx context.Context, id string) (*models.ResultRecord, error)
}

// Requester 获取模型叙述（NarrativeRequester 实现）
type Requester interface {
	Request(ctx context.Context, prompt string) (Narrative, error)
}

// ClockSource 数据库时间（repository.MainRepository 实现）
type ClockSource interface {
	ServerTime(ctx context.Context) (time.Time, error)
}
