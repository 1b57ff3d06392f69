package services

import (
	"context"
	"fmt"
	"time"

	"aging_curve/logger"
	"aging_curve/metrics"
	"aging_curve/models"
)

// Analysis init / reInit 的结果
type Analysis struct {
	ID     string
	Result models.AnalysisResult
	Cached bool // 命中已有记录，未调用模型
}

// AnalysisService 画像 -> 查找或生成 -> 持久化
type AnalysisService struct {
	store     ResultStore
	requester Requester
	now       func() time.Time
}

func NewAnalysisService(store ResultStore, requester Requester) *AnalysisService {
	return &AnalysisService{store: store, requester: requester, now: time.Now}
}

// WithClock 替换时钟，测试用
func (s *AnalysisService) WithClock(now func() time.Time) *AnalysisService {
	s.now = now
	return s
}

// Init 已有 ACTIVE 结果时直接返回，否则生成并保存
func (s *AnalysisService) Init(ctx context.Context, req models.AnalysisRequest) (*Analysis, error) {
	profile, err := ProfileFromRequest(req, true)
	if err != nil {
		return nil, err
	}
	key := models.BuildProfileKey(profile)

	existing, err := s.store.FindByProfile(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("lookup profile: %w", err)
	}
	if existing != nil {
		metrics.ProfileCacheHits.Inc()
		logger.From(ctx).Info("命中已有分析结果", "result_id", existing.ID)
		return &Analysis{ID: existing.ID, Result: existing.ResultData, Cached: true}, nil
	}

	result, err := s.generate(ctx, profile)
	if err != nil {
		return nil, err
	}

	id, err := s.store.Create(ctx, profile, result)
	if err != nil {
		return nil, fmt.Errorf("save analysis: %w", err)
	}
	logger.From(ctx).Info("分析结果已保存", "result_id", id)
	return &Analysis{ID: id, Result: result}, nil
}

// ReInit 重新生成：先生成，成功后软删除当前 ACTIVE 记录，再插入新记录。
// 生成失败时旧记录保持 ACTIVE。
func (s *AnalysisService) ReInit(ctx context.Context, req models.AnalysisRequest) (*Analysis, error) {
	profile, err := ProfileFromRequest(req, false)
	if err != nil {
		return nil, err
	}
	key := models.BuildProfileKey(profile)

	result, err := s.generate(ctx, profile)
	if err != nil {
		return nil, err
	}

	current, err := s.store.FindByProfile(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("lookup profile: %w", err)
	}
	if current != nil {
		if err := s.store.SoftDelete(ctx, current.ID); err != nil {
			return nil, fmt.Errorf("soft delete %s: %w", current.ID, err)
		}
		logger.From(ctx).Info("旧分析结果已软删除", "result_id", current.ID)
	}

	id, err := s.store.Create(ctx, profile, result)
	if err != nil {
		return nil, fmt.Errorf("save analysis: %w", err)
	}
	logger.From(ctx).Info("重新生成分析结果", "result_id", id)
	return &Analysis{ID: id, Result: result}, nil
}

func (s *AnalysisService) generate(ctx context.Context, profile models.Profile) (models.AnalysisResult, error) {
	prompt := ComposePrompt(profile, s.now())

	narrative, err := s.requester.Request(ctx, prompt)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	switch n := narrative.(type) {
	case StructuredPayload:
		metrics.AnalysesGenerated.WithLabelValues("structured").Inc()
		return n.Result, nil
	case FreeText:
		result, err := ExtractAnalysis(string(n))
		if err != nil {
			metrics.ExtractionFailures.Inc()
			logger.From(ctx).Error("解析模型输出失败", "error", err)
			return models.AnalysisResult{}, err
		}
		if empty := result.EmptyFields(); len(empty) > 0 {
			logger.From(ctx).Warn("部分标签缺失", "fields", empty)
		}
		metrics.AnalysesGenerated.WithLabelValues("free_text").Inc()
		return *result, nil
	default:
		return models.AnalysisResult{}, fmt.Errorf("unexpected narrative %T", narrative)
	}
}
