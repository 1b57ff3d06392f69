package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"aging_curve/logger"
	"aging_curve/metrics"
	"aging_curve/models"
	"aging_curve/utils"
)

// Narrative 模型返回的两种形态：自由文本需要抽取，结构化结果可直接使用
type Narrative interface {
	narrative()
}

// FreeText 自由文本，需经 ExtractAnalysis 解析
type FreeText string

// StructuredPayload 约束输出模式下已符合 schema 的结果
type StructuredPayload struct {
	Result models.AnalysisResult
}

func (FreeText) narrative()          {}
func (StructuredPayload) narrative() {}

// GenerateRequest 一次模型调用
type GenerateRequest struct {
	Model      string
	System     string
	Prompt     string
	MaxTokens  int64
	Structured bool // 请求 JSON schema 约束输出
}

// Generator 生成式模型后端（openai / gemini）
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// KeyRotator API Key 轮询，由 Generator 持有，并发安全
type KeyRotator struct {
	keys []string
	next atomic.Uint64
}

func NewKeyRotator(keys []string) *KeyRotator {
	return &KeyRotator{keys: append([]string(nil), keys...)}
}

// Next 返回下一个 key；未配置 key 时返回空串
func (k *KeyRotator) Next() string {
	if k == nil || len(k.keys) == 0 {
		return ""
	}
	i := k.next.Add(1) - 1
	return k.keys[i%uint64(len(k.keys))]
}

func (k *KeyRotator) Len() int {
	if k == nil {
		return 0
	}
	return len(k.keys)
}

// RequesterConfig NarrativeRequester 参数
type RequesterConfig struct {
	Model         string
	FallbackModel string
	MaxTokens     int64
	Structured    bool
	CountTokens   bool
	CallTimeout   time.Duration // 单次模型调用上限；主模型超时后备用模型另有完整预算
}

// NarrativeRequester 调用主模型，失败后用备用模型重试一次
type NarrativeRequester struct {
	gen   Generator
	cfg   RequesterConfig
	count func(string) (int, error)
}

func NewNarrativeRequester(gen Generator, cfg RequesterConfig) *NarrativeRequester {
	r := &NarrativeRequester{gen: gen, cfg: cfg}
	if cfg.CountTokens {
		r.count = CountTokens
	}
	return r
}

// Request 返回模型叙述；两次调用都失败时返回包装了 ErrModelUnavailable 的错误
func (r *NarrativeRequester) Request(ctx context.Context, prompt string) (Narrative, error) {
	log := logger.From(ctx)

	if r.count != nil {
		if n, err := r.count(SystemInstruction + prompt); err == nil {
			log.Debug("prompt tokens", "tokens", n)
		}
	}

	req := GenerateRequest{
		Model:      r.cfg.Model,
		System:     SystemInstruction,
		Prompt:     prompt,
		MaxTokens:  r.cfg.MaxTokens,
		Structured: r.cfg.Structured,
	}

	text, err := r.call(ctx, req)
	if err != nil {
		log.Warn("主模型调用失败，切换备用模型", "model", req.Model, "fallback", r.cfg.FallbackModel, "error", err)
		if r.cfg.FallbackModel == "" {
			return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
		metrics.FallbackUsed.Inc()

		req.Model = r.cfg.FallbackModel
		text, err = r.call(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%w: fallback %s: %v", ErrModelUnavailable, req.Model, err)
		}
	}

	if !r.cfg.Structured {
		return FreeText(text), nil
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(utils.StripCodeFences(text)), &result); err != nil {
		return nil, fmt.Errorf("%w: structured payload: %v", ErrMalformedModelOutput, err)
	}
	return StructuredPayload{Result: NormalizeStructured(result)}, nil
}

func (r *NarrativeRequester) call(ctx context.Context, req GenerateRequest) (string, error) {
	if r.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.CallTimeout)
		defer cancel()
	}

	start := time.Now()
	text, err := r.gen.Generate(ctx, req)
	if err == nil && text == "" {
		err = errors.New("empty completion content")
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.ModelLatency.WithLabelValues(req.Model, outcome).Observe(time.Since(start).Seconds())

	logger.From(ctx).Info("模型调用完成",
		"model", req.Model,
		"outcome", outcome,
		"duration", time.Since(start),
		"chars", len(text),
		"preview", utils.Preview(text, 40))
	return text, err
}
