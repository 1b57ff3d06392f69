package services

import (
	"context"
	"time"
)

// MainService 站点心跳
type MainService struct {
	clock ClockSource
}

func NewMainService(clock ClockSource) *MainService {
	return &MainService{clock: clock}
}

// ServerTime 返回数据库当前时间（RFC3339，UTC）
func (s *MainService) ServerTime(ctx context.Context) (string, error) {
	t, err := s.clock.ServerTime(ctx)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}
