package scheduler

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"aging_curve/config"
	"aging_curve/logger"
	"aging_curve/metrics"
)

// Probe 连通性检查（repository.MainRepository 实现）
type Probe interface {
	ServerTime(ctx context.Context) (time.Time, error)
}

// TaskStatus 任务状态
type TaskStatus struct {
	LastRun     time.Time
	LastErr     error
	Runs        int
	Failures    int
	Description string
}

// Scheduler 周期性检查数据库健康状况
type Scheduler struct {
	interval time.Duration
	probe    Probe
	stats    func() sql.DBStats
	status   TaskStatus
	mutex    sync.Mutex
}

// 将秒数转换为时间间隔
func secondsToDuration(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = 60 // 默认值
	}
	return time.Duration(seconds) * time.Second
}

// NewScheduler 创建调度器；stats 可为 nil
func NewScheduler(cfg *config.Config, probe Probe, stats func() sql.DBStats) *Scheduler {
	return &Scheduler{
		interval: secondsToDuration(cfg.Scheduler.CheckIntervalSec),
		probe:    probe,
		stats:    stats,
		status:   TaskStatus{Description: "数据库健康检查"},
	}
}

// WithInterval 覆盖检查间隔，测试用
func (s *Scheduler) WithInterval(d time.Duration) *Scheduler {
	s.interval = d
	return s
}

// Run 主循环，ctx 取消后返回
func (s *Scheduler) Run(ctx context.Context) error {
	logger.Info("调度器已启动", "check_interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("调度器已停止")
			return nil
		case now := <-ticker.C:
			s.check(ctx, now)
		}
	}
}

// Status 返回最近一次检查的状态副本
func (s *Scheduler) Status() TaskStatus {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.status
}

func (s *Scheduler) check(ctx context.Context, now time.Time) {
	pingCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	dbTime, err := s.probe.ServerTime(pingCtx)

	s.mutex.Lock()
	s.status.LastRun = now
	s.status.LastErr = err
	s.status.Runs++
	if err != nil {
		s.status.Failures++
	}
	s.mutex.Unlock()

	if err != nil {
		logger.Error("数据库健康检查失败", "error", err)
		return
	}

	args := []any{"db_time", dbTime.Format(time.DateTime)}
	if s.stats != nil {
		st := s.stats()
		metrics.DBOpenConnections.Set(float64(st.OpenConnections))
		args = append(args,
			"open", st.OpenConnections,
			"in_use", st.InUse,
			"idle", st.Idle,
			"wait_count", st.WaitCount)
	}
	logger.Debug("数据库健康检查完成", args...)
}
