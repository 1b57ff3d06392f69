package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aging_curve/models"
	"aging_curve/repository"
)

// ResultService 按 id 读取结果
type ResultService struct {
	store ResultStore
}

func NewResultService(store ResultStore) *ResultService {
	return &ResultService{store: store}
}

// GetResult 已软删除的记录同样可读
func (s *ResultService) GetResult(ctx context.Context, id string) (*models.ResultRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: resultId", ErrMissingParam)
	}
	rec, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrResultNotFound) {
		return nil, fmt.Errorf("%w: result %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
