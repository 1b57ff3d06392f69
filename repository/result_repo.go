package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/ksuid"

	"aging_curve/db"
	"aging_curve/models"
	"aging_curve/utils"
)

// ErrResultNotFound 按 id 查不到记录
var ErrResultNotFound = errors.New("result not found")

// ResultRepository aging_results 表的唯一写入方
type ResultRepository struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// NewResultRepository 创建结果仓库
func NewResultRepository(conn *sql.DB, driver string) *ResultRepository {
	return &ResultRepository{db: conn, driver: driver, now: time.Now}
}

// WithClock 替换时钟，测试用
func (r *ResultRepository) WithClock(now func() time.Time) *ResultRepository {
	r.now = now
	return r
}

const selectColumns = `result_id, profile_key, user_input, result_data, status, created_at, deleted_at`

// FindByProfile 返回该画像最新的 ACTIVE 记录；不存在时返回 nil, nil
func (r *ResultRepository) FindByProfile(ctx context.Context, profileKey string) (*models.ResultRecord, error) {
	q := db.Rebind(r.driver, `SELECT `+selectColumns+`
		FROM aging_results
		WHERE profile_key = ? AND status = ?
		ORDER BY created_at DESC, result_id DESC
		LIMIT 1`)

	rec, err := scanRecord(r.db.QueryRowContext(ctx, q, profileKey, string(models.StatusActive)))
	if utils.IsSQLNoRowsError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by profile: %w", err)
	}
	return rec, nil
}

// Create 总是插入一条新的 ACTIVE 记录，历史记录保留
func (r *ResultRepository) Create(ctx context.Context, profile models.Profile, result models.AnalysisResult) (string, error) {
	input, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("encode user input: %w", err)
	}
	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode result data: %w", err)
	}

	createdAt := r.now().UTC().Truncate(time.Microsecond)
	id, err := ksuid.NewRandomWithTime(createdAt)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}

	q := db.Rebind(r.driver, `INSERT INTO aging_results
		(result_id, profile_key, user_input, result_data, status, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, NULL)`)
	_, err = r.db.ExecContext(ctx, q,
		id.String(),
		models.BuildProfileKey(profile),
		string(input),
		string(data),
		string(models.StatusActive),
		nullTime{Time: createdAt, Valid: true},
	)
	if err != nil {
		return "", fmt.Errorf("insert result: %w", err)
	}
	return id.String(), nil
}

// SoftDelete 标记为 DELETED 并记录删除时间，不删除行；重复删除为空操作
func (r *ResultRepository) SoftDelete(ctx context.Context, id string) error {
	q := db.Rebind(r.driver, `UPDATE aging_results
		SET status = ?, deleted_at = ?
		WHERE result_id = ? AND status = ?`)
	res, err := r.db.ExecContext(ctx, q,
		string(models.StatusDeleted),
		nullTime{Time: r.now().UTC().Truncate(time.Microsecond), Valid: true},
		id,
		string(models.StatusActive),
	)
	if err != nil {
		return fmt.Errorf("soft delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	var one int
	err = r.db.QueryRowContext(ctx, db.Rebind(r.driver, `SELECT 1 FROM aging_results WHERE result_id = ?`), id).Scan(&one)
	if utils.IsSQLNoRowsError(err) {
		return ErrResultNotFound
	}
	return err
}

// GetByID 按 id 查询，不区分状态
func (r *ResultRepository) GetByID(ctx context.Context, id string) (*models.ResultRecord, error) {
	q := db.Rebind(r.driver, `SELECT `+selectColumns+` FROM aging_results WHERE result_id = ?`)

	rec, err := scanRecord(r.db.QueryRowContext(ctx, q, id))
	if utils.IsSQLNoRowsError(err) {
		return nil, ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get result %s: %w", id, err)
	}
	return rec, nil
}

func scanRecord(row *sql.Row) (*models.ResultRecord, error) {
	var (
		rec                 models.ResultRecord
		input, data, status string
		createdAt, deleted  nullTime
	)
	if err := row.Scan(&rec.ID, &rec.ProfileKey, &input, &data, &status, &createdAt, &deleted); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(input), &rec.UserInput); err != nil {
		return nil, fmt.Errorf("decode user input: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &rec.ResultData); err != nil {
		return nil, fmt.Errorf("decode result data: %w", err)
	}
	rec.Status = models.ResultStatus(status)
	rec.CreatedAt = createdAt.Time
	rec.DeletedAt = deleted.ptr()
	return &rec, nil
}
