package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"aging_curve/db"
)

// MainRepository 站点心跳：读取数据库当前时间
type MainRepository struct {
	db     *sql.DB
	driver string
}

func NewMainRepository(conn *sql.DB, driver string) *MainRepository {
	return &MainRepository{db: conn, driver: driver}
}

// ServerTime 返回数据库时间，同时充当连通性检查
func (r *MainRepository) ServerTime(ctx context.Context) (time.Time, error) {
	var q string
	switch r.driver {
	case db.DriverSQLite:
		q = `SELECT CURRENT_TIMESTAMP`
	default:
		q = `SELECT NOW()`
	}

	var t nullTime
	if err := r.db.QueryRowContext(ctx, q).Scan(&t); err != nil {
		return time.Time{}, fmt.Errorf("server time: %w", err)
	}
	return t.Time, nil
}
