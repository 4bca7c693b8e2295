// Package engagement 报名/入社写路径，以及随之产生的积分账本、用户动态和统计
package engagement

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	EventRegistrationPoints = 10
	ClubMembershipPoints    = 15

	DefaultActivityLimit = 10
	MaxActivityLimit     = 100
)

type Service struct {
	db     *gorm.DB
	now    func() time.Time
	tracer trace.Tracer
}

func New(db *gorm.DB) *Service {
	return &Service{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		tracer: otel.Tracer("campus-connect/engagement"),
	}
}

// insertOnce 依赖 (x_id, user_id) 唯一索引做冲突安全的插入。
// 已存在时把现有记录读进 row 并返回 false；
// 读取使用共享锁，保证在 MySQL 可重复读下也能看到并发事务刚提交的行
func insertOnce[T any](tx *gorm.DB, row *T, query string, args ...any) (bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var existing T
	err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthShare}).
		Where(query, args...).
		First(&existing).Error
	if err != nil {
		return false, err
	}
	*row = existing
	return false, nil
}
