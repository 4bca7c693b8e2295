// Package catalog 活动、社团和分类的查询与管理
package catalog

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	DefaultListLimit     = 100
	MaxListLimit         = 500
	DefaultUpcomingLimit = 3
)

// ErrDuplicateName 社团名称已被占用
var ErrDuplicateName = errors.New("a club with this name already exists")

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

func normalizePage(limit, offset, def int) (int, int) {
	if limit <= 0 {
		limit = def
	} else if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// 日期筛选
const (
	DateToday     = "today"
	DateThisWeek  = "this-week"
	DateThisMonth = "this-month"
	DateUpcoming  = "upcoming"
	DatePast      = "past"
)

// dateRange 返回筛选对应的 [from, to) 区间，零值表示不限；周从周一开始。
// 未知的筛选值返回 ok=false，调用方忽略该筛选
func dateRange(filter string, now time.Time) (from, to time.Time, ok bool) {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch filter {
	case DateToday:
		return day, day.AddDate(0, 0, 1), true
	case DateThisWeek:
		monday := day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
		return monday, monday.AddDate(0, 0, 7), true
	case DateThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first, first.AddDate(0, 1, 0), true
	case DateUpcoming:
		return now, time.Time{}, true
	case DatePast:
		return time.Time{}, now, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
