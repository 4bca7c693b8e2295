package engagement

import (
	"campus-connect/internal/model"
	"context"

	"gorm.io/gorm"
)

// RecordActivity 追加一条动态；entityName 是写入时的快照
func RecordActivity(tx *gorm.DB, userID uint, activityType string, entityID uint, entityName string, points *int) error {
	return tx.Create(&model.UserActivity{
		UserID:       userID,
		ActivityType: activityType,
		EntityID:     entityID,
		EntityName:   entityName,
		Points:       points,
		Timestamp:    tx.NowFunc(),
	}).Error
}

// ListActivities 按时间倒序分页，limit 默认 10，最大 100
func (s *Service) ListActivities(ctx context.Context, userID uint, limit, offset int) ([]model.UserActivity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	} else if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}
	if offset < 0 {
		offset = 0
	}

	activities := make([]model.UserActivity, 0, limit)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&activities).Error
	return activities, err
}
